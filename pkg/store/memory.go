package store

import (
	"sort"
	"sync"
)

// MemoryStore implements Store in process memory. Used for tests and
// one-shot scans that never touch disk.
type MemoryStore struct {
	mu      sync.RWMutex
	files   map[string]int64
	matches []MatchRecord
}

// NewMemory creates an in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{files: make(map[string]int64)}
}

// AddFile records a scanned file.
func (s *MemoryStore) AddFile(path string, size int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = size
	return nil
}

// AddMatch records a literal and its style spans.
func (s *MemoryStore) AddMatch(rec MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.Path == rec.Path && m.Span == rec.Span {
			return nil
		}
	}
	s.matches = append(s.matches, rec)
	return nil
}

// Files returns all scanned files in path order.
func (s *MemoryStore) Files() ([]FileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	files := make([]FileRecord, 0, len(s.files))
	for path, size := range s.files {
		files = append(files, FileRecord{Path: path, Size: size})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Matches returns the matches for one file in document order.
func (s *MemoryStore) Matches(path string) ([]MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []MatchRecord
	for _, m := range s.matches {
		if m.Path == path {
			out = append(out, m)
		}
	}
	sortMatches(out)
	return out, nil
}

// AllMatches returns every match, ordered by path then offset.
func (s *MemoryStore) AllMatches() ([]MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MatchRecord, len(s.matches))
	copy(out, s.matches)
	sortMatches(out)
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error { return nil }

func sortMatches(matches []MatchRecord) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Path != matches[j].Path {
			return matches[i].Path < matches[j].Path
		}
		return matches[i].Span.Start < matches[j].Span.Start
	})
}
