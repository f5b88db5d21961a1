// Package store persists scan results so the report command can render
// them later without rescanning.
package store

import (
	"fmt"

	"github.com/numspan/numspan/pkg/types"
)

// FileRecord is one scanned file.
type FileRecord struct {
	Path string
	Size int64
}

// MatchRecord is one recognized literal with its computed style spans.
// Offsets are relative to the file content.
type MatchRecord struct {
	Path    string
	Kind    types.Kind
	Span    types.Span
	Literal string
	Spans   []types.Group
}

// Store provides persistence for scan results. The interface abstracts
// the backend so tests can run against the in-memory implementation.
type Store interface {
	// AddFile records a scanned file.
	AddFile(path string, size int64) error

	// AddMatch records a literal and its style spans.
	AddMatch(rec MatchRecord) error

	// Files returns all scanned files in path order.
	Files() ([]FileRecord, error)

	// Matches returns the matches for one file in document order.
	Matches(path string) ([]MatchRecord, error)

	// AllMatches returns every match, ordered by path then offset.
	AllMatches() ([]MatchRecord, error)

	// Close closes the backend.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path. Use ":memory:" for an in-memory
	// store (useful for testing and one-shot scans).
	Path string
}

// New creates a Store. ":memory:" selects the in-memory backend,
// anything else a SQLite database at that path.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}
	return NewSQLite(cfg.Path)
}
