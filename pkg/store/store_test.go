package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numspan/numspan/pkg/types"
)

func testRecord(path string, start int) MatchRecord {
	return MatchRecord{
		Path:    path,
		Kind:    types.KindDecimal,
		Span:    types.Span{Start: start, End: start + 8},
		Literal: "28318530",
		Spans: []types.Group{
			{Span: types.Span{Start: start, End: start + 2}, Parity: types.Odd},
			{Span: types.Span{Start: start + 2, End: start + 5}, Parity: types.Even},
			{Span: types.Span{Start: start + 5, End: start + 8}, Parity: types.Odd},
		},
	}
}

// runStoreTests exercises the Store contract against any backend.
func runStoreTests(t *testing.T, s Store) {
	require.NoError(t, s.AddFile("b.txt", 100))
	require.NoError(t, s.AddFile("a.txt", 50))

	require.NoError(t, s.AddMatch(testRecord("b.txt", 10)))
	require.NoError(t, s.AddMatch(testRecord("a.txt", 30)))
	require.NoError(t, s.AddMatch(testRecord("a.txt", 0)))

	// Same path and span: deduplicated.
	require.NoError(t, s.AddMatch(testRecord("a.txt", 0)))

	files, err := s.Files()
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "a.txt", files[0].Path, "files sorted by path")
	assert.Equal(t, int64(50), files[0].Size)

	matches, err := s.Matches("a.txt")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Span.Start, "matches in document order")
	assert.Equal(t, 30, matches[1].Span.Start)
	assert.Equal(t, types.KindDecimal, matches[0].Kind)
	assert.Equal(t, "28318530", matches[0].Literal)
	require.Len(t, matches[0].Spans, 3)
	assert.Equal(t, types.Even, matches[0].Spans[1].Parity)

	all, err := s.AllMatches()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a.txt", all[0].Path)
	assert.Equal(t, "b.txt", all[2].Path)

	empty, err := s.Matches("missing.txt")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemory()
	defer s.Close()
	runStoreTests(t, s)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numspan.db")
	s, err := NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	runStoreTests(t, s)
}

// Reopening a database keeps its contents.
func TestSQLitePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numspan.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.AddFile("a.txt", 50))
	require.NoError(t, s.AddMatch(testRecord("a.txt", 0)))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	all, err := s.AllMatches()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNewSelectsBackend(t *testing.T) {
	s, err := New(Config{Path: ":memory:"})
	require.NoError(t, err)
	defer s.Close()
	_, ok := s.(*MemoryStore)
	assert.True(t, ok)

	s2, err := New(Config{Path: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	defer s2.Close()
	_, ok = s2.(*SQLiteStore)
	assert.True(t, ok)

	_, err = New(Config{})
	assert.Error(t, err)
}
