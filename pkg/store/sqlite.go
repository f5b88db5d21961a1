package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/numspan/numspan/pkg/types"
)

// SQLiteStore implements Store on a SQLite database. The driver is pure
// Go, so the CLI builds with CGO disabled.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed store at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddFile records a scanned file.
func (s *SQLiteStore) AddFile(path string, size int64) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO files (path, size) VALUES (?, ?)", path, size)
	if err != nil {
		return fmt.Errorf("inserting file: %w", err)
	}
	return nil
}

// AddMatch records a literal and its style spans.
func (s *SQLiteStore) AddMatch(rec MatchRecord) error {
	spansJSON, err := json.Marshal(rec.Spans)
	if err != nil {
		return fmt.Errorf("marshaling spans: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT OR IGNORE INTO matches (path, kind, offset_start, offset_end, literal, spans_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.Path,
		rec.Kind.String(),
		rec.Span.Start,
		rec.Span.End,
		rec.Literal,
		string(spansJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting match: %w", err)
	}
	return nil
}

// Files returns all scanned files in path order.
func (s *SQLiteStore) Files() ([]FileRecord, error) {
	rows, err := s.db.Query("SELECT path, size FROM files ORDER BY path")
	if err != nil {
		return nil, fmt.Errorf("querying files: %w", err)
	}
	defer rows.Close()

	var files []FileRecord
	for rows.Next() {
		var f FileRecord
		if err := rows.Scan(&f.Path, &f.Size); err != nil {
			return nil, fmt.Errorf("scanning file row: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// Matches returns the matches for one file in document order.
func (s *SQLiteStore) Matches(path string) ([]MatchRecord, error) {
	return s.queryMatches(`
		SELECT path, kind, offset_start, offset_end, literal, spans_json
		FROM matches WHERE path = ? ORDER BY offset_start
	`, path)
}

// AllMatches returns every match, ordered by path then offset.
func (s *SQLiteStore) AllMatches() ([]MatchRecord, error) {
	return s.queryMatches(`
		SELECT path, kind, offset_start, offset_end, literal, spans_json
		FROM matches ORDER BY path, offset_start
	`)
}

func (s *SQLiteStore) queryMatches(query string, args ...any) ([]MatchRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchRecord
	for rows.Next() {
		var (
			rec       MatchRecord
			kindName  string
			spansJSON string
		)
		if err := rows.Scan(&rec.Path, &kindName, &rec.Span.Start, &rec.Span.End, &rec.Literal, &spansJSON); err != nil {
			return nil, fmt.Errorf("scanning match row: %w", err)
		}
		kind, err := types.ParseKind(kindName)
		if err != nil {
			return nil, err
		}
		rec.Kind = kind
		if err := json.Unmarshal([]byte(spansJSON), &rec.Spans); err != nil {
			return nil, fmt.Errorf("unmarshaling spans: %w", err)
		}
		matches = append(matches, rec)
	}
	return matches, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
