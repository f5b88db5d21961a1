package store

import (
	"database/sql"
	"fmt"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// CreateSchema creates the database schema if it doesn't exist.
func CreateSchema(db *sql.DB) error {
	stmts := []struct {
		name string
		sql  string
	}{
		{"schema_version", `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER NOT NULL
			)
		`},
		{"files", `
			CREATE TABLE IF NOT EXISTS files (
				path TEXT PRIMARY KEY,
				size INTEGER NOT NULL
			)
		`},
		{"matches", `
			CREATE TABLE IF NOT EXISTS matches (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				path TEXT NOT NULL,
				kind TEXT NOT NULL,
				offset_start INTEGER NOT NULL,
				offset_end INTEGER NOT NULL,
				literal TEXT NOT NULL,
				spans_json TEXT NOT NULL,
				UNIQUE (path, offset_start, offset_end)
			)
		`},
		{"matches_path_idx", `
			CREATE INDEX IF NOT EXISTS matches_path_idx ON matches (path)
		`},
	}

	for _, s := range stmts {
		if _, err := db.Exec(s.sql); err != nil {
			return fmt.Errorf("creating %s: %w", s.name, err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if count == 0 {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion); err != nil {
			return fmt.Errorf("writing schema version: %w", err)
		}
	}
	return nil
}
