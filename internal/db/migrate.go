package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the
// full list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Preferences are intentionally not seeded here; the preferences service
// creates the default row lazily on first read.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS meditation_sessions (
		id           TEXT PRIMARY KEY,
		started_at   TEXT NOT NULL,
		duration_sec INTEGER NOT NULL CHECK(duration_sec >= 0),
		type         TEXT NOT NULL DEFAULT 'timed'
		             CHECK(type IN ('timed','guided')),
		note         TEXT,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_started ON meditation_sessions(started_at)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		id                     TEXT PRIMARY KEY CHECK(id = 'default'),
		preferred_duration_sec INTEGER NOT NULL DEFAULT 300
		                       CHECK(preferred_duration_sec BETWEEN 60 AND 3600),
		dark_mode              INTEGER NOT NULL DEFAULT 0,
		updated_at             TEXT NOT NULL
	)`,
}
