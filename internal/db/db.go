package db

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// OpenDB opens the SQLite session store at the given path.
// If path is ":memory:", uses an in-memory database.
// The pool is capped at one connection: the app has a single writer and
// each in-memory connection would otherwise see its own empty database.
// Runs migrations automatically. Every failure is an init StorageError.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, InitError("creating db directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, InitError("opening database", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, InitError("setting WAL mode", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, InitError("setting busy timeout", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, InitError("running migrations", err)
	}

	return db, nil
}

