package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/mindful/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openForTest(t, db.MemoryPath)
}

// NewTestDBFile opens a store in a fresh temp directory and returns its
// path, for tests that reopen it the way a second launch would.
func NewTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mindful.db")
	return openForTest(t, path), path
}

// ReopenTestDB opens path again. Close the previous handle first.
func ReopenTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	return openForTest(t, path)
}

func openForTest(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
