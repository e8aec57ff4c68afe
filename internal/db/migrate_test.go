package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"meditation_sessions", "preferences"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	var idx string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_sessions_started'`).Scan(&idx)
	require.NoError(t, err)
}

func TestMigrate_DoesNotSeedPreferences(t *testing.T) {
	db := openTestDB(t)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&n))
	assert.Zero(t, n)
}

func TestMigrate_RejectsNegativeDuration(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO meditation_sessions (id, started_at, duration_sec, type, created_at)
		VALUES ('s1', '2025-01-01T00:00:00Z', -5, 'timed', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_RejectsUnknownSessionType(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO meditation_sessions (id, started_at, duration_sec, type, created_at)
		VALUES ('s1', '2025-01-01T00:00:00Z', 60, 'walking', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "mindful.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	assert.FileExists(t, path)
}

func TestOpenDB_FailureIsInitStorageError(t *testing.T) {
	// A regular file where the parent directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, writeFile(blocker))

	_, err := OpenDB(filepath.Join(blocker, "mindful.db"))
	require.Error(t, err)
	assert.True(t, IsStorageOp(err, OpInit))
}
