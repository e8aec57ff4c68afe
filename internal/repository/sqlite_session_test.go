package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/mindful/internal/db"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_CreateAndListAll(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	started := time.Date(2025, 3, 14, 7, 30, 0, 0, time.UTC)
	sess := testutil.NewTestSession(600,
		testutil.WithStartedAt(started),
		testutil.WithNote("Good session"),
		testutil.WithType(domain.SessionGuided),
	)
	require.NoError(t, repo.Create(ctx, sess))

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, sess.ID, got.ID)
	assert.True(t, started.Equal(got.StartedAt))
	assert.Equal(t, 600, got.DurationSec)
	assert.Equal(t, domain.SessionGuided, got.Type)
	assert.Equal(t, "Good session", got.Note)
	assert.WithinDuration(t, sess.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestSessionRepo_EmptyNoteRoundTripsAsNull(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	ctx := context.Background()

	sess := testutil.NewTestSession(300)
	require.NoError(t, repo.Create(ctx, sess))

	var isNull bool
	require.NoError(t, database.QueryRow(`SELECT note IS NULL FROM meditation_sessions WHERE id = ?`, sess.ID).Scan(&isNull))
	assert.True(t, isNull)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.False(t, list[0].HasNote())
}

func TestSessionRepo_ListAllNewestFirst(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	base := time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC)
	older := testutil.NewTestSession(300, testutil.WithStartedAt(base.Add(-48*time.Hour)))
	newest := testutil.NewTestSession(300, testutil.WithStartedAt(base))
	middle := testutil.NewTestSession(300, testutil.WithStartedAt(base.Add(-90*time.Minute)))
	for _, s := range []*domain.MeditationSession{older, newest, middle} {
		require.NoError(t, repo.Create(ctx, s))
	}

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, newest.ID, list[0].ID)
	assert.Equal(t, middle.ID, list[1].ID)
	assert.Equal(t, older.ID, list[2].ID)
}

func TestSessionRepo_ListAllEmpty(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	list, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSessionRepo_DeleteAll(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestSession(60*(i+1))))
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	list, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionRepo_DuplicateIDIsWriteError(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	sess := testutil.NewTestSession(300)
	require.NoError(t, repo.Create(ctx, sess))

	err := repo.Create(ctx, sess)
	require.Error(t, err)
	assert.True(t, db.IsStorageOp(err, db.OpWrite))
}

func TestSessionRepo_ClosedDBIsReadError(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteSessionRepo(database)
	require.NoError(t, database.Close())

	_, err := repo.ListAll(context.Background())
	require.Error(t, err)
	assert.True(t, db.IsStorageOp(err, db.OpRead))
}
