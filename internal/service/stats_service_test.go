package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/mindful/internal/db"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/repository"
	"github.com/alexanderramin/mindful/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSessionRepo struct {
	repository.SessionRepo
	err error
}

func (r failingSessionRepo) ListAll(context.Context) ([]*domain.MeditationSession, error) {
	return nil, r.err
}

func seedSessions(t *testing.T, repo repository.SessionRepo, sessions ...*domain.MeditationSession) {
	t.Helper()
	for _, s := range sessions {
		require.NoError(t, repo.Create(context.Background(), s))
	}
}

func TestDashboard_Summary(t *testing.T) {
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))
	now := time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)
	seedSessions(t, repo,
		testutil.NewTestSession(600, testutil.WithStartedAt(now.Add(-2*time.Hour))),
		testutil.NewTestSession(330, testutil.WithStartedAt(now.Add(-26*time.Hour))),
		testutil.NewTestSession(90, testutil.WithStartedAt(now.Add(-50*time.Hour))),
		testutil.NewTestSession(300, testutil.WithStartedAt(now.Add(-10*24*time.Hour))),
	)

	summary, err := NewStatsService(repo).Dashboard(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 4, summary.Sessions)
	assert.Equal(t, 22, summary.Minutes) // 1320s
	assert.Equal(t, 3, summary.Streak)
	require.Len(t, summary.Recent, 3)
	assert.Equal(t, 600, summary.Recent[0].DurationSec)
}

func TestDashboard_Empty(t *testing.T) {
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))

	summary, err := NewStatsService(repo).Dashboard(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Zero(t, summary.Sessions)
	assert.Zero(t, summary.Minutes)
	assert.Zero(t, summary.Streak)
	assert.Empty(t, summary.Recent)
}

func TestDashboard_ReadFailureReturnsEmptySummary(t *testing.T) {
	readErr := db.ReadError("querying meditation sessions", errors.New("disk I/O error"))
	obs := &recordingObserver{}
	svc := NewStatsService(failingSessionRepo{err: readErr}, obs)

	summary, err := svc.Dashboard(context.Background(), time.Now())
	require.Error(t, err)
	assert.True(t, db.IsStorageOp(err, db.OpRead))
	assert.Zero(t, summary.Sessions)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestProgress_FrameSummary(t *testing.T) {
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))
	now := time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC) // Thursday
	seedSessions(t, repo,
		testutil.NewTestSession(600, testutil.WithStartedAt(time.Date(2025, 3, 17, 7, 0, 0, 0, time.UTC))),
		testutil.NewTestSession(300, testutil.WithStartedAt(time.Date(2025, 3, 17, 21, 0, 0, 0, time.UTC))),
		testutil.NewTestSession(900, testutil.WithStartedAt(time.Date(2025, 3, 19, 7, 0, 0, 0, time.UTC))),
		testutil.NewTestSession(1200, testutil.WithStartedAt(time.Date(2025, 3, 3, 7, 0, 0, 0, time.UTC))),
	)
	svc := NewStatsService(repo)

	week, err := svc.Progress(context.Background(), domain.FrameWeek, now)
	require.NoError(t, err)
	assert.Equal(t, domain.FrameWeek, week.Frame)
	assert.Equal(t, 3, week.Sessions)
	assert.Equal(t, 30, week.Minutes)
	assert.Equal(t, 10, week.AverageMin)
	require.Len(t, week.Daily, 2)
	assert.Equal(t, 15, week.Daily[0].Minutes)
	assert.Equal(t, 2, week.Weekdays[time.Monday])
	assert.Equal(t, 1, week.Weekdays[time.Wednesday])

	month, err := svc.Progress(context.Background(), domain.FrameMonth, now)
	require.NoError(t, err)
	assert.Equal(t, 4, month.Sessions)
	assert.Equal(t, 50, month.Minutes)
}

func TestProgress_UnknownFrame(t *testing.T) {
	repo := repository.NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := NewStatsService(repo).Progress(context.Background(), domain.TimeFrame("decade"), time.Now())
	assert.Error(t, err)
}
