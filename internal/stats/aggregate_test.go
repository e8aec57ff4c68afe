package stats

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refNow = time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return refNow.AddDate(0, 0, -n)
}

func TestTotalSessions(t *testing.T) {
	assert.Equal(t, 0, TotalSessions(nil))
	assert.Equal(t, 0, TotalSessions([]*domain.MeditationSession{}))
	assert.Equal(t, 1, TotalSessions(testutil.SessionsWithDurations(300)))
	assert.Equal(t, 3, TotalSessions(testutil.SessionsWithDurations(300, 600, 1800)))
}

func TestTotalMinutes(t *testing.T) {
	assert.Equal(t, 0, TotalMinutes(nil))
	assert.Equal(t, 5, TotalMinutes(testutil.SessionsWithDurations(300)))
	assert.Equal(t, 45, TotalMinutes(testutil.SessionsWithDurations(300, 600, 1800)))
}

func TestTotalMinutes_FloorsOnceAfterSumming(t *testing.T) {
	// 659s -> 10 min; flooring each session first would also give 10.
	assert.Equal(t, 10, TotalMinutes(testutil.SessionsWithDurations(300, 359)))
	// 660s -> 11 min.
	assert.Equal(t, 11, TotalMinutes(testutil.SessionsWithDurations(300, 360)))
	// 30s + 30s is a full minute even though each alone floors to zero.
	assert.Equal(t, 1, TotalMinutes(testutil.SessionsWithDurations(30, 30)))
	// Zero-length sessions change nothing.
	assert.Equal(t, 10, TotalMinutes(testutil.SessionsWithDurations(300, 359, 0)))
}

func TestAverageMinutes(t *testing.T) {
	assert.Equal(t, 0, AverageMinutes(nil))
	assert.Equal(t, 5, AverageMinutes(testutil.SessionsWithDurations(300)))
	assert.Equal(t, 10, AverageMinutes(testutil.SessionsWithDurations(300, 600, 900)))
	// 1020s total -> 17 min / 2 sessions -> 8.
	assert.Equal(t, 8, AverageMinutes(testutil.SessionsWithDurations(420, 600)))
}

func TestStreakCount_EmptyAndSingle(t *testing.T) {
	assert.Equal(t, 0, StreakCount(nil, time.UTC))
	assert.Equal(t, 1, StreakCount(testutil.SessionsAt(refNow), time.UTC))
}

func TestStreakCount_ConsecutiveDays(t *testing.T) {
	sessions := testutil.SessionsAt(refNow, daysAgo(1), daysAgo(2))
	assert.Equal(t, 3, StreakCount(sessions, time.UTC))
}

func TestStreakCount_GapBreaksChain(t *testing.T) {
	sessions := testutil.SessionsAt(refNow, daysAgo(1), daysAgo(2), daysAgo(4))
	assert.Equal(t, 3, StreakCount(sessions, time.UTC))
}

func TestStreakCount_SameDaySessionsCountOnce(t *testing.T) {
	sameDay := testutil.SessionsAt(refNow, refNow.Add(-2*time.Hour))
	assert.Equal(t, 1, StreakCount(sameDay, time.UTC))

	mixed := testutil.SessionsAt(refNow, daysAgo(1), daysAgo(2), daysAgo(4), refNow.Add(-2*time.Hour))
	assert.Equal(t, 3, StreakCount(mixed, time.UTC))
}

func TestStreakCount_CrossesYearBoundary(t *testing.T) {
	jan1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	dec31 := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, StreakCount(testutil.SessionsAt(jan1, dec31), time.UTC))
}

func TestStreakCount_CrossesLeapDay(t *testing.T) {
	mar1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	feb29 := time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)
	feb28 := time.Date(2024, 2, 28, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, StreakCount(testutil.SessionsAt(mar1, feb29, feb28), time.UTC))
}

func TestStreakCount_InputOrderIrrelevant(t *testing.T) {
	sessions := testutil.SessionsAt(daysAgo(2), refNow, daysAgo(1))
	assert.Equal(t, 3, StreakCount(sessions, time.UTC))
	assert.True(t, sessions[0].StartedAt.Equal(daysAgo(2)), "input must not be reordered")
}

func TestStreakCount_EndsAtMostRecentSessionNotToday(t *testing.T) {
	sessions := testutil.SessionsAt(daysAgo(10), daysAgo(11))
	assert.Equal(t, 2, StreakCount(sessions, time.UTC))
}

func TestStreakCount_UsesCalendarOfLocation(t *testing.T) {
	late := time.Date(2025, 3, 20, 1, 0, 0, 0, time.UTC)
	early := time.Date(2025, 3, 19, 23, 0, 0, 0, time.UTC)
	sessions := testutil.SessionsAt(late, early)

	assert.Equal(t, 2, StreakCount(sessions, time.UTC))
	// Five hours west of UTC both fall on March 19.
	assert.Equal(t, 1, StreakCount(sessions, time.FixedZone("UTC-5", -5*3600)))
}

func TestStreakCount_AcrossDSTChange(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	sessions := testutil.SessionsAt(
		time.Date(2025, 3, 10, 0, 30, 0, 0, ny),
		time.Date(2025, 3, 9, 23, 30, 0, 0, ny),
		time.Date(2025, 3, 8, 23, 30, 0, 0, ny),
	)
	assert.Equal(t, 3, StreakCount(sessions, ny))
}

func TestRecent(t *testing.T) {
	sessions := testutil.SessionsAt(daysAgo(3), refNow, daysAgo(1), daysAgo(2))

	recent := Recent(sessions, 3)
	require.Len(t, recent, 3)
	assert.True(t, recent[0].StartedAt.Equal(refNow))
	assert.True(t, recent[1].StartedAt.Equal(daysAgo(1)))
	assert.True(t, recent[2].StartedAt.Equal(daysAgo(2)))

	assert.Len(t, Recent(sessions, 10), 4)
	assert.Empty(t, Recent(sessions, 0))
	assert.Empty(t, Recent(nil, 3))
}

func TestDay_AddDaysNormalizes(t *testing.T) {
	assert.Equal(t, Day{2024, time.December, 31}, Day{2025, time.January, 1}.AddDays(-1))
	assert.Equal(t, Day{2024, time.February, 29}, Day{2024, time.March, 1}.AddDays(-1))
	assert.Equal(t, Day{2023, time.February, 28}, Day{2023, time.March, 1}.AddDays(-1))
	assert.True(t, Day{2024, time.December, 31}.Before(Day{2025, time.January, 1}))
}
