// Package stats holds the pure aggregation functions behind the dashboard
// and progress screens. Nothing here touches storage or the clock; callers
// pass the reference time and calendar location explicitly.
package stats

import (
	"slices"
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
)

// TotalSessions returns the number of sessions.
func TotalSessions(sessions []*domain.MeditationSession) int {
	return len(sessions)
}

// TotalMinutes sums durations in seconds and floors the total to minutes
// once, so {300, 359} yields 10 and {300, 360} yields 11.
func TotalMinutes(sessions []*domain.MeditationSession) int {
	return totalSeconds(sessions) / 60
}

// AverageMinutes is TotalMinutes divided by the session count, floored.
func AverageMinutes(sessions []*domain.MeditationSession) int {
	if len(sessions) == 0 {
		return 0
	}
	return TotalMinutes(sessions) / len(sessions)
}

// StreakCount counts consecutive calendar days with at least one session,
// ending at the most recent session. Several sessions on one day count
// once; the first gap of more than a day ends the walk.
func StreakCount(sessions []*domain.MeditationSession, loc *time.Location) int {
	if len(sessions) == 0 {
		return 0
	}
	loc = locationOrLocal(loc)

	sorted := NewestFirst(sessions)
	streak := 1
	for i := 1; i < len(sorted); i++ {
		later := DayOf(sorted[i-1].StartedAt, loc)
		earlier := DayOf(sorted[i].StartedAt, loc)
		switch {
		case earlier == later:
			continue
		case earlier == later.AddDays(-1):
			streak++
		default:
			return streak
		}
	}
	return streak
}

// NewestFirst returns a copy of sessions sorted by start time, newest first.
// The input slice is not reordered.
func NewestFirst(sessions []*domain.MeditationSession) []*domain.MeditationSession {
	sorted := slices.Clone(sessions)
	slices.SortStableFunc(sorted, func(a, b *domain.MeditationSession) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
	return sorted
}

// Recent returns at most n sessions, newest first.
func Recent(sessions []*domain.MeditationSession, n int) []*domain.MeditationSession {
	sorted := NewestFirst(sessions)
	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func totalSeconds(sessions []*domain.MeditationSession) int {
	var total int
	for _, s := range sessions {
		total += s.DurationSec
	}
	return total
}
