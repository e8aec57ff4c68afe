package stats

import (
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
)

// RecentLimit is how many sessions the dashboard lists.
const RecentLimit = 3

// Summary is the dashboard's headline numbers.
type Summary struct {
	Sessions int
	Minutes  int
	Streak   int
	Recent   []*domain.MeditationSession
}

// Summarize computes the dashboard summary over the full history.
func Summarize(sessions []*domain.MeditationSession, loc *time.Location) Summary {
	return Summary{
		Sessions: TotalSessions(sessions),
		Minutes:  TotalMinutes(sessions),
		Streak:   StreakCount(sessions, loc),
		Recent:   Recent(sessions, RecentLimit),
	}
}

// FrameSummary is what the progress screen shows for one time frame.
type FrameSummary struct {
	Frame      domain.TimeFrame
	Sessions   int
	Minutes    int
	AverageMin int
	Daily      []DayBar
	Weekdays   [7]int
}

// SummarizeFrame filters sessions to frame around now and aggregates them.
func SummarizeFrame(sessions []*domain.MeditationSession, frame domain.TimeFrame, now time.Time) FrameSummary {
	filtered := FilterByTimeFrame(sessions, frame, now)
	loc := now.Location()
	return FrameSummary{
		Frame:      frame,
		Sessions:   TotalSessions(filtered),
		Minutes:    TotalMinutes(filtered),
		AverageMin: AverageMinutes(filtered),
		Daily:      DailyMinutes(filtered, loc),
		Weekdays:   WeekdayFrequency(filtered, loc),
	}
}
