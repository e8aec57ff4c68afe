package stats

import (
	"slices"
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
)

// DayBar is one bar of the "Session Duration" chart.
type DayBar struct {
	Day      Day
	Minutes  int
	Sessions int
}

// DailyMinutes groups sessions by calendar day in loc, oldest day first.
// Seconds are summed per day before flooring, like TotalMinutes.
func DailyMinutes(sessions []*domain.MeditationSession, loc *time.Location) []DayBar {
	loc = locationOrLocal(loc)

	seconds := make(map[Day]int)
	counts := make(map[Day]int)
	for _, s := range sessions {
		d := DayOf(s.StartedAt, loc)
		seconds[d] += s.DurationSec
		counts[d]++
	}

	bars := make([]DayBar, 0, len(seconds))
	for d, sec := range seconds {
		bars = append(bars, DayBar{Day: d, Minutes: sec / 60, Sessions: counts[d]})
	}
	slices.SortFunc(bars, func(a, b DayBar) int {
		switch {
		case a.Day.Before(b.Day):
			return -1
		case b.Day.Before(a.Day):
			return 1
		default:
			return 0
		}
	})
	return bars
}

// WeekdayFrequency counts sessions per weekday, indexed by time.Weekday
// (Sunday first), for the "Daily Frequency" chart.
func WeekdayFrequency(sessions []*domain.MeditationSession, loc *time.Location) [7]int {
	loc = locationOrLocal(loc)

	var freq [7]int
	for _, s := range sessions {
		freq[s.StartedAt.In(loc).Weekday()]++
	}
	return freq
}
