package stats

import (
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
)

// FilterByTimeFrame keeps the sessions whose start time falls in the same
// calendar week, month or year as now. Windows are calendar-aligned in
// now's location, not rolling. Weeks follow ISO-8601 (Monday first).
// FrameAll keeps everything; an unknown frame keeps nothing.
func FilterByTimeFrame(sessions []*domain.MeditationSession, frame domain.TimeFrame, now time.Time) []*domain.MeditationSession {
	loc := now.Location()
	out := make([]*domain.MeditationSession, 0, len(sessions))
	for _, s := range sessions {
		if InTimeFrame(s.StartedAt, frame, now, loc) {
			out = append(out, s)
		}
	}
	return out
}

// InTimeFrame reports whether t falls inside frame relative to now.
func InTimeFrame(t time.Time, frame domain.TimeFrame, now time.Time, loc *time.Location) bool {
	t = t.In(loc)
	now = now.In(loc)

	switch frame {
	case domain.FrameWeek:
		ty, tw := t.ISOWeek()
		ny, nw := now.ISOWeek()
		return ty == ny && tw == nw
	case domain.FrameMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case domain.FrameYear:
		return t.Year() == now.Year()
	case domain.FrameAll:
		return true
	default:
		return false
	}
}
