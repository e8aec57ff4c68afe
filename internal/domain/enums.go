package domain

import "fmt"

type SessionType string

const (
	SessionTimed  SessionType = "timed"
	SessionGuided SessionType = "guided"
)

// ValidSessionTypes is the canonical set of accepted session type strings.
var ValidSessionTypes = map[string]bool{
	string(SessionTimed):  true,
	string(SessionGuided): true,
}

// ParseSessionType converts user input into a SessionType.
func ParseSessionType(s string) (SessionType, error) {
	if !ValidSessionTypes[s] {
		return "", fmt.Errorf("unknown session type %q (want timed or guided)", s)
	}
	return SessionType(s), nil
}

// TimeFrame is a calendar-aligned window applied to session start times.
type TimeFrame string

const (
	FrameWeek  TimeFrame = "week"
	FrameMonth TimeFrame = "month"
	FrameYear  TimeFrame = "year"
	FrameAll   TimeFrame = "all"
)

// TimeFrames lists every frame in picker order.
var TimeFrames = []TimeFrame{FrameWeek, FrameMonth, FrameYear, FrameAll}

// ParseTimeFrame converts user input into a TimeFrame.
func ParseTimeFrame(s string) (TimeFrame, error) {
	for _, f := range TimeFrames {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown time frame %q (want week, month, year or all)", s)
}

// Label returns the display name used by pickers and headers.
func (f TimeFrame) Label() string {
	switch f {
	case FrameWeek:
		return "Week"
	case FrameMonth:
		return "Month"
	case FrameYear:
		return "Year"
	case FrameAll:
		return "All Time"
	default:
		return string(f)
	}
}
