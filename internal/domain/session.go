package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSession is returned when a session fails validation.
var ErrInvalidSession = errors.New("invalid session")

// MeditationSession is one completed meditation run.
type MeditationSession struct {
	ID          string
	StartedAt   time.Time
	DurationSec int
	Type        SessionType
	Note        string
	CreatedAt   time.Time
}

// Validate checks the invariants a session must hold before it is stored.
func (s *MeditationSession) Validate() error {
	if s.DurationSec < 0 {
		return fmt.Errorf("%w: duration %ds is negative", ErrInvalidSession, s.DurationSec)
	}
	if !ValidSessionTypes[string(s.Type)] {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidSession, s.Type)
	}
	if s.StartedAt.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrInvalidSession)
	}
	return nil
}

// Minutes returns the whole minutes of this session, floored.
func (s *MeditationSession) Minutes() int {
	return s.DurationSec / 60
}

// HasNote reports whether the session carries a free-text note.
func (s *MeditationSession) HasNote() bool {
	return s.Note != ""
}
