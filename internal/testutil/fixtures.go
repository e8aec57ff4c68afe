package testutil

import (
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/google/uuid"
)

// Session options
type SessionOption func(*domain.MeditationSession)

func WithStartedAt(t time.Time) SessionOption {
	return func(s *domain.MeditationSession) {
		s.StartedAt = t
	}
}

func WithNote(n string) SessionOption {
	return func(s *domain.MeditationSession) {
		s.Note = n
	}
}

func WithType(st domain.SessionType) SessionOption {
	return func(s *domain.MeditationSession) {
		s.Type = st
	}
}

// NewTestSession builds a timed session of durationSec seconds that
// started now, unless options say otherwise.
func NewTestSession(durationSec int, opts ...SessionOption) *domain.MeditationSession {
	now := time.Now().UTC()
	s := &domain.MeditationSession{
		ID:          uuid.New().String(),
		StartedAt:   now,
		DurationSec: durationSec,
		Type:        domain.SessionTimed,
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionsAt builds one five-minute session per start time.
func SessionsAt(times ...time.Time) []*domain.MeditationSession {
	out := make([]*domain.MeditationSession, 0, len(times))
	for _, t := range times {
		out = append(out, NewTestSession(300, WithStartedAt(t)))
	}
	return out
}

// SessionsWithDurations builds sessions with the given durations, all started now.
func SessionsWithDurations(durations ...int) []*domain.MeditationSession {
	out := make([]*domain.MeditationSession, 0, len(durations))
	for _, d := range durations {
		out = append(out, NewTestSession(d))
	}
	return out
}
