package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/stats"
)

type SessionService interface {
	Record(ctx context.Context, s *domain.MeditationSession) error
	List(ctx context.Context) ([]*domain.MeditationSession, error)
	ListInFrame(ctx context.Context, frame domain.TimeFrame, now time.Time) ([]*domain.MeditationSession, error)
	// ResetAll deletes every session and reports how many were removed.
	// Preferences are untouched.
	ResetAll(ctx context.Context) (int, error)
}

type PreferencesService interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	SetPreferredDuration(ctx context.Context, minutes int) (*domain.Preferences, error)
	SetDarkMode(ctx context.Context, on bool) (*domain.Preferences, error)
}

type StatsService interface {
	Dashboard(ctx context.Context, now time.Time) (stats.Summary, error)
	Progress(ctx context.Context, frame domain.TimeFrame, now time.Time) (stats.FrameSummary, error)
}
