package repository

import (
	"context"

	"github.com/alexanderramin/mindful/internal/domain"
)

// SessionRepo is the session half of the store boundary: insert, fetch all,
// and the bulk delete behind reset-all. There is no per-session update.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.MeditationSession) error
	ListAll(ctx context.Context) ([]*domain.MeditationSession, error)
	DeleteAll(ctx context.Context) (int, error)
}

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.Preferences, error)
	Upsert(ctx context.Context, p *domain.Preferences) error
}
