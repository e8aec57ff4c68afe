package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/repository"
)

type preferencesService struct {
	prefs    repository.PreferencesRepo
	notifier *ChangeNotifier
	observer UseCaseObserver
}

func NewPreferencesService(
	prefs repository.PreferencesRepo,
	notifier *ChangeNotifier,
	observers ...UseCaseObserver,
) PreferencesService {
	return &preferencesService{
		prefs:    prefs,
		notifier: notifier,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Get returns the singleton, creating and persisting the default record
// the first time it is asked for.
func (s *preferencesService) Get(ctx context.Context) (p *domain.Preferences, err error) {
	defer observe(ctx, s.observer, "get-preferences", time.Now().UTC(), nil, &err)
	return s.load(ctx)
}

func (s *preferencesService) load(ctx context.Context) (*domain.Preferences, error) {
	p, err := s.prefs.Get(ctx)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	p = domain.DefaultPreferences()
	if err := s.prefs.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("creating default preferences: %w", err)
	}
	return p, nil
}

func (s *preferencesService) SetPreferredDuration(ctx context.Context, minutes int) (p *domain.Preferences, err error) {
	defer observe(ctx, s.observer, "set-preferred-duration", time.Now().UTC(), map[string]any{
		"minutes": minutes,
	}, &err)

	if err = domain.ValidatePreferredMinutes(minutes); err != nil {
		return nil, err
	}
	return s.update(ctx, func(p *domain.Preferences) error {
		return p.SetPreferredMinutes(minutes)
	})
}

func (s *preferencesService) SetDarkMode(ctx context.Context, on bool) (p *domain.Preferences, err error) {
	defer observe(ctx, s.observer, "set-dark-mode", time.Now().UTC(), map[string]any{
		"dark_mode": on,
	}, &err)

	return s.update(ctx, func(p *domain.Preferences) error {
		p.DarkMode = on
		return nil
	})
}

// update applies fn to a copy of the stored record and persists it. The
// caller keeps its previous value when the write fails.
func (s *preferencesService) update(ctx context.Context, fn func(*domain.Preferences) error) (*domain.Preferences, error) {
	current, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	next := *current
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.UpdatedAt = time.Now().UTC()
	if err := s.prefs.Upsert(ctx, &next); err != nil {
		return nil, fmt.Errorf("saving preferences: %w", err)
	}
	s.notifier.Publish(ChangeEvent{Kind: PreferencesChanged})
	return &next, nil
}
