package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/mindful/internal/db"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/repository"
	"github.com/alexanderramin/mindful/internal/stats"
	"github.com/google/uuid"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	notifier *ChangeNotifier
	observer UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	uow db.UnitOfWork,
	notifier *ChangeNotifier,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		notifier: notifier,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *sessionService) Record(ctx context.Context, session *domain.MeditationSession) (err error) {
	defer observe(ctx, s.observer, "record-session", time.Now().UTC(), map[string]any{
		"duration_sec": session.DurationSec,
		"type":         string(session.Type),
	}, &err)

	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	session.CreatedAt = time.Now().UTC()
	if err = session.Validate(); err != nil {
		return err
	}
	if err = s.sessions.Create(ctx, session); err != nil {
		return err
	}
	s.notifier.Publish(ChangeEvent{Kind: SessionsChanged})
	return nil
}

func (s *sessionService) List(ctx context.Context) (sessions []*domain.MeditationSession, err error) {
	defer observe(ctx, s.observer, "list-sessions", time.Now().UTC(), nil, &err)
	return s.sessions.ListAll(ctx)
}

func (s *sessionService) ListInFrame(ctx context.Context, frame domain.TimeFrame, now time.Time) (sessions []*domain.MeditationSession, err error) {
	fields := map[string]any{"frame": string(frame)}
	defer observe(ctx, s.observer, "list-sessions-in-frame", time.Now().UTC(), fields, &err)

	all, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sessions = stats.FilterByTimeFrame(all, frame, now)
	fields["count"] = len(sessions)
	return sessions, nil
}

func (s *sessionService) ResetAll(ctx context.Context) (deleted int, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "reset-all", time.Now().UTC(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err := repository.NewSQLiteSessionRepo(tx).DeleteAll(ctx)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("resetting all data: %w", err)
	}
	fields["deleted"] = deleted
	s.notifier.Publish(ChangeEvent{Kind: SessionsChanged})
	return deleted, nil
}
