package service

import (
	"context"
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/repository"
	"github.com/alexanderramin/mindful/internal/stats"
)

type statsService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

// NewStatsService aggregates over the full session history. Calendar days
// are taken in the location of the now passed to each call.
func NewStatsService(sessions repository.SessionRepo, observers ...UseCaseObserver) StatsService {
	return &statsService{sessions: sessions, observer: useCaseObserverOrNoop(observers)}
}

func (s *statsService) Dashboard(ctx context.Context, now time.Time) (summary stats.Summary, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "dashboard", time.Now().UTC(), fields, &err)

	all, err := s.sessions.ListAll(ctx)
	if err != nil {
		return stats.Summary{}, err
	}
	summary = stats.Summarize(all, now.Location())
	fields["sessions"] = summary.Sessions
	fields["streak"] = summary.Streak
	return summary, nil
}

func (s *statsService) Progress(ctx context.Context, frame domain.TimeFrame, now time.Time) (summary stats.FrameSummary, err error) {
	fields := map[string]any{"frame": string(frame)}
	defer observe(ctx, s.observer, "progress", time.Now().UTC(), fields, &err)

	if _, err = domain.ParseTimeFrame(string(frame)); err != nil {
		return stats.FrameSummary{Frame: frame}, err
	}
	all, err := s.sessions.ListAll(ctx)
	if err != nil {
		return stats.FrameSummary{Frame: frame}, err
	}
	summary = stats.SummarizeFrame(all, frame, now)
	fields["sessions"] = summary.Sessions
	return summary, nil
}
