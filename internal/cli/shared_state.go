package cli

import (
	"sync/atomic"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/service"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Prefs is the last preferences record loaded or saved. Nil until the
	// first load finishes.
	Prefs *domain.Preferences

	// Terminal dimensions
	Width  int
	Height int

	// changed is set from the change notifier, possibly off the UI
	// goroutine, and consumed by the appModel.
	changed     atomic.Bool
	unsubscribe func()
}

func newSharedState(app *App) *SharedState {
	s := &SharedState{App: app}
	if app.Notifier != nil {
		s.unsubscribe = app.Notifier.Subscribe(func(service.ChangeEvent) {
			s.changed.Store(true)
		})
	}
	return s
}

// takeChanged reports whether a mutation was committed since the last
// call, and clears the flag.
func (s *SharedState) takeChanged() bool {
	return s.changed.Swap(false)
}

// Close detaches from the change notifier.
func (s *SharedState) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: tabs + separator) and status bar
// (3 lines: separator, status, hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
