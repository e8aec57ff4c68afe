// Package timer implements the meditation countdown as a synchronous state
// machine. It does not schedule itself: the caller delivers one Tick per
// second (tea.Tick in the TUI, a time.Ticker in the headless command) and
// uses Generation to discard ticks that belong to an earlier run.
//
// A Timer is not safe for concurrent use; it expects a single event loop.
package timer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
)

var (
	ErrInvalidTransition = errors.New("invalid timer transition")
	ErrInvalidDuration   = errors.New("invalid timer duration")
)

// PresetDurations are the picker choices: 1, 5, 10, 15 and 30 minutes.
var PresetDurations = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
}

type State int

const (
	Idle State = iota
	Running
	Paused
	// Completed is transient: the timer passes through it while the
	// finished session is recorded, then returns to Idle.
	Completed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Recorder persists a finished session.
type Recorder interface {
	Record(ctx context.Context, s *domain.MeditationSession) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, s *domain.MeditationSession) error

func (f RecorderFunc) Record(ctx context.Context, s *domain.MeditationSession) error {
	return f(ctx, s)
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces time.Now as the source of session start times.
func WithClock(now func() time.Time) Option {
	return func(t *Timer) {
		t.now = now
	}
}

// WithTransitionHook is called after every state change, including the
// transient pass through Completed.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(t *Timer) {
		t.onTransition = fn
	}
}

type Timer struct {
	duration  time.Duration
	pending   time.Duration
	remaining time.Duration
	state     State
	startedAt time.Time
	gen       uint64

	recorder     Recorder
	now          func() time.Time
	onTransition func(from, to State)
}

// New returns an idle timer configured for duration.
func New(duration time.Duration, recorder Recorder, opts ...Option) (*Timer, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if recorder == nil {
		return nil, errors.New("timer recorder is required")
	}
	t := &Timer{
		duration:  duration,
		remaining: duration,
		state:     Idle,
		recorder:  recorder,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Start begins or resumes the countdown. Starting from Idle stamps the
// wall-clock start time that the recorded session will carry; resuming
// from Paused keeps it.
func (t *Timer) Start() error {
	switch t.state {
	case Idle:
		t.startedAt = t.now()
		t.remaining = t.duration
	case Paused:
	default:
		return fmt.Errorf("%w: start while %s", ErrInvalidTransition, t.state)
	}
	t.gen++
	t.setState(Running)
	return nil
}

// Pause freezes the remaining time.
func (t *Timer) Pause() error {
	if t.state != Running {
		return fmt.Errorf("%w: pause while %s", ErrInvalidTransition, t.state)
	}
	t.gen++
	t.setState(Paused)
	return nil
}

// Reset abandons the current run without recording anything. Resetting
// an idle timer does nothing.
func (t *Timer) Reset() {
	if t.state == Idle {
		return
	}
	t.returnToIdle()
}

// SetDuration changes the configured duration. While idle the remaining
// time follows immediately; during a run the new value waits until the
// timer is idle again so the countdown in progress is unaffected.
func (t *Timer) SetDuration(d time.Duration) error {
	if err := validateDuration(d); err != nil {
		return err
	}
	if t.state == Idle {
		t.duration = d
		t.remaining = d
		t.pending = 0
		return nil
	}
	t.pending = d
	return nil
}

// Tick advances a running countdown by one second. On the tick that
// reaches zero the finished session is recorded and returned, and the
// timer is idle again even when recording fails. Ticks in any other state
// are ignored.
func (t *Timer) Tick(ctx context.Context) (*domain.MeditationSession, error) {
	if t.state != Running {
		return nil, nil
	}
	t.remaining -= time.Second
	if t.remaining > 0 {
		return nil, nil
	}
	t.remaining = 0
	return t.complete(ctx)
}

func (t *Timer) complete(ctx context.Context) (*domain.MeditationSession, error) {
	t.setState(Completed)

	session := &domain.MeditationSession{
		StartedAt:   t.startedAt,
		DurationSec: int(t.duration / time.Second),
		Type:        domain.SessionTimed,
	}
	err := t.recorder.Record(ctx, session)
	t.returnToIdle()
	if err != nil {
		return nil, fmt.Errorf("recording completed session: %w", err)
	}
	return session, nil
}

func (t *Timer) returnToIdle() {
	if t.pending > 0 {
		t.duration = t.pending
		t.pending = 0
	}
	t.remaining = t.duration
	t.startedAt = time.Time{}
	t.gen++
	t.setState(Idle)
}

func (t *Timer) setState(s State) {
	from := t.state
	t.state = s
	if t.onTransition != nil && from != s {
		t.onTransition(from, s)
	}
}

func (t *Timer) State() State             { return t.state }
func (t *Timer) Remaining() time.Duration { return t.remaining }
func (t *Timer) Duration() time.Duration  { return t.duration }

// Generation changes on every start, pause, reset and completion. A tick
// scheduled under an older generation is stale.
func (t *Timer) Generation() uint64 { return t.gen }

// Snapshot is a read-only view for rendering.
type Snapshot struct {
	State      State
	Remaining  time.Duration
	Duration   time.Duration
	Pending    time.Duration
	StartedAt  time.Time
	Generation uint64
}

// Progress is the elapsed fraction of the run, 0..1.
func (s Snapshot) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return 1 - float64(s.Remaining)/float64(s.Duration)
}

func (t *Timer) Snapshot() Snapshot {
	return Snapshot{
		State:      t.state,
		Remaining:  t.remaining,
		Duration:   t.duration,
		Pending:    t.pending,
		StartedAt:  t.startedAt,
		Generation: t.gen,
	}
}

func validateDuration(d time.Duration) error {
	if d <= 0 || d%time.Second != 0 {
		return fmt.Errorf("%w: %v (want a positive whole number of seconds)", ErrInvalidDuration, d)
	}
	return nil
}
