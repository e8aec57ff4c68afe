package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/timer"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// timerTickMsg is one second of countdown, stamped with the timer
// generation that scheduled it.
type timerTickMsg struct {
	gen uint64
}

// timerView drives a timer.Timer from tea.Tick. Only ticks carrying the
// current generation are applied, so pausing or resetting orphans any
// tick already in flight.
type timerView struct {
	state *SharedState
	timer *timer.Timer
	bar   progress.Model

	// saved holds the last completed session until the next key press.
	saved *domain.MeditationSession
	err   error
}

var (
	timerKeyToggle = key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause"))
	timerKeyReset  = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset"))
	timerKeyPrev   = key.NewBinding(key.WithKeys("left", "h", "-"), key.WithHelp("←/→", "duration"))
	timerKeyNext   = key.NewBinding(key.WithKeys("right", "l", "+"))
)

func newTimerView(state *SharedState) *timerView {
	t, err := timer.New(
		time.Duration(domain.DefaultPreferredDurationSec)*time.Second,
		timer.RecorderFunc(func(ctx context.Context, s *domain.MeditationSession) error {
			return state.App.Sessions.Record(ctx, s)
		}),
		timer.WithClock(state.App.Now),
	)
	if err != nil {
		// The default duration is a positive whole number of seconds.
		panic(err)
	}
	return &timerView{
		state: state,
		timer: t,
		bar:   newTimerBar(),
	}
}

func newTimerBar() progress.Model {
	return progress.New(
		progress.WithSolidFill(string(formatter.Active().Accent)),
		progress.WithoutPercentage(),
		progress.WithWidth(40),
	)
}

func (v *timerView) ID() ViewID    { return ViewTimer }
func (v *timerView) Title() string { return "Timer" }

func (v *timerView) ShortHelp() []key.Binding {
	if v.timer.State() == timer.Idle {
		return []key.Binding{timerKeyToggle, timerKeyPrev}
	}
	return []key.Binding{timerKeyToggle, timerKeyReset}
}

func (v *timerView) Init() tea.Cmd { return nil }

func (v *timerView) scheduleTick() tea.Cmd {
	gen := v.timer.Generation()
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if msg.gen != v.timer.Generation() {
			return v, nil
		}
		session, err := v.timer.Tick(context.Background())
		if err != nil {
			v.err = err
			return v, setError(fmt.Errorf("session was not saved: %w", err))
		}
		if session != nil {
			v.saved = session
			return v, setStatus("Session Saved: " + formatter.SessionLine(session))
		}
		return v, v.scheduleTick()

	case prefsMsg:
		if msg.err == nil && msg.prefs != nil {
			width := v.bar.Width
			v.bar = newTimerBar()
			v.bar.Width = width
			if err := v.applyPreferredDuration(msg.prefs.PreferredDuration()); err != nil {
				return v, setError(err)
			}
		}
		return v, nil

	case tea.WindowSizeMsg:
		v.bar.Width = max(min(msg.Width-8, 60), 10)
		return v, nil

	case tea.KeyMsg:
		v.saved = nil
		v.err = nil
		switch {
		case key.Matches(msg, timerKeyToggle):
			return v, v.toggle()
		case key.Matches(msg, timerKeyReset):
			v.timer.Reset()
			return v, nil
		case key.Matches(msg, timerKeyPrev):
			return v, v.stepPreset(-1)
		case key.Matches(msg, timerKeyNext):
			return v, v.stepPreset(1)
		}
	}
	return v, nil
}

// applyPreferredDuration follows a changed preference. During a run the
// timer holds it until the run ends.
func (v *timerView) applyPreferredDuration(d time.Duration) error {
	snap := v.timer.Snapshot()
	current := snap.Duration
	if snap.Pending > 0 {
		current = snap.Pending
	}
	if d == current {
		return nil
	}
	return v.timer.SetDuration(d)
}

func (v *timerView) toggle() tea.Cmd {
	if v.timer.State() == timer.Running {
		_ = v.timer.Pause()
		return nil
	}
	if err := v.timer.Start(); err != nil {
		return setError(err)
	}
	return v.scheduleTick()
}

// stepPreset moves to the neighbouring preset. Only allowed while idle; a
// duration that is not a preset snaps to the nearest one in that direction.
func (v *timerView) stepPreset(dir int) tea.Cmd {
	if v.timer.State() != timer.Idle {
		return nil
	}
	presets := timer.PresetDurations
	cur := v.timer.Duration()
	next := cur
	if dir > 0 {
		for _, p := range presets {
			if p > cur {
				next = p
				break
			}
		}
	} else {
		for i := len(presets) - 1; i >= 0; i-- {
			if presets[i] < cur {
				next = presets[i]
				break
			}
		}
	}
	if next == cur {
		return nil
	}
	if err := v.timer.SetDuration(next); err != nil {
		return setError(err)
	}
	return nil
}

func (v *timerView) View() string {
	snap := v.timer.Snapshot()
	width := max(v.state.Width, 40)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	clock := lipgloss.NewStyle().Bold(true).Foreground(formatter.Active().Accent).
		Render(formatter.FormatClock(snap.Remaining))

	var caption string
	switch snap.State {
	case timer.Running:
		caption = "Meditating..."
	case timer.Paused:
		caption = "Paused"
	default:
		caption = "Ready"
	}

	lines := []string{
		"",
		center.Render(clock),
		center.Render(formatter.Dim(caption)),
		"",
		center.Render(v.bar.ViewAs(snap.Progress())),
		"",
		center.Render(v.renderPresets(snap)),
	}
	if snap.Pending > 0 {
		lines = append(lines, center.Render(formatter.Dim(fmt.Sprintf("Next session: %d min", int(snap.Pending/time.Minute)))))
	}
	if v.saved != nil {
		lines = append(lines, "", center.Render(formatter.StyleStrong.Bold(true).Render("Session Saved")))
	}
	return strings.Join(lines, "\n")
}

func (v *timerView) renderPresets(snap timer.Snapshot) string {
	parts := make([]string, 0, len(timer.PresetDurations)+1)
	matched := false
	for _, p := range timer.PresetDurations {
		label := fmt.Sprintf("%d min", int(p/time.Minute))
		if p == snap.Duration {
			matched = true
			parts = append(parts, formatter.StyleAccent.Bold(true).Render("["+label+"]"))
			continue
		}
		parts = append(parts, formatter.Dim(" "+label+" "))
	}
	if !matched {
		parts = append(parts, formatter.StyleAccent.Bold(true).Render(fmt.Sprintf("[%s]", formatter.FormatClock(snap.Duration))))
	}
	return strings.Join(parts, " ")
}
