package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type progressLoadedMsg struct {
	frame   domain.TimeFrame
	summary stats.FrameSummary
	err     error
}

// progressView shows totals and charts for one selectable time frame.
type progressView struct {
	state    *SharedState
	frameIdx int
	summary  stats.FrameSummary
	loaded   bool
}

var (
	progressKeyPrev = key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "time frame"))
	progressKeyNext = key.NewBinding(key.WithKeys("right", "l"))
)

func newProgressView(state *SharedState) *progressView {
	return &progressView{state: state}
}

func (v *progressView) ID() ViewID    { return ViewProgress }
func (v *progressView) Title() string { return "Progress" }

func (v *progressView) ShortHelp() []key.Binding {
	return []key.Binding{progressKeyPrev}
}

func (v *progressView) frame() domain.TimeFrame {
	return domain.TimeFrames[v.frameIdx]
}

func (v *progressView) Init() tea.Cmd {
	return v.loadData()
}

func (v *progressView) loadData() tea.Cmd {
	app := v.state.App
	frame := v.frame()
	return func() tea.Msg {
		summary, err := app.Stats.Progress(context.Background(), frame, app.Now())
		return progressLoadedMsg{frame: frame, summary: summary, err: err}
	}
}

func (v *progressView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.frame != v.frame() {
			return v, nil // superseded by a later frame change
		}
		if msg.err != nil {
			return v, setError(msg.err)
		}
		v.summary = msg.summary
		v.loaded = true
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, progressKeyPrev):
			v.frameIdx = (v.frameIdx + len(domain.TimeFrames) - 1) % len(domain.TimeFrames)
			return v, v.loadData()
		case key.Matches(msg, progressKeyNext):
			v.frameIdx = (v.frameIdx + 1) % len(domain.TimeFrames)
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *progressView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(v.renderFramePicker())
	b.WriteString("\n\n")
	if !v.loaded {
		b.WriteString("  " + formatter.Dim("Loading..."))
		return b.String()
	}

	s := v.summary
	b.WriteString(formatter.StatCards(
		formatter.StatCard(fmt.Sprintf("%d", s.Sessions), "Sessions"),
		formatter.StatCard(fmt.Sprintf("%d", s.Minutes), "Minutes"),
		formatter.StatCard(fmt.Sprintf("%d", s.AverageMin), "Avg Minutes"),
	))
	chartW := max(min(v.state.Width-24, 50), 10)
	b.WriteString("\n\n")
	b.WriteString(formatter.Header("Session Duration"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderDailyChart(lastDays(s.Daily, 14), chartW))
	b.WriteString("\n\n")
	b.WriteString(formatter.Header("Daily Frequency"))
	b.WriteString("\n")
	b.WriteString(formatter.RenderWeekdayChart(s.Weekdays, chartW))
	return b.String()
}

func (v *progressView) renderFramePicker() string {
	parts := make([]string, 0, len(domain.TimeFrames))
	for i, f := range domain.TimeFrames {
		if i == v.frameIdx {
			parts = append(parts, formatter.StyleAccent.Bold(true).Render("["+f.Label()+"]"))
			continue
		}
		parts = append(parts, formatter.Dim(" "+f.Label()+" "))
	}
	return "  " + strings.Join(parts, " ")
}

// lastDays keeps the newest n bars so long frames fit on screen.
func lastDays(bars []stats.DayBar, n int) []stats.DayBar {
	if len(bars) <= n {
		return bars
	}
	return bars[len(bars)-n:]
}
