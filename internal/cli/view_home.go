package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type homeLoadedMsg struct {
	summary stats.Summary
	err     error
}

// homeView is the dashboard: headline numbers, the three most recent
// sessions and a shortcut to the timer.
type homeView struct {
	state   *SharedState
	summary stats.Summary
	loading bool
	err     error
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state, loading: true}
}

var (
	homeKeyStart = key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "start new session"))
	homeKeyLog   = key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log session"))
	homeKeyRefr  = key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
)

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "Home" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{homeKeyStart, homeKeyLog, homeKeyRefr}
}

func (v *homeView) Init() tea.Cmd {
	return v.loadData()
}

func (v *homeView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		summary, err := app.Stats.Dashboard(context.Background(), app.Now())
		return homeLoadedMsg{summary: summary, err: err}
	}
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			// Keep the last good numbers on screen.
			return v, setError(msg.err)
		}
		v.summary = msg.summary
		return v, nil

	case refreshViewMsg:
		return v, v.loadData()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, homeKeyStart):
			return v, switchTab(ViewTimer)
		case key.Matches(msg, homeKeyLog):
			return v, pushView(newLogSessionView(v.state))
		case key.Matches(msg, homeKeyRefr):
			v.loading = true
			return v, v.loadData()
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	if v.loading && v.summary.Sessions == 0 {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.FormatSummaryCards(v.summary))
	b.WriteString("\n\n  ")
	b.WriteString(formatter.StyleAccent.Bold(true).Render("[ Start New Session ]"))
	b.WriteString("\n\n")
	b.WriteString(formatter.Header("Recent Sessions"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatRecent(v.summary.Recent, v.state.App.Now()))
	return b.String()
}

// newLogSessionView opens the manual session form, prefilled with the
// preferred duration.
func newLogSessionView(state *SharedState) View {
	fields := &logSessionFields{
		minutes: strconv.Itoa(domain.DefaultPreferredDurationSec / 60),
		typ:     string(domain.SessionGuided),
	}
	if state.Prefs != nil {
		fields.minutes = strconv.Itoa(state.Prefs.PreferredMinutes())
	}
	return newWizardView(state, "Log Session", logSessionForm(fields), func() tea.Cmd {
		return func() tea.Msg { return applyLogSession(state.App, fields) }
	})
}

// applyLogSession records the form's session, ending now.
func applyLogSession(app *App, f *logSessionFields) tea.Msg {
	minutes, err := strconv.Atoi(strings.TrimSpace(f.minutes))
	if err != nil {
		return statusMsg{text: "Error: " + err.Error(), isErr: true}
	}
	typ, err := domain.ParseSessionType(f.typ)
	if err != nil {
		return statusMsg{text: "Error: " + err.Error(), isErr: true}
	}
	now := app.Now()
	s := &domain.MeditationSession{
		StartedAt:   now.Add(-time.Duration(minutes) * time.Minute),
		DurationSec: minutes * 60,
		Type:        typ,
		Note:        strings.TrimSpace(f.note),
	}
	if err := app.Sessions.Record(context.Background(), s); err != nil {
		return statusMsg{text: "Error: " + err.Error(), isErr: true}
	}
	return statusMsg{text: "Logged " + formatter.SessionLine(s)}
}
