package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// prefsMsg carries a loaded or saved preferences record to the appModel,
// which applies the palette and forwards it to every tab.
type prefsMsg struct {
	prefs *domain.Preferences
	err   error
}

type resetDoneMsg struct {
	deleted int
	err     error
}

// settingsView edits preferences and hosts reset-all-data.
type settingsView struct {
	state      *SharedState
	confirming bool
}

var (
	settingsKeyDark  = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode"))
	settingsKeyLess  = key.NewBinding(key.WithKeys("-", "left"), key.WithHelp("-/+", "default duration"))
	settingsKeyMore  = key.NewBinding(key.WithKeys("+", "=", "right"))
	settingsKeyReset = key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset all data"))
	settingsKeyYes   = key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "reset"))
	settingsKeyNo    = key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel"))
)

func newSettingsView(state *SharedState) *settingsView {
	return &settingsView{state: state}
}

func (v *settingsView) ID() ViewID    { return ViewSettings }
func (v *settingsView) Title() string { return "Settings" }

func (v *settingsView) ShortHelp() []key.Binding {
	if v.confirming {
		return []key.Binding{settingsKeyYes, settingsKeyNo}
	}
	return []key.Binding{settingsKeyDark, settingsKeyLess, settingsKeyReset}
}

func (v *settingsView) Init() tea.Cmd { return nil }

func (v *settingsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resetDoneMsg:
		if msg.err != nil {
			return v, setError(msg.err)
		}
		return v, setStatus(fmt.Sprintf("All data reset. Deleted %d %s.", msg.deleted, plural(msg.deleted, "session", "sessions")))

	case tea.KeyMsg:
		if v.confirming {
			switch {
			case key.Matches(msg, settingsKeyYes):
				v.confirming = false
				return v, v.resetAll()
			case key.Matches(msg, settingsKeyNo):
				v.confirming = false
			}
			return v, nil
		}

		p := v.state.Prefs
		if p == nil {
			return v, nil
		}
		switch {
		case key.Matches(msg, settingsKeyDark):
			return v, v.save(func(ctx context.Context) (*domain.Preferences, error) {
				return v.state.App.Preferences.SetDarkMode(ctx, !p.DarkMode)
			})
		case key.Matches(msg, settingsKeyLess):
			return v, v.stepDuration(p.PreferredMinutes() - 1)
		case key.Matches(msg, settingsKeyMore):
			return v, v.stepDuration(p.PreferredMinutes() + 1)
		case key.Matches(msg, settingsKeyReset):
			v.confirming = true
		}
	}
	return v, nil
}

func (v *settingsView) stepDuration(minutes int) tea.Cmd {
	if domain.ValidatePreferredMinutes(minutes) != nil {
		return nil // stepper stops at its bounds
	}
	return v.save(func(ctx context.Context) (*domain.Preferences, error) {
		return v.state.App.Preferences.SetPreferredDuration(ctx, minutes)
	})
}

func (v *settingsView) save(fn func(ctx context.Context) (*domain.Preferences, error)) tea.Cmd {
	return func() tea.Msg {
		p, err := fn(context.Background())
		return prefsMsg{prefs: p, err: err}
	}
}

func (v *settingsView) resetAll() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		n, err := app.Sessions.ResetAll(context.Background())
		return resetDoneMsg{deleted: n, err: err}
	}
}

func (v *settingsView) View() string {
	p := v.state.Prefs
	if p == nil {
		return "\n  " + formatter.Dim("Loading...")
	}

	toggle := formatter.Dim("○ off")
	if p.DarkMode {
		toggle = formatter.Accent("● on")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Appearance"))
	b.WriteString(fmt.Sprintf("\n  Dark Mode          %s\n\n", toggle))
	b.WriteString(formatter.Header("Session Preferences"))
	b.WriteString(fmt.Sprintf("\n  Default Duration   %s %s %s\n\n",
		formatter.Dim("‹"), formatter.Bold(fmt.Sprintf("%d min", p.PreferredMinutes())), formatter.Dim("›")))
	b.WriteString(formatter.Header("Data"))
	if v.confirming {
		b.WriteString("\n  " + formatter.StyleDanger.Bold(true).Render("Reset All Data?"))
		b.WriteString("\n  " + formatter.Dim("Every session will be deleted. This cannot be undone. (y/n)") + "\n\n")
	} else {
		b.WriteString("\n  " + formatter.StyleDanger.Render("Reset All Data") + formatter.Dim("  (R)") + "\n\n")
	}
	b.WriteString(formatter.Header("About"))
	b.WriteString("\n  Version            " + formatter.AppVersion)
	return b.String()
}
