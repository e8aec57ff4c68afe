package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// mindfulHuhTheme styles huh forms with the active palette.
func mindfulHuhTheme() *huh.Theme {
	p := formatter.Active()
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(p.Strong)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(p.Fg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(p.Fg).Background(p.Accent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(p.Dim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Accent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(p.Fg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(p.Dim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(p.Dim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(p.Dim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(p.Dim)

	return t
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Reset").
				Negative("Cancel").
				Value(result),
		),
	).WithTheme(mindfulHuhTheme()).WithShowHelp(false)
}

// logSessionFields holds the raw values of the log-session form.
type logSessionFields struct {
	minutes string
	typ     string
	note    string
}

// logSessionForm collects a manual session: minutes, type and note.
func logSessionForm(f *logSessionFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Duration (minutes)").
				Placeholder(f.minutes).
				Value(&f.minutes).
				Validate(validateMinutes),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Timed", string(domain.SessionTimed)),
					huh.NewOption("Guided", string(domain.SessionGuided)),
				).
				Value(&f.typ),
			huh.NewInput().
				Title("Note (optional)").
				Value(&f.note),
		),
	).WithTheme(mindfulHuhTheme()).WithShowHelp(false)
}

// validateMinutes accepts a whole number of minutes from 1 to 600.
func validateMinutes(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a whole number")
	}
	if n < 1 || n > 600 {
		return fmt.Errorf("between 1 and 600 minutes")
	}
	return nil
}
