package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/stats"
)

// AppVersion is shown on the settings screen.
const AppVersion = "1.0.0"

const chartWidth = 30

const noteWidth = 24

// SessionLine describes a session the way the recent list shows it,
// e.g. "5 min Timed session" or `10 min Guided session · "body scan"`.
func SessionLine(s *domain.MeditationSession) string {
	line := fmt.Sprintf("%d min %s session", s.Minutes(), Capitalize(string(s.Type)))
	if !s.HasNote() {
		return line
	}
	note := []rune(s.Note)
	if len(note) > noteWidth {
		note = append(note[:noteWidth-1], '…')
	}
	return fmt.Sprintf("%s · %q", line, string(note))
}

// FormatSummaryCards renders the sessions, minutes and streak tiles.
func FormatSummaryCards(sum stats.Summary) string {
	return StatCards(
		StatCard(fmt.Sprintf("%d", sum.Sessions), "Sessions"),
		StatCard(fmt.Sprintf("%d", sum.Minutes), "Minutes"),
		StatCard(fmt.Sprintf("%d", sum.Streak), "Day Streak"),
	)
}

// FormatRecent lists the most recent sessions, newest first.
func FormatRecent(recent []*domain.MeditationSession, now time.Time) string {
	if len(recent) == 0 {
		return Dim("No sessions yet. Start your first one!")
	}
	var b strings.Builder
	for _, s := range recent {
		b.WriteString(fmt.Sprintf("%s  %s\n", Dim(fmt.Sprintf("%-10s", HumanDate(s.StartedAt, now))), SessionLine(s)))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatDashboard is the non-interactive rendering of the home screen.
func FormatDashboard(sum stats.Summary, now time.Time) string {
	var b strings.Builder
	b.WriteString(Header("Mindful"))
	b.WriteString("\n\n")
	b.WriteString(FormatSummaryCards(sum))
	b.WriteString("\n\n")
	b.WriteString(Header("Recent Sessions"))
	b.WriteString("\n")
	b.WriteString(FormatRecent(sum.Recent, now))
	b.WriteString("\n")
	return b.String()
}

// FormatSessionList renders sessions as a table, newest first.
func FormatSessionList(sessions []*domain.MeditationSession, now time.Time) string {
	if len(sessions) == 0 {
		return Dim("No sessions recorded.") + "\n"
	}
	rows := make([][]string, 0, len(sessions))
	for _, s := range stats.NewestFirst(sessions) {
		rows = append(rows, []string{
			HumanDate(s.StartedAt, now),
			s.StartedAt.In(now.Location()).Format("15:04"),
			fmt.Sprintf("%d", s.Minutes()),
			Capitalize(string(s.Type)),
			s.Note,
		})
	}
	return RenderTable([]string{"Date", "Start", "Min", "Type", "Note"}, rows, 2)
}

// FormatFrameSummary is the progress report for one time frame.
func FormatFrameSummary(fs stats.FrameSummary) string {
	var b strings.Builder
	b.WriteString(Header("Progress · " + fs.Frame.Label()))
	b.WriteString("\n\n")
	b.WriteString(StatCards(
		StatCard(fmt.Sprintf("%d", fs.Sessions), "Sessions"),
		StatCard(fmt.Sprintf("%d", fs.Minutes), "Minutes"),
		StatCard(fmt.Sprintf("%d", fs.AverageMin), "Avg Minutes"),
	))
	b.WriteString("\n\n")
	b.WriteString(Header("Session Duration"))
	b.WriteString("\n")
	b.WriteString(RenderDailyChart(fs.Daily, chartWidth))
	b.WriteString("\n\n")
	b.WriteString(Header("Daily Frequency"))
	b.WriteString("\n")
	b.WriteString(RenderWeekdayChart(fs.Weekdays, chartWidth))
	b.WriteString("\n")
	return b.String()
}

// FormatPreferences renders the settings screen contents.
func FormatPreferences(p *domain.Preferences) string {
	mode := "off"
	if p.DarkMode {
		mode = "on"
	}
	rows := [][]string{
		{"Dark Mode", mode},
		{"Default Duration", fmt.Sprintf("%d min", p.PreferredMinutes())},
		{"Version", AppVersion},
	}
	return RenderTable([]string{"Setting", "Value"}, rows)
}
