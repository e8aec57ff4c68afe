package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/mindful/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

// RenderDailyChart draws one horizontal bar per day with minutes
// meditated. Bars scale to the busiest day.
func RenderDailyChart(bars []stats.DayBar, width int) string {
	if len(bars) == 0 {
		return Dim("No sessions in this period.")
	}
	peak := 0
	for _, b := range bars {
		peak = max(peak, b.Minutes)
	}

	rows := make([]chartRow, 0, len(bars))
	for _, b := range bars {
		date := time.Date(b.Day.Year, b.Day.Month, b.Day.Day, 0, 0, 0, 0, time.UTC)
		rows = append(rows, chartRow{
			label: date.Format("Mon Jan 2"),
			value: b.Minutes,
			note:  fmt.Sprintf("%d min", b.Minutes),
		})
	}
	return renderChart(rows, peak, width)
}

// RenderWeekdayChart draws session counts per weekday, Monday first.
func RenderWeekdayChart(freq [7]int, width int) string {
	peak := 0
	for _, n := range freq {
		peak = max(peak, n)
	}
	if peak == 0 {
		return Dim("No sessions in this period.")
	}

	rows := make([]chartRow, 0, 7)
	for i := 1; i <= 7; i++ {
		wd := time.Weekday(i % 7)
		rows = append(rows, chartRow{
			label: wd.String()[:3],
			value: freq[wd],
			note:  fmt.Sprintf("%d", freq[wd]),
		})
	}
	return renderChart(rows, peak, width)
}

type chartRow struct {
	label string
	value int
	note  string
}

func renderChart(rows []chartRow, peak, width int) string {
	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.label))
	}
	if width < 4 {
		width = 4
	}

	var b strings.Builder
	for _, r := range rows {
		n := 0
		if peak > 0 {
			n = r.value * width / peak
		}
		if r.value > 0 && n == 0 {
			n = 1
		}
		b.WriteString(Dim(fmt.Sprintf("%-*s", labelW, r.label)))
		b.WriteString(" ")
		b.WriteString(StyleAccent.Render(strings.Repeat(filledBlock, n)))
		b.WriteString(" ")
		b.WriteString(r.note)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
