package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette is one colour scheme. Light and dark follow the celadon and
// teal tones of the app's theme.
type Palette struct {
	Accent lipgloss.Color
	Strong lipgloss.Color
	Warn   lipgloss.Color
	Danger lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Border lipgloss.Color
}

var (
	LightPalette = Palette{
		Accent: lipgloss.Color("#2D7D7D"),
		Strong: lipgloss.Color("#3A5F5F"),
		Warn:   lipgloss.Color("#B57614"),
		Danger: lipgloss.Color("#9D0006"),
		Dim:    lipgloss.Color("#7C8F8F"),
		Fg:     lipgloss.Color("#333333"),
		Border: lipgloss.Color("#ACE1AF"),
	}
	DarkPalette = Palette{
		Accent: lipgloss.Color("#ACE1AF"),
		Strong: lipgloss.Color("#C8E8C8"),
		Warn:   lipgloss.Color("#FABD2F"),
		Danger: lipgloss.Color("#FB4934"),
		Dim:    lipgloss.Color("#6F8F8F"),
		Fg:     lipgloss.Color("#E8E8E8"),
		Border: lipgloss.Color("#3A5F5F"),
	}
)

// Styles derived from the active palette. SetDarkMode rebuilds them.
var (
	StyleAccent lipgloss.Style
	StyleStrong lipgloss.Style
	StyleWarn   lipgloss.Style
	StyleDanger lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style

	active Palette
	dark   bool
)

func init() {
	applyPalette(LightPalette)
}

// SetDarkMode switches every style to the dark or light palette.
func SetDarkMode(on bool) {
	dark = on
	if on {
		applyPalette(DarkPalette)
		return
	}
	applyPalette(LightPalette)
}

// DarkMode reports which palette is active.
func DarkMode() bool { return dark }

// Active returns the palette currently in use.
func Active() Palette { return active }

func applyPalette(p Palette) {
	active = p
	StyleAccent = lipgloss.NewStyle().Foreground(p.Accent)
	StyleStrong = lipgloss.NewStyle().Foreground(p.Strong)
	StyleWarn = lipgloss.NewStyle().Foreground(p.Warn)
	StyleDanger = lipgloss.NewStyle().Foreground(p.Danger)
	StyleDim = lipgloss.NewStyle().Foreground(p.Dim)
	StyleFg = lipgloss.NewStyle().Foreground(p.Fg)
	StyleHeader = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(p.Fg).Bold(true)
}

// Header renders an uppercase section header over a rule.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string    { return StyleDim.Render(text) }
func Bold(text string) string   { return StyleBold.Render(text) }
func Accent(text string) string { return StyleAccent.Render(text) }
