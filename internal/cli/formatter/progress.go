package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45% for a running timer.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %3.0f%%", RenderBar(pct, width), clampUnit(pct)*100)
}

// RenderBar renders only the blocks of a bar, filled in the accent colour.
func RenderBar(pct float64, width int) string {
	pct = clampUnit(pct)
	if width < 2 {
		width = 2
	}
	filled := min(int(pct*float64(width)), width)
	return StyleAccent.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

func clampUnit(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
