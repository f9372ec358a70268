package view

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FillWidth returns how many of width cells a pct (0..100) fill covers.
func FillWidth(width int, pct float64) int {
	if width <= 0 || pct <= 0 {
		return 0
	}
	if pct >= 100 {
		return width
	}
	return int(math.Round(float64(width) * pct / 100))
}

// ProgressFill renders lines padded to width, with the leading pct of every
// line painted in filled and the rest in empty.
func ProgressFill(lines []string, width int, pct float64, filled, empty lipgloss.Style) string {
	n := FillWidth(width, pct)
	out := make([]string, len(lines))
	for i, line := range lines {
		line = PadRight(line, width)
		head := ansi.Cut(line, 0, n)
		tail := ansi.Cut(line, n, width)
		out[i] = filled.Render(head) + empty.Render(tail)
	}
	return strings.Join(out, "\n")
}
