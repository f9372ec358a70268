package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Current slot: bold yellow so it pops
	colorCurrent = color.New(color.FgYellow, color.Bold)

	// Today's column: bold cyan
	colorToday = color.New(color.FgCyan, color.Bold)

	// Sleep flaps: blue, faint
	colorSleep = color.New(color.FgBlue, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Stats: green for progress values
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Diff lines
	colorAdded   = color.New(color.FgGreen)
	colorRemoved = color.New(color.FgRed)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 120
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatCurrent(s string) string {
	return colorCurrent.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatSleep(s string) string {
	return colorSleep.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatStats formats text for statistics.
func formatStats(s string) string {
	return colorStats.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
