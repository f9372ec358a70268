package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// classShades holds the base and alternate style of one class.
type classShades struct {
	base lipgloss.Style
	alt  lipgloss.Style
}

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	DayHeader      lipgloss.Style
	DayHeaderToday lipgloss.Style
	EmptyCell      lipgloss.Style
	TodayCell      lipgloss.Style
	CurrentRowCell lipgloss.Style
	Cursor         lipgloss.Style
	DragSource     lipgloss.Style
	Flap           lipgloss.Style

	classes map[string]classShades
	other   classShades
}

// NewStyleCache precomputes all width-dependent styles for the grid.
// classes are the theme's known activity classes.
func NewStyleCache(styles *Styles, width int, classes []string) StyleCache {
	c := StyleCache{
		DayHeader:      styles.DayHeaderStyle.Width(width),
		DayHeaderToday: styles.DayHeaderTodayStyle.Width(width),
		EmptyCell:      styles.EmptyCellStyle.Width(width),
		TodayCell:      styles.TodayCellStyle.Width(width),
		CurrentRowCell: styles.CurrentRowCellStyle.Width(width),
		Cursor:         styles.CursorStyle.Width(width),
		DragSource:     styles.DragSourceStyle.Width(width),
		Flap:           styles.FlapStyle.Width(width),
		classes:        make(map[string]classShades, len(classes)),
		other: classShades{
			base: styles.ClassStyle("", false).Width(width),
			alt:  styles.ClassStyle("", true).Width(width),
		},
	}
	for _, class := range classes {
		c.classes[class] = classShades{
			base: styles.ClassStyle(class, false).Width(width),
			alt:  styles.ClassStyle(class, true).Width(width),
		}
	}
	return c
}

// Class returns the cached style for class.
func (c StyleCache) Class(class string, alt bool) lipgloss.Style {
	shades, ok := c.classes[strings.ToLower(class)]
	if !ok {
		shades = c.other
	}
	if alt {
		return shades.alt
	}
	return shades.base
}
