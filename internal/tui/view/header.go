package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderLines is the number of text lines in a column header.
const HeaderLines = 3

// DayHeader describes one weekday header.
type DayHeader struct {
	Name     string
	Today    bool
	Progress int
	Date     string
	Clock    string
	Zzz      bool
}

// Lines returns the header text, one entry per line.
func (h DayHeader) Lines() []string {
	if !h.Today {
		return []string{h.Name, "", ""}
	}
	name := h.Name
	if h.Zzz {
		name += " zzz"
	}
	return []string{name, h.Date, fmt.Sprintf("%d%% %s", h.Progress, h.Clock)}
}

// RenderDayHeader renders a header cell of width cells. Today's header
// carries a day progress fill.
func RenderDayHeader(h DayHeader, width int, filled, empty lipgloss.Style) string {
	lines := h.Lines()
	for i := range lines {
		lines[i] = Center(lines[i], width)
	}
	if !h.Today {
		return strings.Join(lines, "\n")
	}
	return ProgressFill(lines, width, float64(h.Progress), filled, empty)
}

// PlainHeader renders a fixed header such as "Time" padded to HeaderLines.
func PlainHeader(label string, width int) string {
	return strings.Join([]string{Center(label, width), "", ""}, "\n")
}
