package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/schedule"
	"github.com/javiermolinar/lifegrid/internal/tui/view"
)

// tableHeaders returns the header texts and styles: time, rituals, then
// one per weekday.
func (m Model) tableHeaders() ([]string, []lipgloss.Style) {
	headers := []string{
		view.PlainHeader("Time", timeColWidth),
		view.PlainHeader(schedule.ColumnRituals.Title(), m.colWidth),
	}
	styles := []lipgloss.Style{
		m.styles.TimeColumnStyle,
		m.styleCache.DayHeader,
	}

	for _, h := range m.sess.Surface.Headers() {
		dh := view.DayHeader{Name: h.Name(), Today: h.Today}
		if d := h.Decoration(); d != nil {
			dh.Progress = d.Progress
			dh.Date = d.Date
			dh.Clock = d.Clock
			dh.Zzz = d.Zzz
		}
		style := m.styleCache.DayHeader
		if dh.Today {
			style = m.styleCache.DayHeaderToday
		}
		headers = append(headers, view.RenderDayHeader(dh, m.colWidth, m.styles.HeaderFillStyle, m.styles.HeaderEmptyStyle))
		styles = append(styles, style)
	}
	return headers, styles
}

// buildGridTableRows renders count rows starting at the scroll offset.
func (m Model) buildGridTableRows(count int) ([][]string, [][]lipgloss.Style) {
	all := m.sess.Surface.Rows()
	start := min(m.scrollOffset, len(all))
	end := min(start+count, len(all))

	drag, dragging := m.sess.Editor.Dragging()

	rows := make([][]string, 0, end-start)
	cellStyles := make([][]lipgloss.Style, 0, end-start)
	for i := start; i < end; i++ {
		r := all[i]
		var above *grid.Row
		if i > 0 {
			above = all[i-1]
		}

		content, style := m.timeCell(r)
		line := []string{content}
		styles := []lipgloss.Style{style}

		for col, c := range r.Cells() {
			state := cellState{
				cursor: i == m.cursor.Row && col == m.cursor.Col,
				drag:   dragging && drag.Slot == r.Slot && drag.Column == c.Column,
				alt:    sameClassAbove(above, c),
				row:    r,
			}
			content, style := m.renderCell(c, state)
			line = append(line, content)
			styles = append(styles, style)
		}
		rows = append(rows, line)
		cellStyles = append(cellStyles, styles)
	}
	return rows, cellStyles
}

// timeCell renders the time label. The current row shows its live clock
// on a second line behind the slot progress fill.
func (m Model) timeCell(r *grid.Row) (string, lipgloss.Style) {
	d := r.Time.Decoration()
	if d == nil {
		return view.Fit(r.Time.Text(), timeColWidth), m.styles.TimeColumnStyle
	}
	lines := []string{r.Time.CleanText(), d.LiveTime}
	return view.ProgressFill(lines, timeColWidth, d.Progress, m.styles.SlotFillStyle, m.styles.SlotEmptyStyle),
		m.styles.TimeCurrentStyle
}

type cellState struct {
	cursor bool
	drag   bool
	alt    bool
	row    *grid.Row
}

// renderCell picks content and style for an activity cell. The cursor wins
// over the drag source, which wins over a closed flap.
func (m Model) renderCell(c *grid.Cell, st cellState) (string, lipgloss.Style) {
	content, style := m.cellBase(c, st)
	switch {
	case st.cursor:
		style = m.styleCache.Cursor
		if content == "" && m.sess.Editor.Editing() {
			content = "+"
		}
	case st.drag:
		style = m.styleCache.DragSource
	}
	return view.Fit(content, m.colWidth), style
}

func (m Model) cellBase(c *grid.Cell, st cellState) (string, lipgloss.Style) {
	if c.Hidden() {
		f := c.Flap()
		parts := []string{}
		if f.TimeText != "" {
			parts = append(parts, f.TimeText)
		}
		if f.Zzz {
			parts = append(parts, "zzz")
		}
		return view.Center(strings.Join(parts, " "), m.colWidth), m.styleCache.Flap
	}
	if !c.Assignment.IsEmpty() {
		return " " + c.Assignment.Display(), m.styleCache.Class(c.Assignment.Class, st.alt)
	}
	switch {
	case st.row != nil && st.row.Current:
		return "", m.styleCache.CurrentRowCell
	case c.Today:
		return "", m.styleCache.TodayCell
	default:
		return "", m.styleCache.EmptyCell
	}
}

// sameClassAbove reports whether the cell above holds the same class, so
// adjacent blocks alternate shades.
func sameClassAbove(above *grid.Row, c *grid.Cell) bool {
	if above == nil || c.Assignment.IsEmpty() {
		return false
	}
	prev := above.Cell(c.Column)
	if prev == nil || prev.Assignment.IsEmpty() {
		return false
	}
	return strings.EqualFold(prev.Assignment.Class, c.Assignment.Class) &&
		prev.Assignment.Text != c.Assignment.Text
}
