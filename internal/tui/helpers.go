package tui

import (
	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/schedule"
	"github.com/javiermolinar/lifegrid/internal/tui/view"
)

// Layout constants for boxed rendering.
const (
	footerCompact = 2

	footerBaseLines       = 4 // Stats(1) + Legend(1) + Status(1) + Help(1)
	promptBorderLines     = 2
	promptMinContentLines = 1

	footerMinHeight     = footerBaseLines + promptBorderLines + promptMinContentLines
	footerFullMinHeight = 20

	// Top border, header lines, bottom border.
	tableChrome = 2 + view.HeaderLines

	minColWidth = 6
)

// activityColumns are the cursor columns, left to right.
var activityColumns = schedule.ActivityColumns()

// calculateColWidth determines the activity column width from the terminal width.
func (m *Model) calculateColWidth() int {
	if m.width == 0 {
		return defaultColWidth
	}

	// AppStyle padding (4), table outer borders (2), one separator per
	// column after the time column, and the time column itself.
	appH, _ := m.styles.AppStyle.GetFrameSize()
	available := m.width - appH - 2 - len(activityColumns) - timeColWidth

	colWidth := available / len(activityColumns)
	if colWidth < minColWidth {
		return minColWidth
	}
	return colWidth
}

// rowCount returns the number of rows on the surface.
func (m *Model) rowCount() int {
	return m.sess.Surface.Len()
}

// rowLines returns how many terminal lines row r takes.
func (m *Model) rowLines(r *grid.Row) int {
	if r.Time.Decoration() != nil {
		return 2
	}
	return 1
}

// visibleRows returns how many rows fit starting at scrollOffset.
func (m *Model) visibleRows() int {
	return m.visibleRowsFrom(m.scrollOffset)
}

func (m *Model) visibleRowsFrom(start int) int {
	avail := m.layoutCache.GridH - tableChrome
	if avail < 1 {
		return 1
	}
	rows := m.sess.Surface.Rows()
	n := 0
	for i := start; i < len(rows); i++ {
		avail -= m.rowLines(rows[i])
		if avail < 0 {
			break
		}
		n++
	}
	return max(1, n)
}

// ensureCursorVisible adjusts scroll offset to keep cursor visible.
func (m *Model) ensureCursorVisible() {
	total := m.rowCount()
	if total == 0 {
		m.scrollOffset = 0
		return
	}
	m.clampCursor()

	if m.cursor.Row < m.scrollOffset {
		m.scrollOffset = m.cursor.Row
	}
	for m.cursor.Row >= m.scrollOffset+m.visibleRowsFrom(m.scrollOffset) && m.scrollOffset < total-1 {
		m.scrollOffset++
	}

	// Pull the window up when rows below the last one are empty space.
	for m.scrollOffset > 0 && m.scrollOffset-1+m.visibleRowsFrom(m.scrollOffset-1) >= total {
		m.scrollOffset--
	}
	m.scrollOffset = max(0, min(m.scrollOffset, total-1))
}

// clampCursor keeps the cursor inside the grid after rows change.
func (m *Model) clampCursor() {
	m.cursor.Row = max(0, min(m.cursor.Row, m.rowCount()-1))
	m.cursor.Col = max(0, min(m.cursor.Col, len(activityColumns)-1))
}

// cursorRow returns the row under the cursor.
func (m *Model) cursorRow() *grid.Row {
	rows := m.sess.Surface.Rows()
	if m.cursor.Row < 0 || m.cursor.Row >= len(rows) {
		return nil
	}
	return rows[m.cursor.Row]
}

// cursorPosition returns the grid position under the cursor.
func (m *Model) cursorPosition() (grid.Position, bool) {
	r := m.cursorRow()
	if r == nil {
		return grid.Position{}, false
	}
	return grid.Position{Slot: r.Slot, Column: activityColumns[m.cursor.Col]}, true
}

// cursorCell returns the cell under the cursor.
func (m *Model) cursorCell() *grid.Cell {
	r := m.cursorRow()
	if r == nil {
		return nil
	}
	return r.Cell(activityColumns[m.cursor.Col])
}

// focusSlot moves the cursor to the row holding slot.
func (m *Model) focusSlot(slot schedule.TimeSlot) {
	for i, r := range m.sess.Surface.Rows() {
		if r.Slot == slot {
			m.cursor.Row = i
			m.ensureCursorVisible()
			return
		}
	}
}

// focusNow moves the cursor to the current row and today's column.
func (m *Model) focusNow() {
	now := m.now()
	m.cursor.Col = columnIndex(schedule.ColumnForWeekday(now.Weekday()))
	if active := m.sess.Tracker.Active(); active != nil {
		m.focusSlot(active.Slot)
		return
	}
	m.ensureCursorVisible()
}

func columnIndex(col schedule.Column) int {
	for i, c := range activityColumns {
		if c == col {
			return i
		}
	}
	return 0
}

// filledCells counts assigned cells in row r.
func filledCells(r *grid.Row) int {
	n := 0
	for _, c := range r.Cells() {
		if !c.Assignment.IsEmpty() {
			n++
		}
	}
	return n
}
