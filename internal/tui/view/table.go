package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableContent contains table rows and cell styles.
type TableContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// TableViewState holds what is needed to render the schedule grid.
type TableViewState struct {
	InnerW       int
	GridH        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      TableContent
	BorderStyle  lipgloss.Style
	VAlign       lipgloss.Position
	Bg           lipgloss.Color
	Render       bool
}

// RenderTable renders the visible grid rows with a lipgloss table.
func RenderTable(state TableViewState) string {
	if !state.Render || state.GridH <= 0 {
		return ""
	}

	styleAt := func(styles []lipgloss.Style, col int) lipgloss.Style {
		if col < 0 || col >= len(styles) {
			return lipgloss.NewStyle()
		}
		return styles[col]
	}

	// Headers are multi-line blocks, so they go in as the first data row:
	// the table's own header row keeps a single line.
	rows := state.Content.Rows
	offset := 0
	if len(state.Headers) > 0 {
		rows = append([][]string{state.Headers}, rows...)
		offset = 1
	}

	t := table.New().
		Width(max(0, state.InnerW)).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(false).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if offset > 0 && row == 0 {
				return styleAt(state.HeaderStyles, col)
			}
			row -= offset
			if row < 0 || row >= len(state.Content.CellStyles) {
				return lipgloss.NewStyle()
			}
			return styleAt(state.Content.CellStyles[row], col)
		})

	return PlaceBox(state.InnerW, state.GridH, state.VAlign, t.Render(), state.Bg)
}
