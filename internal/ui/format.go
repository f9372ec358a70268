package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/schedule"
	"github.com/javiermolinar/lifegrid/internal/tracker"
)

const (
	timeWidth   = 10
	minCellW    = 8
	maxCellW    = 18
	cellPadding = 1
)

var gridColumns = schedule.ActivityColumns()

// GridOpts configures grid printing.
type GridOpts struct {
	Width int       // terminal width; 0 detects it
	Now   time.Time // zero skips the today and current markers
	// Only limits output to these columns, in display order.
	Only []schedule.Column
}

// cellWidth fits the activity columns into width.
func (o GridOpts) cellWidth(cols int) int {
	width := o.Width
	if width <= 0 {
		width = termWidth()
	}
	w := (width-timeWidth)/cols - cellPadding
	return max(minCellW, min(maxCellW, w))
}

func (o GridOpts) columns() []schedule.Column {
	if len(o.Only) > 0 {
		return o.Only
	}
	return gridColumns
}

// PrintGrid writes the surface as a text table. Run a tracker tick first so
// the today, current and flap markers reflect now.
func PrintGrid(w io.Writer, surface *grid.Surface, snap tracker.Snapshot, opts GridOpts) {
	cols := opts.columns()
	cw := opts.cellWidth(len(cols))
	today := schedule.Column("")
	if !opts.Now.IsZero() {
		today = schedule.ColumnForWeekday(opts.Now.Weekday())
	}

	var header strings.Builder
	header.WriteString(fit("Time", timeWidth))
	for _, col := range cols {
		title := fit(col.Title(), cw)
		if col == today {
			title = formatToday(title)
		} else {
			title = formatHeader(title)
		}
		header.WriteString(" " + title)
	}
	fmt.Fprintln(w, header.String())
	fmt.Fprintln(w, formatMuted(strings.Repeat("─", timeWidth+len(cols)*(cw+1))))

	for _, r := range surface.Rows() {
		fmt.Fprintln(w, gridRow(r, cols, cw, today))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, statsLine(snap))
}

func gridRow(r *grid.Row, cols []schedule.Column, cw int, today schedule.Column) string {
	var line strings.Builder

	label := fit(r.Time.CleanText(), timeWidth)
	if r.Current {
		label = formatCurrent(label)
	}
	line.WriteString(label)

	for _, col := range cols {
		line.WriteString(" ")
		c := r.Cell(col)
		if c == nil {
			line.WriteString(fit("", cw))
			continue
		}
		line.WriteString(cellText(c, cw, col == today))
	}
	return line.String()
}

func cellText(c *grid.Cell, cw int, today bool) string {
	if c.Hidden() {
		text := ""
		if c.Flap().Zzz {
			text = "zzz"
		}
		return formatSleep(fit(text, cw))
	}
	if c.Assignment.IsEmpty() {
		return formatMuted(fit("·", cw))
	}
	text := fit(c.Assignment.Display(), cw)
	if today {
		return formatToday(text)
	}
	return text
}

// statsLine summarizes the tracker snapshot.
func statsLine(snap tracker.Snapshot) string {
	var parts []string
	if !snap.Now.IsZero() {
		parts = append(parts, "Now "+formatStats(schedule.FormatClock(snap.Now)))
	}
	if snap.HasCurrent {
		parts = append(parts, fmt.Sprintf("Slot %s %s",
			snap.Current.Slot.Label(),
			formatStats(fmt.Sprintf("%d%%", int(snap.Current.Progress)))))
	}
	parts = append(parts, "Day "+formatStats(fmt.Sprintf("%d%%", snap.DayProgress)))
	if snap.Sleeping {
		parts = append(parts, formatSleep("zzz sleeping"))
	}
	return strings.Join(parts, " | ")
}

// FlowBar renders a progress bar of width cells for pct (0..100).
func FlowBar(pct float64, width int) string {
	pct = max(0, min(100, pct))
	filled := int(pct * float64(width) / 100)
	return "[" + formatCurrent(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled) + "]"
}

// FormatDuration formats fractional hours as a human-readable duration.
func FormatDuration(hours float64) string {
	minutes := int(hours*60 + 0.5)
	if minutes == 0 {
		return "0m"
	}
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}

// fit truncates or pads s to exactly width terminal cells.
func fit(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
