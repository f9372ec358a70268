package grid

import (
	"strings"
	"time"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// SlotDecoration is the current-row overlay on a time cell.
type SlotDecoration struct {
	Progress float64 // 0..100
	LiveTime string
}

// TimeCell is the label cell at the start of each row.
type TimeCell struct {
	label      string
	original   string
	decoration *SlotDecoration
}

// Text returns the visible content, including any decoration.
func (c *TimeCell) Text() string {
	if c.decoration == nil {
		return c.label
	}
	if c.decoration.LiveTime == "" {
		return c.original
	}
	return c.original + " " + c.decoration.LiveTime
}

// CleanText returns the label without decoration.
func (c *TimeCell) CleanText() string {
	if c.decoration != nil {
		return c.original
	}
	return c.label
}

// SetText replaces the label. A decorated cell keeps its decoration.
func (c *TimeCell) SetText(s string) {
	if c.decoration != nil {
		c.original = s
		return
	}
	c.label = s
}

// Decoration returns the active decoration or nil.
func (c *TimeCell) Decoration() *SlotDecoration {
	return c.decoration
}

// Decorate builds the decoration if absent and returns it.
// created is true only when the structure was built by this call.
func (c *TimeCell) Decorate() (d *SlotDecoration, created bool) {
	if c.decoration != nil {
		return c.decoration, false
	}
	c.original = c.label
	c.decoration = &SlotDecoration{}
	return c.decoration, true
}

// Undecorate tears the decoration down and restores the original label.
func (c *TimeCell) Undecorate() {
	if c.decoration == nil {
		return
	}
	c.label = c.original
	c.original = ""
	c.decoration = nil
}

// Flap covers a weekday cell while asleep.
type Flap struct {
	Open     bool
	Zzz      bool
	TimeText string
}

// Cell is one activity cell of a row.
type Cell struct {
	Column     schedule.Column
	Assignment schedule.Assignment
	Today      bool
	flap       *Flap
}

// Flap returns the cell's flap, nil for the rituals column.
func (c *Cell) Flap() *Flap {
	return c.flap
}

// Hidden reports whether a closed flap covers the cell.
func (c *Cell) Hidden() bool {
	return c.flap != nil && !c.flap.Open
}

// Text returns the cell's full text content, flap included.
func (c *Cell) Text() string {
	parts := []string{}
	if d := c.Assignment.Display(); d != "" {
		parts = append(parts, d)
	}
	if c.flap != nil && c.flap.TimeText != "" {
		parts = append(parts, c.flap.TimeText)
	}
	return strings.Join(parts, " ")
}

// Clean returns the assignment with surrounding whitespace removed.
func (c *Cell) Clean() schedule.Assignment {
	return schedule.Assignment{
		Icon:  strings.TrimSpace(c.Assignment.Icon),
		Text:  strings.TrimSpace(c.Assignment.Text),
		Class: strings.TrimSpace(c.Assignment.Class),
	}
}

// HeaderDecoration is today's header overlay.
type HeaderDecoration struct {
	Progress int
	Date     string
	Zzz      bool
	Clock    string
}

// Header is a weekday column header.
type Header struct {
	Column     schedule.Column
	Weekday    time.Weekday
	Today      bool
	decoration *HeaderDecoration
}

// Name returns the display name, e.g. "Monday".
func (h *Header) Name() string {
	return h.Column.Title()
}

// Decoration returns the active decoration or nil.
func (h *Header) Decoration() *HeaderDecoration {
	return h.decoration
}

// Decorate builds the decoration if absent and returns it.
func (h *Header) Decorate() (d *HeaderDecoration, created bool) {
	if h.decoration != nil {
		return h.decoration, false
	}
	h.decoration = &HeaderDecoration{}
	return h.decoration, true
}

// Undecorate removes the decoration.
func (h *Header) Undecorate() {
	h.decoration = nil
}
