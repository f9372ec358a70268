// Package grid holds the retained weekly grid that the tracker patches and
// the TUI renders.
package grid

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// Grid errors.
var (
	ErrDuplicateRow = errors.New("row already exists")
	ErrRowNotFound  = errors.New("row not found")
)

// Row is one rendered time slot.
type Row struct {
	Slot     schedule.TimeSlot
	Time     *TimeCell
	Current  bool
	cells    map[schedule.Column]*Cell
	detached bool
}

// Cell returns the cell in col, nil for the time column or unknown columns.
func (r *Row) Cell(col schedule.Column) *Cell {
	return r.cells[col]
}

// Cells returns the activity cells in display order.
func (r *Row) Cells() []*Cell {
	out := make([]*Cell, 0, len(r.cells))
	for _, col := range schedule.ActivityColumns() {
		out = append(out, r.cells[col])
	}
	return out
}

// Detached reports whether the row was removed from its surface.
func (r *Row) Detached() bool {
	return r.detached
}

// Surface is the ordered set of rows plus the seven weekday headers.
type Surface struct {
	rows       []*Row
	headers    []*Header
	generation uint64
	flapsOpen  bool
}

// NewSurface builds a surface with one row per slot. Duplicate slots are
// collapsed.
func NewSurface(slots []schedule.TimeSlot) *Surface {
	s := &Surface{flapsOpen: true}
	for _, col := range schedule.WeekdayColumns() {
		day, _ := col.Weekday()
		s.headers = append(s.headers, &Header{Column: col, Weekday: day})
	}
	sorted := slices.Clone(slots)
	slices.Sort(sorted)
	for _, slot := range slices.Compact(sorted) {
		s.rows = append(s.rows, s.newRow(slot))
	}
	s.refreshZzz()
	return s
}

func (s *Surface) newRow(slot schedule.TimeSlot) *Row {
	r := &Row{
		Slot:  slot,
		Time:  &TimeCell{label: slot.Label()},
		cells: make(map[schedule.Column]*Cell, 8),
	}
	for _, col := range schedule.ActivityColumns() {
		c := &Cell{Column: col}
		if col.IsWeekday() {
			c.flap = &Flap{Open: s.flapsOpen, TimeText: slot.Label()}
		}
		r.cells[col] = c
	}
	return r
}

// refreshZzz moves the zzz marker to the last row's flaps.
func (s *Surface) refreshZzz() {
	for i, r := range s.rows {
		last := i == len(s.rows)-1
		for _, c := range r.cells {
			if c.flap != nil {
				c.flap.Zzz = last
			}
		}
	}
}

// Rows returns the rows in ascending slot order.
func (s *Surface) Rows() []*Row {
	out := make([]*Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Len returns the number of rows.
func (s *Surface) Len() int {
	return len(s.rows)
}

// Headers returns the weekday headers, monday first.
func (s *Surface) Headers() []*Header {
	out := make([]*Header, len(s.headers))
	copy(out, s.headers)
	return out
}

// Header returns the header for a weekday.
func (s *Surface) Header(col schedule.Column) *Header {
	for _, h := range s.headers {
		if h.Column == col {
			return h
		}
	}
	return nil
}

// Slots returns the row slots in ascending order.
func (s *Surface) Slots() []schedule.TimeSlot {
	out := make([]schedule.TimeSlot, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Slot
	}
	return out
}

// Row returns the row for slot, or nil.
func (s *Surface) Row(slot schedule.TimeSlot) *Row {
	i, ok := s.index(slot)
	if !ok {
		return nil
	}
	return s.rows[i]
}

// Cell returns the cell at (slot, col), or nil.
func (s *Surface) Cell(slot schedule.TimeSlot, col schedule.Column) *Cell {
	r := s.Row(slot)
	if r == nil {
		return nil
	}
	return r.Cell(col)
}

func (s *Surface) index(slot schedule.TimeSlot) (int, bool) {
	i := sort.Search(len(s.rows), func(i int) bool { return s.rows[i].Slot >= slot })
	return i, i < len(s.rows) && s.rows[i].Slot == slot
}

// InsertRow adds an empty row in sorted position.
func (s *Surface) InsertRow(slot schedule.TimeSlot) (*Row, error) {
	i, ok := s.index(slot)
	if ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRow, slot.Label())
	}
	r := s.newRow(slot)
	s.rows = append(s.rows, nil)
	copy(s.rows[i+1:], s.rows[i:])
	s.rows[i] = r
	s.refreshZzz()
	s.generation++
	return r, nil
}

// RemoveRow deletes the row for slot.
func (s *Surface) RemoveRow(slot schedule.TimeSlot) error {
	i, ok := s.index(slot)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRowNotFound, slot.Label())
	}
	s.rows[i].detached = true
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	s.refreshZzz()
	s.generation++
	return nil
}

// Generation increments on every structural change.
func (s *Surface) Generation() uint64 {
	return s.generation
}

// SetFlapsOpen opens or closes every flap.
func (s *Surface) SetFlapsOpen(open bool) {
	s.flapsOpen = open
	for _, r := range s.rows {
		for _, c := range r.cells {
			if c.flap != nil {
				c.flap.Open = open
			}
		}
	}
}

// FlapsOpen reports the state last applied by SetFlapsOpen.
func (s *Surface) FlapsOpen() bool {
	return s.flapsOpen
}

// ClearAssignments empties every cell and restores the default time labels.
func (s *Surface) ClearAssignments() {
	for _, r := range s.rows {
		r.Time.SetText(r.Slot.Label())
		for _, c := range r.cells {
			c.Assignment = schedule.Assignment{}
		}
	}
}

// Position addresses one activity cell.
type Position struct {
	Slot   schedule.TimeSlot
	Column schedule.Column
}

func (p Position) String() string {
	return fmt.Sprintf("%s/%s", p.Slot.Label(), p.Column)
}
