package grid

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func TestNewSurfaceCollapsesUnsortedDuplicates(t *testing.T) {
	in := []schedule.TimeSlot{9, 7.5, 9}
	s := NewSurface(in)

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (slots %v)", s.Len(), s.Slots())
	}
	if in[0] != 9 || in[1] != 7.5 {
		t.Errorf("input slice reordered: %v", in)
	}
	for i, slot := range []schedule.TimeSlot{7.5, 9} {
		r := s.Row(slot)
		if r == nil || r.Slot != slot {
			t.Fatalf("Row(%v) = %v", slot, r)
		}
		if got := s.Rows()[i]; got != r {
			t.Errorf("Rows()[%d] is not Row(%v)", i, slot)
		}
	}
	if _, err := s.InsertRow(9); !errors.Is(err, ErrDuplicateRow) {
		t.Errorf("InsertRow(9) error = %v, want ErrDuplicateRow", err)
	}
}

func TestNewSurface(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{9, 7.5, 12, 9})

	slots := s.Slots()
	want := []schedule.TimeSlot{7.5, 9, 12}
	if len(slots) != len(want) {
		t.Fatalf("Slots() = %v, want %v", slots, want)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("Slots()[%d] = %v, want %v", i, slots[i], want[i])
		}
	}

	headers := s.Headers()
	if len(headers) != 7 {
		t.Fatalf("Headers() len = %d, want 7", len(headers))
	}
	if headers[0].Weekday != time.Monday || headers[6].Weekday != time.Sunday {
		t.Errorf("header weekdays = %v..%v", headers[0].Weekday, headers[6].Weekday)
	}
	if s.Header(schedule.ColumnFriday).Name() != "Friday" {
		t.Errorf("Header(friday).Name() = %q", s.Header(schedule.ColumnFriday).Name())
	}
}

func TestFlapsSkipTimeAndRituals(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{8, 9})
	row := s.Row(8)

	if row.Cell(schedule.ColumnTime) != nil {
		t.Error("time column should not be an activity cell")
	}
	if row.Cell(schedule.ColumnRituals).Flap() != nil {
		t.Error("rituals cell should have no flap")
	}
	for _, col := range schedule.WeekdayColumns() {
		f := row.Cell(col).Flap()
		if f == nil {
			t.Fatalf("%s cell has no flap", col)
		}
		if f.TimeText != "8:00 AM" {
			t.Errorf("flap time = %q", f.TimeText)
		}
		if f.Zzz {
			t.Errorf("%s: only the last row carries zzz", col)
		}
	}
	if !s.Row(9).Cell(schedule.ColumnMonday).Flap().Zzz {
		t.Error("last row flap should carry zzz")
	}
}

func TestInsertRow(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{9, 10})
	gen := s.Generation()

	r, err := s.InsertRow(9.5)
	if err != nil {
		t.Fatalf("InsertRow() error: %v", err)
	}
	if r.Slot != 9.5 {
		t.Errorf("row slot = %v", r.Slot)
	}
	rows := s.Rows()
	if rows[1] != r {
		t.Errorf("inserted row not between 9 and 10: %v", s.Slots())
	}
	if s.Generation() == gen {
		t.Error("generation not bumped")
	}

	if _, err := s.InsertRow(9.5); !errors.Is(err, ErrDuplicateRow) {
		t.Errorf("duplicate InsertRow error = %v", err)
	}

	last, _ := s.InsertRow(22)
	if !last.Cell(schedule.ColumnSunday).Flap().Zzz {
		t.Error("new last row should carry zzz")
	}
	if s.Row(10).Cell(schedule.ColumnSunday).Flap().Zzz {
		t.Error("previous last row should lose zzz")
	}
}

func TestInsertRowInheritsFlapState(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{9})
	s.SetFlapsOpen(false)

	r, _ := s.InsertRow(10)
	if !r.Cell(schedule.ColumnMonday).Hidden() {
		t.Error("new row should inherit closed flaps")
	}
}

func TestRemoveRow(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{9, 10, 11})
	r := s.Row(10)

	if err := s.RemoveRow(10); err != nil {
		t.Fatalf("RemoveRow() error: %v", err)
	}
	if s.Row(10) != nil || s.Len() != 2 {
		t.Errorf("row still present: %v", s.Slots())
	}
	if !r.Detached() {
		t.Error("removed row should be detached")
	}
	if err := s.RemoveRow(10); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("second RemoveRow error = %v", err)
	}
	if s.Cell(10, schedule.ColumnMonday) != nil {
		t.Error("Cell() on missing row should be nil")
	}
}

func TestTimeCellDecoration(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{9})
	tc := s.Row(9).Time

	if tc.Text() != "9:00 AM" || tc.Decoration() != nil {
		t.Fatalf("fresh cell = %q, %v", tc.Text(), tc.Decoration())
	}

	d, created := tc.Decorate()
	if !created {
		t.Error("first Decorate should build the structure")
	}
	d.Progress = 25
	d.LiveTime = "9:15 AM"
	if tc.Text() != "9:00 AM 9:15 AM" {
		t.Errorf("decorated Text() = %q", tc.Text())
	}
	if tc.CleanText() != "9:00 AM" {
		t.Errorf("CleanText() = %q", tc.CleanText())
	}

	again, created := tc.Decorate()
	if created || again != d {
		t.Error("second Decorate should reuse the structure")
	}

	tc.Undecorate()
	if tc.Text() != "9:00 AM" || tc.Decoration() != nil {
		t.Errorf("after Undecorate Text() = %q", tc.Text())
	}
	tc.Undecorate()
}

func TestCellTextAndClean(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{9})
	c := s.Cell(9, schedule.ColumnMonday)
	c.Assignment = schedule.Assignment{Icon: " ▲", Text: "Gym ", Class: "exercise"}

	if c.Text() != "▲ Gym 9:00 AM" {
		t.Errorf("Text() = %q", c.Text())
	}
	clean := c.Clean()
	if clean.Icon != "▲" || clean.Text != "Gym" || clean.Class != "exercise" {
		t.Errorf("Clean() = %+v", clean)
	}

	s.ClearAssignments()
	if !c.Assignment.IsEmpty() {
		t.Error("ClearAssignments left content")
	}
}

func TestSetFlapsOpen(t *testing.T) {
	s := NewSurface([]schedule.TimeSlot{9, 10})
	s.SetFlapsOpen(false)
	for _, r := range s.Rows() {
		for _, c := range r.Cells() {
			if c.Column == schedule.ColumnRituals {
				if c.Hidden() {
					t.Error("rituals cell must never be hidden")
				}
				continue
			}
			if !c.Hidden() {
				t.Errorf("%s %s should be hidden", r.Slot.Label(), c.Column)
			}
		}
	}
	if s.FlapsOpen() {
		t.Error("FlapsOpen() = true after close")
	}
}
