package tracker

import (
	"math"
	"testing"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func TestDayProgress(t *testing.T) {
	w := DefaultWindow

	tests := []struct {
		name string
		now  float64
		want int
	}{
		{name: "midnight", now: 0, want: 0},
		{name: "just before wake", now: 7.49, want: 0},
		{name: "at wake", now: 7.5, want: 0},
		{name: "midway", now: 15.25, want: 50},
		{name: "rounds", now: 8, want: 3},
		{name: "at sleep", now: 23, want: 100},
		{name: "late", now: 23.9, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.DayProgress(tt.now); got != tt.want {
				t.Errorf("DayProgress(%v) = %d, want %d", tt.now, got, tt.want)
			}
		})
	}
}

func TestDayProgressMonotonic(t *testing.T) {
	w := DefaultWindow
	prev := -1
	for now := 0.0; now < 24; now += 1.0 / 60 {
		got := w.DayProgress(now)
		if got < prev {
			t.Fatalf("DayProgress decreased at %v: %d < %d", now, got, prev)
		}
		if got < 0 || got > 100 {
			t.Fatalf("DayProgress(%v) = %d out of range", now, got)
		}
		prev = got
	}
}

func TestIsSleepTime(t *testing.T) {
	w := DefaultWindow

	tests := []struct {
		now  float64
		want bool
	}{
		{now: 0, want: true},
		{now: 3, want: true},
		{now: 7.49, want: true},
		{now: 7.5, want: false},
		{now: 12, want: false},
		{now: 22.99, want: false},
		{now: 23, want: true},
		{now: 23.99, want: true},
	}

	for _, tt := range tests {
		if got := w.IsSleepTime(tt.now); got != tt.want {
			t.Errorf("IsSleepTime(%v) = %v, want %v", tt.now, got, tt.want)
		}
	}
}

func TestFindCurrent(t *testing.T) {
	slots := []schedule.TimeSlot{9, 10}

	tests := []struct {
		name         string
		now          float64
		wantOK       bool
		wantSlot     schedule.TimeSlot
		wantProgress float64
		wantStale    bool
	}{
		{name: "before first slot", now: 8.5, wantOK: false},
		{name: "quarter", now: 9.25, wantOK: true, wantSlot: 9, wantProgress: 25},
		{name: "three quarters", now: 9.75, wantOK: true, wantSlot: 9, wantProgress: 75},
		{name: "exact start", now: 10, wantOK: true, wantSlot: 10, wantProgress: 0},
		{name: "last slot default hour", now: 10.5, wantOK: true, wantSlot: 10, wantProgress: 50},
		{name: "past last slot clamps", now: 11.5, wantOK: true, wantSlot: 10, wantProgress: 100},
		{name: "stale", now: 12, wantOK: true, wantSlot: 10, wantProgress: 100, wantStale: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := FindCurrent(tt.now, slots)
			if ok != tt.wantOK {
				t.Fatalf("FindCurrent(%v) ok = %v, want %v", tt.now, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if c.Slot != tt.wantSlot {
				t.Errorf("slot = %v, want %v", c.Slot, tt.wantSlot)
			}
			if math.Abs(c.Progress-tt.wantProgress) > 1e-9 {
				t.Errorf("progress = %v, want %v", c.Progress, tt.wantProgress)
			}
			if c.Stale() != tt.wantStale {
				t.Errorf("stale = %v, want %v", c.Stale(), tt.wantStale)
			}
		})
	}
}

func TestFindCurrentInsertedSlot(t *testing.T) {
	slots := []schedule.TimeSlot{9, 9.5, 10}

	c, ok := FindCurrent(9.6, slots)
	if !ok || c.Slot != 9.5 {
		t.Fatalf("FindCurrent(9.6) = %v, %v; want 9.5", c.Slot, ok)
	}
	if c.Index != 1 {
		t.Errorf("index = %d, want 1", c.Index)
	}
	if math.Abs(c.Duration-0.5) > 1e-9 {
		t.Errorf("duration = %v, want 0.5", c.Duration)
	}
}

func TestSlotProgress(t *testing.T) {
	if got := SlotProgress(-1, 1); got != 0 {
		t.Errorf("negative elapsed = %v, want 0", got)
	}
	if got := SlotProgress(2, 1); got != 100 {
		t.Errorf("overflow = %v, want 100", got)
	}
	if got := SlotProgress(1, 0); got != 100 {
		t.Errorf("zero duration = %v, want 100", got)
	}
}
