package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeSlot(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeSlot
		wantErr bool
	}{
		{name: "12h with space", input: "7:30 AM", want: 7.5},
		{name: "12h no space", input: "7:30AM", want: 7.5},
		{name: "12h lowercase", input: "9:15pm", want: 21.25},
		{name: "noon", input: "12:00 PM", want: 12},
		{name: "midnight", input: "12:00 AM", want: 0},
		{name: "24h", input: "19:30", want: 19.5},
		{name: "24h single digit hour", input: "6:45", want: 6.75},
		{name: "surrounding spaces", input: "  08:00 ", want: 8},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "soon", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "13 with suffix", input: "13:00 PM", wantErr: true},
		{name: "missing minutes", input: "7 AM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeSlot(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeSlot) {
					t.Fatalf("ParseTimeSlot(%q) error = %v, want ErrInvalidTimeSlot", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimeSlot(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseTimeSlot(%q) = %v, want %v", tt.input, float64(got), float64(tt.want))
			}
		})
	}
}

func TestTimeSlotKey(t *testing.T) {
	tests := []struct {
		slot TimeSlot
		want string
	}{
		{slot: 7.5, want: "7.5"},
		{slot: 9, want: "9"},
		{slot: 0, want: "0"},
		{slot: 21.25, want: "21.25"},
	}

	for _, tt := range tests {
		if got := tt.slot.Key(); got != tt.want {
			t.Errorf("TimeSlot(%v).Key() = %q, want %q", float64(tt.slot), got, tt.want)
		}
		back, err := ParseKey(tt.want)
		if err != nil || back != tt.slot {
			t.Errorf("ParseKey(%q) = %v, %v", tt.want, float64(back), err)
		}
	}
}

func TestParseKeyRejects(t *testing.T) {
	for _, key := range []string{"", "abc", "-1", "24", "NaN"} {
		if _, err := ParseKey(key); err == nil {
			t.Errorf("ParseKey(%q) expected error", key)
		}
	}
}

func TestTimeSlotLabel(t *testing.T) {
	tests := []struct {
		slot TimeSlot
		want string
	}{
		{slot: 0, want: "12:00 AM"},
		{slot: 7.5, want: "7:30 AM"},
		{slot: 12, want: "12:00 PM"},
		{slot: 13.25, want: "1:15 PM"},
		{slot: 23, want: "11:00 PM"},
	}

	for _, tt := range tests {
		if got := tt.slot.Label(); got != tt.want {
			t.Errorf("TimeSlot(%v).Label() = %q, want %q", float64(tt.slot), got, tt.want)
		}
	}
}

func TestTimeSlotHHMM(t *testing.T) {
	if got := TimeSlot(7.5).HHMM(); got != "07:30" {
		t.Errorf("HHMM() = %q, want 07:30", got)
	}
	if got := TimeSlot(19.75).HHMM(); got != "19:45" {
		t.Errorf("HHMM() = %q, want 19:45", got)
	}
}

func TestHourOfDay(t *testing.T) {
	now := time.Date(2026, 3, 4, 9, 15, 36, 0, time.UTC)
	got := HourOfDay(now)
	want := 9 + 15.0/60 + 36.0/3600
	if got != want {
		t.Errorf("HourOfDay() = %v, want %v", got, want)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		hour, min int
		want      string
	}{
		{hour: 0, min: 5, want: "12:05 AM"},
		{hour: 9, min: 0, want: "9:00 AM"},
		{hour: 21, min: 42, want: "9:42 PM"},
	}

	for _, tt := range tests {
		now := time.Date(2026, 3, 4, tt.hour, tt.min, 0, 0, time.UTC)
		if got := FormatClock(now); got != tt.want {
			t.Errorf("FormatClock(%02d:%02d) = %q, want %q", tt.hour, tt.min, got, tt.want)
		}
	}
}

func TestSortSlots(t *testing.T) {
	slots := []TimeSlot{12, 7.5, 9, 8}
	SortSlots(slots)
	want := []TimeSlot{7.5, 8, 9, 12}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("SortSlots() = %v, want %v", slots, want)
		}
	}
	if !ContainsSlot(slots, 9) || ContainsSlot(slots, 10) {
		t.Error("ContainsSlot() mismatch")
	}
}
