package schedule

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

// TimeSlot is an hour of day in [0, 24). 7.5 is 7:30 AM.
type TimeSlot float64

// slotLayouts are the accepted input formats, tried in order.
var slotLayouts = []string{"3:04 PM", "3:04PM", "15:04"}

// ParseTimeSlot parses user input such as "7:30 AM", "7:30am" or "19:30".
func ParseTimeSlot(s string) (TimeSlot, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	for _, layout := range slotLayouts {
		t, err := time.Parse(layout, in)
		if err != nil {
			continue
		}
		return TimeSlot(float64(t.Hour()) + float64(t.Minute())/60), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, s)
}

// ParseKey parses the persisted decimal form produced by Key.
func ParseKey(key string) (TimeSlot, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(key), 64)
	if err != nil || f < 0 || f >= 24 || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: key %q", ErrInvalidTimeSlot, key)
	}
	return TimeSlot(f), nil
}

// Key returns the decimal string used as the document key ("7.5", "9").
func (s TimeSlot) Key() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64)
}

// Hour returns the slot as a float hour of day.
func (s TimeSlot) Hour() float64 {
	return float64(s)
}

// clock splits the slot into whole hours and minutes.
func (s TimeSlot) clock() (int, int) {
	total := int(math.Round(float64(s) * 60))
	return (total / 60) % 24, total % 60
}

// Label renders the slot as "7:30 AM".
func (s TimeSlot) Label() string {
	h, m := s.clock()
	return formatClock(h, m)
}

// HHMM renders the slot in 24-hour "07:30" form.
func (s TimeSlot) HHMM() string {
	h, m := s.clock()
	return fmt.Sprintf("%02d:%02d", h, m)
}

func (s TimeSlot) String() string {
	return s.Label()
}

// SortSlots sorts slots ascending in place.
func SortSlots(slots []TimeSlot) {
	slices.Sort(slots)
}

// ContainsSlot reports whether slots holds s exactly.
func ContainsSlot(slots []TimeSlot, s TimeSlot) bool {
	return slices.Contains(slots, s)
}

// HourOfDay returns t as a fractional hour, including seconds.
func HourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
}

// FormatClock renders the live clock text for t, e.g. "9:05 PM".
func FormatClock(t time.Time) string {
	return formatClock(t.Hour(), t.Minute())
}

func formatClock(h, m int) string {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}
