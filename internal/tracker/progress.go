// Package tracker derives the current slot, slot progress, day progress and
// sleep state from the wall clock, and patches the grid surface to match.
package tracker

import (
	"math"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

const (
	// StaleThreshold is how many hours past its start a slot may still be
	// marked current.
	StaleThreshold = 2.0

	// DefaultSlotDuration applies to the last slot of the day, in hours.
	DefaultSlotDuration = 1.0
)

// Window is the awake window, in fractional hours. Wake must be before Sleep.
type Window struct {
	WakeHour  float64
	SleepHour float64
}

// DefaultWindow is 7:30 AM to 11:00 PM.
var DefaultWindow = Window{WakeHour: 7.5, SleepHour: 23}

// DayProgress returns the elapsed share of the awake window as 0..100.
func (w Window) DayProgress(now float64) int {
	switch {
	case now < w.WakeHour:
		return 0
	case now >= w.SleepHour:
		return 100
	default:
		return int(math.Round(100 * (now - w.WakeHour) / (w.SleepHour - w.WakeHour)))
	}
}

// IsSleepTime reports whether now falls in [sleep, 24) or [0, wake).
func (w Window) IsSleepTime(now float64) bool {
	return now >= w.SleepHour || now < w.WakeHour
}

// Current describes the slot covering now.
type Current struct {
	Index    int
	Slot     schedule.TimeSlot
	Duration float64 // hours until the next slot
	Elapsed  float64 // hours since the slot started
	Progress float64 // 0..100
}

// Stale reports whether the slot started too long ago to be marked current.
func (c Current) Stale() bool {
	return c.Elapsed >= StaleThreshold
}

// FindCurrent picks the most recent slot at or before now from an ascending
// slot list. ok is false when now is before every slot.
func FindCurrent(now float64, sorted []schedule.TimeSlot) (c Current, ok bool) {
	best := -1
	bestDiff := math.Inf(1)
	for i, s := range sorted {
		diff := now - s.Hour()
		if diff >= 0 && diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best < 0 {
		return Current{}, false
	}

	duration := DefaultSlotDuration
	if best < len(sorted)-1 {
		duration = sorted[best+1].Hour() - sorted[best].Hour()
	}

	return Current{
		Index:    best,
		Slot:     sorted[best],
		Duration: duration,
		Elapsed:  bestDiff,
		Progress: SlotProgress(bestDiff, duration),
	}, true
}

// SlotProgress returns clamp(elapsed/duration, 0, 1) as a percentage.
func SlotProgress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 100
	}
	return math.Min(math.Max(elapsed/duration, 0), 1) * 100
}
