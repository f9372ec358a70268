package integration

import (
	"testing"
	"time"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// The tracker reads hours and weekdays from the time it is given, so the
// same instant lands on different rows in different zones.
func TestTrackerUsesTheClockZone(t *testing.T) {
	s := openSession(t, testConfig(t))

	instant := time.Date(2026, 3, 2, 14, 15, 0, 0, time.UTC)
	tokyo := time.FixedZone("JST", 9*60*60)

	tests := []struct {
		name  string
		now   time.Time
		slot  schedule.TimeSlot
		today schedule.Column
		sleep bool
	}{
		{"utc", instant, 14, schedule.ColumnMonday, false},
		{"tokyo", instant.In(tokyo), 23, schedule.ColumnMonday, true},
		{"tokyo next day", instant.Add(2 * time.Hour).In(tokyo), 0, schedule.ColumnTuesday, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := s.Tracker.Tick(tt.now)
			t.Logf("now %v hour %.2f", tt.now, schedule.HourOfDay(tt.now))

			if tt.slot != 0 {
				if !snap.HasCurrent || snap.Current.Slot != tt.slot {
					t.Errorf("current = %v (has %v), want %v", snap.Current.Slot, snap.HasCurrent, tt.slot)
				}
			}
			if snap.Sleeping != tt.sleep {
				t.Errorf("sleeping = %v, want %v", snap.Sleeping, tt.sleep)
			}
			if !s.Surface.Header(tt.today).Today {
				t.Errorf("%s should be today", tt.today)
			}
		})
	}
}
