// Package summary aggregates a schedule document into weekly hour totals.
package summary

import (
	"sort"
	"time"

	"github.com/javiermolinar/lifegrid/internal/dateutil"
	"github.com/javiermolinar/lifegrid/internal/schedule"
	"github.com/javiermolinar/lifegrid/internal/tracker"
)

// unclassified groups assignments that carry no class.
const unclassified = "other"

// ClassTotal is the planned time for one activity class across the week.
type ClassTotal struct {
	Class string
	Hours float64
	Cells int
}

// DayTotal is the planned and open time for one weekday column.
type DayTotal struct {
	Column  schedule.Column
	Date    time.Time
	Planned float64
	Open    float64
}

// WeekSummary holds aggregated week data.
type WeekSummary struct {
	Start time.Time
	End   time.Time

	// Classes is ordered by hours, most first.
	Classes []ClassTotal
	// Days runs Monday through Sunday.
	Days []DayTotal

	// RitualHours is the rituals column total. Rituals repeat every day.
	RitualHours float64
	// GridHours is the span one day column covers.
	GridHours float64
}

// SummarizeWeek totals the document for the week containing weekOf.
// Each slot lasts until the next one; the last lasts the tracker default.
// A ritual fills its row on every day whose own cell is empty.
func SummarizeWeek(weekOf time.Time, doc *schedule.Document) *WeekSummary {
	start, end := dateutil.WeekRange(weekOf)
	s := &WeekSummary{Start: start, End: end}

	slots := doc.Slots()
	durations := slotDurations(slots)
	for _, d := range durations {
		s.GridHours += d
	}

	classes := make(map[string]*ClassTotal)
	add := func(a schedule.Assignment, hours float64) {
		class := a.Class
		if class == "" {
			class = unclassified
		}
		ct, ok := classes[class]
		if !ok {
			ct = &ClassTotal{Class: class}
			classes[class] = ct
		}
		ct.Hours += hours
		ct.Cells++
	}

	for i, slot := range slots {
		if a, ok := doc.Get(slot, schedule.ColumnRituals); ok && !a.IsEmpty() {
			s.RitualHours += durations[i]
		}
	}

	for _, col := range schedule.WeekdayColumns() {
		date, _ := dateutil.DateOf(start, col)
		day := DayTotal{Column: col, Date: date}
		for i, slot := range slots {
			a, ok := doc.Get(slot, col)
			if !ok || a.IsEmpty() {
				if r, ok := doc.Get(slot, schedule.ColumnRituals); ok && !r.IsEmpty() {
					add(r, durations[i])
					day.Planned += durations[i]
				}
				continue
			}
			add(a, durations[i])
			day.Planned += durations[i]
		}
		day.Open = s.GridHours - day.Planned
		s.Days = append(s.Days, day)
	}

	s.Classes = make([]ClassTotal, 0, len(classes))
	for _, ct := range classes {
		s.Classes = append(s.Classes, *ct)
	}
	sort.Slice(s.Classes, func(i, j int) bool {
		if s.Classes[i].Hours != s.Classes[j].Hours {
			return s.Classes[i].Hours > s.Classes[j].Hours
		}
		return s.Classes[i].Class < s.Classes[j].Class
	})
	return s
}

// PlannedHours is the week's total planned time across every day.
func (s *WeekSummary) PlannedHours() float64 {
	var total float64
	for _, d := range s.Days {
		total += d.Planned
	}
	return total
}

// Busiest returns the day with the most planned time. Ties go to the
// earlier day. ok is false when nothing is planned.
func (s *WeekSummary) Busiest() (day DayTotal, ok bool) {
	for _, d := range s.Days {
		if d.Planned > day.Planned {
			day, ok = d, true
		}
	}
	return day, ok
}

func slotDurations(sorted []schedule.TimeSlot) []float64 {
	out := make([]float64, len(sorted))
	for i := range sorted {
		if i == len(sorted)-1 {
			out[i] = tracker.DefaultSlotDuration
			continue
		}
		out[i] = sorted[i+1].Hour() - sorted[i].Hour()
	}
	return out
}
