// Package dateutil provides date parsing and week arithmetic for the grid.
package dateutil

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// ErrInvalidDateFormat is returned for dates that are neither a keyword nor YYYY-MM-DD.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format")

// ParseDate parses a date relative to now. Accepted forms are an empty
// string or "today", "yesterday", "last-week", "next-week" and YYYY-MM-DD.
// The result is midnight in now's location.
func ParseDate(s string, now time.Time) (time.Time, error) {
	today := TruncateToDay(now)
	switch input := strings.ToLower(strings.TrimSpace(s)); input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	case "last-week":
		return today.AddDate(0, 0, -7), nil
	case "next-week":
		return today.AddDate(0, 0, 7), nil
	default:
		t, err := time.ParseInLocation("2006-01-02", input, now.Location())
		if err != nil {
			return time.Time{}, ErrInvalidDateFormat
		}
		return t, nil
	}
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	t = TruncateToDay(t)
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday becomes day 7 in ISO week
	}
	monday = t.AddDate(0, 0, -(weekday - 1))
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// DateOf returns the date a weekday column falls on in the week starting at monday.
// ok is false for the time and rituals columns.
func DateOf(monday time.Time, col schedule.Column) (date time.Time, ok bool) {
	day, ok := col.Weekday()
	if !ok {
		return time.Time{}, false
	}
	offset := (int(day) + 6) % 7
	return monday.AddDate(0, 0, offset), true
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
