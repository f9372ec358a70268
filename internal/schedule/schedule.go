// Package schedule defines the core domain types for lifegrid.
package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidTimeSlot = errors.New("time must be like 7:30 AM, 7:30AM or 19:30")
	ErrDuplicateSlot   = errors.New("time slot already exists")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrEmptyPresetName = errors.New("activity name cannot be empty")
)

// Column is one of the nine fixed grid columns.
type Column string

const (
	ColumnTime      Column = "time"
	ColumnRituals   Column = "rituals"
	ColumnMonday    Column = "monday"
	ColumnTuesday   Column = "tuesday"
	ColumnWednesday Column = "wednesday"
	ColumnThursday  Column = "thursday"
	ColumnFriday    Column = "friday"
	ColumnSaturday  Column = "saturday"
	ColumnSunday    Column = "sunday"
)

var columns = []Column{
	ColumnTime, ColumnRituals,
	ColumnMonday, ColumnTuesday, ColumnWednesday, ColumnThursday,
	ColumnFriday, ColumnSaturday, ColumnSunday,
}

// Columns returns all columns in display order.
func Columns() []Column {
	out := make([]Column, len(columns))
	copy(out, columns)
	return out
}

// ActivityColumns returns the columns that can hold an assignment.
func ActivityColumns() []Column {
	return Columns()[1:]
}

// WeekdayColumns returns monday through sunday.
func WeekdayColumns() []Column {
	return Columns()[2:]
}

// Valid returns true if c is one of the fixed columns.
func (c Column) Valid() bool {
	for _, col := range columns {
		if col == c {
			return true
		}
	}
	return false
}

// IsWeekday returns true for monday through sunday.
func (c Column) IsWeekday() bool {
	return c.Valid() && c != ColumnTime && c != ColumnRituals
}

// Title returns the capitalized column name used in headers and CSV.
func (c Column) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Weekday returns the time.Weekday for a weekday column.
// ok is false for time and rituals.
func (c Column) Weekday() (day time.Weekday, ok bool) {
	switch c {
	case ColumnSunday:
		return time.Sunday, true
	case ColumnMonday:
		return time.Monday, true
	case ColumnTuesday:
		return time.Tuesday, true
	case ColumnWednesday:
		return time.Wednesday, true
	case ColumnThursday:
		return time.Thursday, true
	case ColumnFriday:
		return time.Friday, true
	case ColumnSaturday:
		return time.Saturday, true
	default:
		return 0, false
	}
}

// ColumnForWeekday maps a weekday to its grid column.
func ColumnForWeekday(d time.Weekday) Column {
	return Column(strings.ToLower(d.String()))
}

// ParseColumn parses a column name case-insensitively.
func ParseColumn(s string) (Column, error) {
	c := Column(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
	}
	return c, nil
}

// Assignment is the activity occupying one cell. The zero value is an empty cell.
type Assignment struct {
	Icon  string `json:"icon"`
	Text  string `json:"text"`
	Class string `json:"class"`
}

// IsEmpty reports whether the cell has no activity.
func (a Assignment) IsEmpty() bool {
	return a.Icon == "" && a.Text == ""
}

// Display renders the assignment as "<icon> <text>".
func (a Assignment) Display() string {
	return strings.TrimSpace(a.Icon + " " + a.Text)
}
