package schedule

import (
	"fmt"
	"time"
)

// Row maps each column to its assignment for one slot.
type Row map[Column]Assignment

// Document is the persisted schedule state.
type Document struct {
	Schedule map[string]Row `json:"schedule"`
	SavedAt  time.Time      `json:"savedAt"`
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{Schedule: make(map[string]Row)}
}

// Set stores an assignment, creating the slot row as needed.
func (d *Document) Set(slot TimeSlot, col Column, a Assignment) {
	if d.Schedule == nil {
		d.Schedule = make(map[string]Row)
	}
	row, ok := d.Schedule[slot.Key()]
	if !ok {
		row = make(Row)
		d.Schedule[slot.Key()] = row
	}
	row[col] = a
}

// Get returns the assignment at (slot, col).
func (d *Document) Get(slot TimeSlot, col Column) (Assignment, bool) {
	row, ok := d.Schedule[slot.Key()]
	if !ok {
		return Assignment{}, false
	}
	a, ok := row[col]
	return a, ok
}

// Slots returns the document's slots in ascending order.
// Keys that are not decimal hours are ignored.
func (d *Document) Slots() []TimeSlot {
	slots := make([]TimeSlot, 0, len(d.Schedule))
	for key := range d.Schedule {
		s, err := ParseKey(key)
		if err != nil {
			continue
		}
		slots = append(slots, s)
	}
	SortSlots(slots)
	return slots
}

// Validate checks that every key is a slot and every column is known.
func (d *Document) Validate() error {
	for key, row := range d.Schedule {
		if _, err := ParseKey(key); err != nil {
			return err
		}
		for col := range row {
			if !col.Valid() {
				return fmt.Errorf("%w: %q in slot %s", ErrUnknownColumn, col, key)
			}
		}
	}
	return nil
}
