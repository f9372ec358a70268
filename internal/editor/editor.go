// Package editor applies user edits to the grid surface and persists them.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/logger"
	"github.com/javiermolinar/lifegrid/internal/schedule"
	"github.com/javiermolinar/lifegrid/internal/store"
	"github.com/javiermolinar/lifegrid/internal/tracker"
)

// Editor errors.
var (
	ErrNotEditing   = errors.New("edit mode is off")
	ErrNotEditable  = errors.New("cell cannot hold an activity")
	ErrEmptySource  = errors.New("nothing to move from an empty cell")
	ErrNoDrag       = errors.New("no cell is being moved")
	ErrUnknownSlot  = errors.New("time slot not found")
	ErrLastSlot     = errors.New("cannot remove the last time slot")
	ErrUnknownEntry = errors.New("activity not found")
)

// Editor owns edit mode and every mutation of the surface.
type Editor struct {
	surface *grid.Surface
	tracker *tracker.Tracker
	store   *store.Store
	catalog *schedule.Catalog

	editing bool
	drag    *grid.Position
}

// New creates an editor. catalog may be nil for an empty custom catalog.
func New(surface *grid.Surface, tr *tracker.Tracker, st *store.Store, catalog *schedule.Catalog) *Editor {
	if catalog == nil {
		catalog = schedule.NewCatalog(nil)
	}
	return &Editor{surface: surface, tracker: tr, store: st, catalog: catalog}
}

// Editing reports whether edit mode is on.
func (e *Editor) Editing() bool {
	return e.editing
}

// ToggleEditMode flips edit mode and returns the new state. Leaving edit mode
// cancels any drag in progress.
func (e *Editor) ToggleEditMode() bool {
	e.editing = !e.editing
	if !e.editing {
		e.drag = nil
	}
	logger.Debug("edit mode", "on", e.editing)
	return e.editing
}

// Catalog returns the preset catalog.
func (e *Editor) Catalog() *schedule.Catalog {
	return e.catalog
}

// Dragging returns the grabbed position, if any.
func (e *Editor) Dragging() (grid.Position, bool) {
	if e.drag == nil {
		return grid.Position{}, false
	}
	return *e.drag, true
}

func (e *Editor) cell(pos grid.Position) (*grid.Cell, error) {
	if pos.Column == schedule.ColumnTime || !pos.Column.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrNotEditable, pos.Column)
	}
	c := e.surface.Cell(pos.Slot, pos.Column)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlot, pos.Slot.Label())
	}
	return c, nil
}

func (e *Editor) save(ctx context.Context) error {
	if err := e.store.Save(ctx, e.surface); err != nil {
		logger.Error("saving schedule", "err", err)
		return err
	}
	return nil
}

// Assign overwrites the cell at pos with preset and saves.
func (e *Editor) Assign(ctx context.Context, pos grid.Position, p schedule.Preset) error {
	if !e.editing {
		return ErrNotEditing
	}
	c, err := e.cell(pos)
	if err != nil {
		return err
	}
	c.Assignment = p.Assignment()
	logger.Debug("assigned", "pos", pos.String(), "activity", p.Name)
	return e.save(ctx)
}

// AssignKey assigns the catalog preset with the given key.
func (e *Editor) AssignKey(ctx context.Context, pos grid.Position, key string) error {
	p, ok := e.catalog.Lookup(key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntry, key)
	}
	return e.Assign(ctx, pos, p)
}

// Clear empties the cell at pos and saves.
func (e *Editor) Clear(ctx context.Context, pos grid.Position) error {
	if !e.editing {
		return ErrNotEditing
	}
	c, err := e.cell(pos)
	if err != nil {
		return err
	}
	c.Assignment = schedule.Assignment{}
	return e.save(ctx)
}

// StartDrag grabs an assigned cell.
func (e *Editor) StartDrag(pos grid.Position) error {
	if !e.editing {
		return ErrNotEditing
	}
	c, err := e.cell(pos)
	if err != nil {
		return err
	}
	if c.Assignment.IsEmpty() {
		return ErrEmptySource
	}
	e.drag = &pos
	return nil
}

// CancelDrag drops the grab without changes.
func (e *Editor) CancelDrag() {
	e.drag = nil
}

// Drop swaps the grabbed cell with target and saves.
func (e *Editor) Drop(ctx context.Context, target grid.Position) error {
	if !e.editing {
		return ErrNotEditing
	}
	if e.drag == nil {
		return ErrNoDrag
	}
	src := *e.drag
	e.drag = nil
	return e.Swap(ctx, src, target)
}

// Swap exchanges two cells' assignments. Swapping with an empty cell moves
// the activity and empties the source.
func (e *Editor) Swap(ctx context.Context, a, b grid.Position) error {
	if !e.editing {
		return ErrNotEditing
	}
	ca, err := e.cell(a)
	if err != nil {
		return err
	}
	cb, err := e.cell(b)
	if err != nil {
		return err
	}
	if ca == cb {
		return nil
	}
	ca.Assignment, cb.Assignment = cb.Assignment, ca.Assignment
	logger.Debug("swapped", "from", a.String(), "to", b.String())
	return e.save(ctx)
}

// CreatePreset adds a custom preset. A duplicate name returns the existing
// preset and saves nothing.
func (e *Editor) CreatePreset(ctx context.Context, name, icon, class string) (schedule.Preset, error) {
	if !e.editing {
		return schedule.Preset{}, ErrNotEditing
	}
	p, added, err := e.catalog.AddCustom(name, icon, class)
	if err != nil {
		return schedule.Preset{}, err
	}
	if !added {
		return p, nil
	}
	if err := e.store.SaveCatalog(ctx, e.catalog); err != nil {
		return p, err
	}
	logger.Info("custom activity created", "name", p.Name)
	return p, nil
}

// InsertSlot parses input, adds a row in sorted position and persists.
func (e *Editor) InsertSlot(ctx context.Context, input string) (schedule.TimeSlot, error) {
	if !e.editing {
		return 0, ErrNotEditing
	}
	slot, err := schedule.ParseTimeSlot(input)
	if err != nil {
		return 0, err
	}
	if e.surface.Row(slot) != nil {
		return 0, fmt.Errorf("%w: %s", schedule.ErrDuplicateSlot, slot.Label())
	}
	if _, err := e.surface.InsertRow(slot); err != nil {
		return 0, err
	}
	e.tracker.Invalidate()

	if err := e.store.SaveSlots(ctx, e.surface.Slots()); err != nil {
		return slot, err
	}
	logger.Info("time slot added", "slot", slot.Key())
	return slot, e.save(ctx)
}

// RemoveSlot removes a row and its assignments, then persists.
func (e *Editor) RemoveSlot(ctx context.Context, slot schedule.TimeSlot) error {
	if !e.editing {
		return ErrNotEditing
	}
	if e.surface.Row(slot) == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSlot, slot.Label())
	}
	if e.surface.Len() == 1 {
		return ErrLastSlot
	}
	if e.drag != nil && e.drag.Slot == slot {
		e.drag = nil
	}
	if err := e.surface.RemoveRow(slot); err != nil {
		return err
	}
	e.tracker.Invalidate()

	if err := e.store.SaveSlots(ctx, e.surface.Slots()); err != nil {
		return err
	}
	logger.Info("time slot removed", "slot", slot.Key())
	return e.save(ctx)
}
