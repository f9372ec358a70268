// Package store persists the schedule document, the custom activity catalog
// and the user's slot list to a key/value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/logger"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// Storage keys.
const (
	KeySchedule = "lifegrid:schedule"
	KeyCatalog  = "lifegrid:custom-activities"
	KeySlots    = "lifegrid:time-slots"
)

// ErrMalformed marks stored data that failed to parse.
var ErrMalformed = errors.New("malformed stored data")

// KV is the storage backend.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes the persisted records.
type Store struct {
	kv  KV
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the savedAt clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store over kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadResult summarizes a Load.
type LoadResult struct {
	Found   bool // a well-formed document was stored
	Applied int  // cells written to the surface
	Skipped int  // cells whose slot has no row
}

// Snapshot builds the document for the surface without writing it.
// Every row is included, time column too, with decoration stripped.
func (s *Store) Snapshot(surface *grid.Surface) *schedule.Document {
	doc := schedule.NewDocument()
	for _, r := range surface.Rows() {
		doc.Set(r.Slot, schedule.ColumnTime, schedule.Assignment{Text: r.Time.CleanText()})
		for _, c := range r.Cells() {
			doc.Set(r.Slot, c.Column, c.Clean())
		}
	}
	doc.SavedAt = s.now().UTC()
	return doc
}

// Save overwrites the stored document with the surface's contents.
func (s *Store) Save(ctx context.Context, surface *grid.Surface) error {
	doc := s.Snapshot(surface)
	if err := s.Replace(ctx, doc); err != nil {
		return err
	}
	logger.Debug("schedule saved", "slots", len(doc.Schedule))
	return nil
}

// Replace writes doc as the stored document, as is.
func (s *Store) Replace(ctx context.Context, doc *schedule.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	if err := s.kv.Set(ctx, KeySchedule, data); err != nil {
		return fmt.Errorf("saving schedule: %w", err)
	}
	return nil
}

// Document returns the stored document. A missing record returns
// (nil, nil); a malformed one returns ErrMalformed.
func (s *Store) Document(ctx context.Context) (*schedule.Document, error) {
	data, ok, err := s.kv.Get(ctx, KeySchedule)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var doc schedule.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Schedule == nil {
		return nil, fmt.Errorf("%w: missing schedule", ErrMalformed)
	}
	return &doc, nil
}

// Load replays the stored document onto surface. Entries for slots without
// a row are skipped. Malformed data is treated as no saved data.
func (s *Store) Load(ctx context.Context, surface *grid.Surface) (LoadResult, error) {
	doc, err := s.Document(ctx)
	if errors.Is(err, ErrMalformed) {
		logger.Warn("ignoring stored schedule", "err", err)
		return LoadResult{}, nil
	}
	if err != nil {
		return LoadResult{}, err
	}
	if doc == nil {
		return LoadResult{}, nil
	}

	res := Apply(doc, surface)
	res.Found = true
	logger.Debug("schedule loaded", "applied", res.Applied, "skipped", res.Skipped)
	return res, nil
}

// Apply writes doc's cells onto surface.
func Apply(doc *schedule.Document, surface *grid.Surface) LoadResult {
	var res LoadResult
	for key, row := range doc.Schedule {
		slot, err := schedule.ParseKey(key)
		if err != nil {
			res.Skipped += len(row)
			continue
		}
		r := surface.Row(slot)
		if r == nil {
			res.Skipped += len(row)
			continue
		}
		for col, a := range row {
			if col == schedule.ColumnTime {
				if a.Text != "" {
					r.Time.SetText(a.Text)
				}
				res.Applied++
				continue
			}
			c := r.Cell(col)
			if c == nil {
				res.Skipped++
				continue
			}
			c.Assignment = a
			res.Applied++
		}
	}
	return res
}

// LoadCatalog returns the stored custom presets. Malformed data yields an
// empty catalog.
func (s *Store) LoadCatalog(ctx context.Context) (*schedule.Catalog, error) {
	data, ok, err := s.kv.Get(ctx, KeyCatalog)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	if !ok {
		return schedule.NewCatalog(nil), nil
	}

	var custom []schedule.Preset
	if err := json.Unmarshal(data, &custom); err != nil {
		logger.Warn("ignoring stored activities", "err", err)
		return schedule.NewCatalog(nil), nil
	}
	return schedule.NewCatalog(custom), nil
}

// SaveCatalog writes the custom presets as an ordered list.
func (s *Store) SaveCatalog(ctx context.Context, c *schedule.Catalog) error {
	custom := c.Custom()
	if custom == nil {
		custom = []schedule.Preset{}
	}
	data, err := json.Marshal(custom)
	if err != nil {
		return fmt.Errorf("encoding activities: %w", err)
	}
	if err := s.kv.Set(ctx, KeyCatalog, data); err != nil {
		return fmt.Errorf("saving activities: %w", err)
	}
	return nil
}

// LoadSlots returns the stored slot list, or fallback when none is stored
// or the record is malformed.
func (s *Store) LoadSlots(ctx context.Context, fallback []schedule.TimeSlot) ([]schedule.TimeSlot, error) {
	data, ok, err := s.kv.Get(ctx, KeySlots)
	if err != nil {
		return nil, fmt.Errorf("loading slots: %w", err)
	}
	if !ok {
		return fallback, nil
	}

	var keys []string
	if err := json.Unmarshal(data, &keys); err != nil {
		logger.Warn("ignoring stored slots", "err", err)
		return fallback, nil
	}
	slots := make([]schedule.TimeSlot, 0, len(keys))
	for _, k := range keys {
		slot, err := schedule.ParseKey(k)
		if err != nil {
			logger.Warn("skipping stored slot", "key", k)
			continue
		}
		if !schedule.ContainsSlot(slots, slot) {
			slots = append(slots, slot)
		}
	}
	if len(slots) == 0 {
		return fallback, nil
	}
	schedule.SortSlots(slots)
	return slots, nil
}

// SaveSlots writes the slot list.
func (s *Store) SaveSlots(ctx context.Context, slots []schedule.TimeSlot) error {
	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = slot.Key()
	}
	data, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("encoding slots: %w", err)
	}
	if err := s.kv.Set(ctx, KeySlots, data); err != nil {
		return fmt.Errorf("saving slots: %w", err)
	}
	return nil
}

// Reset deletes every stored record.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{KeySchedule, KeyCatalog, KeySlots} {
		if err := s.kv.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
