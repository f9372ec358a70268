package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/javiermolinar/lifegrid/internal/config"
	"github.com/javiermolinar/lifegrid/internal/db"
	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "lifegrid.db")
	cfg.Schedule.Slots = []string{"09:00", "10:00", "11:00"}
	return cfg
}

func gridPos(slot schedule.TimeSlot, col schedule.Column) grid.Position {
	return grid.Position{Slot: slot, Column: col}
}

func TestOpenBuildsSurfaceFromConfig(t *testing.T) {
	cfg := testConfig(t)
	s, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer func() { _ = s.Close() }()

	if s.Surface.Len() != 3 {
		t.Errorf("rows = %d, want 3", s.Surface.Len())
	}
	if s.Loaded.Found {
		t.Error("fresh database should have no stored document")
	}
	if w := s.Tracker.Window(); w.WakeHour != 7.5 || w.SleepHour != 23 {
		t.Errorf("window = %+v", w)
	}
}

func TestReopenRestoresEdits(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	s, err := Open(ctx, cfg)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	s.Editor.ToggleEditMode()
	if _, err := s.Editor.InsertSlot(ctx, "9:30 AM"); err != nil {
		t.Fatalf("InsertSlot() error: %v", err)
	}
	if err := s.Editor.AssignKey(ctx, gridPos(9.5, schedule.ColumnTuesday), "gym"); err != nil {
		t.Fatalf("AssignKey() error: %v", err)
	}
	if _, err := s.Editor.CreatePreset(ctx, "Piano", "🎹", "hobby"); err != nil {
		t.Fatalf("CreatePreset() error: %v", err)
	}
	_ = s.Close()

	s, err = Open(ctx, cfg)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer func() { _ = s.Close() }()

	if s.Surface.Len() != 4 {
		t.Fatalf("rows after reopen = %v", s.Surface.Slots())
	}
	if got := s.Surface.Cell(9.5, schedule.ColumnTuesday).Assignment; got.Text != "Gym" {
		t.Errorf("cell after reopen = %+v", got)
	}
	if _, ok := s.Editor.Catalog().Find("Piano"); !ok {
		t.Error("custom preset lost on reopen")
	}
}

func TestImportReplacesDocument(t *testing.T) {
	repo, err := db.New(db.Memory)
	if err != nil {
		t.Fatalf("db.New() error: %v", err)
	}
	defer func() { _ = repo.Close() }()

	ctx := context.Background()
	s, err := New(ctx, testConfig(t), repo)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	s.Editor.ToggleEditMode()
	_ = s.Editor.AssignKey(ctx, gridPos(9, schedule.ColumnMonday), "work")

	doc := schedule.NewDocument()
	doc.Set(10, schedule.ColumnFriday, schedule.Assignment{Icon: "🍽", Text: "Lunch", Class: "meal"})
	doc.Set(14, schedule.ColumnFriday, schedule.Assignment{Text: "No row"})

	res, err := s.Import(ctx, doc)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	if res.Applied != 1 || res.Skipped != 1 {
		t.Errorf("result = %+v", res)
	}
	if !s.Surface.Cell(9, schedule.ColumnMonday).Assignment.IsEmpty() {
		t.Error("import should replace, not merge")
	}
	if s.Surface.Cell(10, schedule.ColumnFriday).Assignment.Text != "Lunch" {
		t.Error("imported cell missing")
	}

	stored, _ := s.Store.Document(ctx)
	if _, ok := stored.Get(14, schedule.ColumnFriday); !ok {
		t.Error("stored document should match the imported file exactly")
	}
}

func TestDetectInitState(t *testing.T) {
	cfg := testConfig(t)
	state, err := DetectInitState(cfg)
	if err != nil {
		t.Fatalf("DetectInitState() error: %v", err)
	}
	if !state.DBMissing || !state.FirstRun() {
		t.Errorf("state = %+v, want missing db", state)
	}

	s, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	_ = s.Close()

	state, _ = DetectInitState(cfg)
	if state.DBMissing {
		t.Error("db should exist after Open")
	}
}
