package store

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/lifegrid/internal/db"
	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

var fixedNow = time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T, opts ...Option) (*Store, *db.SQLite) {
	t.Helper()

	repo, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(repo, opts...), repo
}

func sampleSurface() *grid.Surface {
	s := grid.NewSurface([]schedule.TimeSlot{7.5, 9, 12})
	s.Cell(7.5, schedule.ColumnRituals).Assignment = schedule.Assignment{Icon: "⏰", Text: "Wake up", Class: "ritual"}
	s.Cell(9, schedule.ColumnMonday).Assignment = schedule.Assignment{Icon: "💼", Text: "Work", Class: "work"}
	s.Cell(12, schedule.ColumnSunday).Assignment = schedule.Assignment{Icon: "▲", Text: "Gym", Class: "exercise"}
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()
	src := sampleSurface()

	if err := st.Save(ctx, src); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	dst := grid.NewSurface([]schedule.TimeSlot{7.5, 9, 12})
	res, err := st.Load(ctx, dst)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !res.Found || res.Skipped != 0 {
		t.Errorf("Load() result = %+v", res)
	}

	for _, r := range src.Rows() {
		if got := dst.Row(r.Slot).Time.Text(); got != r.Time.Text() {
			t.Errorf("time %v = %q, want %q", r.Slot, got, r.Time.Text())
		}
		for _, c := range r.Cells() {
			got := dst.Cell(r.Slot, c.Column).Assignment
			if got != c.Assignment {
				t.Errorf("%v/%s = %+v, want %+v", r.Slot, c.Column, got, c.Assignment)
			}
		}
	}
}

func TestSaveStripsDecoration(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()
	s := sampleSurface()

	d, _ := s.Row(9).Time.Decorate()
	d.LiveTime = "9:30 AM"
	d.Progress = 50

	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	doc, err := st.Document(ctx)
	if err != nil {
		t.Fatalf("Document() error: %v", err)
	}
	a, _ := doc.Get(9, schedule.ColumnTime)
	if a.Text != "9:00 AM" {
		t.Errorf("stored time text = %q, want 9:00 AM", a.Text)
	}
	mon, _ := doc.Get(9, schedule.ColumnMonday)
	if strings.Contains(mon.Text, "AM") {
		t.Errorf("flap text leaked into stored cell: %q", mon.Text)
	}
}

func TestSaveIdempotent(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return fixedNow.Add(time.Duration(calls) * time.Second)
	}
	st, repo := newTestStore(t, WithClock(clock))
	ctx := context.Background()
	s := sampleSurface()

	_ = st.Save(ctx, s)
	first, _, _ := repo.Get(ctx, KeySchedule)
	_ = st.Save(ctx, s)
	second, _, _ := repo.Get(ctx, KeySchedule)

	if bytes.Equal(first, second) {
		t.Fatal("expected savedAt to differ between saves")
	}
	strip := func(b []byte) string {
		s := string(b)
		return s[:strings.Index(s, `"savedAt"`)]
	}
	if strip(first) != strip(second) {
		t.Errorf("documents differ beyond savedAt:\n%s\n%s", first, second)
	}
}

func TestSaveOverwrites(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()
	s := sampleSurface()
	_ = st.Save(ctx, s)

	s.Cell(9, schedule.ColumnMonday).Assignment = schedule.Assignment{}
	_ = st.Save(ctx, s)

	doc, _ := st.Document(ctx)
	if a, _ := doc.Get(9, schedule.ColumnMonday); !a.IsEmpty() {
		t.Errorf("cleared cell survived save: %+v", a)
	}
}

func TestLoadSkipsMissingSlots(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()
	_ = st.Save(ctx, sampleSurface())

	dst := grid.NewSurface([]schedule.TimeSlot{9})
	res, err := st.Load(ctx, dst)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if res.Skipped == 0 {
		t.Error("expected skipped entries for 7.5 and 12")
	}
	if dst.Cell(9, schedule.ColumnMonday).Assignment.Text != "Work" {
		t.Error("existing slot not applied")
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{oops"},
		{name: "no schedule key", data: `{"savedAt":"2026-03-04T09:30:00Z"}`},
		{name: "wrong shape", data: `{"schedule":[1,2,3]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, repo := newTestStore(t)
			ctx := context.Background()
			_ = repo.Set(ctx, KeySchedule, []byte(tt.data))

			s := sampleSurface()
			res, err := st.Load(ctx, s)
			if err != nil {
				t.Fatalf("Load() should not fail on malformed data: %v", err)
			}
			if res.Found {
				t.Error("malformed data reported as found")
			}
			if s.Cell(9, schedule.ColumnMonday).Assignment.Text != "Work" {
				t.Error("surface modified by malformed load")
			}
		})
	}
}

func TestLoadNothingStored(t *testing.T) {
	st, _ := newTestStore(t)
	res, err := st.Load(context.Background(), sampleSurface())
	if err != nil || res.Found {
		t.Errorf("Load() = %+v, %v", res, err)
	}
}

func TestCatalogPersistence(t *testing.T) {
	st, repo := newTestStore(t)
	ctx := context.Background()

	cat, err := st.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	_, _, _ = cat.AddCustom("Piano", "🎹", "hobby")
	_, _, _ = cat.AddCustom("Garden", "🌱", "home")
	if err := st.SaveCatalog(ctx, cat); err != nil {
		t.Fatalf("SaveCatalog() error: %v", err)
	}

	raw, _, _ := repo.Get(ctx, KeyCatalog)
	want := `[{"name":"Piano","icon":"🎹","class":"hobby"},{"name":"Garden","icon":"🌱","class":"home"}]`
	if string(raw) != want {
		t.Errorf("stored catalog = %s, want %s", raw, want)
	}

	loaded, _ := st.LoadCatalog(ctx)
	custom := loaded.Custom()
	if len(custom) != 2 || custom[0].Name != "Piano" || custom[1].Name != "Garden" {
		t.Errorf("loaded catalog = %+v", custom)
	}

	_ = repo.Set(ctx, KeyCatalog, []byte("nope"))
	broken, err := st.LoadCatalog(ctx)
	if err != nil || len(broken.Custom()) != 0 {
		t.Errorf("malformed catalog = %v, %v", broken.Custom(), err)
	}
}

func TestSlotsPersistence(t *testing.T) {
	st, repo := newTestStore(t)
	ctx := context.Background()
	fallback := []schedule.TimeSlot{8, 9}

	got, err := st.LoadSlots(ctx, fallback)
	if err != nil || len(got) != 2 {
		t.Fatalf("LoadSlots() with nothing stored = %v, %v", got, err)
	}

	if err := st.SaveSlots(ctx, []schedule.TimeSlot{7.5, 9.25, 8}); err != nil {
		t.Fatalf("SaveSlots() error: %v", err)
	}
	got, _ = st.LoadSlots(ctx, fallback)
	if len(got) != 3 || got[0] != 7.5 || got[1] != 8 || got[2] != 9.25 {
		t.Errorf("LoadSlots() = %v", got)
	}

	_ = repo.Set(ctx, KeySlots, []byte(`["x", "25"]`))
	got, _ = st.LoadSlots(ctx, fallback)
	if len(got) != 2 || got[0] != 8 {
		t.Errorf("invalid stored slots should fall back, got %v", got)
	}
}

func TestReset(t *testing.T) {
	st, repo := newTestStore(t)
	ctx := context.Background()
	_ = st.Save(ctx, sampleSurface())
	_ = st.SaveSlots(ctx, []schedule.TimeSlot{9})

	if err := st.Reset(ctx); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	keys, _ := repo.Keys(ctx)
	if len(keys) != 0 {
		t.Errorf("keys after reset = %v", keys)
	}
}
