// Package session wires storage, the grid surface, the tracker and the
// editor into one unit shared by the TUI and the CLI.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/javiermolinar/lifegrid/internal/config"
	"github.com/javiermolinar/lifegrid/internal/db"
	"github.com/javiermolinar/lifegrid/internal/editor"
	"github.com/javiermolinar/lifegrid/internal/grid"
	"github.com/javiermolinar/lifegrid/internal/logger"
	"github.com/javiermolinar/lifegrid/internal/schedule"
	"github.com/javiermolinar/lifegrid/internal/store"
	"github.com/javiermolinar/lifegrid/internal/tracker"
)

// Session is a loaded schedule ready to display and edit.
type Session struct {
	Config  *config.Config
	Store   *store.Store
	Surface *grid.Surface
	Tracker *tracker.Tracker
	Editor  *editor.Editor

	// Loaded describes how the stored document was replayed at open.
	Loaded store.LoadResult

	closer interface{ Close() error }
}

// InitState tracks whether this is the first run on this machine.
type InitState struct {
	ConfigMissing bool
	DBMissing     bool
	ConfigPath    string
	DBPath        string
}

// FirstRun reports whether either file still has to be created.
func (s InitState) FirstRun() bool {
	return s.ConfigMissing || s.DBMissing
}

// DetectInitState checks for missing config or database files.
func DetectInitState(cfg *config.Config) (InitState, error) {
	state := InitState{
		ConfigPath: config.DefaultConfigPath(),
		DBPath:     cfg.Storage.DBPath,
	}

	configMissing, err := pathMissing(state.ConfigPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking config path: %w", err)
	}
	dbMissing, err := pathMissing(state.DBPath)
	if err != nil {
		return InitState{}, fmt.Errorf("checking db path: %w", err)
	}

	state.ConfigMissing = configMissing
	state.DBMissing = dbMissing
	return state, nil
}

func pathMissing(path string) (bool, error) {
	if path == "" || path == db.Memory {
		return path == "", nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	return false, err
}

// Open opens the SQLite database named in cfg and loads the schedule.
func Open(ctx context.Context, cfg *config.Config) (*Session, error) {
	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	s, err := New(ctx, cfg, repo)
	if err != nil {
		_ = repo.Close()
		return nil, err
	}
	s.closer = repo
	return s, nil
}

// New loads a session from an already opened backend.
func New(ctx context.Context, cfg *config.Config, kv store.KV) (*Session, error) {
	st := store.New(kv)

	slots, err := st.LoadSlots(ctx, cfg.SlotTimes())
	if err != nil {
		return nil, err
	}
	surface := grid.NewSurface(slots)

	loaded, err := st.Load(ctx, surface)
	if err != nil {
		return nil, err
	}

	catalog, err := st.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	tr := tracker.New(surface, tracker.Window{
		WakeHour:  cfg.WakeHour(),
		SleepHour: cfg.SleepHour(),
	})

	logger.Info("session opened",
		"slots", len(slots),
		"applied", loaded.Applied,
		"skipped", loaded.Skipped,
		"custom", len(catalog.Custom()))

	return &Session{
		Config:  cfg,
		Store:   st,
		Surface: surface,
		Tracker: tr,
		Editor:  editor.New(surface, tr, st, catalog),
		Loaded:  loaded,
	}, nil
}

// Import replaces the stored document with doc and reloads the surface.
// Cells for slots that have no row are skipped.
func (s *Session) Import(ctx context.Context, doc *schedule.Document) (store.LoadResult, error) {
	if err := s.Store.Replace(ctx, doc); err != nil {
		return store.LoadResult{}, err
	}
	s.Surface.ClearAssignments()
	res := store.Apply(doc, s.Surface)
	res.Found = true
	// Time labels may have changed under a decorated row.
	s.Tracker.Invalidate()
	logger.Info("schedule imported", "applied", res.Applied, "skipped", res.Skipped)
	return res, nil
}

// Document returns the current surface as a document.
func (s *Session) Document() *schedule.Document {
	return s.Store.Snapshot(s.Surface)
}

// Close releases the storage backend.
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
