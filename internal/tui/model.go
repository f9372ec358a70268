package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/javiermolinar/lifegrid/internal/config"
	"github.com/javiermolinar/lifegrid/internal/session"
	"github.com/javiermolinar/lifegrid/internal/tracker"
	"github.com/javiermolinar/lifegrid/internal/tui/commands"
	"github.com/javiermolinar/lifegrid/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	// ModeEdit saves edits as they happen.
	ModeEdit
	// ModeDrag holds a grabbed cell, always within edit mode.
	ModeDrag
	ModePrompt
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalPicker
	ModalPresetForm
	ModalConfirmRemove
	ModalHelp
)

// Position is a cursor position: a row index into the surface and a column
// index into schedule.ActivityColumns.
type Position struct {
	Row int
	Col int
}

// presetForm holds the values bound to the new-activity form. It lives on
// the heap so value copies of Model share it with the huh fields.
type presetForm struct {
	form  *huh.Form
	Name  string
	Icon  string
	Class string
	// assign is true when the form was opened from the picker, so the new
	// activity goes straight into the cursor cell.
	assign bool
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	sess   *session.Session
	config *config.Config
	ctx    context.Context

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	cursor Position
	mode   Mode
	snap   tracker.Snapshot
	now    func() time.Time

	// Modal state
	modalType ModalType
	picker    pickerState
	preset    *presetForm

	// Components
	prompt textinput.Model

	// Terminal dimensions and layout
	width        int
	height       int
	colWidth     int
	scrollOffset int

	// Cached render data
	styleCache  StyleCache
	layoutCache LayoutCache

	// Messages
	statusMsg  string
	statusTime time.Time

	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithContext sets the context passed to storage calls.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		m.ctx = ctx
	}
}

// New creates a new TUI model over an opened session.
func New(sess *session.Session, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "/slot 9:30 AM"
	ti.Prompt = ""
	ti.CharLimit = 256

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	m := &Model{
		sess:     sess,
		config:   cfg,
		ctx:      context.Background(),
		theme:    t,
		styles:   styles,
		mode:     ModeNormal,
		now:      time.Now,
		prompt:   ti,
		colWidth: defaultColWidth,
	}
	m.styleCache = NewStyleCache(styles, defaultColWidth, t.ClassNames())
	m.picker = newPickerState(styles)

	for _, opt := range opts {
		opt(m)
	}

	m.layoutCache = m.buildLayoutCache(0, 0)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return commands.TickNow()
}

// Run starts the TUI.
func Run(sess *session.Session, cfg *config.Config) error {
	return RunWithDebug(sess, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(sess *session.Session, cfg *config.Config, debug bool) error {
	SetDebug(debug)

	model := New(sess, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// setTheme swaps the theme and rebuilds every derived style.
func (m *Model) setTheme(name string) error {
	t, err := theme.Load(name)
	if err != nil {
		return err
	}
	m.theme = t
	m.styles = NewStyles(t)
	m.picker.applyStyles(m.styles)
	m.styleCache = NewStyleCache(m.styles, m.colWidth, t.ClassNames())
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return nil
}

// syncMode derives the base mode from the editor after an edit.
func (m *Model) syncMode() {
	if m.mode == ModePrompt || m.mode == ModeModal {
		return
	}
	m.mode = m.baseMode()
}

// baseMode is the mode to return to when a prompt or modal closes.
func (m Model) baseMode() Mode {
	ed := m.sess.Editor
	if _, ok := ed.Dragging(); ok {
		return ModeDrag
	}
	if ed.Editing() {
		return ModeEdit
	}
	return ModeNormal
}
