// Package commands provides TUI command constructors and message types.
package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lifegrid/internal/exchange"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// TickMsg drives the tracker.
type TickMsg struct {
	Now time.Time
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// CopiedMsg is sent after the CSV export reached the clipboard.
type CopiedMsg struct {
	Rows int
}

// ExportedMsg is sent after the JSON export was written.
type ExportedMsg struct {
	Path string
}

// ImportLoadedMsg carries a parsed import file. The caller applies it.
type ImportLoadedMsg struct {
	Path string
	Doc  *schedule.Document
}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// now is swapped in tests.
var now = time.Now

// TickNow emits a tick immediately.
func TickNow() tea.Cmd {
	return func() tea.Msg {
		return TickMsg{Now: now()}
	}
}

// Tick schedules the next tick after d.
func Tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Now: t}
	})
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// CopyCSV renders doc as CSV and places it on the system clipboard.
func CopyCSV(doc *schedule.Document) tea.Cmd {
	return func() tea.Msg {
		var buf bytes.Buffer
		if err := exchange.WriteCSV(&buf, doc); err != nil {
			return ErrMsg{Err: fmt.Errorf("building csv: %w", err)}
		}
		if err := writeClipboard(buf.String()); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Rows: len(doc.Slots())}
	}
}

// ExportFile writes doc as JSON to path.
func ExportFile(doc *schedule.Document, path string) tea.Cmd {
	return func() tea.Msg {
		path = expandHome(path)
		f, err := os.Create(path)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("creating export file: %w", err)}
		}
		if err := exchange.WriteJSON(f, doc); err != nil {
			_ = f.Close()
			return ErrMsg{Err: fmt.Errorf("writing export: %w", err)}
		}
		if err := f.Close(); err != nil {
			return ErrMsg{Err: fmt.Errorf("closing export file: %w", err)}
		}
		return ExportedMsg{Path: path}
	}
}

// ImportFile reads and validates a JSON export at path.
func ImportFile(path string) tea.Cmd {
	return func() tea.Msg {
		path = expandHome(path)
		f, err := os.Open(path)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("opening import file: %w", err)}
		}
		defer func() { _ = f.Close() }()

		doc, err := exchange.ReadJSON(f)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("reading %s: %w", filepath.Base(path), err)}
		}
		return ImportLoadedMsg{Path: path, Doc: doc}
	}
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
