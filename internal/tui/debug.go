package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lifegrid/internal/logger"
	"github.com/javiermolinar/lifegrid/internal/tracker"
)

// debugEnabled turns on per-event TUI logging. Errors are always logged.
var debugEnabled bool

// SetDebug enables or disables keystroke and tick logging.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, mode Mode) {
	if !debugEnabled {
		return
	}
	logger.Debug("key press", "key", msg.String(), "mode", mode.String())
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode) {
	if !debugEnabled || from == to {
		return
	}
	logger.Debug("mode change", "from", from.String(), "to", to.String())
}

// LogTick logs the tracker state after a minute pass.
func LogTick(snap tracker.Snapshot) {
	if !debugEnabled {
		return
	}
	keyvals := []any{
		"day_progress", snap.DayProgress,
		"sleeping", snap.Sleeping,
	}
	if snap.HasCurrent {
		keyvals = append(keyvals,
			"slot", snap.Current.Slot.Key(),
			"progress", fmt.Sprintf("%.1f", snap.Current.Progress))
	}
	logger.Debug("minute pass", keyvals...)
}

// LogError logs an error surfaced in the status line.
func LogError(err error) {
	if err == nil {
		return
	}
	logger.Warn("tui error", "err", err)
}

// String returns a readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeEdit:
		return "Edit"
	case ModeDrag:
		return "Drag"
	case ModePrompt:
		return "Prompt"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}
