package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/lifegrid/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case commands.TickMsg:
		m.snap = m.sess.Tracker.Tick(msg.Now)
		if m.snap.MinutePass {
			LogTick(m.snap)
		}
		m.ensureCursorVisible()
		return m, commands.Tick(m.config.Tick())

	case commands.CopiedMsg:
		return m, m.setStatus(fmt.Sprintf("Copied %d rows as CSV", msg.Rows))

	case commands.ExportedMsg:
		return m, m.setStatus("Exported to " + msg.Path)

	case commands.ImportLoadedMsg:
		res, err := m.sess.Import(m.ctx, msg.Doc)
		m.retick()
		m.ensureCursorVisible()
		if err != nil {
			return m, m.setError(err)
		}
		status := fmt.Sprintf("Imported %d cells", res.Applied)
		if res.Skipped > 0 {
			status += fmt.Sprintf(" (%d skipped, no matching row)", res.Skipped)
		}
		return m, m.setStatus(status)

	case commands.ErrMsg:
		return m, m.setError(msg.Err)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// The new-activity form also consumes its own internal messages.
	if m.mode == ModeModal && m.modalType == ModalPresetForm {
		return m.updatePresetForm(msg)
	}

	if m.mode == ModePrompt {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	if m.mode == ModeModal && m.modalType == ModalPicker {
		var cmd tea.Cmd
		m.picker.filter, cmd = m.picker.filter.Update(msg)
		return m, cmd
	}

	return m, nil
}
