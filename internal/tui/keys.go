package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/javiermolinar/lifegrid/internal/editor"
	"github.com/javiermolinar/lifegrid/internal/tui/commands"
	"github.com/javiermolinar/lifegrid/internal/tui/input"
	"github.com/javiermolinar/lifegrid/internal/tui/theme"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

const needEditMode = "Press i to enter edit mode first"

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg, m.mode)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModePrompt:
		return m.handlePromptKeys(msg)
	case ModeDrag:
		return m.handleDragKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	case ModeEdit:
		return m.handleEditKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNavigation moves the cursor. It reports whether msg was a
// navigation key.
func (m *Model) handleNavigation(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "h", "left":
		m.cursor.Col = max(0, m.cursor.Col-1)
	case "l", "right":
		m.cursor.Col = min(len(activityColumns)-1, m.cursor.Col+1)
	case "j", "down":
		m.cursor.Row = min(m.rowCount()-1, m.cursor.Row+1)
	case "k", "up":
		m.cursor.Row = max(0, m.cursor.Row-1)
	case "g", "home":
		m.cursor.Row = 0
	case "G", "end":
		m.cursor.Row = max(0, m.rowCount()-1)
	case "pgdown", "ctrl+d":
		m.cursor.Row = min(m.rowCount()-1, m.cursor.Row+m.visibleRows())
	case "pgup", "ctrl+u":
		m.cursor.Row = max(0, m.cursor.Row-m.visibleRows())
	case "t":
		m.focusNow()
		return true
	default:
		return false
	}
	m.ensureCursorVisible()
	return true
}

// handleCommonKeys handles keys shared by normal and edit mode.
func (m Model) handleCommonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "q":
		return m, tea.Quit, true
	case "z":
		return m.togglePeek(), nil, true
	case "c":
		return m, commands.CopyCSV(m.sess.Document()), true
	case "/":
		m.openPrompt("/")
		return m, textinput.Blink, true
	case "?":
		m.mode = ModeModal
		m.modalType = ModalHelp
		return m, nil, true
	}
	return m, nil, false
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg) {
		return m, nil
	}
	if updated, cmd, ok := m.handleCommonKeys(msg); ok {
		return updated, cmd
	}

	switch msg.String() {
	case "i":
		m.sess.Editor.ToggleEditMode()
		m.mode = ModeEdit
		LogModeChange(ModeNormal, ModeEdit)
		return m, m.setStatus("Edit mode: Enter to pick, x to clear, y to move, Esc to finish")

	// These operations require edit mode
	case "enter", "x", "y", "a", "D", "n":
		m.statusMsg = needEditMode
		return m, nil
	}
	return m, nil
}

// handleEditKeys handles keys in edit mode. Every change is saved immediately.
func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg) {
		return m, nil
	}
	if updated, cmd, ok := m.handleCommonKeys(msg); ok {
		return updated, cmd
	}

	switch msg.String() {
	case "i", "esc":
		m.sess.Editor.ToggleEditMode()
		m.mode = ModeNormal
		LogModeChange(ModeEdit, ModeNormal)
		return m, m.setStatus("Edit mode off")

	case "enter":
		if m.cursorCell() == nil {
			return m, nil
		}
		m.openPicker()
		return m, textinput.Blink

	case "x":
		pos, ok := m.cursorPosition()
		if !ok {
			return m, nil
		}
		if err := m.sess.Editor.Clear(m.ctx, pos); err != nil {
			return m, m.setError(err)
		}
		return m, nil

	case "y":
		pos, ok := m.cursorPosition()
		if !ok {
			return m, nil
		}
		if err := m.sess.Editor.StartDrag(pos); err != nil {
			if errors.Is(err, editor.ErrEmptySource) {
				return m, m.setStatus("Nothing to move here")
			}
			return m, m.setError(err)
		}
		m.mode = ModeDrag
		LogModeChange(ModeEdit, ModeDrag)
		return m, m.setStatus("Moving: pick a target and press y")

	case "a":
		m.openPrompt("/slot ")
		return m, textinput.Blink

	case "D":
		if m.rowCount() <= 1 {
			return m, m.setStatus("Cannot remove the last time slot")
		}
		m.openConfirmRemove()
		return m, nil

	case "n":
		m.openPresetForm("", false)
		return m, m.preset.form.Init()
	}
	return m, nil
}

// handleDragKeys handles keys while a cell is grabbed.
func (m Model) handleDragKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.handleNavigation(msg) {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.sess.Editor.CancelDrag()
		m.mode = ModeEdit
		LogModeChange(ModeDrag, ModeEdit)
		return m, nil

	case "y", "enter":
		pos, ok := m.cursorPosition()
		if !ok {
			return m, nil
		}
		err := m.sess.Editor.Drop(m.ctx, pos)
		m.mode = m.baseMode()
		LogModeChange(ModeDrag, m.mode)
		if err != nil {
			return m, m.setError(err)
		}
		return m, nil

	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil

	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		return m.handlePromptSubmit(value)

	case "tab":
		if completion, ok := input.PromptAutocomplete(m.prompt.Value(), promptCommands); ok {
			m.prompt.SetValue(completion)
			m.prompt.CursorEnd()
			m.layoutCache = m.buildLayoutCache(m.width, m.height)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	return m, cmd
}

func (m Model) handlePromptSubmit(value string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(value) == "" || strings.TrimSpace(value) == "/" {
		return m, nil
	}

	cmd, err := input.Parse(value, promptCommands)
	if err != nil {
		return m, m.setError(err)
	}

	switch cmd.Name {
	case "/slot":
		if !m.sess.Editor.Editing() {
			m.statusMsg = needEditMode
			return m, nil
		}
		slot, err := m.sess.Editor.InsertSlot(m.ctx, cmd.Arg)
		m.retick()
		if err != nil {
			return m, m.setError(err)
		}
		m.focusSlot(slot)
		return m, m.setStatus("Added " + slot.Label())

	case "/preset":
		if !m.sess.Editor.Editing() {
			m.statusMsg = needEditMode
			return m, nil
		}
		m.openPresetForm(cmd.Arg, false)
		return m, m.preset.form.Init()

	case "/theme":
		if !theme.IsAvailable(cmd.Arg) {
			return m, m.setError(fmt.Errorf("unknown theme %q (available: %s)", cmd.Arg, strings.Join(theme.Available(), ", ")))
		}
		if err := m.setTheme(cmd.Arg); err != nil {
			return m, m.setError(err)
		}
		return m, m.setStatus("Theme: " + m.theme.Name)

	case "/export":
		return m, commands.ExportFile(m.sess.Document(), cmd.Arg)

	case "/import":
		return m, commands.ImportFile(cmd.Arg)

	case "/csv":
		return m, commands.CopyCSV(m.sess.Document())

	case "/help":
		m.mode = ModeModal
		m.modalType = ModalHelp
		return m, nil
	}
	return m, nil
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalPicker:
		return m.handlePickerKeys(msg)
	case ModalPresetForm:
		return m.updatePresetForm(msg)
	case ModalConfirmRemove:
		return m.handleConfirmRemoveKeys(msg)
	default:
		switch msg.String() {
		case "esc", "enter", "q", "?":
			m.closeModal()
		}
		return m, nil
	}
}

func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "up", "ctrl+p", "ctrl+k":
		m.picker.move(-1)
		return m, nil

	case "down", "ctrl+n", "ctrl+j":
		m.picker.move(1)
		return m, nil

	case "tab":
		name := strings.TrimSpace(m.picker.filter.Value())
		m.openPresetForm(name, true)
		return m, m.preset.form.Init()

	case "enter":
		p, ok := m.picker.current()
		if !ok {
			return m, m.setStatus("No matching activity")
		}
		pos, ok := m.cursorPosition()
		m.closeModal()
		if !ok {
			return m, nil
		}
		if err := m.sess.Editor.Assign(m.ctx, pos, p); err != nil {
			return m, m.setError(err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.picker.filter, cmd = m.picker.filter.Update(msg)
	m.picker.refresh(m.sess.Editor.Catalog())
	return m, cmd
}

// updatePresetForm forwards msg to the huh form and handles completion.
func (m Model) updatePresetForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	pf := m.preset
	if pf == nil || pf.form == nil {
		m.closeModal()
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.closeModal()
		return m, nil
	}

	f, cmd := pf.form.Update(msg)
	if ff, ok := f.(*huh.Form); ok {
		pf.form = ff
	}

	switch pf.form.State {
	case huh.StateCompleted:
		return m.savePresetFromForm()
	case huh.StateAborted:
		m.closeModal()
		return m, nil
	}
	return m, cmd
}

func (m Model) savePresetFromForm() (tea.Model, tea.Cmd) {
	pf := m.preset
	m.closeModal()

	p, err := m.sess.Editor.CreatePreset(m.ctx, pf.Name, pf.Icon, pf.Class)
	if err != nil {
		return m, m.setError(err)
	}
	if pf.assign {
		if pos, ok := m.cursorPosition(); ok {
			if err := m.sess.Editor.Assign(m.ctx, pos, p); err != nil {
				return m, m.setError(err)
			}
		}
	}
	return m, m.setStatus(fmt.Sprintf("Created %s %s", p.Icon, p.Name))
}

func (m Model) handleConfirmRemoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		r := m.cursorRow()
		m.closeModal()
		if r == nil {
			return m, nil
		}
		err := m.sess.Editor.RemoveSlot(m.ctx, r.Slot)
		m.retick()
		m.ensureCursorVisible()
		if err != nil {
			return m, m.setError(err)
		}
		return m, m.setStatus("Removed " + r.Slot.Label())

	case "n", "N", "esc", "q":
		m.closeModal()
		return m, nil
	}
	return m, nil
}

// togglePeek opens the sleep flaps, or closes them again when already peeking.
// Terminals report no key release, so peeking is a toggle.
func (m Model) togglePeek() Model {
	tr := m.sess.Tracker
	if tr.Peeking() {
		tr.Release(m.now())
		return m
	}
	tr.Peek()
	return m
}

// retick runs a tracker pass right away so structural edits show the
// current row without waiting for the next tick.
func (m *Model) retick() {
	m.snap = m.sess.Tracker.Tick(m.now())
}

// setStatus shows a temporary status message.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusMsg = msg
	m.statusTime = m.now().Add(statusDuration)
	return commands.ClearStatusAfter(statusDuration)
}

// setError shows an error in the status line.
func (m *Model) setError(err error) tea.Cmd {
	LogError(err)
	m.err = err
	m.statusMsg = fmt.Sprintf("Error: %v", err)
	m.statusTime = m.now().Add(errorDuration)
	return commands.ClearStatusAfter(errorDuration)
}
