package tui

import (
	"github.com/javiermolinar/lifegrid/internal/tui/input"
	"github.com/javiermolinar/lifegrid/internal/tui/view"
)

var promptCommands = input.Commands()

func (m Model) promptMaxContentLines() int {
	maxLines := m.layoutCache.FooterH - footerBaseLines - promptBorderLines
	if maxLines < promptMinContentLines {
		return promptMinContentLines
	}
	return maxLines
}

func (m Model) promptLines(contentWidth int) []string {
	state := view.PromptState{
		Value:       m.prompt.Value(),
		Cursor:      m.promptCursor(),
		ModePrompt:  m.mode == ModePrompt,
		Placeholder: m.promptPlaceholder(),
	}
	matches := input.PromptMatchingCommands(m.prompt.Value(), promptCommands)
	suggestions := make([]view.PromptCommand, 0, len(matches))
	for _, cmd := range matches {
		suggestions = append(suggestions, view.PromptCommand{
			Name:        cmd.Name,
			Usage:       cmd.Usage,
			Description: cmd.Description,
		})
	}
	return view.PromptLines(state, contentWidth, suggestions)
}

// promptCursor returns the cursor character if in prompt mode.
func (m Model) promptCursor() string {
	if m.mode == ModePrompt {
		return "_"
	}
	return ""
}

func (m Model) promptPlaceholder() string {
	if m.sess.Editor.Editing() {
		return "a: add slot  n: new activity  /: commands"
	}
	return "/: commands  ?: help"
}

// openPrompt focuses the prompt with value prefilled.
func (m *Model) openPrompt(value string) {
	m.mode = ModePrompt
	m.prompt.SetValue(value)
	m.prompt.CursorEnd()
	m.prompt.Focus()
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
}

// closePrompt clears the prompt and returns to the base mode.
func (m *Model) closePrompt() {
	m.prompt.Blur()
	m.prompt.SetValue("")
	m.mode = m.baseMode()
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
}
