package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// renderStatsBar renders the live tracker line.
func (m Model) renderStatsBar(width int) string {
	barStyle := m.styles.StatsBarStyle
	valueStyle := m.styles.StatsValueStyle

	var bar strings.Builder
	if !m.snap.Now.IsZero() {
		bar.WriteString(barStyle.Render("Now "))
		bar.WriteString(valueStyle.Render(schedule.FormatClock(m.snap.Now)))
	}
	if m.snap.HasCurrent {
		bar.WriteString(barStyle.Render("  Slot "))
		bar.WriteString(valueStyle.Render(fmt.Sprintf("%s %d%%", m.snap.Current.Slot.Label(), int(m.snap.Current.Progress))))
	}
	bar.WriteString(barStyle.Render("  Day "))
	bar.WriteString(valueStyle.Render(fmt.Sprintf("%d%%", m.snap.DayProgress)))
	if m.snap.Sleeping {
		label := "  zzz sleeping"
		if m.sess.Tracker.Peeking() {
			label = "  zzz peeking"
		}
		bar.WriteString(m.styles.StatsSleepStyle.Render(label))
	}

	switch m.mode {
	case ModeDrag:
		bar.WriteString(barStyle.Render("  "))
		bar.WriteString(m.styles.ModeDragStyle.Render("MOVE"))
	default:
		if m.sess.Editor.Editing() {
			bar.WriteString(barStyle.Render("  "))
			bar.WriteString(m.styles.ModeEditStyle.Render("EDIT"))
		}
	}

	return m.layoutCache.StatsBarStyle.Width(max(0, width)).Render(bar.String())
}

// renderLegend renders one chip per activity class.
func (m Model) renderLegend() string {
	baseStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorFg).
		Background(m.styles.colorBg)

	var legend strings.Builder
	legend.WriteString(baseStyle.Render("Legend: "))
	for i, class := range m.theme.ClassNames() {
		if i > 0 {
			legend.WriteString(baseStyle.Render(" "))
		}
		legend.WriteString(m.styles.LegendStyle(class).Render(class))
	}
	return legend.String()
}

// renderHelp renders the help bar.
func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModeEdit:
		help = "EDIT: Enter: pick | x: clear | y: move | a: add slot | D: remove slot | n: new activity | Esc: done"
	case ModeDrag:
		help = "h/j/k/l: target | y/Enter: drop | Esc: cancel"
	case ModePrompt:
		help = "Enter: submit | Tab: complete | Esc: cancel"
	case ModeModal:
		switch m.modalType {
		case ModalPicker:
			help = "type to filter | ↑/↓: select | Enter: assign | Tab: new | Esc: close"
		case ModalPresetForm:
			help = "Enter: next | Shift+Tab: back | Esc: cancel"
		case ModalConfirmRemove:
			help = "y/Enter: remove | n/Esc: keep"
		default:
			help = "Esc: close"
		}
	default:
		help = "h/j/k/l: navigate | t: now | i: edit | z: peek | c: copy csv | /: commands | ?: help | q: quit"
	}
	return m.styles.HelpStyle.Render(help)
}
