package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PickerItem is one selectable activity.
type PickerItem struct {
	Icon   string
	Name   string
	Class  string
	Custom bool
}

// PickerModel contains what the activity picker body shows.
type PickerModel struct {
	Target   string // e.g. "Wednesday 9:00 AM"
	Filter   string // rendered filter input
	Items    []PickerItem
	Selected int
	MaxRows  int
}

// PickerStyles groups styles for the picker body.
type PickerStyles struct {
	BodyStyle     lipgloss.Style
	MetaStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
	// Swatch returns the color chip style for a class.
	Swatch func(class string) lipgloss.Style
}

// PickerWindow returns the [start, end) item range to show so that
// selected stays visible.
func PickerWindow(total, selected, maxRows int) (int, int) {
	if maxRows <= 0 || total <= maxRows {
		return 0, total
	}
	start := selected - maxRows/2
	start = max(0, min(start, total-maxRows))
	return start, start + maxRows
}

// RenderPickerBody renders the filter line and the visible items.
func RenderPickerBody(model PickerModel, styles PickerStyles) string {
	var b strings.Builder

	b.WriteString(styles.MetaStyle.Render(" Assign to "+model.Target) + "\n")
	b.WriteString(" " + model.Filter + "\n\n")

	if len(model.Items) == 0 {
		b.WriteString(styles.MetaStyle.Render(" No matching activity. Press Tab to create one."))
		return b.String()
	}

	start, end := PickerWindow(len(model.Items), model.Selected, model.MaxRows)
	for i := start; i < end; i++ {
		item := model.Items[i]
		line := fmt.Sprintf(" %s %s", item.Icon, item.Name)
		if item.Custom {
			line += " *"
		}
		style := styles.BodyStyle
		if i == model.Selected {
			style = styles.SelectedStyle
		}
		chip := "  "
		if styles.Swatch != nil {
			chip = styles.Swatch(item.Class).Render("  ")
		}
		b.WriteString(chip + style.Render(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if end-start < len(model.Items) {
		b.WriteString("\n" + styles.MetaStyle.Render(fmt.Sprintf(" %d of %d", model.Selected+1, len(model.Items))))
	}
	return b.String()
}

// ConfirmRemoveModel contains the fields for the slot removal prompt.
type ConfirmRemoveModel struct {
	SlotLabel string
	Filled    int // assigned cells that will be lost
}

// RenderConfirmRemoveBody renders the slot removal confirmation body.
func RenderConfirmRemoveBody(model ConfirmRemoveModel, body lipgloss.Style) string {
	msg := fmt.Sprintf("Remove the %s row?", model.SlotLabel)
	switch model.Filled {
	case 0:
		msg += "\nThe row is empty."
	case 1:
		msg += "\n1 activity in this row will be lost."
	default:
		msg += fmt.Sprintf("\n%d activities in this row will be lost.", model.Filled)
	}
	return body.Render(msg)
}

// HelpEntry is one line of the key help.
type HelpEntry struct {
	Keys string
	Desc string
}

// RenderHelpBody renders key help as two aligned columns.
func RenderHelpBody(entries []HelpEntry, keyStyle, descStyle lipgloss.Style) string {
	width := 0
	for _, e := range entries {
		width = max(width, lipgloss.Width(e.Keys))
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = keyStyle.Render(" "+PadRight(e.Keys, width)) + descStyle.Render("  "+e.Desc)
	}
	return strings.Join(lines, "\n")
}
