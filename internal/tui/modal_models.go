package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/huh"
	"github.com/sahilm/fuzzy"

	"github.com/javiermolinar/lifegrid/internal/schedule"
	"github.com/javiermolinar/lifegrid/internal/tui/view"
)

const pickerMaxRows = 10

// pickerState is the activity picker: a filter input over the catalog.
type pickerState struct {
	filter   textinput.Model
	items    []schedule.Preset
	selected int
}

func newPickerState(styles *Styles) pickerState {
	ti := textinput.New()
	ti.Placeholder = "Filter activities"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40
	p := pickerState{filter: ti}
	p.applyStyles(styles)
	return p
}

func (p *pickerState) applyStyles(styles *Styles) {
	p.filter.PlaceholderStyle = styles.ModalPlaceholderStyle
	p.filter.TextStyle = styles.ModalInputTextStyle
	p.filter.PromptStyle = styles.ModalMetaStyle
	p.filter.Cursor.Style = styles.ModalInputCursorStyle
	p.filter.Cursor.TextStyle = styles.ModalInputTextStyle
}

// refresh re-filters catalog against the current filter text. An empty
// filter lists everything in catalog order; otherwise fuzzy matches are
// ranked by score over name and class.
func (p *pickerState) refresh(catalog *schedule.Catalog) {
	all := catalog.All()
	query := strings.TrimSpace(p.filter.Value())
	if query == "" {
		p.items = all
	} else {
		haystack := make([]string, len(all))
		for i, preset := range all {
			haystack[i] = preset.Name + " " + preset.Class
		}
		matches := fuzzy.Find(query, haystack)
		p.items = make([]schedule.Preset, 0, len(matches))
		for _, match := range matches {
			p.items = append(p.items, all[match.Index])
		}
	}
	p.selected = max(0, min(p.selected, len(p.items)-1))
}

func (p *pickerState) move(delta int) {
	if len(p.items) == 0 {
		return
	}
	p.selected = (p.selected + delta + len(p.items)) % len(p.items)
}

func (p pickerState) current() (schedule.Preset, bool) {
	if p.selected < 0 || p.selected >= len(p.items) {
		return schedule.Preset{}, false
	}
	return p.items[p.selected], true
}

// openPicker shows the picker for the cursor cell.
func (m *Model) openPicker() {
	m.picker.filter.SetValue("")
	m.picker.selected = 0
	m.picker.refresh(m.sess.Editor.Catalog())
	m.picker.filter.Focus()
	m.mode = ModeModal
	m.modalType = ModalPicker
}

type pickerModalViewModel struct {
	Model  view.PickerModel
	Styles view.PickerStyles
}

func (m Model) pickerModalViewModel() pickerModalViewModel {
	target := ""
	if pos, ok := m.cursorPosition(); ok {
		target = fmt.Sprintf("%s %s", pos.Column.Title(), pos.Slot.Label())
	}

	custom := make(map[string]bool)
	for _, p := range m.sess.Editor.Catalog().Custom() {
		custom[p.Key] = true
	}
	items := make([]view.PickerItem, 0, len(m.picker.items))
	for _, p := range m.picker.items {
		items = append(items, view.PickerItem{
			Icon:   p.Icon,
			Name:   p.Name,
			Class:  p.Class,
			Custom: custom[p.Key],
		})
	}

	set := m.modalStyleSet()
	return pickerModalViewModel{
		Model: view.PickerModel{
			Target:   target,
			Filter:   m.picker.filter.View(),
			Items:    items,
			Selected: m.picker.selected,
			MaxRows:  pickerMaxRows,
		},
		Styles: set.PickerStyles(m.styles.SwatchStyle),
	}
}

func (m Model) modalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:     m.styles.ModalBodyStyle,
		MetaStyle:     m.styles.ModalMetaStyle,
		LabelStyle:    m.styles.ModalLabelStyle,
		HintStyle:     m.styles.ModalHintStyle,
		SelectedStyle: m.styles.ModalSelectedStyle,
	}
}

// openPresetForm shows the new-activity form. name seeds the name field.
func (m *Model) openPresetForm(name string, assign bool) {
	classes := m.theme.ClassNames()
	pf := &presetForm{Name: name, Icon: "✦", Class: "custom", assign: assign}
	if !containsString(classes, pf.Class) && len(classes) > 0 {
		pf.Class = classes[0]
	}

	options := make([]huh.Option[string], 0, len(classes))
	for _, c := range classes {
		options = append(options, huh.NewOption(c, c))
	}

	catalog := m.sess.Editor.Catalog()
	pf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity name").
				Value(&pf.Name).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return errors.New("name cannot be empty")
					}
					if _, ok := catalog.Find(s); ok {
						return fmt.Errorf("%q already exists", s)
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Description("An emoji or short symbol").
				CharLimit(8).
				Value(&pf.Icon),
			huh.NewSelect[string]().
				Title("Class").
				Options(options...).
				Value(&pf.Class),
		),
	).WithTheme(huh.ThemeCatppuccin()).
		WithShowHelp(false).
		WithWidth(48)

	m.preset = pf
	m.mode = ModeModal
	m.modalType = ModalPresetForm
}

// openConfirmRemove asks before removing the cursor row.
func (m *Model) openConfirmRemove() {
	m.mode = ModeModal
	m.modalType = ModalConfirmRemove
}

func (m Model) confirmRemoveModel() view.ConfirmRemoveModel {
	r := m.cursorRow()
	if r == nil {
		return view.ConfirmRemoveModel{}
	}
	return view.ConfirmRemoveModel{SlotLabel: r.Slot.Label(), Filled: filledCells(r)}
}

// helpEntries lists the key bindings shown by ? and /help.
func helpEntries() []view.HelpEntry {
	return []view.HelpEntry{
		{Keys: "h j k l / arrows", Desc: "Move the cursor"},
		{Keys: "g / G", Desc: "First / last row"},
		{Keys: "t", Desc: "Jump to now"},
		{Keys: "i", Desc: "Toggle edit mode"},
		{Keys: "Enter", Desc: "Pick an activity (edit)"},
		{Keys: "x", Desc: "Clear cell (edit)"},
		{Keys: "y", Desc: "Grab / drop a cell (edit)"},
		{Keys: "a", Desc: "Add a time slot (edit)"},
		{Keys: "D", Desc: "Remove the row (edit)"},
		{Keys: "n", Desc: "New custom activity (edit)"},
		{Keys: "z", Desc: "Peek behind sleep flaps"},
		{Keys: "c", Desc: "Copy schedule as CSV"},
		{Keys: "/", Desc: "Command prompt"},
		{Keys: "q", Desc: "Quit"},
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
