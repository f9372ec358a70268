package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle     lipgloss.Style
	MetaStyle     lipgloss.Style
	LabelStyle    lipgloss.Style
	HintStyle     lipgloss.Style
	SelectedStyle lipgloss.Style
}

// PickerStyles returns the modal styles needed for the activity picker.
func (s ModalStyleSet) PickerStyles(swatch func(class string) lipgloss.Style) PickerStyles {
	return PickerStyles{
		BodyStyle:     s.BodyStyle,
		MetaStyle:     s.MetaStyle,
		SelectedStyle: s.SelectedStyle,
		Swatch:        swatch,
	}
}
