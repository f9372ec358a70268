package view

// PickerFooter renders the footer for the activity picker.
func PickerFooter(styles ModalStyles) string {
	return RenderModalButtonsCompact(styles, "[Enter] Assign", "[Tab] New", "[Esc] Close")
}

// PresetFormFooter renders the footer for the new activity form.
func PresetFormFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Enter] Next", "[Esc] Cancel")
}

// ConfirmRemoveFooter renders the footer for the slot removal prompt.
func ConfirmRemoveFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[y/Enter] Remove", "[n/Esc] Keep")
}

// HelpFooter renders the footer for the key help.
func HelpFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Esc] Close")
}
