package tui

import "github.com/javiermolinar/lifegrid/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalPicker:
		return m.renderPickerModal()
	case ModalPresetForm:
		return m.renderPresetFormModal()
	case ModalConfirmRemove:
		return m.renderConfirmRemoveModal()
	case ModalHelp:
		return m.renderHelpModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

func (m Model) renderPickerModal() string {
	vm := m.pickerModalViewModel()
	body := view.RenderPickerBody(vm.Model, vm.Styles)
	return view.RenderModalFrame("Pick Activity", body, view.PickerFooter(m.modalStyles()), m.modalStyles())
}

func (m Model) renderPresetFormModal() string {
	if m.preset == nil || m.preset.form == nil {
		return ""
	}
	return view.RenderModalFrame("New Activity", m.preset.form.View(), view.PresetFormFooter(m.modalStyles()), m.modalStyles())
}

func (m Model) renderConfirmRemoveModal() string {
	body := view.RenderConfirmRemoveBody(m.confirmRemoveModel(), m.styles.ModalBodyStyle)
	return view.RenderModalFrame("Remove Time Slot", body, view.ConfirmRemoveFooter(m.modalStyles()), m.modalStyles())
}

func (m Model) renderHelpModal() string {
	body := view.RenderHelpBody(helpEntries(), m.styles.ModalLabelStyle, m.styles.ModalMetaStyle)
	return view.RenderModalFrame("Keys", body, view.HelpFooter(m.modalStyles()), m.modalStyles())
}

// closeModal dismisses any modal and returns to the base mode.
func (m *Model) closeModal() {
	m.modalType = ModalNone
	m.preset = nil
	m.picker.filter.Blur()
	m.mode = m.baseMode()
}
