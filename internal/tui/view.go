package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lifegrid/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      m.renderAppContent(),
		ModalContent:     modal,
		ShowModal:        showModal,
		ModalBg:          m.styles.ModalBgColor,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	gridBox := view.RenderTable(m.tableViewState(layout))
	footerBox := view.RenderFooterModel(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) tableViewState(layout LayoutCache) view.TableViewState {
	if layout.GridH <= 0 || m.rowCount() == 0 {
		return view.TableViewState{Render: false}
	}

	headers, headerStyles := m.tableHeaders()
	rows, cellStyles := m.buildGridTableRows(m.visibleRows())

	borderStyle := lipgloss.NewStyle().
		Foreground(m.styles.colorAccent).
		Background(m.styles.colorBg)

	return view.TableViewState{
		InnerW:       layout.InnerW,
		GridH:        layout.GridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content: view.TableContent{
			Rows:       rows,
			CellStyles: cellStyles,
		},
		BorderStyle: borderStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
		Render:      true,
	}
}

func (m Model) footerViewState(layout LayoutCache) view.FooterModel {
	contentWidth := layout.PromptContentWidth
	lines := m.promptLines(contentWidth)
	lines = view.ClampPromptLines(lines, m.promptMaxContentLines(), contentWidth)

	showPrompt := m.mode != ModeDrag && (m.mode != ModeModal || m.modalType == ModalNone)

	return view.FooterModel{
		InnerW:           layout.InnerW,
		FooterH:          layout.FooterH,
		FullFooter:       layout.FooterH >= footerMinHeight,
		StatsLine:        m.renderStatsBar(layout.InnerW),
		LegendText:       m.renderLegend(),
		StatusText:       m.statusMsgOrDefault(),
		HelpText:         m.renderHelp(),
		PromptLines:      lines,
		PromptMax:        m.promptMaxContentLines(),
		PromptFocus:      m.mode == ModePrompt,
		ShowPrompt:       showPrompt,
		FooterStyle:      layout.FooterAuxStyle,
		StatusStyle:      layout.StatusAuxStyle,
		HelpStyle:        layout.HelpAuxStyle,
		PromptStyle:      layout.PromptStyle,
		PromptFocusStyle: layout.PromptFocusedStyle,
		VAlign:           lipgloss.Bottom,
		Bg:               m.styles.colorBg,
	}
}
