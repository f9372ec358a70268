package tui

import "github.com/charmbracelet/lipgloss"

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int
	GridH   int

	FooterAuxStyle lipgloss.Style
	StatusAuxStyle lipgloss.Style
	HelpAuxStyle   lipgloss.Style

	StatsBarStyle      lipgloss.Style
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style
	PromptContentWidth int
}

func promptContentWidth(styles *Styles, innerW int) int {
	promptFrameW, _ := styles.PromptStyle.GetFrameSize()
	promptWidth := innerW - promptFrameW
	if promptWidth < 0 {
		promptWidth = 0
	}
	if promptWidth < 20 && innerW >= promptFrameW+20 {
		promptWidth = 20
	}
	return promptWidth
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := max(0, width-appH)
	innerH := max(0, height-appV)

	footerH := footerCompact
	if innerH >= footerFullMinHeight {
		footerH = m.fullFooterHeight(innerH, promptContentWidth(styles, innerW))
	}

	gridH := innerH - footerH
	if gridH < tableChrome+1 {
		gridH = tableChrome + 1
	}

	footerAuxStyle := lipgloss.NewStyle().
		Width(innerW).
		Background(styles.colorBg)
	statusAuxStyle := styles.StatusStyle.Inherit(footerAuxStyle)
	helpAuxStyle := styles.HelpStyle.Inherit(lipgloss.NewStyle().
		Padding(0, 1).
		Width(max(0, innerW-2)).
		Background(styles.colorBg))

	promptWidth := promptContentWidth(styles, innerW)

	return LayoutCache{
		InnerW:             innerW,
		InnerH:             innerH,
		FooterH:            footerH,
		GridH:              gridH,
		FooterAuxStyle:     footerAuxStyle,
		StatusAuxStyle:     statusAuxStyle,
		HelpAuxStyle:       helpAuxStyle,
		StatsBarStyle:      styles.StatsBarStyle.Width(innerW),
		PromptStyle:        styles.PromptStyle.Width(promptWidth),
		PromptFocusedStyle: styles.PromptFocusedStyle.Width(promptWidth),
		PromptContentWidth: promptWidth,
	}
}

func (m Model) fullFooterHeight(innerH, promptWidth int) int {
	promptLines := max(promptMinContentLines, len(m.promptLines(promptWidth)))
	desired := footerBaseLines + promptLines + promptBorderLines

	maxFooter := innerH - tableChrome - 1
	if maxFooter < footerMinHeight {
		return footerCompact
	}
	return max(footerMinHeight, min(desired, maxFooter))
}

// relayout recomputes everything derived from the window size.
func (m *Model) relayout() {
	m.colWidth = m.calculateColWidth()
	m.styleCache = NewStyleCache(m.styles, m.colWidth, m.theme.ClassNames())
	m.layoutCache = m.buildLayoutCache(m.width, m.height)
	m.ensureCursorVisible()
}
