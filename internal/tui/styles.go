// Package tui provides the terminal user interface for lifegrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lifegrid/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 14

// timeColWidth fits "12:30 PM" plus a live "12:30:45" clock line.
const timeColWidth = 10

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorCurrent     lipgloss.Color
	colorToday       lipgloss.Color
	colorSleep       lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent  lipgloss.Color
	colorTextOnWarning lipgloss.Color
	colorTextOnCurrent lipgloss.Color

	colorCurrentRowBg lipgloss.Color
	colorTodayBg      lipgloss.Color
	colorFlapBg       lipgloss.Color

	// Title style
	TitleStyle lipgloss.Style

	// Header styles
	HeaderStyle         lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style
	// Today's header day-progress fill
	HeaderFillStyle  lipgloss.Style
	HeaderEmptyStyle lipgloss.Style

	// Time column
	TimeColumnStyle  lipgloss.Style
	TimeCurrentStyle lipgloss.Style
	// Current slot progress fill in the time cell
	SlotFillStyle  lipgloss.Style
	SlotEmptyStyle lipgloss.Style

	// Activity cells
	ActivityCellStyle lipgloss.Style
	DragSourceStyle   lipgloss.Style
	FlapStyle         lipgloss.Style

	// Empty cells
	EmptyCellStyle      lipgloss.Style
	TodayCellStyle      lipgloss.Style
	CurrentRowCellStyle lipgloss.Style

	// Cursor style
	CursorStyle lipgloss.Style

	// Stats bar
	StatsBarStyle   lipgloss.Style
	StatsValueStyle lipgloss.Style
	StatsSleepStyle lipgloss.Style
	ModeEditStyle   lipgloss.Style
	ModeDragStyle   lipgloss.Style

	// Prompt box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalSelectedStyle     lipgloss.Style

	// Table container
	TableStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Viewport background
	ViewportStyle lipgloss.Style

	// Separator style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{palette: palette}

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorCurrent = palette.Current
	s.colorToday = palette.Today
	s.colorSleep = palette.Sleep
	s.colorWarning = palette.Warning

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnWarning = palette.TextOnWarning
	s.colorTextOnCurrent = palette.TextOnCurrent

	s.colorCurrentRowBg = palette.CurrentRowBg
	s.colorTodayBg = palette.TodayBg
	s.colorFlapBg = palette.FlapBg

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	// Today's header is pre-rendered with its fill, so it carries no background.
	s.DayHeaderTodayStyle = lipgloss.NewStyle().
		Bold(true).
		Width(defaultColWidth)

	s.HeaderFillStyle = lipgloss.NewStyle().
		Background(s.colorToday).
		Foreground(s.colorTextOnAccent).
		Bold(true)

	s.HeaderEmptyStyle = lipgloss.NewStyle().
		Background(s.colorTodayBg).
		Foreground(s.colorToday).
		Bold(true)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(timeColWidth)

	s.TimeCurrentStyle = lipgloss.NewStyle().
		Width(timeColWidth)

	s.SlotFillStyle = lipgloss.NewStyle().
		Background(s.colorCurrent).
		Foreground(s.colorTextOnCurrent).
		Bold(true)

	s.SlotEmptyStyle = lipgloss.NewStyle().
		Background(s.colorCurrentRowBg).
		Foreground(s.colorCurrent).
		Bold(true)

	s.ActivityCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Left).
		Bold(true)

	s.DragSourceStyle = s.ActivityCellStyle.
		Background(s.colorWarning).
		Foreground(s.colorTextOnWarning)

	s.FlapStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Center).
		Background(s.colorFlapBg).
		Foreground(s.colorSleep).
		Italic(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.TodayCellStyle = s.EmptyCellStyle.
		Background(s.colorTodayBg)

	s.CurrentRowCellStyle = s.EmptyCellStyle.
		Background(s.colorCurrentRowBg)

	s.CursorStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.StatsBarStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg).
		Padding(0, 0)

	s.StatsValueStyle = lipgloss.NewStyle().
		Foreground(s.colorCurrent).
		Background(s.colorBg).
		Bold(true)

	s.StatsSleepStyle = lipgloss.NewStyle().
		Foreground(s.colorSleep).
		Background(s.colorBg).
		Italic(true)

	s.ModeEditStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	s.ModeDragStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnWarning).
		Background(s.colorWarning).
		Bold(true).
		Padding(0, 1)

	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modalBg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(56).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Background(modalBg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modalBg)

	s.ModalSelectedStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Bold(true)

	s.TableStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	s.ViewportStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	return s
}

// ClassStyle returns the activity style for class. alt selects the
// alternate shade used when the cell above holds the same class.
func (s *Styles) ClassStyle(class string, alt bool) lipgloss.Style {
	c := s.palette.Class(class)
	bg := c.Bg
	if alt {
		bg = c.BgAlt
	}
	return s.ActivityCellStyle.Background(bg).Foreground(c.Fg)
}

// SwatchStyle returns a small color chip style for class.
func (s *Styles) SwatchStyle(class string) lipgloss.Style {
	return lipgloss.NewStyle().Background(s.palette.Class(class).Bg)
}

// LegendStyle colors a legend label with its class color.
func (s *Styles) LegendStyle(class string) lipgloss.Style {
	c := s.palette.Class(class)
	return lipgloss.NewStyle().Background(c.Bg).Foreground(c.Fg).Padding(0, 1)
}
