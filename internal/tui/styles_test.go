package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/lifegrid/internal/tui/theme"
)

func testPalette() *theme.Theme {
	return &theme.Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Current:     "#ffff00",
		Today:       "#00ffff",
		Sleep:       "#8888ff",
		Warning:     "#ff00ff",
		Classes: map[string]string{
			"work":     "#00ff00",
			"exercise": "#0000ff",
		},
	}
}

func assertBg(t *testing.T, name string, style lipgloss.Style, want lipgloss.Color) {
	t.Helper()
	bg, ok := style.GetBackground().(lipgloss.Color)
	if !ok {
		t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
	}
	if bg != want {
		t.Fatalf("%s background = %q, want %q", name, bg, want)
	}
}

func TestStylesBackgroundCoverage(t *testing.T) {
	palette := testPalette()
	styles := NewStyles(palette)
	bg := lipgloss.Color(palette.Bg)

	assertBg(t, "EmptyCellStyle", styles.EmptyCellStyle, bg)
	assertBg(t, "SeparatorStyle", styles.SeparatorStyle, bg)
	assertBg(t, "TimeColumnStyle", styles.TimeColumnStyle, bg)
	assertBg(t, "TableStyle", styles.TableStyle, bg)
	assertBg(t, "ViewportStyle", styles.ViewportStyle, bg)
	assertBg(t, "SlotFillStyle", styles.SlotFillStyle, lipgloss.Color(palette.Current))
	assertBg(t, "HeaderFillStyle", styles.HeaderFillStyle, lipgloss.Color(palette.Today))
}

func TestCursorStyleContrast(t *testing.T) {
	palette := testPalette()
	styles := NewStyles(palette)

	assertBg(t, "CursorStyle", styles.CursorStyle, lipgloss.Color(palette.BgSelection))

	fg, ok := styles.CursorStyle.GetForeground().(lipgloss.Color)
	if !ok {
		t.Fatalf("CursorStyle foreground type = %T, want lipgloss.Color", styles.CursorStyle.GetForeground())
	}
	if fg != lipgloss.Color(palette.Accent) {
		t.Fatalf("CursorStyle foreground = %q, want %q", fg, palette.Accent)
	}
}

func TestClassStyleShades(t *testing.T) {
	palette := testPalette()
	styles := NewStyles(palette)
	derived := theme.NewPalette(palette)

	work := derived.Class("work")
	assertBg(t, "work", styles.ClassStyle("work", false), work.Bg)
	assertBg(t, "work alt", styles.ClassStyle("Work", true), work.BgAlt)

	if work.Bg == work.BgAlt {
		t.Error("alternate shade should differ from the base")
	}
	if derived.Class("work").Bg == derived.Class("exercise").Bg {
		t.Error("classes should get distinct colors")
	}

	// Unknown classes fall back to one shared color.
	assertBg(t, "unknown", styles.ClassStyle("piano", false), derived.Class("other").Bg)
}

func TestStyleCacheClassLookup(t *testing.T) {
	palette := testPalette()
	styles := NewStyles(palette)
	cache := NewStyleCache(styles, 12, []string{"work"})

	if w := cache.EmptyCell.GetWidth(); w != 12 {
		t.Errorf("EmptyCell width = %d, want 12", w)
	}
	if w := cache.Class("WORK", false).GetWidth(); w != 12 {
		t.Errorf("class width = %d, want 12", w)
	}
	assertBg(t, "cached work", cache.Class("work", true), theme.NewPalette(palette).Class("work").BgAlt)
}
