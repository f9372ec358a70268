package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderFooterModel(t *testing.T) {
	base := FooterModel{
		InnerW:      40,
		StatsLine:   "now 9:15 AM",
		LegendText:  "work meal",
		StatusText:  "Saved",
		HelpText:    "q quit",
		PromptLines: []string{"> /slot 9:30"},
		PromptMax:   1,
		ShowPrompt:  true,
		PromptStyle: lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		VAlign:      lipgloss.Bottom,
	}

	tests := []struct {
		name    string
		full    bool
		height  int
		want    []string
		missing []string
	}{
		{name: "full", full: true, height: 8, want: []string{"now 9:15 AM", "work meal", "/slot 9:30", "Saved", "q quit"}},
		{name: "compact", full: false, height: 2, want: []string{"Saved", "q quit"}, missing: []string{"now 9:15 AM", "/slot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := base
			m.FullFooter = tt.full
			m.FooterH = tt.height
			out := ansi.Strip(RenderFooterModel(m))
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q in:\n%s", w, out)
				}
			}
			for _, w := range tt.missing {
				if strings.Contains(out, w) {
					t.Errorf("unexpected %q in:\n%s", w, out)
				}
			}
			if got := len(strings.Split(out, "\n")); got != tt.height {
				t.Errorf("height = %d, want %d", got, tt.height)
			}
		})
	}
}

func TestRenderFooterModelZeroHeight(t *testing.T) {
	if out := RenderFooterModel(FooterModel{InnerW: 10}); out != "" {
		t.Errorf("RenderFooterModel() = %q, want empty", out)
	}
}
