package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestDayHeaderLines(t *testing.T) {
	tests := []struct {
		name   string
		header DayHeader
		want   []string
	}{
		{
			name:   "other day",
			header: DayHeader{Name: "Monday"},
			want:   []string{"Monday", "", ""},
		},
		{
			name:   "today awake",
			header: DayHeader{Name: "Wednesday", Today: true, Progress: 45, Date: "Mar 4", Clock: "2:30 PM"},
			want:   []string{"Wednesday", "Mar 4", "45% 2:30 PM"},
		},
		{
			name:   "today asleep",
			header: DayHeader{Name: "Wednesday", Today: true, Progress: 100, Date: "Mar 4", Clock: "11:10 PM", Zzz: true},
			want:   []string{"Wednesday zzz", "Mar 4", "100% 11:10 PM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.header.Lines()
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDayHeaderWidth(t *testing.T) {
	plain := lipgloss.NewStyle()
	h := DayHeader{Name: "Wednesday", Today: true, Progress: 50, Date: "Mar 4", Clock: "2:30 PM"}

	out := ansi.Strip(RenderDayHeader(h, 14, plain, plain))
	lines := strings.Split(out, "\n")
	if len(lines) != HeaderLines {
		t.Fatalf("lines = %d, want %d", len(lines), HeaderLines)
	}
	for _, l := range lines {
		if ansi.StringWidth(l) != 14 {
			t.Errorf("line %q width = %d, want 14", l, ansi.StringWidth(l))
		}
	}
}
