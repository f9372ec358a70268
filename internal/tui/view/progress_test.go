package view

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFillWidth(t *testing.T) {
	tests := []struct {
		width int
		pct   float64
		want  int
	}{
		{width: 10, pct: 0, want: 0},
		{width: 10, pct: -5, want: 0},
		{width: 10, pct: 25, want: 3},
		{width: 10, pct: 50, want: 5},
		{width: 10, pct: 100, want: 10},
		{width: 10, pct: 140, want: 10},
		{width: 0, pct: 50, want: 0},
	}

	for _, tt := range tests {
		if got := FillWidth(tt.width, tt.pct); got != tt.want {
			t.Errorf("FillWidth(%d, %v) = %d, want %d", tt.width, tt.pct, got, tt.want)
		}
	}
}

func TestProgressFillKeepsWidth(t *testing.T) {
	plain := lipgloss.NewStyle()
	out := ProgressFill([]string{"9:00 AM", "9:15 AM"}, 10, 25, plain, plain)

	want := "9:00 AM   \n9:15 AM   "
	if got := ansi.Strip(out); got != want {
		t.Errorf("ProgressFill() = %q, want %q", got, want)
	}
}
