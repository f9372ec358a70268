package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func plainView(t *testing.T, m Model) string {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	return ansi.Strip(m.View())
}

func TestViewShowsGrid(t *testing.T) {
	m := newTestModel(t, testNow)
	out := plainView(t, m)

	for _, want := range []string{"Time", "Rituals", "Monday", "Sunday", "Mar 4", "9:30 AM", "10:00 AM", "Day "} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewShowsTodayHeader(t *testing.T) {
	m := newTestModel(t, testNow)
	out := plainView(t, m)

	if !strings.Contains(out, "13% 9:30 AM") {
		t.Errorf("today's header missing progress and clock:\n%s", out)
	}
	for _, day := range []string{"Monday", "Wednesday", "Sunday"} {
		if strings.Contains(out, day+" …") || strings.Contains(out, day+"…") {
			t.Errorf("%s header cut to one line:\n%s", day, out)
		}
	}
}

func TestViewShowsAssignment(t *testing.T) {
	m := newTestModel(t, testNow)
	m.sess.Surface.Cell(10, schedule.ColumnTuesday).Assignment = schedule.Assignment{Icon: "▲", Text: "Gym", Class: "exercise"}
	out := plainView(t, m)
	if !strings.Contains(out, "▲ Gym") {
		t.Error("view missing the assigned activity")
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModelWithSlots(t, testNow, []string{"09:00"}, 4, 1)
	if out := m.renderAppContent(); out != "Terminal too small" {
		t.Errorf("content = %q", out)
	}
}

func TestViewEditBadge(t *testing.T) {
	m := newTestModel(t, testNow)
	m = press(t, m, "i")
	out := plainView(t, m)
	if !strings.Contains(out, "EDIT") {
		t.Error("edit mode badge missing")
	}
	m = press(t, m, "?")
	if out := plainView(t, m); !strings.Contains(out, "Keys") {
		t.Error("help modal missing")
	}
}
