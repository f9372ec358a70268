package view

import (
	"strings"
	"testing"
)

func TestPromptLinesIncludesSuggestions(t *testing.T) {
	state := PromptState{Value: "/s", Cursor: "_", ModePrompt: true}
	suggestions := []PromptCommand{{Name: "/slot", Usage: "<time>", Description: "Add a time slot"}}
	lines := PromptLines(state, 60, suggestions)

	if lines[0] != "> /s_" {
		t.Errorf("input line = %q", lines[0])
	}
	found := false
	for _, line := range lines {
		if line == "  /slot <time>  Add a time slot" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected suggestion line, got %v", lines)
	}
}

func TestPromptLinesHidesSuggestionsWithoutFocus(t *testing.T) {
	state := PromptState{Placeholder: "press / for commands"}
	lines := PromptLines(state, 40, []PromptCommand{{Name: "/slot"}})
	if len(lines) != 1 || lines[0] != "press / for commands" {
		t.Errorf("lines = %v", lines)
	}
}

func TestWrapTextToWidths(t *testing.T) {
	lines := WrapTextToWidths("import ~/schedules/week.json", 10, 12)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %v", lines)
	}
	if strings.Join(lines, "") == "" {
		t.Error("wrapped text lost")
	}
}

func TestClampPromptLinesAddsEllipsis(t *testing.T) {
	lines := []string{"one", "two", "three"}
	clamped := ClampPromptLines(lines, 2, 5)
	if len(clamped) != 2 {
		t.Fatalf("clamped length = %d, want 2", len(clamped))
	}
	if clamped[1] == "two" {
		t.Fatalf("expected ellipsis on last line, got %q", clamped[1])
	}
}
