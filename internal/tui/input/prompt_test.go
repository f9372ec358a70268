package input

import (
	"errors"
	"testing"
)

func TestPromptMatchingCommands(t *testing.T) {
	commands := Commands()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "no_slash", input: "slot", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "full", input: "/slot", want: 1},
		{name: "prefix", input: "/s", want: 1},
		{name: "shared_prefix", input: "/", want: len(commands)},
		{name: "with_space", input: "/slot x", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PromptMatchingCommands(tt.input, commands)
			if len(got) != tt.want {
				t.Fatalf("matches = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestPromptAutocomplete(t *testing.T) {
	value, ok := PromptAutocomplete("/th", Commands())
	if !ok {
		t.Fatal("expected autocomplete")
	}
	if value != "/theme " {
		t.Fatalf("value = %q, want %q", value, "/theme ")
	}

	if _, ok := PromptAutocomplete("/zz", Commands()); ok {
		t.Fatal("unexpected autocomplete for unknown prefix")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{name: "slot", line: "/slot 9:30 AM", want: Command{Name: "/slot", Arg: "9:30 AM"}},
		{name: "bare_time", line: "  14:15 ", want: Command{Name: "/slot", Arg: "14:15"}},
		{name: "upper_case", line: "/THEME latte", want: Command{Name: "/theme", Arg: "latte"}},
		{name: "optional_arg", line: "/preset", want: Command{Name: "/preset"}},
		{name: "no_arg", line: "/help", want: Command{Name: "/help"}},
		{name: "missing_arg", line: "/export", wantErr: true},
		{name: "unknown", line: "/plan", wantErr: true},
		{name: "empty", line: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.line, Commands())
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %+v, want error", tt.line, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestParseUnknownIsTyped(t *testing.T) {
	_, err := Parse("/nope", Commands())
	if !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("error = %v, want ErrUnknownCommand", err)
	}
}
