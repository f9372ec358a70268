// Package input parses the TUI command prompt.
package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned for a prompt line that names no command.
var ErrUnknownCommand = errors.New("unknown command")

// PromptCommand describes a command suggestion entry.
type PromptCommand struct {
	Name        string
	Usage       string
	Description string
	// NeedsArg is true when the command takes a required argument.
	NeedsArg bool
}

// Commands returns the commands understood by the prompt.
func Commands() []PromptCommand {
	return []PromptCommand{
		{Name: "/slot", Usage: "<time>", Description: "Add a time slot", NeedsArg: true},
		{Name: "/preset", Usage: "[name]", Description: "Create a custom activity"},
		{Name: "/theme", Usage: "<name>", Description: "Switch color theme", NeedsArg: true},
		{Name: "/export", Usage: "<path>", Description: "Write the schedule as JSON", NeedsArg: true},
		{Name: "/import", Usage: "<path>", Description: "Replace the schedule from JSON", NeedsArg: true},
		{Name: "/csv", Description: "Copy the schedule as CSV"},
		{Name: "/help", Description: "Show key bindings"},
	}
}

// PromptMatchingCommands returns commands that match the current input prefix.
func PromptMatchingCommands(input string, commands []PromptCommand) []PromptCommand {
	if !strings.HasPrefix(strings.TrimSpace(input), "/") {
		return nil
	}
	if strings.Contains(input, " ") {
		return nil
	}

	prefix := strings.ToLower(strings.TrimSpace(input))
	matches := make([]PromptCommand, 0, len(commands))
	for _, cmd := range commands {
		if strings.HasPrefix(strings.ToLower(cmd.Name), prefix) {
			matches = append(matches, cmd)
		}
	}
	return matches
}

// PromptAutocomplete returns the first matching command and whether it exists.
func PromptAutocomplete(input string, commands []PromptCommand) (string, bool) {
	matches := PromptMatchingCommands(input, commands)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Name + " ", true
}

// Command is a parsed prompt line.
type Command struct {
	Name string
	Arg  string
}

// Parse splits a prompt line into a known command and its argument.
// A bare line without a leading slash is read as a time for /slot.
func Parse(line string, commands []PromptCommand) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}
	if !strings.HasPrefix(line, "/") {
		return Command{Name: "/slot", Arg: line}, nil
	}

	name, arg, _ := strings.Cut(line, " ")
	name = strings.ToLower(name)
	arg = strings.TrimSpace(arg)
	for _, cmd := range commands {
		if cmd.Name != name {
			continue
		}
		if cmd.NeedsArg && arg == "" {
			return Command{}, fmt.Errorf("usage: %s %s", cmd.Name, cmd.Usage)
		}
		return Command{Name: name, Arg: arg}, nil
	}
	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}
