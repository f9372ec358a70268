package view

import (
	"strings"
	"testing"
)

func TestModalFooters(t *testing.T) {
	styles := ModalStyles{}
	tests := []struct {
		name string
		got  string
		want []string
	}{
		{name: "picker", got: PickerFooter(styles), want: []string{"[Enter] Assign", "[Tab] New", "[Esc] Close"}},
		{name: "form", got: PresetFormFooter(styles), want: []string{"[Esc] Cancel"}},
		{name: "confirm", got: ConfirmRemoveFooter(styles), want: []string{"[y/Enter] Remove", "[n/Esc] Keep"}},
		{name: "help", got: HelpFooter(styles), want: []string{"[Esc] Close"}},
	}
	for _, tt := range tests {
		for _, w := range tt.want {
			if !strings.Contains(tt.got, w) {
				t.Errorf("%s footer missing %q: %q", tt.name, w, tt.got)
			}
		}
	}
}
