package exchange

import (
	"bytes"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// Op marks a diff line.
type Op int

const (
	OpEqual Op = iota
	OpInsert
	OpDelete
)

// Line is one line of a document diff.
type Line struct {
	Op   Op
	Text string
}

// Prefix returns the unified-diff marker for the line.
func (l Line) Prefix() string {
	switch l.Op {
	case OpInsert:
		return "+"
	case OpDelete:
		return "-"
	default:
		return " "
	}
}

// Diff compares two documents line by line, ignoring savedAt.
// A nil current document diffs against an empty schedule.
func Diff(current, incoming *schedule.Document) ([]Line, error) {
	a, err := diffText(current)
	if err != nil {
		return nil, err
	}
	b, err := diffText(incoming)
	if err != nil {
		return nil, err
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []Line
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			out = append(out, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return out, nil
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != OpEqual {
			return true
		}
	}
	return false
}

func diffText(doc *schedule.Document) (string, error) {
	view := struct {
		Schedule map[string]schedule.Row `json:"schedule"`
	}{Schedule: map[string]schedule.Row{}}
	if doc != nil && doc.Schedule != nil {
		view.Schedule = doc.Schedule
	}
	var buf bytes.Buffer
	if err := writeIndented(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
