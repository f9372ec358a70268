// Package exchange converts the schedule document to and from JSON and CSV
// files.
package exchange

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// Import errors.
var (
	ErrMalformed       = errors.New("file is not valid JSON")
	ErrMissingSchedule = errors.New(`file has no "schedule" key`)
)

// WriteJSON writes doc as indented JSON.
func WriteJSON(w io.Writer, doc *schedule.Document) error {
	return writeIndented(w, doc)
}

func writeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	return nil
}

// csvColumns are the exported columns after the time column.
var csvColumns = schedule.ActivityColumns()

// CSVHeader returns the header row.
func CSVHeader() string {
	names := []string{"Time"}
	for _, col := range csvColumns {
		names = append(names, col.Title())
	}
	return strings.Join(names, ",")
}

// WriteCSV writes one row per slot, ascending. Every cell is quoted.
func WriteCSV(w io.Writer, doc *schedule.Document) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(CSVHeader() + "\n"); err != nil {
		return err
	}

	for _, slot := range doc.Slots() {
		label := slot.Label()
		if a, ok := doc.Get(slot, schedule.ColumnTime); ok && a.Text != "" {
			label = a.Text
		}
		cells := []string{quote(label)}
		for _, col := range csvColumns {
			a, _ := doc.Get(slot, col)
			cells = append(cells, quote(a.Display()))
		}
		if _, err := bw.WriteString(strings.Join(cells, ",") + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ReadJSON parses an exported document. The document must carry a
// "schedule" object with known columns.
func ReadJSON(r io.Reader) (*schedule.Document, error) {
	var raw struct {
		Schedule json.RawMessage `json:"schedule"`
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(raw.Schedule) == 0 || string(raw.Schedule) == "null" {
		return nil, ErrMissingSchedule
	}

	var doc schedule.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}
