package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/lifegrid/internal/exchange"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

func (a *App) exportCmd() *cobra.Command {
	var (
		format      string
		output      string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the schedule as JSON or CSV",
		Long: `Write the schedule to stdout, a file or the clipboard.

JSON keeps icons and classes and can be imported back. CSV is
meant for spreadsheets.`,
		Example: `  lifegrid export > week.json
  lifegrid export --format csv -o week.csv
  lifegrid export --format csv --clipboard`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := writeDocument(&buf, a.sess.Document(), format); err != nil {
				return err
			}

			switch {
			case toClipboard:
				if err := writeClipboard(buf.String()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Copied %s to clipboard\n", strings.ToUpper(format))
			case output != "":
				path, err := resolvePath(output)
				if err != nil {
					return err
				}
				if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", path)
			default:
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json or csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy to the clipboard instead of stdout")
	return cmd
}

func writeDocument(w io.Writer, doc *schedule.Document, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return exchange.WriteJSON(w, doc)
	case "csv":
		return exchange.WriteCSV(w, doc)
	default:
		return fmt.Errorf("unknown format %q (use json or csv)", format)
	}
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
