package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lifegrid/internal/exchange"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func (a *App) importCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the schedule with an exported JSON file",
		Long: `Replace the stored schedule with the contents of a JSON export.

Cells for times that have no row in the grid are skipped. Use
--dry-run to see what would change without writing anything.`,
		Example: `  lifegrid import week.json --dry-run
  lifegrid import ~/backups/week.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			incoming, err := readDocument(path)
			if err != nil {
				return err
			}

			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if dryRun {
				lines, err := exchange.Diff(a.sess.Document(), incoming)
				if err != nil {
					return err
				}
				printDiff(out, lines)
				return nil
			}

			res, err := a.sess.Import(cmd.Context(), incoming)
			if err != nil {
				return fmt.Errorf("importing %s: %w", path, err)
			}
			fmt.Fprintf(out, "Imported %d cells from %s\n", res.Applied, path)
			if res.Skipped > 0 {
				fmt.Fprintf(out, "%s\n", formatMuted(fmt.Sprintf("Skipped %d cells with no matching row", res.Skipped)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes without importing")
	return cmd
}

func readDocument(path string) (*schedule.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file does not exist: %s", path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	doc, err := exchange.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return doc, nil
}

// printDiff prints only the changed lines of a document diff.
func printDiff(w io.Writer, lines []exchange.Line) {
	if !exchange.Changed(lines) {
		fmt.Fprintln(w, "No changes.")
		return
	}
	added, removed := 0, 0
	for _, l := range lines {
		switch l.Op {
		case exchange.OpInsert:
			added++
			fmt.Fprintln(w, colorAdded.Sprint(l.Prefix()+l.Text))
		case exchange.OpDelete:
			removed++
			fmt.Fprintln(w, colorRemoved.Sprint(l.Prefix()+l.Text))
		}
	}
	fmt.Fprintf(w, "\n%d lines added, %d removed (dry run, nothing written)\n", added, removed)
}
