package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lifegrid/internal/dateutil"
	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func (a *App) showCmd() *cobra.Command {
	var (
		noColor bool
		today   bool
		days    []string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the weekly grid",
		Long: `Print the weekly grid without starting the interactive view.

The current slot and today's column are highlighted. During sleep
hours the day columns are folded, as in the interactive view.`,
		Example: `  lifegrid show
  lifegrid show --today
  lifegrid show --day monday --day friday`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			now := a.now()
			snap := a.sess.Tracker.Tick(now)

			opts := GridOpts{Width: width, Now: now}
			switch {
			case today:
				opts.Only = []schedule.Column{schedule.ColumnRituals, schedule.ColumnForWeekday(now.Weekday())}
			case len(days) > 0:
				for _, d := range days {
					col, err := schedule.ParseColumn(d)
					if err != nil || col == schedule.ColumnTime {
						return fmt.Errorf("unknown day %q", d)
					}
					opts.Only = append(opts.Only, col)
				}
			}

			out := cmd.OutOrStdout()
			monday, sunday := dateutil.WeekRange(now)
			fmt.Fprintf(out, "=== %s ===\n", formatHeader(now.Format("Monday, January 2, 2006")))
			fmt.Fprintf(out, "%s\n\n", formatMuted("Week of "+monday.Format("Jan 2")+" - "+sunday.Format("Jan 2")))
			PrintGrid(out, a.sess.Surface, snap, opts)
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVar(&today, "today", false, "Only show rituals and today")
	cmd.Flags().StringSliceVar(&days, "day", nil, "Only show these columns ("+strings.Join(dayNames(), ", ")+")")
	cmd.Flags().IntVar(&width, "width", 0, "Output width (defaults to the terminal width)")
	return cmd
}

func dayNames() []string {
	cols := schedule.ActivityColumns()
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = string(c)
	}
	return names
}
