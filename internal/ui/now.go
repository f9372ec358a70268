package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func (a *App) nowCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current slot and how far the day has gone",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			now := a.now()
			snap := a.sess.Tracker.Tick(now)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Now   %s  %s\n", formatHeader(schedule.FormatClock(now)), now.Format("Monday"))

			if snap.HasCurrent {
				c := snap.Current
				fmt.Fprintf(out, "Slot  %s  %s %s  (%s of %s)\n",
					formatCurrent(c.Slot.Label()),
					FlowBar(c.Progress, 20),
					formatStats(fmt.Sprintf("%d%%", int(c.Progress))),
					FormatDuration(c.Elapsed),
					FormatDuration(c.Duration))

				col := schedule.ColumnForWeekday(now.Weekday())
				if cell := a.sess.Surface.Cell(c.Slot, col); cell != nil && !cell.Assignment.IsEmpty() {
					fmt.Fprintf(out, "      %s\n", cell.Assignment.Display())
				}
			} else {
				fmt.Fprintf(out, "Slot  %s\n", formatMuted("none"))
			}

			fmt.Fprintf(out, "Day   %s %s\n",
				FlowBar(float64(snap.DayProgress), 20),
				formatStats(fmt.Sprintf("%d%%", snap.DayProgress)))

			if snap.Sleeping {
				fmt.Fprintln(out, formatSleep("zzz time to sleep"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
