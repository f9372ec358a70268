package ui

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lifegrid/internal/dateutil"
	"github.com/javiermolinar/lifegrid/internal/summary"
)

func (a *App) weekCmd() *cobra.Command {
	var (
		noColor bool
		of      string
	)

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Summarize planned hours for the week",
		Long: `Summarize the grid as hours per activity class and per day.

Each slot lasts until the next one starts. Rituals fill their row on
every day that has nothing else planned there.`,
		Example: `  lifegrid week
  lifegrid week --of next-week
  lifegrid week --of 2026-03-02`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}
			weekOf, err := dateutil.ParseDate(of, a.now())
			if err != nil {
				return err
			}
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			printWeekSummary(cmd.OutOrStdout(), summary.SummarizeWeek(weekOf, a.sess.Document()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().StringVar(&of, "of", "", "Any date in the week (YYYY-MM-DD, today, last-week, next-week)")
	return cmd
}

func printWeekSummary(w io.Writer, s *summary.WeekSummary) {
	fmt.Fprintf(w, "=== %s ===\n\n", formatHeader(weekTitle(s)))

	planned := s.PlannedHours()
	if planned == 0 {
		fmt.Fprintln(w, formatMuted("Nothing planned this week."))
		return
	}

	fmt.Fprintln(w, formatHeader(fit("Class", 14)+fit("Hours", 8)+"Share"))
	for _, c := range s.Classes {
		pct := c.Hours / planned * 100
		fmt.Fprintf(w, "%s%s%s %s\n",
			fit(c.Class, 14),
			fit(FormatDuration(c.Hours), 8),
			FlowBar(pct, 20),
			formatStats(fmt.Sprintf("%d%%", int(pct+0.5))))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, formatHeader(fit("Day", 14)+fit("Planned", 10)+"Open"))
	for _, d := range s.Days {
		fmt.Fprintf(w, "%s%s%s\n",
			fit(d.Date.Format("Mon Jan 2"), 14),
			fit(FormatDuration(d.Planned), 10),
			formatMuted(FormatDuration(d.Open)))
	}
	fmt.Fprintln(w)

	line := fmt.Sprintf("Planned %s of %s", FormatDuration(planned), FormatDuration(s.GridHours*float64(len(s.Days))))
	if busiest, ok := s.Busiest(); ok {
		line += " | Busiest " + busiest.Column.Title()
	}
	if s.RitualHours > 0 {
		line += " | Rituals " + FormatDuration(s.RitualHours) + "/day"
	}
	fmt.Fprintln(w, formatStats(line))
}

func weekTitle(s *summary.WeekSummary) string {
	return fmt.Sprintf("Week of %s - %s", s.Start.Format("Jan 2"), s.End.Format("Jan 2, 2006"))
}
