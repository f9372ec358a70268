package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lifegrid/internal/schedule"
)

func (a *App) slotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Manage the rows of the grid",
	}
	cmd.AddCommand(a.slotAddCmd(), a.slotRemoveCmd(), a.slotListCmd())
	return cmd
}

func (a *App) slotAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <time>",
		Short: "Add a time slot",
		Example: `  lifegrid slot add 9:30AM
  lifegrid slot add "6:45 PM"
  lifegrid slot add 18:45`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.editSession(cmd.Context())
			if err != nil {
				return err
			}
			slot, err := sess.Editor.InsertSlot(cmd.Context(), joinArgs(args))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", slot.Label())
			return nil
		},
	}
}

func (a *App) slotRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <time>",
		Aliases: []string{"rm"},
		Short:   "Remove a time slot and its activities",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := schedule.ParseTimeSlot(joinArgs(args))
			if err != nil {
				return err
			}
			sess, err := a.editSession(cmd.Context())
			if err != nil {
				return err
			}
			filled := 0
			if r := sess.Surface.Row(slot); r != nil {
				for _, c := range r.Cells() {
					if !c.Assignment.IsEmpty() {
						filled++
					}
				}
			}
			if err := sess.Editor.RemoveSlot(cmd.Context(), slot); err != nil {
				return err
			}
			msg := "Removed " + slot.Label()
			if filled > 0 {
				msg += fmt.Sprintf(" (%d activities cleared)", filled)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
}

func (a *App) slotListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List time slots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, r := range a.sess.Surface.Rows() {
				filled := 0
				for _, c := range r.Cells() {
					if !c.Assignment.IsEmpty() {
						filled++
					}
				}
				fmt.Fprintf(out, "  %-9s %s  %s\n", r.Slot.Label(), r.Slot.HHMM(),
					formatMuted(fmt.Sprintf("%d/%d filled", filled, len(r.Cells()))))
			}
			return nil
		},
	}
}

// joinArgs lets "6:45 PM" be passed with or without quotes.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
