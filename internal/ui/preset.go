package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) presetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Aliases: []string{"activity"},
		Short:   "Manage the activity catalog",
	}
	cmd.AddCommand(a.presetAddCmd(), a.presetListCmd())
	return cmd
}

func (a *App) presetAddCmd() *cobra.Command {
	var (
		icon  string
		class string
	)

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Add a custom activity",
		Example: `  lifegrid preset add Piano --icon 🎹 --class learning`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := a.editSession(cmd.Context())
			if err != nil {
				return err
			}
			name := joinArgs(args)
			if existing, ok := sess.Editor.Catalog().Find(name); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s already exists\n", existing.Icon, existing.Name)
				return nil
			}
			p, err := sess.Editor.CreatePreset(cmd.Context(), name, icon, class)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s (%s)\n", p.Icon, p.Name, p.Class)
			return nil
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "Icon shown before the name")
	cmd.Flags().StringVar(&class, "class", "", "Color class (defaults to custom)")
	return cmd
}

func (a *App) presetListCmd() *cobra.Command {
	var customOnly bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List activities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			catalog := a.sess.Editor.Catalog()
			presets := catalog.All()
			if customOnly {
				presets = catalog.Custom()
			}

			out := cmd.OutOrStdout()
			if len(presets) == 0 {
				fmt.Fprintln(out, "No custom activities yet.")
				return nil
			}
			custom := make(map[string]bool)
			for _, p := range catalog.Custom() {
				custom[p.Key] = true
			}
			for _, p := range presets {
				marker := " "
				if custom[p.Key] {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s  %s %s\n", marker, fit(p.Icon, 2), fit(p.Name, 14), formatMuted(p.Class))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&customOnly, "custom", false, "Only list custom activities")
	return cmd
}
