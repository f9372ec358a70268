// Package ui implements the lifegrid command line.
package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/lifegrid/internal/config"
	"github.com/javiermolinar/lifegrid/internal/logger"
	"github.com/javiermolinar/lifegrid/internal/session"
	"github.com/javiermolinar/lifegrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	sess   *session.Session
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	now    func() time.Time
	// owned is true when the session was opened by the app and must be closed.
	owned bool
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the wall clock used by now and show.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// NewApp creates a new CLI application. sess may be nil; it is then opened
// from cfg the first time a command needs it.
func NewApp(sess *session.Session, cfg *config.Config, opts ...Option) *App {
	a := &App{sess: sess, config: cfg, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "lifegrid",
		Short: "A weekly schedule grid for your terminal",
		Long: `Lifegrid shows your week as a grid of time slots by day.

The current slot fills up as the hour passes, today's column is
highlighted, and sleep hours fold behind flaps. Press i in the grid
to edit activities.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.debug {
				return nil
			}
			// The TUI owns the terminal, so only subcommands mirror to stderr.
			return logger.Init(logger.Config{
				Debug:  true,
				Dir:    a.config.Log.Dir,
				Stderr: cmd != a.root,
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}
			return tui.RunWithDebug(a.sess, a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.nowCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())
	a.root.AddCommand(a.slotCmd())
	a.root.AddCommand(a.presetCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lifegrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// ensureSession opens the schedule if the app was created without one.
func (a *App) ensureSession(ctx context.Context) error {
	if a.sess != nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	sess, err := session.Open(ctx, a.config)
	if err != nil {
		return err
	}
	a.sess = sess
	a.owned = true
	return nil
}

// editSession opens the schedule with the editor in edit mode.
func (a *App) editSession(ctx context.Context) (*session.Session, error) {
	if err := a.ensureSession(ctx); err != nil {
		return nil, err
	}
	if !a.sess.Editor.Editing() {
		a.sess.Editor.ToggleEditMode()
	}
	return a.sess, nil
}

// SetOutput redirects command output, for tests.
func (a *App) SetOutput(w io.Writer) {
	a.root.SetOut(w)
	a.root.SetErr(w)
}

// SetArgs overrides os.Args, for tests.
func (a *App) SetArgs(args []string) {
	a.root.SetArgs(args)
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// Close releases a session opened by the app.
func (a *App) Close() error {
	if a.sess == nil || !a.owned {
		return nil
	}
	return a.sess.Close()
}
