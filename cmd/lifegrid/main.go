package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/javiermolinar/lifegrid/internal/config"
	"github.com/javiermolinar/lifegrid/internal/logger"
	"github.com/javiermolinar/lifegrid/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir}); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()
	return app.ExecuteContext(ctx)
}
