// Package main runs the ejection angle diagram in a terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/internal/config"
	"github.com/Faultbox/ejection-angle/internal/diagram"
	"github.com/Faultbox/ejection-angle/internal/logger"
	"github.com/Faultbox/ejection-angle/internal/termview"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The screen owns the terminal, so logs only go to the file.
	if err := logger.InitWithFileConfig(cfg.Logging.Level, logger.DefaultFileConfig(cfg.Logging.LogFile), false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("terminal viewer error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	opts, err := cfg.Diagram.Options()
	if err != nil {
		return err
	}
	styles, err := cfg.Diagram.Styles()
	if err != nil {
		return err
	}
	ctrl := diagram.New(append(opts, diagram.WithLogger(logger.Named("diagram")))...)

	asym, peri := cfg.Scenario.Directions()
	sc := termview.Scenario{
		Origin:    cfg.Scenario.Origin(),
		Asymptote: asym,
		Periapsis: peri,
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := termview.NewApp(screen, ctrl, sc, styles, cfg.Diagram.LineScale, logger.Named("termview"))
	return app.Run(ctx)
}
