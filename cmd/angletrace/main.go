// Package main records the diagram animation headlessly and prints it as
// YAML.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/ejection-angle/internal/config"
	"github.com/Faultbox/ejection-angle/internal/logger"
	"github.com/Faultbox/ejection-angle/internal/trace"
)

var flagOutput = flag.String("o", "", "Write the trace to this file instead of stdout")

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Console logs go to stderr, stdout carries the trace.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *flagOutput); err != nil {
		logger.Error("trace failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, output string) error {
	opts, err := cfg.Diagram.Options()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rec := trace.NewRecorder(logger.Named("trace"), opts...)
	asym, peri := cfg.Scenario.Directions()
	tr, err := rec.Run(ctx, trace.Options{
		FPS:      cfg.Trace.FPS,
		Duration: cfg.Trace.Duration,
		HideAt:   cfg.Trace.HideAt,
	}, cfg.Scenario.Origin(), asym, peri)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create trace file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := trace.Write(w, tr); err != nil {
		return err
	}
	logger.Info("trace written",
		zap.Int("records", len(tr.Records)),
		zap.Int("transitions", len(tr.Transitions)),
	)
	return nil
}
