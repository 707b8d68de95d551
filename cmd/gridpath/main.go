package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/batch"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/labyrinth"
	"github.com/katalvlaran/gridpath/report"
)

// main is the entrypoint for the gridpath binary.
func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run wires configuration, loading, the batch runner and output together.
// Results go to outW, logs to errW.
func run(ctx context.Context, args []string, outW, errW io.Writer) error {
	cfg, shouldExit, err := parseArgs(args, outW)
	if err != nil || shouldExit {
		return err
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Configuration resolved.", "data", cfg.DataPath, "workers", cfg.Workers)

	grids, err := labyrinth.LoadFile(cfg.DataPath)
	if err != nil {
		return err
	}
	logger.Info("Batch loaded.", "grids", len(grids))

	runner := &batch.Runner{Workers: cfg.Workers, Logger: logger}
	if cfg.MaxExpansions > 0 {
		runner.Options = append(runner.Options, astar.WithMaxExpansions(cfg.MaxExpansions))
	}
	outcomes, err := runner.Run(ctx, grids)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		switch {
		case errors.Is(o.Err, labyrinth.ErrStartNotFound):
			fmt.Fprintln(outW, "Start not found!")
			continue
		case errors.Is(o.Err, labyrinth.ErrGoalNotFound):
			fmt.Fprintln(outW, "End not found!")
			continue
		case !o.Result.Found:
			fmt.Fprintln(outW, "Path not found!")
			continue
		}
		fmt.Fprintf(outW, "\nT: %v\n", o.Elapsed)
		if err := labyrinth.Render(outW, grids[o.Index], cfg.Glyphs); err != nil {
			return err
		}
	}

	if cfg.GeoJSONPath != "" {
		return writeGeoJSON(cfg, outcomes, logger)
	}

	return nil
}

func writeGeoJSON(cfg config.Config, outcomes []batch.Outcome, logger *slog.Logger) error {
	items := batch.Labelled(outcomes)
	data, err := report.GeoJSON(items)
	if err != nil {
		return fmt.Errorf("geojson: %w", err)
	}
	if err := os.WriteFile(cfg.GeoJSONPath, data, 0o644); err != nil {
		return fmt.Errorf("geojson: %w", err)
	}
	logger.Info("GeoJSON written.", "path", cfg.GeoJSONPath, "features", len(items))

	return nil
}

// newLogger creates a slog.Logger writing to outW in the given format.
// It does not set the global logger.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}

	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
