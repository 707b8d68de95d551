package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/config"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// parseArgs resolves the run configuration: defaults, then the optional HCL
// file, then any flag the user set explicitly. It returns shouldExit=true
// when help was requested.
func parseArgs(args []string, output io.Writer) (cfg config.Config, shouldExit bool, err error) {
	flagSet := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
gridpath - find paths through a batch of labyrinth grids.

Usage:
  gridpath [options] [DATA_PATH]

Arguments:
  DATA_PATH
    JSON file holding an array of grids (0 open, 1 wall, 2 start, 3 goal).

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL configuration file.")
	dataFlag := flagSet.String("data", "", "Path to the JSON batch of grids.")
	workersFlag := flagSet.Int("workers", 0, "Number of grids searched concurrently (default: CPU count).")
	logLevelFlag := flagSet.String("log-level", "info", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	geojsonFlag := flagSet.String("geojson", "", "Write found paths to this GeoJSON file.")
	maxExpFlag := flagSet.Int("max-expansions", 0, "Per-grid expansion budget; 0 is unlimited.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.Config{}, true, nil
		}
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg = config.Default()
	if *configFlag != "" {
		cfg, err = config.Load(*configFlag)
		if err != nil {
			return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
		}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.DataPath = *dataFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "geojson":
			cfg.GeoJSONPath = *geojsonFlag
		case "max-expansions":
			cfg.MaxExpansions = *maxExpFlag
		}
	})
	if flagSet.NArg() > 0 {
		cfg.DataPath = flagSet.Arg(0)
	}

	if cfg.DataPath == "" {
		flagSet.Usage()
		return config.Config{}, true, nil
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
