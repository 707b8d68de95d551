// Package config loads the gridpath run configuration from an HCL file.
//
// Example file:
//
//	data           = "labyrinths.json"
//	workers        = cpus
//	log_level      = "debug"
//	log_format     = "json"
//	geojson        = "paths.geojson"
//	max_expansions = 100000
//
//	render {
//	  open    = "  "
//	  blocked = "##"
//	  path    = "()"
//	}
//
// Every attribute and the render block are optional; absent values keep
// their Default. The variable cpus evaluates to runtime.NumCPU().
package config

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/labyrinth"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved run configuration.
type Config struct {
	DataPath      string
	Workers       int
	LogLevel      string
	LogFormat     string
	Glyphs        labyrinth.Glyphs
	GeoJSONPath   string
	MaxExpansions int // 0 means unlimited
}

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	return Config{
		Workers:   runtime.NumCPU(),
		LogLevel:  "info",
		LogFormat: "text",
		Glyphs:    labyrinth.DefaultGlyphs(),
	}
}

// hclFile mirrors the file layout; pointers distinguish "absent" from zero.
type hclFile struct {
	Data          *string    `hcl:"data,optional"`
	Workers       *int       `hcl:"workers,optional"`
	LogLevel      *string    `hcl:"log_level,optional"`
	LogFormat     *string    `hcl:"log_format,optional"`
	GeoJSON       *string    `hcl:"geojson,optional"`
	MaxExpansions *int       `hcl:"max_expansions,optional"`
	Render        *hclGlyphs `hcl:"render,block"`
}

type hclGlyphs struct {
	Open    *string `hcl:"open,optional"`
	Blocked *string `hcl:"blocked,optional"`
	Path    *string `hcl:"path,optional"`
}

// evalContext exposes the variables usable inside a config file.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"cpus": cty.NumberIntVal(int64(runtime.NumCPU())),
		},
	}
}

// Load reads the HCL file at path on top of Default and validates the result.
func Load(path string) (Config, error) {
	var f hclFile
	if err := hclsimple.DecodeFile(path, evalContext(), &f); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg := Default()
	f.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// apply copies every value present in f onto cfg.
func (f *hclFile) apply(cfg *Config) {
	setString(&cfg.DataPath, f.Data)
	setInt(&cfg.Workers, f.Workers)
	setString(&cfg.LogLevel, f.LogLevel)
	setString(&cfg.LogFormat, f.LogFormat)
	setString(&cfg.GeoJSONPath, f.GeoJSON)
	setInt(&cfg.MaxExpansions, f.MaxExpansions)
	if f.Render != nil {
		setString(&cfg.Glyphs.Open, f.Render.Open)
		setString(&cfg.Glyphs.Blocked, f.Render.Blocked)
		setString(&cfg.Glyphs.Path, f.Render.Path)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// Validate checks value ranges; failures wrap ErrInvalid.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalid, c.LogLevel)
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be 'text' or 'json', got %q", ErrInvalid, c.LogFormat)
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions must be non-negative, got %d", ErrInvalid, c.MaxExpansions)
	}

	return nil
}
