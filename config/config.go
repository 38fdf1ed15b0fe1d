// Package config loads run settings for the nothree driver from YAML.
//
// Example file:
//
//	n: 8
//	solver: sat       # or "bnb"
//	mode: maximal     # or "rays"
//	min_run: 3        # 1..3
//	opb: model.opb    # optional model export
//	timeout: 2m
//	verbose: false
//	render:
//	  enabled: true
//	  dir: out
//	  cell: 32
//	  terminal: false
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/nothree/lineset"
)

var (
	// ErrBadSize indicates a negative board size. Zero means "ask".
	ErrBadSize = errors.New("config: n must not be negative")
	// ErrBadTimeout indicates a negative timeout.
	ErrBadTimeout = errors.New("config: timeout must not be negative")
	// ErrBadCell indicates a non-positive render cell size.
	ErrBadCell = errors.New("config: render.cell must be positive")
	// ErrUnknownSolver indicates a solver name other than sat or bnb.
	ErrUnknownSolver = errors.New("config: unknown solver")
)

// Solver names accepted in Config.Solver.
const (
	SolverSAT = "sat"
	SolverBnB = "bnb"
)

// Render groups artifact settings.
type Render struct {
	Enabled  bool   `yaml:"enabled"`
	Dir      string `yaml:"dir"`
	Cell     int    `yaml:"cell"`
	Terminal bool   `yaml:"terminal"`
}

// Config is the full driver configuration.
type Config struct {
	N       int           `yaml:"n"`
	Solver  string        `yaml:"solver"`
	Mode    string        `yaml:"mode"`
	MinRun  int           `yaml:"min_run"`
	Timeout time.Duration `yaml:"timeout"`
	Verbose bool          `yaml:"verbose"`
	OPB     string        `yaml:"opb"`
	Render  Render        `yaml:"render"`
}

// Default returns n=8, the SAT solver, maximal runs, min_run 3,
// no timeout and PNG output into the working directory.
func Default() Config {
	return Config{
		N:      8,
		Solver: SolverSAT,
		Mode:   lineset.MaximalRuns.String(),
		MinRun: lineset.DefaultMinRunLength,
		Render: Render{
			Enabled: true,
			Dir:     ".",
			Cell:    32,
		},
	}
}

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.N < 0 {
		return ErrBadSize
	}
	if c.Solver != SolverSAT && c.Solver != SolverBnB {
		return fmt.Errorf("%w: %q", ErrUnknownSolver, c.Solver)
	}
	lines, err := c.LinesetOptions()
	if err != nil {
		return fmt.Errorf("config: mode: %w", err)
	}
	if err = lines.Validate(); err != nil {
		return fmt.Errorf("config: min_run: %w", err)
	}
	if c.Timeout < 0 {
		return ErrBadTimeout
	}
	if c.Render.Cell < 1 {
		return ErrBadCell
	}

	return nil
}

// LinesetOptions converts the model settings of c.
func (c Config) LinesetOptions() (lineset.Options, error) {
	mode, err := lineset.ParseMode(c.Mode)
	if err != nil {
		return lineset.Options{}, err
	}
	opts := lineset.DefaultOptions()
	opts.Mode = mode
	opts.MinRunLength = c.MinRun

	return opts, nil
}
