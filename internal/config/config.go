// Package config loads tspmerge settings from defaults, an optional YAML
// file, TSPMERGE_* environment variables and command-line flags, in that
// order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full set of run settings.
type Config struct {
	Output   OutputConfig   `koanf:"output"`
	Log      LogConfig      `koanf:"log"`
	Solver   SolverConfig   `koanf:"solver"`
	Generate GenerateConfig `koanf:"generate"`
}

// OutputConfig controls what a solver run writes.
type OutputConfig struct {
	Dir    string `koanf:"dir"`
	Suffix string `koanf:"suffix"`
	Report string `koanf:"report"` // YAML report path; empty disables it
	Quiet  bool   `koanf:"quiet"`  // suppress the per-edge trace
}

// LogConfig controls diagnostics on stderr or in a rotated file.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"` // text, json
	File       string `koanf:"file"`   // empty: stderr
	MaxSize    int    `koanf:"max_size"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"`
	Compress   bool   `koanf:"compress"`
}

// SolverConfig bounds the exhaustive solvers.
type SolverConfig struct {
	MaxBruteNodes int `koanf:"max_brute_nodes"`
	MaxExactNodes int `koanf:"max_exact_nodes"`
}

// GenerateConfig drives the instance generator. Seed 0 picks a clock seed.
type GenerateConfig struct {
	Seed      int64 `koanf:"seed"`
	MinWeight int   `koanf:"min_weight"`
	MaxWeight int   `koanf:"max_weight"`
}

// maxExactNodes keeps the Held–Karp tables (n·2ⁿ floats) within a few GB.
const maxExactNodes = 25

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Output.Suffix == "" {
		return fmt.Errorf("%w: output.suffix is empty", ErrInvalid)
	}
	if strings.ContainsAny(c.Output.Suffix, `/\`) || filepath.Base(c.Output.Suffix) != c.Output.Suffix {
		return fmt.Errorf("%w: output.suffix %q must be a plain name", ErrInvalid, c.Output.Suffix)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q, want text or json", ErrInvalid, c.Log.Format)
	}
	if c.Solver.MaxBruteNodes < 2 {
		return fmt.Errorf("%w: solver.max_brute_nodes=%d < 2", ErrInvalid, c.Solver.MaxBruteNodes)
	}
	if c.Solver.MaxExactNodes < 2 || c.Solver.MaxExactNodes > maxExactNodes {
		return fmt.Errorf("%w: solver.max_exact_nodes=%d outside [2, %d]", ErrInvalid, c.Solver.MaxExactNodes, maxExactNodes)
	}
	if c.Generate.MinWeight < 1 || c.Generate.MaxWeight < c.Generate.MinWeight {
		return fmt.Errorf("%w: generate weights [%d, %d], want 1 ≤ min ≤ max",
			ErrInvalid, c.Generate.MinWeight, c.Generate.MaxWeight)
	}

	return nil
}
