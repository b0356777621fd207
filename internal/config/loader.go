package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/wcjunkins/tspmerge/builder"
	"github.com/wcjunkins/tspmerge/tsp"
)

const (
	// EnvPrefix marks environment variables read by the loader, e.g.
	// TSPMERGE_LOG_LEVEL=debug sets log.level.
	EnvPrefix = "TSPMERGE_"

	// DefaultSuffix is appended to every solution file name.
	DefaultSuffix = "wcjunkins"
)

// Loader assembles a Config from layered sources.
type Loader struct {
	k         *koanf.Koanf
	file      string
	envPrefix string
	overrides map[string]any
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile adds a YAML config file. An explicitly named file must exist.
func WithFile(path string) LoaderOption {
	return func(l *Loader) {
		l.file = path
	}
}

// WithEnvPrefix replaces EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides applies dotted keys (e.g. "output.quiet") on top of every
// other source. The CLI passes the flags the user actually set.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) {
		l.overrides = values
	}
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges defaults, file, environment and overrides, then validates.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if l.file != "" {
		if _, err := os.Stat(l.file); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := l.k.Load(file.Provider(l.file), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", l.file, err)
		}
	}

	if err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", l.envKey), nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("config: load overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// envKey maps TSPMERGE_SOLVER_MAX_BRUTE_NODES to solver.max_brute_nodes: the
// first underscore separates the section, the rest belong to the field name.
func (l *Loader) envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))

	return strings.Replace(key, "_", ".", 1), value
}

// Defaults returns the lowest-precedence layer.
func Defaults() map[string]any {
	return map[string]any{
		"output.dir":    ".",
		"output.suffix": DefaultSuffix,
		"output.report": "",
		"output.quiet":  false,

		"log.level":       "info",
		"log.format":      "text",
		"log.file":        "",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     28,
		"log.compress":    false,

		"solver.max_brute_nodes": tsp.DefaultMaxBruteNodes,
		"solver.max_exact_nodes": tsp.DefaultMaxExactNodes,

		"generate.seed":       0,
		"generate.min_weight": builder.DefaultMinWeight,
		"generate.max_weight": builder.DefaultMaxWeight,
	}
}

// Load is NewLoader(opts...).Load().
func Load(opts ...LoaderOption) (*Config, error) {
	return NewLoader(opts...).Load()
}
