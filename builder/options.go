// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are applied in order; later ones override earlier ones.
//   • Option constructors panic on nil arguments; Generate itself never panics.

package builder

import (
	"math/rand"
	"time"
)

// builderConfig aggregates all knobs used by Generate.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes Generate.
type Option func(*builderConfig)

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// newBuilderConfig resolves opts over the defaults. Without WithSeed/WithRand
// the RNG is seeded from the clock.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
