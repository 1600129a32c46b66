// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on meaningless inputs (nil RNG, nil label
//     function); constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a constructor by mutating a builderConfig
// before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLabelFn sets the label given to node i of a list graph.
// Panics on nil.
func WithLabelFn(fn func(i int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
	}
}
