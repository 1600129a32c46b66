// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil        (constructors demand one only when they sample)
//   • labelFn = emptyLabel (nodes carry no label)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// RNG for edge trials and weight draws; nil means "no randomness".
	rng *rand.Rand

	// Node label strategy: index -> label.
	labelFn func(int) string
}

// newBuilderConfig applies options in order (later overrides earlier) on
// top of the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,
		labelFn: emptyLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// emptyLabel is the default label function.
func emptyLabel(int) string { return "" }

// DecimalLabel renders an index as a base-10 label ("0","1",...).
// Useful with WithLabelFn.
func DecimalLabel(i int) string {
	return strconv.Itoa(i)
}
