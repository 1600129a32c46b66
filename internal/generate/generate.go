// SPDX-License-Identifier: MIT

// Package generate turns weight-agnostic generator parameters into typed
// random graphs for the CLI and the HTTP service.
package generate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/graphd/builder"
	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/registry"
)

// Default weight bounds when none are given.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 10
)

// ErrUnsupportedWeightType is returned for weight types other than int64 and float64.
var ErrUnsupportedWeightType = errors.New("generate: unsupported weight type")

// Params describes one random graph. Weight bounds are float64 and must be
// whole numbers when WeightType is int64.
type Params struct {
	Nodes          int
	Probability    float64
	MinWeight      float64
	MaxWeight      float64
	Directed       bool
	Representation core.Representation
	WeightType     core.WeightType

	// Seed drives the sampler; nil draws one from the clock. Zero is an
	// ordinary seed.
	Seed *int64
}

// Normalize fills a nil Seed from the clock and returns the seed in use.
func (p *Params) Normalize() int64 {
	if p.Seed == nil {
		seed := time.Now().UnixNano()
		p.Seed = &seed
	}
	return *p.Seed
}

// Build samples a typed graph from p.
func Build[W core.Weight](p Params) (core.Graph[W], error) {
	lo, hi, err := bounds[W](p)
	if err != nil {
		return nil, err
	}
	return builder.Random[W](p.Representation, p.Nodes, p.Probability, lo, hi, p.Directed,
		builder.WithSeed(p.Normalize()), builder.WithLabelFn(builder.DecimalLabel))
}

// Record samples a graph and returns its codec.GraphRecord.
func Record(p Params) (any, error) {
	switch p.WeightType {
	case core.WeightInt64:
		g, err := Build[int64](p)
		if err != nil {
			return nil, err
		}
		return codec.EncodeGraph(g), nil
	case core.WeightFloat64:
		g, err := Build[float64](p)
		if err != nil {
			return nil, err
		}
		return codec.EncodeGraph(g), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedWeightType, p.WeightType)
}

// Register samples a graph and stores it in r.
func Register(r *registry.Registry, p Params) (registry.Handle, error) {
	switch p.WeightType {
	case core.WeightInt64:
		g, err := Build[int64](p)
		if err != nil {
			return 0, err
		}
		return registry.Register(r, g)
	case core.WeightFloat64:
		g, err := Build[float64](p)
		if err != nil {
			return 0, err
		}
		return registry.Register(r, g)
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedWeightType, p.WeightType)
}

// bounds converts the weight range to W, rejecting fractional bounds for
// integer weights.
func bounds[W core.Weight](p Params) (W, W, error) {
	if core.IsInteger[W]() {
		for _, v := range []float64{p.MinWeight, p.MaxWeight} {
			if v != math.Trunc(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("%w: %v is not a whole number", builder.ErrInvalidWeightRange, v)
			}
		}
	}
	return W(p.MinWeight), W(p.MaxWeight), nil
}
