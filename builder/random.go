// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// random.go: RandomList and RandomMatrix constructors.
//
// Model:
//   - Include each admissible pair independently with probability p
//     (draw < p, so p=1 always includes and p=0 never does).
//   - Undirected: pairs {i,j} with i<j. Directed: pairs (i,j) with i≠j.
//   - Weight drawn from UniformWeightFn(minW, maxW) per included edge.
//
// Determinism:
//   - Trial order is i asc, j asc; one Float64 per trial followed by one
//     weight draw per included edge.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphd/core"
)

// File-local constants (stable method tags and domains).
const (
	methodRandomList   = "RandomList"
	methodRandomMatrix = "RandomMatrix"
	minVertices        = 0
	probMin            = 0.0
	probMax            = 1.0
)

// RandomList samples an adjacency-list graph over nodes 0..n-1. Every node
// is registered with AddNode (label from WithLabelFn) before any edge.
func RandomList[W core.Weight](n int, p float64, minW, maxW W, directed bool, opts ...BuilderOption) (*core.ListGraph[W], error) {
	cfg := newBuilderConfig(opts...)
	weightFn, err := validate(methodRandomList, n, p, minW, maxW, cfg)
	if err != nil {
		return nil, err
	}

	g := core.NewListGraph[W](directed)
	for i := 0; i < n; i++ {
		g.AddNode(i, cfg.labelFn(i))
	}
	sample(g, n, p, directed, weightFn, cfg)
	return g, nil
}

// RandomMatrix samples an n×n adjacency-matrix graph. Labels stay empty.
func RandomMatrix[W core.Weight](n int, p float64, minW, maxW W, directed bool, opts ...BuilderOption) (*core.MatrixGraph[W], error) {
	cfg := newBuilderConfig(opts...)
	weightFn, err := validate(methodRandomMatrix, n, p, minW, maxW, cfg)
	if err != nil {
		return nil, err
	}

	g := core.NewMatrixGraph[W](directed, n)
	sample(g, n, p, directed, weightFn, cfg)
	return g, nil
}

// Random samples a graph of the requested representation; see RandomList
// and RandomMatrix.
func Random[W core.Weight](rep core.Representation, n int, p float64, minW, maxW W, directed bool, opts ...BuilderOption) (core.Graph[W], error) {
	if rep == core.Matrix {
		return RandomMatrix(n, p, minW, maxW, directed, opts...)
	}
	return RandomList(n, p, minW, maxW, directed, opts...)
}

// validate checks parameters in priority order (size, probability, weight
// range, RNG) and resolves the weight distribution.
func validate[W core.Weight](method string, n int, p float64, minW, maxW W, cfg builderConfig) (WeightFn[W], error) {
	if n < minVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minVertices, ErrTooFewVertices)
	}
	if math.IsNaN(p) || p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	weightFn, err := UniformWeightFn(minW, maxW)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	// An RNG is only required when something is actually drawn.
	stochastic := p > probMin && p < probMax
	if cfg.rng == nil && n > 1 && (stochastic || (p > probMin && minW != maxW)) {
		return nil, fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}
	return weightFn, nil
}

// sample runs the Bernoulli trials and inserts the selected edges into g.
func sample[W core.Weight](g core.Graph[W], n int, p float64, directed bool, weightFn WeightFn[W], cfg builderConfig) {
	rng := cfg.rng
	for i := 0; i < n; i++ {
		j := 0
		if !directed {
			j = i + 1
		}
		for ; j < n; j++ {
			if i == j {
				continue
			}
			if !include(rng, p) {
				continue
			}
			g.AddEdge(i, j, weightFn(rng))
		}
	}
}

// include performs one trial. Without an RNG only p=1 includes.
func include(rng *rand.Rand, p float64) bool {
	if rng == nil {
		return p >= probMax
	}
	return rng.Float64() < p
}
