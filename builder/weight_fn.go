// SPDX-License-Identifier: MIT
// Package builder provides helper functions and types
// for configuring edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphd/core"
)

// WeightFn produces an edge weight from an RNG. It must be deterministic
// for a given RNG state.
type WeightFn[W core.Weight] func(rng *rand.Rand) W

// ConstantWeightFn returns a WeightFn that always yields value and never
// touches the RNG.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn[W core.Weight](value W) WeightFn[W] {
	return func(_ *rand.Rand) W {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly on
// [min, max] inclusive and floats uniformly on [min, max).
// A degenerate interval (min == max) yields the constant min.
//
// Returns ErrInvalidWeightRange if min > max or if the integer interval is
// wider than int64 can count.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn[W core.Weight](min, max W) (WeightFn[W], error) {
	if min > max || math.IsNaN(float64(min)) || math.IsNaN(float64(max)) {
		return nil, fmt.Errorf("UniformWeightFn: min=%v > max=%v: %w", min, max, ErrInvalidWeightRange)
	}
	if min == max {
		return ConstantWeightFn(min), nil
	}
	if core.IsInteger[W]() {
		lo := int64(min)
		span := int64(max) - lo + 1 // overflows to <= 0 for the widest ranges
		if span <= 0 {
			return nil, fmt.Errorf("UniformWeightFn: [%v,%v] too wide: %w", min, max, ErrInvalidWeightRange)
		}
		return func(rng *rand.Rand) W {
			return W(lo + rng.Int63n(span))
		}, nil
	}
	lo, width := float64(min), float64(max)-float64(min)
	return func(rng *rand.Rand) W {
		// Continuous uniform on [min, max) (Float64() returns [0,1))
		return W(lo + rng.Float64()*width)
	}, nil
}
