// SPDX-License-Identifier: MIT
// Package: graphd/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach method context with %w, e.g.
//     "RandomList: n=-1 < min=0: builder: parameter too small".

package builder

import "errors"

// ErrTooFewVertices indicates that the node count is below the minimum (0).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidWeightRange indicates min > max, or an integer range whose width
// does not fit in int64.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrNeedRandSource indicates that a constructor has to draw random values
// but neither WithSeed nor WithRand was supplied.
var ErrNeedRandSource = errors.New("builder: rng is required")
