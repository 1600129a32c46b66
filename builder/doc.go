// Package builder generates random graphs for fixtures, demos and the
// graphd "generate" endpoint.
//
// The package offers the following key components:
//
//   - Constructors:
//     – RandomList:    adjacency-list graph, nodes 0..n-1 registered first.
//     – RandomMatrix:  n×n adjacency-matrix graph.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: the RNG used for edge trials and weights.
//     – WithLabelFn:   node labels for list graphs (default: no label).
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn: fixed value.
//     – UniformWeightFn:  integers uniform on [min,max], floats on [min,max).
//
// Sampling model (Erdős–Rényi-like):
//
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed:   ordered pairs (i,j), i≠j.
//   - A pair becomes an edge iff rng.Float64() < p, so p=0 yields no
//     edges and p=1 yields the complete graph.
//   - Trials run i ascending, j ascending; a fixed seed reproduces the
//     same graph.
//
// Errors (sentinel, match with errors.Is):
//
//	ErrTooFewVertices      n < 0
//	ErrInvalidProbability  p outside [0,1] or NaN
//	ErrInvalidWeightRange  min > max, or an integer range wider than int64
//	ErrNeedRandSource      sampling needed but no RNG configured
package builder
