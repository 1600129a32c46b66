// SPDX-License-Identifier: MIT

// Package core provides the in-memory graph stores shared by every
// algorithm package, together with the result types those algorithms
// produce.
//
// Two representations implement the Graph[W] contract:
//
//   - ListGraph[W]: sparse adjacency list. Node ids are arbitrary ints
//     chosen by the caller and allocated on first use. Each node keeps its
//     outgoing (to, weight) entries in insertion order; parallel edges are
//     kept as separate entries.
//   - MatrixGraph[W]: dense n×n grid of optional weights with positional
//     ids in [0, n). Operations addressing ids outside that range are
//     silent no-ops. A cell stores one edge; the last write wins.
//
// Both are directed or undirected for life. Undirected graphs mirror
// every edge whose endpoints differ; self-loops are stored once.
// AddEdge without a weight stores the unit weight 1.
//
// Weights are any of int, int32, int64, float32 or float64 (see Weight).
//
// Results:
//
//	TraversalResult    – BFS/DFS visit order, parent and depth maps.
//	DijkstraResult[W]  – shortest distances and parent map.
//	ReconstructPath    – source → target walk over a parent map.
//
// Parents, depths and distances are Optional values: an absent entry means
// "no parent" or "not reached". Numeric sentinels exist only on the wire
// (see package codec).
//
// Concurrency: both graph types guard their state with a sync.RWMutex, so
// reads may run in parallel with each other and with writes.
package core
