// SPDX-License-Identifier: MIT
// Package engine dispatches an algorithm by name over either graph
// representation.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/graphd/bfs"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/dfs"
	"github.com/katalvlaran/graphd/dijkstra"
)

// ErrUnknownAlgorithm is returned for an algorithm name other than
// bfs, dfs or dijkstra.
var ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

// Algorithm identifies one of the supported algorithms.
type Algorithm string

const (
	BFS      Algorithm = "bfs"
	DFS      Algorithm = "dfs"
	Dijkstra Algorithm = "dijkstra"
)

// Algorithms lists every supported algorithm in a stable order.
var Algorithms = []Algorithm{BFS, DFS, Dijkstra}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case BFS, DFS, Dijkstra:
		return a, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result carries exactly one of a traversal or a shortest-path result.
type Result[W core.Weight] struct {
	Algorithm    Algorithm
	Traversal    *core.TraversalResult
	ShortestPath *core.DijkstraResult[W]
}

// AsList returns g as a ListGraph, converting matrix graphs.
// Any other Graph implementation is rebuilt from its node and edge views.
func AsList[W core.Weight](g core.Graph[W]) *core.ListGraph[W] {
	switch v := g.(type) {
	case *core.ListGraph[W]:
		return v
	case *core.MatrixGraph[W]:
		if v == nil {
			return nil
		}
		return v.ToList()
	case nil:
		return nil
	}
	lg := core.NewListGraph[W](g.Directed())
	for id, label := range g.Labels() {
		lg.AddNode(id, label)
	}
	for _, e := range g.Edges() {
		lg.AddEdge(e.From, e.To, e.Weight)
	}
	return lg
}

// Run executes alg on g from source. Only an unknown algorithm fails;
// unknown sources produce empty or pre-seeded results.
func Run[W core.Weight](g core.Graph[W], alg Algorithm, source int) (Result[W], error) {
	lg := AsList(g)
	switch alg {
	case BFS:
		return Result[W]{Algorithm: alg, Traversal: bfs.BFS(lg, source)}, nil
	case DFS:
		return Result[W]{Algorithm: alg, Traversal: dfs.DFS(lg, source)}, nil
	case Dijkstra:
		return Result[W]{Algorithm: alg, ShortestPath: dijkstra.Dijkstra(lg, source)}, nil
	}
	return Result[W]{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
}

// Path is a reconstructed shortest path and its length.
type Path[W core.Weight] struct {
	Source  int
	Target  int
	Nodes   []int
	Dist    W
	Reached bool
}

// ShortestPath runs Dijkstra from source and reconstructs the path to
// target. Reached is false when target has no finite distance; Nodes then
// follows ReconstructPath (the lone target, or nil for unknown nodes).
func ShortestPath[W core.Weight](g core.Graph[W], source, target int) Path[W] {
	res := dijkstra.Dijkstra(AsList(g), source)
	d, ok := res.Dist[target].Get()
	return Path[W]{
		Source:  source,
		Target:  target,
		Nodes:   res.PathTo(target),
		Dist:    d,
		Reached: ok,
	}
}
