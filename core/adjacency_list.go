// SPDX-License-Identifier: MIT
// Package core: adjacency-list graph.
//
// ListGraph stores, per node, the ordered slice of outgoing (to, weight)
// entries. Node ids are caller-assigned and allocated on first use, so no
// operation ever fails. Parallel edges are kept as separate entries.
//
// Thread-safe: mutations take the write lock, queries the read lock.
package core

import (
	"sort"
	"sync"
)

// ListGraph is the sparse adjacency-list representation.
type ListGraph[W Weight] struct {
	mu       sync.RWMutex
	directed bool
	adj      map[int][]Neighbor[W] // node id → outgoing entries in insertion order
	labels   map[int]string        // only nodes registered through AddNode
	log      []Edge[W]             // one record per AddEdge call, insertion order
}

// NewListGraph returns an empty adjacency-list graph.
func NewListGraph[W Weight](directed bool) *ListGraph[W] {
	return &ListGraph[W]{
		directed: directed,
		adj:      make(map[int][]Neighbor[W]),
		labels:   make(map[int]string),
	}
}

// AddNode ensures id has an adjacency entry and sets its label ("" if omitted).
// Re-adding an id overwrites the label and keeps its edges.
//
// Complexity: O(1)
func (g *ListGraph[W]) AddNode(id int, label ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(id)
	g.labels[id] = resolveLabel(label)
}

// AddEdge appends from→to (weight defaults to 1). Undirected graphs also
// append to→from unless from == to. Both endpoints become known nodes.
//
// Complexity: O(1) amortized
func (g *ListGraph[W]) AddEdge(from, to int, weight ...W) {
	w := resolveWeight(weight)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensure(from)
	g.ensure(to)
	g.adj[from] = append(g.adj[from], Neighbor[W]{To: to, Weight: w})
	if !g.directed && from != to {
		g.adj[to] = append(g.adj[to], Neighbor[W]{To: from, Weight: w})
	}
	g.log = append(g.log, Edge[W]{From: from, To: to, Weight: w})
}

// ensure creates an empty adjacency entry for id. Caller holds the write lock.
func (g *ListGraph[W]) ensure(id int) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = nil
	}
}

// Directed reports whether edges are one-way.
func (g *ListGraph[W]) Directed() bool { return g.directed }

// Representation returns List.
func (g *ListGraph[W]) Representation() Representation { return List }

// HasNode reports whether id is a known node.
func (g *ListGraph[W]) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[id]
	return ok
}

// NodeIDs returns every known node id in ascending order.
//
// Complexity: O(V log V)
func (g *ListGraph[W]) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// NodeCount returns the number of known nodes.
func (g *ListGraph[W]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Neighbors returns a copy of id's outgoing entries in insertion order,
// or nil when id is unknown.
func (g *ListGraph[W]) Neighbors(id int) []Neighbor[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	src := g.adj[id]
	if len(src) == 0 {
		return nil
	}
	out := make([]Neighbor[W], len(src))
	copy(out, src)
	return out
}

// Adjacency returns a deep copy of the adjacency map.
func (g *ListGraph[W]) Adjacency() map[int][]Neighbor[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int][]Neighbor[W], len(g.adj))
	for id, nbrs := range g.adj {
		cp := make([]Neighbor[W], len(nbrs))
		copy(cp, nbrs)
		out[id] = cp
	}
	return out
}

// Labels returns a copy of the labels set through AddNode.
func (g *ListGraph[W]) Labels() map[int]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]string, len(g.labels))
	for id, l := range g.labels {
		out[id] = l
	}
	return out
}

// Label returns the label of id and whether id was registered through AddNode.
func (g *ListGraph[W]) Label(id int) (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	l, ok := g.labels[id]
	return l, ok
}

// Edges returns one record per AddEdge call in insertion order. Mirrored
// entries of undirected graphs are not repeated, so replaying the result
// through AddEdge rebuilds an identical adjacency.
func (g *ListGraph[W]) Edges() []Edge[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[W], len(g.log))
	copy(out, g.log)
	return out
}

// EdgeCount returns the number of AddEdge calls recorded.
func (g *ListGraph[W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.log)
}
