// SPDX-License-Identifier: MIT
// Package core: adjacency-matrix graph.
//
// MatrixGraph has a fixed node count n chosen at construction. Node ids are
// the positional indices [0, n); cells hold an optional weight. Any node or
// edge operation addressing an id outside [0, n) is a silent no-op, so
// callers must size the graph up front. A cell holds at most one edge: a
// repeated AddEdge overwrites the weight.
package core

import "sync"

// MatrixGraph is the dense adjacency-matrix representation.
type MatrixGraph[W Weight] struct {
	mu       sync.RWMutex
	directed bool
	n        int
	cells    [][]Optional[W] // cells[from][to]
	labels   []string
}

// NewMatrixGraph returns an n×n graph with no edges and empty labels.
// A negative size is treated as 0.
func NewMatrixGraph[W Weight](directed bool, size int) *MatrixGraph[W] {
	if size < 0 {
		size = 0
	}
	cells := make([][]Optional[W], size)
	for i := range cells {
		cells[i] = make([]Optional[W], size)
	}
	return &MatrixGraph[W]{
		directed: directed,
		n:        size,
		cells:    cells,
		labels:   make([]string, size),
	}
}

// inRange reports whether id addresses a row of the matrix.
func (g *MatrixGraph[W]) inRange(id int) bool {
	return id >= 0 && id < g.n
}

// AddNode sets the label of id. Out-of-range ids are ignored.
func (g *MatrixGraph[W]) AddNode(id int, label ...string) {
	if !g.inRange(id) {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.labels[id] = resolveLabel(label)
}

// AddEdge stores weight (default 1) in cell [from][to], and in [to][from]
// when undirected. Out-of-range endpoints are ignored.
//
// Complexity: O(1)
func (g *MatrixGraph[W]) AddEdge(from, to int, weight ...W) {
	if !g.inRange(from) || !g.inRange(to) {
		return
	}
	w := resolveWeight(weight)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.cells[from][to] = Some(w)
	if !g.directed && from != to {
		g.cells[to][from] = Some(w)
	}
}

// Directed reports whether edges are one-way.
func (g *MatrixGraph[W]) Directed() bool { return g.directed }

// Representation returns Matrix.
func (g *MatrixGraph[W]) Representation() Representation { return Matrix }

// Size returns the fixed node capacity n.
func (g *MatrixGraph[W]) Size() int { return g.n }

// NodeCount equals Size: every position is a node.
func (g *MatrixGraph[W]) NodeCount() int { return g.n }

// NodeIDs returns 0..n-1.
func (g *MatrixGraph[W]) NodeIDs() []int {
	ids := make([]int, g.n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Weight returns the weight stored in [from][to] and whether the edge exists.
func (g *MatrixGraph[W]) Weight(from, to int) (W, bool) {
	if !g.inRange(from) || !g.inRange(to) {
		var zero W
		return zero, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.cells[from][to].Get()
}

// Cells returns a deep copy of the n×n grid.
func (g *MatrixGraph[W]) Cells() [][]Optional[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][]Optional[W], g.n)
	for i, row := range g.cells {
		out[i] = make([]Optional[W], g.n)
		copy(out[i], row)
	}
	return out
}

// Labels returns every position's label keyed by id.
func (g *MatrixGraph[W]) Labels() map[int]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]string, g.n)
	for i, l := range g.labels {
		out[i] = l
	}
	return out
}

// Label returns the label of id; ok is false for out-of-range ids.
func (g *MatrixGraph[W]) Label(id int) (string, bool) {
	if !g.inRange(id) {
		return "", false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.labels[id], true
}

// Edges lists occupied cells row-major. Undirected graphs report only the
// upper triangle including the diagonal.
//
// Complexity: O(n²)
func (g *MatrixGraph[W]) Edges() []Edge[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges()
}

// edges scans the grid. Caller holds a lock.
func (g *MatrixGraph[W]) edges() []Edge[W] {
	var out []Edge[W]
	for i := 0; i < g.n; i++ {
		j := 0
		if !g.directed {
			j = i
		}
		for ; j < g.n; j++ {
			if w, ok := g.cells[i][j].Get(); ok {
				out = append(out, Edge[W]{From: i, To: j, Weight: w})
			}
		}
	}
	return out
}

// EdgeCount returns len(Edges()).
func (g *MatrixGraph[W]) EdgeCount() int {
	return len(g.Edges())
}

// ToList converts g into an equivalent ListGraph. Every position becomes a
// labelled node and each row's neighbors are listed in column order, so the
// algorithms see the same adjacency order a matrix scan would produce.
//
// Complexity: O(n²)
func (g *MatrixGraph[W]) ToList() *ListGraph[W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	lg := NewListGraph[W](g.directed)
	for i := 0; i < g.n; i++ {
		lg.labels[i] = g.labels[i]
		lg.adj[i] = nil
	}
	for i := 0; i < g.n; i++ {
		for j := 0; j < g.n; j++ {
			if w, ok := g.cells[i][j].Get(); ok {
				lg.adj[i] = append(lg.adj[i], Neighbor[W]{To: j, Weight: w})
			}
		}
	}
	lg.log = g.edges()
	return lg
}
