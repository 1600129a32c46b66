// SPDX-License-Identifier: MIT
// Package dfs implements iterative depth-first search on core.ListGraph.
package dfs

import (
	"github.com/katalvlaran/graphd/core"
)

// stackItem is a pending visit: a node and the depth it was pushed at.
type stackItem struct {
	id    int
	depth int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[W core.Weight] struct {
	graph *core.ListGraph[W]
	stack []stackItem
	seen  map[int]bool
	res   *core.TraversalResult
}

// DFS performs depth-first search on g from source using an explicit stack.
//
// A node is visited (appended to Order, depth fixed from its stack entry)
// when it is popped for the first time; later stale entries are skipped.
// Neighbors are pushed in reverse adjacency order so they pop in forward
// order, matching a recursive left-to-right walk. A neighbor's parent is
// set by the first node that pushes it and is never overwritten, even if a
// different entry ends up visiting it.
//
// A nil graph or a source that is not a node of g yields a result with an
// empty Order and empty maps.
//
// Complexity: O(V + E) time, O(V + E) stack space.
func DFS[W core.Weight](g *core.ListGraph[W], source int) *core.TraversalResult {
	if g == nil || !g.HasNode(source) {
		return core.NewTraversalResult(source, nil)
	}

	nodes := g.NodeIDs()
	w := &dfsWalker[W]{
		graph: g,
		stack: make([]stackItem, 0, len(nodes)),
		seen:  make(map[int]bool, len(nodes)),
		res:   core.NewTraversalResult(source, nodes),
	}
	w.push(source, 0)
	w.loop()
	return w.res
}

// push adds a pending visit.
func (w *dfsWalker[W]) push(id, depth int) {
	w.stack = append(w.stack, stackItem{id: id, depth: depth})
}

// pop removes the top entry.
func (w *dfsWalker[W]) pop() stackItem {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	return top
}

// loop drains the stack.
func (w *dfsWalker[W]) loop() {
	for len(w.stack) > 0 {
		item := w.pop()
		if w.seen[item.id] {
			continue
		}
		w.visit(item)
		w.pushNeighbors(item)
	}
}

// visit records the node in Order with the depth of its stack entry.
func (w *dfsWalker[W]) visit(item stackItem) {
	w.seen[item.id] = true
	w.res.Order = append(w.res.Order, item.id)
	w.res.Depth[item.id] = core.Some(item.depth)
}

// pushNeighbors pushes every unvisited neighbor in reverse adjacency order,
// assigning a parent only if the neighbor has none yet.
func (w *dfsWalker[W]) pushNeighbors(item stackItem) {
	nbrs := w.graph.Neighbors(item.id)
	for i := len(nbrs) - 1; i >= 0; i-- {
		v := nbrs[i].To
		if w.seen[v] {
			continue
		}
		if !w.res.Parent[v].Valid {
			w.res.Parent[v] = core.Some(item.id)
		}
		w.push(v, item.depth+1)
	}
}
