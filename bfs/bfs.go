// SPDX-License-Identifier: MIT
// Package bfs provides breadth-first search over a core.ListGraph,
// returning hop distances, parent links and visit order.
package bfs

import (
	"github.com/katalvlaran/graphd/core"
)

// queueItem pairs a node id with its hop depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker[W core.Weight] struct {
	graph *core.ListGraph[W]
	queue []queueItem
	seen  map[int]bool
	res   *core.TraversalResult
}

// BFS runs breadth-first search on g starting from source.
//
// Parent and Depth are pre-seeded with every node of g (absent values) so
// unreached nodes still report deterministic entries. A node joins Order
// when it is dequeued; its neighbors are examined in adjacency order and
// each undiscovered one gets parent = current node and depth = current + 1.
// Edge weights are ignored.
//
// A nil graph or a source that is not a node of g yields a result with an
// empty Order and empty maps.
//
// Complexity: O(V + E) time, O(V) extra space.
func BFS[W core.Weight](g *core.ListGraph[W], source int) *core.TraversalResult {
	if g == nil || !g.HasNode(source) {
		return core.NewTraversalResult(source, nil)
	}

	nodes := g.NodeIDs()
	w := &walker[W]{
		graph: g,
		queue: make([]queueItem, 0, len(nodes)),
		seen:  make(map[int]bool, len(nodes)),
		res:   core.NewTraversalResult(source, nodes),
	}

	// Seed queue with the source (no parent)
	w.discover(source, 0, core.None[int]())
	w.loop()
	return w.res
}

// discover marks id seen at depth d with the given parent and enqueues it.
func (w *walker[W]) discover(id, d int, parent core.Optional[int]) {
	w.seen[id] = true
	w.res.Depth[id] = core.Some(d)
	w.res.Parent[id] = parent
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty.
func (w *walker[W]) loop() {
	for len(w.queue) > 0 {
		item := w.dequeue()
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueNeighbors(item)
	}
}

// dequeue pops the first item.
func (w *walker[W]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// enqueueNeighbors discovers every unseen neighbor of item in adjacency order.
func (w *walker[W]) enqueueNeighbors(item queueItem) {
	for _, nb := range w.graph.Neighbors(item.id) {
		if !w.seen[nb.To] {
			w.discover(nb.To, item.depth+1, core.Some(item.id))
		}
	}
}
