// SPDX-License-Identifier: MIT
// Package dijkstra implements single-source shortest paths on a
// core.ListGraph using a binary heap with lazy deletion.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/graphd/core"
)

// Dijkstra computes shortest distances and predecessors from source.
//
// Steps:
//  1. Pre-seed Dist and Parent with an absent entry for every node of g.
//     If source is not a node of g, return right away.
//  2. Set Dist[source] = 0 and push (source, 0).
//  3. Pop the closest entry; skip it if its distance no longer equals the
//     best known distance for that node (stale entry).
//  4. Relax every outgoing edge. Negative and NaN weights are skipped, not
//     rejected. So is an edge whose candidate distance is not finite,
//     wraps around an integer W, or reaches core.MaxWeight[W]: the target
//     stays unreached through that edge. An edge improves v only when
//     Dist[u]+w < Dist[v] strictly (or v is unreached), in which case
//     Dist/Parent are updated and (v, Dist[v]) is pushed.
//  5. Stop when the queue is empty.
//
// Ties between equal distances are broken by heap order; distances are
// exact regardless.
//
// Complexity: O((V + E) log E) time, O(V + E) space.
func Dijkstra[W core.Weight](g *core.ListGraph[W], source int) *core.DijkstraResult[W] {
	if g == nil {
		return core.NewDijkstraResult[W](source, nil)
	}

	nodes := g.NodeIDs()
	r := &runner[W]{
		g:   g,
		res: core.NewDijkstraResult[W](source, nodes),
		pq:  make(nodePQ[W], 0, len(nodes)),
	}
	if !g.HasNode(source) {
		return r.res
	}

	r.init(source)
	r.process()
	return r.res
}

// runner encapsulates the mutable state of one Dijkstra run.
type runner[W core.Weight] struct {
	g   *core.ListGraph[W]      // input graph; read-only here
	res *core.DijkstraResult[W] // distances and predecessors being built
	pq  nodePQ[W]               // min-heap of tentative distances
}

// init seeds the source at distance zero.
func (r *runner[W]) init(source int) {
	var zero W
	r.res.Dist[source] = core.Some(zero)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[W]{id: source, dist: zero})
}

// process pops entries until the queue is empty, skipping stale ones.
func (r *runner[W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[W])
		if best := r.res.Dist[item.id]; !best.Valid || best.Value != item.dist {
			continue
		}
		r.relax(item.id, item.dist)
	}
}

// relax examines every edge out of u.
func (r *runner[W]) relax(u int, du W) {
	var zero W
	top := core.MaxWeight[W]()
	for _, e := range r.g.Neighbors(u) {
		if !(e.Weight >= zero) { // negative or NaN
			continue
		}
		cand := du + e.Weight
		if cand < du || cand == top || !core.IsFinite(cand) { // overflow or sentinel
			continue
		}
		if cur := r.res.Dist[e.To]; cur.Valid && !(cand < cur.Value) {
			continue
		}
		r.res.Dist[e.To] = core.Some(cand)
		r.res.Parent[e.To] = core.Some(u)
		heap.Push(&r.pq, &nodeItem[W]{id: e.To, dist: cand})
	}
}

// nodeItem is a priority-queue entry: a node and its tentative distance.
type nodeItem[W core.Weight] struct {
	id   int
	dist W
}

// nodePQ implements heap.Interface as a min-heap on dist.
// Entries are never updated in place; improved distances are pushed anew
// and outdated ones are discarded on pop.
type nodePQ[W core.Weight] []*nodeItem[W]

// Len returns the number of entries.
func (pq nodePQ[W]) Len() int { return len(pq) }

// Less orders by ascending distance.
func (pq nodePQ[W]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap exchanges two entries.
func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem[W].
func (pq *nodePQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[W])) }

// Pop removes and returns the last element; heap.Pop has already moved
// the minimum there.
func (pq *nodePQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
