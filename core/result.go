// SPDX-License-Identifier: MIT

package core

// TraversalResult is the outcome of a BFS or DFS run.
//
//   - Order lists each node reachable from Source exactly once, in visit order.
//   - Parent maps a node to its predecessor; absent for Source and for
//     unreached nodes.
//   - Depth maps a node to its hop count from Source; absent for unreached
//     nodes.
//
// Parent and Depth are pre-seeded with every node the graph knew about when
// the run started.
type TraversalResult struct {
	Source int
	Order  []int
	Parent map[int]Optional[int]
	Depth  map[int]Optional[int]
}

// NewTraversalResult returns a result for source whose Parent and Depth
// hold an absent entry for every id in nodes.
func NewTraversalResult(source int, nodes []int) *TraversalResult {
	res := &TraversalResult{
		Source: source,
		Order:  make([]int, 0, len(nodes)),
		Parent: make(map[int]Optional[int], len(nodes)),
		Depth:  make(map[int]Optional[int], len(nodes)),
	}
	for _, id := range nodes {
		res.Parent[id] = None[int]()
		res.Depth[id] = None[int]()
	}
	return res
}

// PathTo returns the tree path Source → target, or nil if target is unknown.
func (r *TraversalResult) PathTo(target int) []int {
	return ReconstructPath(target, r.Parent)
}

// DijkstraResult is the outcome of a single-source shortest-path run.
//
//   - Dist maps a node to its minimal path weight; absent when unreached.
//   - Parent maps a node to its predecessor on a shortest path; absent for
//     Source and for unreached nodes.
type DijkstraResult[W Weight] struct {
	Source int
	Dist   map[int]Optional[W]
	Parent map[int]Optional[int]
}

// NewDijkstraResult returns a result for source with an absent distance and
// parent for every id in nodes.
func NewDijkstraResult[W Weight](source int, nodes []int) *DijkstraResult[W] {
	res := &DijkstraResult[W]{
		Source: source,
		Dist:   make(map[int]Optional[W], len(nodes)),
		Parent: make(map[int]Optional[int], len(nodes)),
	}
	for _, id := range nodes {
		res.Dist[id] = None[W]()
		res.Parent[id] = None[int]()
	}
	return res
}

// PathTo returns the shortest path Source → target. An unreached but known
// target yields the single-element path [target]; an unknown one yields nil.
func (r *DijkstraResult[W]) PathTo(target int) []int {
	return ReconstructPath(target, r.Parent)
}

// ReconstructPath follows parent links back from target until a node has no
// parent or is missing from the map, then returns the nodes in source →
// target order. A target missing from parent yields nil.
//
// The walk is bounded by len(parent)+1 steps, so a cyclic map (which no
// algorithm produces) cannot loop forever.
//
// Complexity: O(path length)
func ReconstructPath(target int, parent map[int]Optional[int]) []int {
	if _, ok := parent[target]; !ok {
		return nil
	}
	path := []int{target}
	cur := target
	for steps := 0; steps <= len(parent); steps++ {
		p, ok := parent[cur]
		if !ok || !p.Valid {
			break
		}
		cur = p.Value
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
