// Package bfs provides breadth-first search over a core.ListGraph,
// returning hop distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a source node.
//   - Returns a *core.TraversalResult containing:
//   - Order: dequeue sequence, each reachable node exactly once
//   - Depth: node → hops from source (absent when unreached)
//   - Parent: node → predecessor in the BFS tree (absent for source/unreached)
//   - Depth and Parent hold an entry for every node of the graph, reached or not.
//   - Edge weights are ignored.
//
// Determinism
//
//	Neighbors are examined in adjacency-list insertion order, so the visit
//	sequence is fully reproducible for a given construction order.
//
// Unknown source
//
//	A source that is not a node of the graph is not an error: the result
//	has an empty Order and empty maps.
//
// Complexity (V = |nodes|, E = |adjacency entries|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res := bfs.BFS(g, 0)
//	fmt.Println(res.Order, res.Depth[3].Value)
//
// Matrix graphs are traversed through MatrixGraph.ToList or package engine.
package bfs
