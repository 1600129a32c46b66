// Package dfs implements depth-first search traversal on a core.ListGraph.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking, using an explicit stack of (node, depth) entries rather
//     than recursion, so deep graphs cannot exhaust the goroutine stack.
//   - Neighbors are pushed in reverse adjacency order; the visit order is
//     therefore the one a recursive left-to-right DFS would produce.
//
// Parent rule:
//
//	A node's parent is the first node that pushed it ("first discoverer"),
//	not necessarily the node whose stack entry was popped to visit it.
//	Depths, by contrast, come from the popped entry. Callers that need a
//	strict recursive-DFS tree should not rely on Parent.
//
// Result:
//
//	*core.TraversalResult with Order, Parent and Depth. Parent and Depth
//	hold an entry (absent when unreached) for every node of the graph.
//	An unknown source yields an empty Order and empty maps.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (the stack may hold one entry per adjacency entry)
package dfs
