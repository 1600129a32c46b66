// Package dijkstra provides Dijkstra's single-source shortest-path
// algorithm over a core.ListGraph with any core.Weight edge type.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source node to every
//     reachable node and returns a *core.DijkstraResult holding Dist and
//     Parent maps.
//   - It relies on a container/heap min-heap. The heap has no decrease-key:
//     an improved distance is pushed as a fresh entry and entries whose
//     distance no longer matches the best known one are skipped when popped.
//   - Dist and Parent hold an entry for every node of the graph. Unreached
//     nodes keep an absent distance and parent.
//
// Negative weights:
//
//	Edges with negative weight are ignored rather than rejected. Results on
//	graphs containing them are shortest paths over the non-negative edges
//	only.
//
// Unknown source:
//
//	If the source is not a node of the graph the pre-seeded result is
//	returned unchanged.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E) (lazy deletion may keep one heap entry per relaxation)
//
// Example:
//
//	res := dijkstra.Dijkstra(g, 0)
//	if d, ok := res.Dist[3].Get(); ok {
//	    fmt.Println("distance:", d, "path:", res.PathTo(3))
//	}
package dijkstra
