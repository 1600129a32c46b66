// Package graphd keeps weighted graphs in memory and runs breadth-first
// search, depth-first search and Dijkstra's shortest paths over them.
//
// What is inside?
//
//	core/      ListGraph and MatrixGraph stores, Optional, result types, ReconstructPath
//	bfs/       queue walker: visit order, parents, hop depths
//	dfs/       explicit-stack walker: preorder, first-discoverer parents, tree depths
//	dijkstra/  binary-heap shortest paths over non-negative weights
//	engine/    one entry point for all three over either representation
//	builder/   seeded random graphs (list or matrix)
//	codec/     JSON/YAML records for graphs and results
//	registry/  integer handles for graphs of mixed representation and weight type
//
// The graphd binary (cmd/graphd) serves the registry over HTTP and runs the
// algorithms from the command line:
//
//	graphd generate --nodes 20 --probability 0.2 --seed 7 > g.json
//	graphd run --algorithm dijkstra --start 0 --target 5 g.json
//	graphd serve --snapshot graphs.json
//
// Quick example:
//
//	g := core.NewListGraph[float64](false)
//	g.AddEdge(0, 1, 4)
//	g.AddEdge(0, 2, 1)
//	g.AddEdge(2, 1, 2)
//	res := dijkstra.Dijkstra(g, 0)
//	res.PathTo(1) // [0 2 1], distance 3
package graphd
