// Package engine is the single entry point the service uses to run an
// algorithm: it parses algorithm names, converts matrix graphs to list
// form and dispatches to packages bfs, dfs and dijkstra.
//
//	alg, err := engine.ParseAlgorithm("dijkstra")
//	res, err := engine.Run[float64](g, alg, 0)
//	// res.ShortestPath is set for dijkstra, res.Traversal for bfs/dfs
//
// Matrix graphs are converted with MatrixGraph.ToList, so neighbors are
// visited in column order.
package engine
