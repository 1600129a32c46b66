// Package codec converts graphs and algorithm results to and from portable
// records, and serializes those records as JSON or YAML.
//
// Records:
//
//	graph:     {type: list|matrix, directed, size?, nodes: [{id,label}], edges: [{from,to,weight}]}
//	traversal: {type: traversal, source, order, parent: [{node,parent}], depth: [{node,depth}]}
//	dijkstra:  {type: dijkstra, source, dist: [{node,dist}], parent: [{node,parent}]}
//
// Absent values inside records use sentinels: parent NoParent (-1), depth
// NoDepth (MaxInt32) and dist core.MaxWeight[W](). In memory the results
// use core.Optional instead.
//
// Entries are sorted by node id, so encoding is deterministic and
// Encode∘Decode reproduces a record exactly.
//
// Every Decode* function validates its record first; missing required
// fields, wrong type tags and matrix ids outside [0,size) are reported as
// ErrMalformed.
package codec
