// SPDX-License-Identifier: MIT

package codec

import (
	"sort"

	"github.com/katalvlaran/graphd/core"
)

// EncodeGraph converts g into its wire record.
//
// Nodes are sorted by id. List edges follow insertion order, one record per
// AddEdge call; matrix edges are row-major, upper triangle when undirected.
// Every edge carries its weight explicitly.
func EncodeGraph[W core.Weight](g core.Graph[W]) GraphRecord[W] {
	rec := GraphRecord[W]{
		Type:     g.Representation().String(),
		Directed: ptr(g.Directed()),
	}
	if m, ok := g.(*core.MatrixGraph[W]); ok {
		rec.Size = ptr(m.Size())
	}

	labels := g.Labels()
	ids := g.NodeIDs()
	rec.Nodes = make([]NodeRecord, 0, len(ids))
	for _, id := range ids {
		n := NodeRecord{ID: ptr(id)}
		if l, ok := labels[id]; ok {
			n.Label = ptr(l)
		}
		rec.Nodes = append(rec.Nodes, n)
	}

	edges := g.Edges()
	rec.Edges = make([]EdgeRecord[W], 0, len(edges))
	for _, e := range edges {
		rec.Edges = append(rec.Edges, EdgeRecord[W]{From: ptr(e.From), To: ptr(e.To), Weight: ptr(e.Weight)})
	}
	return rec
}

// DecodeGraph rebuilds a graph from rec.
//
// Labelled nodes are added before edges, in record order. An edge without
// weight gets the unit weight; a NaN or infinite weight is ErrMalformed.
// Unlabelled nodes are added after the edges, and only when no edge
// mentions them, so they keep having no label entry. Matrix records must
// carry a size of at most MaxMatrixSize, and every node and edge id must
// fall inside [0, size); violations return ErrMalformed instead of the
// silent no-op a live MatrixGraph would apply.
func DecodeGraph[W core.Weight](rec GraphRecord[W]) (core.Graph[W], error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	rep, err := core.ParseRepresentation(rec.Type)
	if err != nil {
		return nil, malformedf("%v", err)
	}

	endpoints := make(map[int]struct{}, len(rec.Edges))
	for i, e := range rec.Edges {
		if e.Weight != nil && !core.IsFinite(*e.Weight) {
			return nil, malformedf("edges[%d]: weight %v is not finite", i, *e.Weight)
		}
		endpoints[*e.From] = struct{}{}
		endpoints[*e.To] = struct{}{}
	}

	size := 0
	if rep == core.Matrix {
		if rec.Size == nil {
			return nil, malformedf("matrix record without size")
		}
		size = *rec.Size
		if size > MaxMatrixSize {
			return nil, malformedf("size %d exceeds %d", size, MaxMatrixSize)
		}
		for i, n := range rec.Nodes {
			if *n.ID < 0 || *n.ID >= size {
				return nil, malformedf("nodes[%d]: id %d outside [0,%d)", i, *n.ID, size)
			}
		}
		for i, e := range rec.Edges {
			if *e.From < 0 || *e.From >= size || *e.To < 0 || *e.To >= size {
				return nil, malformedf("edges[%d]: %d->%d outside [0,%d)", i, *e.From, *e.To, size)
			}
		}
	}

	g := core.New[W](rep, *rec.Directed, size)
	for _, n := range rec.Nodes {
		if n.Label != nil {
			g.AddNode(*n.ID, *n.Label)
		}
	}
	for _, e := range rec.Edges {
		if e.Weight == nil {
			g.AddEdge(*e.From, *e.To)
			continue
		}
		g.AddEdge(*e.From, *e.To, *e.Weight)
	}
	for _, n := range rec.Nodes {
		if _, ok := endpoints[*n.ID]; n.Label == nil && !ok {
			g.AddNode(*n.ID)
		}
	}
	return g, nil
}

// EncodeTraversal converts a BFS or DFS result into its wire record.
// Parent and depth entries are sorted by node id; absent values become
// NoParent and NoDepth.
func EncodeTraversal(res *core.TraversalResult) TraversalRecord {
	rec := TraversalRecord{
		Type:   TypeTraversal,
		Source: ptr(res.Source),
		Order:  append(make([]int, 0, len(res.Order)), res.Order...),
		Parent: encodeParents(res.Parent),
		Depth:  make([]DepthEntry, 0, len(res.Depth)),
	}
	for _, id := range sortedKeys(res.Depth) {
		rec.Depth = append(rec.Depth, DepthEntry{Node: ptr(id), Depth: ptr(res.Depth[id].Or(NoDepth))})
	}
	return rec
}

// DecodeTraversal rebuilds a traversal result from rec.
func DecodeTraversal(rec TraversalRecord) (*core.TraversalResult, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	res := &core.TraversalResult{
		Source: *rec.Source,
		Order:  append(make([]int, 0, len(rec.Order)), rec.Order...),
		Parent: decodeParents(rec.Parent),
		Depth:  make(map[int]core.Optional[int], len(rec.Depth)),
	}
	for _, d := range rec.Depth {
		if *d.Depth == NoDepth {
			res.Depth[*d.Node] = core.None[int]()
			continue
		}
		res.Depth[*d.Node] = core.Some(*d.Depth)
	}
	return res, nil
}

// EncodeDijkstra converts a shortest-path result into its wire record.
// Unreached nodes carry core.MaxWeight[W]() as their distance.
func EncodeDijkstra[W core.Weight](res *core.DijkstraResult[W]) DijkstraRecord[W] {
	unreached := core.MaxWeight[W]()
	rec := DijkstraRecord[W]{
		Type:   TypeDijkstra,
		Source: ptr(res.Source),
		Dist:   make([]DistEntry[W], 0, len(res.Dist)),
		Parent: encodeParents(res.Parent),
	}
	for _, id := range sortedKeys(res.Dist) {
		rec.Dist = append(rec.Dist, DistEntry[W]{Node: ptr(id), Dist: ptr(res.Dist[id].Or(unreached))})
	}
	return rec
}

// DecodeDijkstra rebuilds a shortest-path result from rec. A null distance
// and the MaxWeight sentinel both decode as unreached.
func DecodeDijkstra[W core.Weight](rec DijkstraRecord[W]) (*core.DijkstraResult[W], error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	unreached := core.MaxWeight[W]()
	res := &core.DijkstraResult[W]{
		Source: *rec.Source,
		Dist:   make(map[int]core.Optional[W], len(rec.Dist)),
		Parent: decodeParents(rec.Parent),
	}
	for i, d := range rec.Dist {
		if d.Dist != nil && !core.IsFinite(*d.Dist) {
			return nil, malformedf("dist[%d]: %v is not finite", i, *d.Dist)
		}
		if d.Dist == nil || *d.Dist == unreached {
			res.Dist[*d.Node] = core.None[W]()
			continue
		}
		res.Dist[*d.Node] = core.Some(*d.Dist)
	}
	return res, nil
}

func encodeParents(parent map[int]core.Optional[int]) []ParentEntry {
	out := make([]ParentEntry, 0, len(parent))
	for _, id := range sortedKeys(parent) {
		out = append(out, ParentEntry{Node: ptr(id), Parent: ptr(parent[id].Or(NoParent))})
	}
	return out
}

func decodeParents(entries []ParentEntry) map[int]core.Optional[int] {
	out := make(map[int]core.Optional[int], len(entries))
	for _, p := range entries {
		if *p.Parent == NoParent {
			out[*p.Node] = core.None[int]()
			continue
		}
		out[*p.Node] = core.Some(*p.Parent)
	}
	return out
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
