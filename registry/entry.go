// SPDX-License-Identifier: MIT

package registry

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/engine"
)

// Entry is the weight-agnostic view of a registered graph.
type Entry interface {
	// Handle returns the handle the graph is stored under.
	Handle() Handle

	// Kind returns the representation and weight type tag.
	Kind() Kind

	// Graph returns the stored graph as core.Graph[W] behind an interface.
	Graph() any

	// Record encodes the graph as codec.GraphRecord[W].
	Record() any

	// Run executes alg from source and returns codec.TraversalRecord or
	// codec.DijkstraRecord[W]. Only an unknown algorithm fails.
	Run(alg engine.Algorithm, source int) (any, error)

	// Path returns the shortest path source → target as codec.PathRecord[W].
	Path(source, target int) any

	// Summary reports the kind and size of the graph.
	Summary() Summary
}

// Summary describes a registered graph.
type Summary struct {
	Handle   Handle `json:"handle" yaml:"handle"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Directed bool   `json:"directed" yaml:"directed"`
	Nodes    int    `json:"nodes" yaml:"nodes"`
	Edges    int    `json:"edges" yaml:"edges"`
}

// slot is the Entry for one graph of weight type W.
type slot[W core.Weight] struct {
	handle Handle
	kind   Kind
	graph  core.Graph[W]

	once sync.Once
	list *core.ListGraph[W] // list form used by the algorithms
}

// newSlot checks that g is a supported, non-nil graph.
func newSlot[W core.Weight](g core.Graph[W]) (*slot[W], error) {
	var rep core.Representation
	switch v := g.(type) {
	case nil:
		return nil, ErrNilGraph
	case *core.ListGraph[W]:
		if v == nil {
			return nil, ErrNilGraph
		}
		rep = core.List
	case *core.MatrixGraph[W]:
		if v == nil {
			return nil, ErrNilGraph
		}
		rep = core.Matrix
	default:
		return nil, fmt.Errorf("%w: graph type %T", ErrUnsupportedKind, g)
	}

	wt := core.WeightTypeOf[W]()
	if wt != core.WeightInt64 && wt != core.WeightFloat64 {
		return nil, fmt.Errorf("%w: weight type %s", ErrUnsupportedKind, wt)
	}
	return &slot[W]{kind: Kind{Representation: rep, WeightType: wt}, graph: g}, nil
}

func (s *slot[W]) Handle() Handle { return s.handle }
func (s *slot[W]) Kind() Kind     { return s.kind }
func (s *slot[W]) Graph() any     { return s.graph }
func (s *slot[W]) Record() any    { return codec.EncodeGraph(s.graph) }

// asList converts matrix graphs once and reuses the result.
func (s *slot[W]) asList() *core.ListGraph[W] {
	s.once.Do(func() { s.list = engine.AsList(s.graph) })
	return s.list
}

func (s *slot[W]) Run(alg engine.Algorithm, source int) (any, error) {
	res, err := engine.Run[W](s.asList(), alg, source)
	if err != nil {
		return nil, err
	}
	if res.Traversal != nil {
		return codec.EncodeTraversal(res.Traversal), nil
	}
	return codec.EncodeDijkstra(res.ShortestPath), nil
}

func (s *slot[W]) Path(source, target int) any {
	p := engine.ShortestPath[W](s.asList(), source, target)
	dist := core.None[W]()
	if p.Reached {
		dist = core.Some(p.Dist)
	}
	return codec.EncodePath(source, target, p.Nodes, dist)
}

func (s *slot[W]) Summary() Summary {
	return Summary{
		Handle:   s.handle,
		Kind:     s.kind,
		Directed: s.graph.Directed(),
		Nodes:    s.graph.NodeCount(),
		Edges:    s.graph.EdgeCount(),
	}
}
