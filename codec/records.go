// SPDX-License-Identifier: MIT

package codec

import "github.com/katalvlaran/graphd/core"

// Record type discriminators.
const (
	TypeList      = "list"
	TypeMatrix    = "matrix"
	TypeTraversal = "traversal"
	TypeDijkstra  = "dijkstra"
)

// Wire sentinels. Results use core.Optional internally; these values stand
// for "absent" only inside records.
const (
	NoParent = -1
	NoDepth  = 1<<31 - 1 // math.MaxInt32
)

// MaxMatrixSize bounds the size of a matrix record; the decoded graph
// holds size×size cells.
const MaxMatrixSize = 5000

// NodeRecord is one node: {id, label}. Label is omitted for list nodes that
// only ever appeared as edge endpoints and so have no label entry.
type NodeRecord struct {
	ID    *int    `json:"id" yaml:"id" validate:"required"`
	Label *string `json:"label,omitempty" yaml:"label,omitempty"`
}

// EdgeRecord is one edge: {from, to, weight}. An omitted weight decodes to 1.
type EdgeRecord[W core.Weight] struct {
	From   *int `json:"from" yaml:"from" validate:"required"`
	To     *int `json:"to" yaml:"to" validate:"required"`
	Weight *W   `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// GraphRecord is the wire form of a graph. Size is present for matrix graphs only.
type GraphRecord[W core.Weight] struct {
	Type     string          `json:"type" yaml:"type" validate:"required,oneof=list matrix"`
	Directed *bool           `json:"directed" yaml:"directed" validate:"required"`
	Size     *int            `json:"size,omitempty" yaml:"size,omitempty" validate:"omitempty,min=0"`
	Nodes    []NodeRecord    `json:"nodes" yaml:"nodes" validate:"required,dive"`
	Edges    []EdgeRecord[W] `json:"edges" yaml:"edges" validate:"required,dive"`
}

// Validate checks required fields and value ranges.
func (r *GraphRecord[W]) Validate() error {
	return validateRecord(r)
}

// ParentEntry is {node, parent}; parent is NoParent for the source and
// unreached nodes.
type ParentEntry struct {
	Node   *int `json:"node" yaml:"node" validate:"required"`
	Parent *int `json:"parent" yaml:"parent" validate:"required"`
}

// DepthEntry is {node, depth}; depth is NoDepth for unreached nodes.
type DepthEntry struct {
	Node  *int `json:"node" yaml:"node" validate:"required"`
	Depth *int `json:"depth" yaml:"depth" validate:"required,min=0"`
}

// TraversalRecord is the wire form of a BFS/DFS result.
type TraversalRecord struct {
	Type   string        `json:"type" yaml:"type" validate:"required,eq=traversal"`
	Source *int          `json:"source" yaml:"source" validate:"required"`
	Order  []int         `json:"order" yaml:"order" validate:"required"`
	Parent []ParentEntry `json:"parent" yaml:"parent" validate:"required,dive"`
	Depth  []DepthEntry  `json:"depth" yaml:"depth" validate:"required,dive"`
}

// Validate checks required fields and value ranges.
func (r *TraversalRecord) Validate() error {
	return validateRecord(r)
}

// DistEntry is {node, dist}; dist is the weight type's largest finite value
// for unreached nodes. A null or missing dist also reads as unreached.
type DistEntry[W core.Weight] struct {
	Node *int `json:"node" yaml:"node" validate:"required"`
	Dist *W   `json:"dist" yaml:"dist"`
}

// DijkstraRecord is the wire form of a shortest-path result.
type DijkstraRecord[W core.Weight] struct {
	Type   string         `json:"type" yaml:"type" validate:"required,eq=dijkstra"`
	Source *int           `json:"source" yaml:"source" validate:"required"`
	Dist   []DistEntry[W] `json:"dist" yaml:"dist" validate:"required,dive"`
	Parent []ParentEntry  `json:"parent" yaml:"parent" validate:"required,dive"`
}

// Validate checks required fields.
func (r *DijkstraRecord[W]) Validate() error {
	return validateRecord(r)
}

// ptr returns a pointer to a copy of v.
func ptr[T any](v T) *T {
	return &v
}

// PathRecord is a reconstructed shortest path. Dist is null and Reached is
// false when target has no finite distance from source.
type PathRecord[W core.Weight] struct {
	Source  int   `json:"source" yaml:"source"`
	Target  int   `json:"target" yaml:"target"`
	Path    []int `json:"path" yaml:"path"`
	Dist    *W    `json:"dist" yaml:"dist"`
	Reached bool  `json:"reached" yaml:"reached"`
}

// EncodePath builds a PathRecord. A nil nodes slice becomes an empty path.
func EncodePath[W core.Weight](source, target int, nodes []int, dist core.Optional[W]) PathRecord[W] {
	rec := PathRecord[W]{
		Source:  source,
		Target:  target,
		Path:    append(make([]int, 0, len(nodes)), nodes...),
		Reached: dist.Valid,
	}
	if dist.Valid {
		rec.Dist = ptr(dist.Value)
	}
	return rec
}
