// SPDX-License-Identifier: MIT
// Package core declares the shared graph contract, the node/edge value types,
// the Weight constraint and the constructor that picks a representation.
//
// Errors:
//
//	ErrUnknownRepresentation - a representation name could not be parsed.
//	ErrUnknownWeightType     - a weight type name could not be parsed.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for core parsing helpers. Graph construction and mutation
// never fail; these are only returned by the Parse* functions.
var (
	// ErrUnknownRepresentation indicates an unrecognized representation name.
	ErrUnknownRepresentation = errors.New("core: unknown representation")

	// ErrUnknownWeightType indicates an unrecognized weight type name.
	ErrUnknownWeightType = errors.New("core: unknown weight type")
)

// Weight is the set of numeric types an edge weight may take.
// Every member is ordered and additive.
type Weight interface {
	int | int32 | int64 | float32 | float64
}

// Representation selects how a graph stores its edges.
type Representation int

const (
	// List is the sparse adjacency-list form with caller-assigned node ids.
	List Representation = iota

	// Matrix is the dense adjacency-matrix form with positional node ids.
	Matrix
)

// String returns the wire name of the representation.
func (r Representation) String() string {
	switch r {
	case List:
		return "list"
	case Matrix:
		return "matrix"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

// ParseRepresentation maps "list" or "matrix" (case-insensitive) to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "list", "":
		return List, nil
	case "matrix":
		return Matrix, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRepresentation, s)
}

// Node is a node id together with its label.
type Node struct {
	ID    int
	Label string
}

// Edge is a directed edge record (From → To) with its weight.
type Edge[W Weight] struct {
	From   int
	To     int
	Weight W
}

// Neighbor is one entry of an adjacency list: the target node and the edge weight.
type Neighbor[W Weight] struct {
	To     int
	Weight W
}

// Graph is the contract shared by ListGraph and MatrixGraph.
//
// AddNode and AddEdge never fail. Matrix graphs silently ignore ids outside
// [0, Size()).
type Graph[W Weight] interface {
	// AddNode registers id, overwriting its label when one is given.
	AddNode(id int, label ...string)

	// AddEdge inserts from→to with weight (default 1), mirrored when undirected.
	AddEdge(from, to int, weight ...W)

	// Directed reports whether edges are one-way.
	Directed() bool

	// Representation reports the storage form.
	Representation() Representation

	// NodeIDs returns every known node id in ascending order.
	NodeIDs() []int

	// Labels returns a copy of the label map.
	Labels() map[int]string

	// Edges returns the edges in their canonical emission order.
	Edges() []Edge[W]

	// NodeCount returns the number of known nodes.
	NodeCount() int

	// EdgeCount returns len(Edges()).
	EdgeCount() int
}

// New builds an empty graph of the requested representation.
// capacity is the fixed node count of a matrix graph and is ignored for lists.
func New[W Weight](rep Representation, directed bool, capacity int) Graph[W] {
	if rep == Matrix {
		return NewMatrixGraph[W](directed, capacity)
	}
	return NewListGraph[W](directed)
}

// resolveWeight returns the first supplied weight or the unit weight.
func resolveWeight[W Weight](weight []W) W {
	if len(weight) > 0 {
		return weight[0]
	}
	return W(1)
}

// resolveLabel returns the first supplied label or "".
func resolveLabel(label []string) string {
	if len(label) > 0 {
		return label[0]
	}
	return ""
}
