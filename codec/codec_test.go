// SPDX-License-Identifier: MIT
package codec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphd/bfs"
	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/dfs"
	"github.com/katalvlaran/graphd/dijkstra"
)

var formats = []codec.Format{codec.JSON, codec.YAML}

// reencode pushes a record through the byte form and back.
func reencode[T any](t *testing.T, f codec.Format, rec T) T {
	t.Helper()
	data, err := codec.Marshal(f, rec)
	require.NoError(t, err)
	var back T
	require.NoError(t, codec.Unmarshal(f, data, &back))
	return back
}

func sampleGraphs() map[string]core.Graph[float64] {
	und := core.NewListGraph[float64](false)
	und.AddNode(0, "root")
	und.AddEdge(0, 1, 1.5)
	und.AddEdge(2, 0, 2)
	und.AddEdge(3, 3, 4)   // self-loop
	und.AddEdge(0, 1, 7)   // parallel
	und.AddNode(10, "iso") // isolated

	dir := core.NewListGraph[float64](true)
	dir.AddEdge(5, 1, 0.25)
	dir.AddEdge(1, 5, 3)

	mu := core.NewMatrixGraph[float64](false, 3)
	mu.AddNode(1, "mid")
	mu.AddEdge(2, 0, 9)
	mu.AddEdge(1, 1, 1)

	md := core.NewMatrixGraph[float64](true, 3)
	md.AddEdge(2, 0, 9)
	md.AddEdge(0, 2, 8)

	return map[string]core.Graph[float64]{
		"list undirected":   und,
		"list directed":     dir,
		"matrix undirected": mu,
		"matrix directed":   md,
		"empty matrix":      core.NewMatrixGraph[float64](true, 0),
	}
}

func TestGraphRoundTrip(t *testing.T) {
	for name, g := range sampleGraphs() {
		for _, f := range formats {
			t.Run(name+"/"+string(f), func(t *testing.T) {
				rec := codec.EncodeGraph(g)
				back := reencode(t, f, rec)
				require.Equal(t, rec, back)

				g2, err := codec.DecodeGraph(back)
				require.NoError(t, err)
				require.Equal(t, g.Representation(), g2.Representation())
				require.Equal(t, g.Directed(), g2.Directed())
				require.Equal(t, g.NodeIDs(), g2.NodeIDs())
				require.Equal(t, g.Edges(), g2.Edges())
				require.Equal(t, g.Labels(), g2.Labels())
				require.Equal(t, rec, codec.EncodeGraph(g2))

				if lg, ok := g.(*core.ListGraph[float64]); ok {
					require.Equal(t, lg.Adjacency(), g2.(*core.ListGraph[float64]).Adjacency())
				}
				if mg, ok := g.(*core.MatrixGraph[float64]); ok {
					require.Equal(t, mg.Cells(), g2.(*core.MatrixGraph[float64]).Cells())
				}
			})
		}
	}
}

func TestEncodeGraphShape(t *testing.T) {
	g := core.NewListGraph[int64](false)
	g.AddNode(2, "b")
	g.AddEdge(0, 2, 5)
	g.AddEdge(1, 1)

	rec := codec.EncodeGraph[int64](g)
	require.Equal(t, "list", rec.Type)
	require.False(t, *rec.Directed)
	require.Nil(t, rec.Size)
	require.Len(t, rec.Nodes, 3)
	require.Equal(t, 0, *rec.Nodes[0].ID)
	require.Nil(t, rec.Nodes[0].Label, "endpoint-only node has no label entry")
	require.Equal(t, "b", *rec.Nodes[2].Label)
	require.Len(t, rec.Edges, 2, "undirected pair and self-loop emitted once each")
	require.Equal(t, int64(5), *rec.Edges[0].Weight)
	require.Equal(t, 1, *rec.Edges[1].From)
	require.Equal(t, 1, *rec.Edges[1].To)

	m := core.NewMatrixGraph[int64](false, 4)
	require.Equal(t, 4, *codec.EncodeGraph[int64](m).Size)
}

func TestDecodeGraphDefaultsWeight(t *testing.T) {
	raw := `{"type":"list","directed":true,"nodes":[],"edges":[{"from":0,"to":1}]}`
	var rec codec.GraphRecord[int64]
	require.NoError(t, codec.Unmarshal(codec.JSON, []byte(raw), &rec))

	g, err := codec.DecodeGraph(rec)
	require.NoError(t, err)
	require.Equal(t, []core.Edge[int64]{{From: 0, To: 1, Weight: 1}}, g.Edges())
}

func TestDecodeGraphMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"syntax", `{"type":`},
		{"fractional integer weight", `{"type":"list","directed":true,"nodes":[],"edges":[{"from":0,"to":1,"weight":1.5}]}`},
		{"missing type", `{"directed":true,"nodes":[],"edges":[]}`},
		{"unknown type", `{"type":"tree","directed":true,"nodes":[],"edges":[]}`},
		{"missing directed", `{"type":"list","nodes":[],"edges":[]}`},
		{"missing nodes", `{"type":"list","directed":true,"edges":[]}`},
		{"missing edges", `{"type":"list","directed":true,"nodes":[]}`},
		{"node without id", `{"type":"list","directed":true,"nodes":[{"label":"x"}],"edges":[]}`},
		{"edge without to", `{"type":"list","directed":true,"nodes":[],"edges":[{"from":0}]}`},
		{"matrix without size", `{"type":"matrix","directed":true,"nodes":[],"edges":[]}`},
		{"matrix negative size", `{"type":"matrix","directed":true,"size":-1,"nodes":[],"edges":[]}`},
		{"matrix size over limit", `{"type":"matrix","directed":true,"size":5001,"nodes":[],"edges":[]}`},
		{"matrix size overflows allocation", `{"type":"matrix","directed":true,"size":4611686018427387904,"nodes":[],"edges":[]}`},
		{"matrix node out of range", `{"type":"matrix","directed":true,"size":2,"nodes":[{"id":2}],"edges":[]}`},
		{"matrix edge out of range", `{"type":"matrix","directed":false,"size":2,"nodes":[],"edges":[{"from":0,"to":-1}]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var rec codec.GraphRecord[int64]
			err := codec.Unmarshal(codec.JSON, []byte(tc.raw), &rec)
			if err == nil {
				_, err = codec.DecodeGraph(rec)
			}
			require.ErrorIs(t, err, codec.ErrMalformed)
		})
	}
}

func TestDecodeGraphKeepsMissingLabels(t *testing.T) {
	raw := `{"type":"list","directed":false,"nodes":[{"id":0},{"id":1,"label":""},{"id":7}],"edges":[{"from":0,"to":2}]}`
	var rec codec.GraphRecord[float64]
	require.NoError(t, codec.Unmarshal(codec.JSON, []byte(raw), &rec))

	g, err := codec.DecodeGraph(rec)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 7}, g.NodeIDs())
	require.Equal(t, map[int]string{1: "", 7: ""}, g.Labels(),
		"edge endpoints without a label stay unlabelled; isolated nodes are added")
}

func TestDecodeRejectsNonFiniteWeights(t *testing.T) {
	for _, w := range []string{".inf", "-.inf", ".nan"} {
		t.Run(w, func(t *testing.T) {
			raw := "type: list\ndirected: true\nnodes: []\nedges:\n  - {from: 0, to: 1, weight: " + w + "}\n"
			var rec codec.GraphRecord[float64]
			require.NoError(t, codec.Unmarshal(codec.YAML, []byte(raw), &rec))
			_, err := codec.DecodeGraph(rec)
			require.ErrorIs(t, err, codec.ErrMalformed)

			raw = "type: dijkstra\nsource: 0\ndist:\n  - {node: 0, dist: " + w + "}\nparent:\n  - {node: 0, parent: -1}\n"
			var dr codec.DijkstraRecord[float64]
			require.NoError(t, codec.Unmarshal(codec.YAML, []byte(raw), &dr))
			_, err = codec.DecodeDijkstra(dr)
			require.ErrorIs(t, err, codec.ErrMalformed)
		})
	}
}

func traversalFixture() *core.ListGraph[float64] {
	g := core.NewListGraph[float64](false)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 3)
	g.AddNode(9, "unreached")
	return g
}

func TestTraversalRoundTrip(t *testing.T) {
	g := traversalFixture()
	results := map[string]*core.TraversalResult{
		"bfs":            bfs.BFS(g, 0),
		"dfs":            dfs.DFS(g, 0),
		"unknown source": bfs.BFS(g, 42),
	}
	for name, res := range results {
		for _, f := range formats {
			t.Run(name+"/"+string(f), func(t *testing.T) {
				rec := codec.EncodeTraversal(res)
				back := reencode(t, f, rec)
				require.Equal(t, rec, back)

				decoded, err := codec.DecodeTraversal(back)
				require.NoError(t, err)
				require.Equal(t, res, decoded)
			})
		}
	}
}

func TestEncodeTraversalSentinels(t *testing.T) {
	rec := codec.EncodeTraversal(bfs.BFS(traversalFixture(), 0))
	require.Equal(t, codec.TypeTraversal, rec.Type)
	require.Equal(t, []int{0, 1, 2, 3}, rec.Order)

	nodes := make([]int, 0, len(rec.Parent))
	for _, p := range rec.Parent {
		nodes = append(nodes, *p.Node)
	}
	require.Equal(t, []int{0, 1, 2, 3, 9}, nodes, "entries sorted by node id")
	require.Equal(t, codec.NoParent, *rec.Parent[0].Parent)
	require.Equal(t, codec.NoParent, *rec.Parent[4].Parent)
	require.Equal(t, 1, *rec.Parent[3].Parent)
	require.Equal(t, math.MaxInt32, *rec.Depth[4].Depth)
	require.Equal(t, 2, *rec.Depth[3].Depth)
}

func TestDecodeTraversalMalformed(t *testing.T) {
	tests := map[string]string{
		"wrong type":     `{"type":"dijkstra","source":0,"order":[],"parent":[],"depth":[]}`,
		"missing source": `{"type":"traversal","order":[],"parent":[],"depth":[]}`,
		"missing order":  `{"type":"traversal","source":0,"parent":[],"depth":[]}`,
		"negative depth": `{"type":"traversal","source":0,"order":[0],"parent":[],"depth":[{"node":0,"depth":-2}]}`,
		"parent no node": `{"type":"traversal","source":0,"order":[0],"parent":[{"parent":1}],"depth":[]}`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			var rec codec.TraversalRecord
			require.NoError(t, codec.Unmarshal(codec.JSON, []byte(raw), &rec))
			_, err := codec.DecodeTraversal(rec)
			require.ErrorIs(t, err, codec.ErrMalformed)
		})
	}
}

func dijkstraFixture[W core.Weight]() *core.ListGraph[W] {
	g := core.NewListGraph[W](true)
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 2)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 3, 5)
	g.AddNode(4)
	return g
}

func TestDijkstraRoundTrip(t *testing.T) {
	for _, f := range formats {
		t.Run("int64/"+string(f), func(t *testing.T) {
			res := dijkstra.Dijkstra(dijkstraFixture[int64](), 0)
			rec := codec.EncodeDijkstra(res)
			require.Equal(t, int64(math.MaxInt64), *rec.Dist[4].Dist)

			back := reencode(t, f, rec)
			require.Equal(t, rec, back)
			decoded, err := codec.DecodeDijkstra(back)
			require.NoError(t, err)
			require.Equal(t, res, decoded)
		})
		t.Run("float64/"+string(f), func(t *testing.T) {
			res := dijkstra.Dijkstra(dijkstraFixture[float64](), 0)
			rec := codec.EncodeDijkstra(res)
			require.Equal(t, math.MaxFloat64, *rec.Dist[4].Dist)
			require.Equal(t, 4.0, *rec.Dist[3].Dist)

			back := reencode(t, f, rec)
			require.Equal(t, rec, back)
			decoded, err := codec.DecodeDijkstra(back)
			require.NoError(t, err)
			require.Equal(t, res, decoded)
		})
	}
}

func TestDecodeDijkstraNullDistIsUnreached(t *testing.T) {
	raw := `{"type":"dijkstra","source":0,"dist":[{"node":0,"dist":0},{"node":1,"dist":null},{"node":2}],"parent":[{"node":0,"parent":-1}]}`
	var rec codec.DijkstraRecord[float64]
	require.NoError(t, codec.Unmarshal(codec.JSON, []byte(raw), &rec))

	res, err := codec.DecodeDijkstra(rec)
	require.NoError(t, err)
	require.Equal(t, core.Some(0.0), res.Dist[0])
	require.False(t, res.Dist[1].Valid)
	require.False(t, res.Dist[2].Valid)
	require.False(t, res.Parent[0].Valid)
}

func TestDecodeDijkstraMalformed(t *testing.T) {
	raw := `{"type":"traversal","source":0,"dist":[],"parent":[]}`
	var rec codec.DijkstraRecord[float64]
	require.NoError(t, codec.Unmarshal(codec.JSON, []byte(raw), &rec))
	_, err := codec.DecodeDijkstra(rec)
	require.ErrorIs(t, err, codec.ErrMalformed)
}

func TestEncodePath(t *testing.T) {
	res := dijkstra.Dijkstra(dijkstraFixture[int64](), 0)

	rec := codec.EncodePath(0, 3, res.PathTo(3), res.Dist[3])
	require.True(t, rec.Reached)
	require.Equal(t, []int{0, 2, 1, 3}, rec.Path)
	require.Equal(t, int64(4), *rec.Dist)

	rec = codec.EncodePath(0, 4, res.PathTo(4), res.Dist[4])
	require.False(t, rec.Reached)
	require.Nil(t, rec.Dist)
	require.Equal(t, []int{4}, rec.Path)

	rec = codec.EncodePath(0, 99, res.PathTo(99), res.Dist[99])
	require.NotNil(t, rec.Path)
	require.Empty(t, rec.Path)
}
