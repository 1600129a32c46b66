// SPDX-License-Identifier: MIT
package server_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/internal/server"
	"github.com/katalvlaran/graphd/internal/snapshot"
	"github.com/katalvlaran/graphd/registry"
)

// weightedDirected is the four-node reference graph for shortest paths.
const weightedDirected = `{
  "type": "list",
  "directed": true,
  "nodes": [{"id": 0, "label": "a"}],
  "edges": [
    {"from": 0, "to": 1, "weight": 4},
    {"from": 0, "to": 2, "weight": 1},
    {"from": 2, "to": 1, "weight": 2},
    {"from": 1, "to": 3, "weight": 1},
    {"from": 2, "to": 3, "weight": 5}
  ]
}`

const diamondYAML = `type: list
directed: false
nodes: []
edges:
  - {from: 0, to: 1}
  - {from: 0, to: 2}
  - {from: 1, to: 3}
  - {from: 2, to: 3}
`

type created struct {
	Handle int64  `json:"handle"`
	Kind   string `json:"kind"`
	Seed   *int64 `json:"seed"`
}

type ServerSuite struct {
	suite.Suite
	reg      *registry.Registry
	srv      *server.Server
	spans    *tracetest.SpanRecorder
	provider *sdktrace.TracerProvider
	snapPath string
}

func (s *ServerSuite) SetupTest() {
	s.spans = tracetest.NewSpanRecorder()
	s.provider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(s.spans))
	s.snapPath = filepath.Join(s.T().TempDir(), "snap.json")
	s.reg = registry.New()
	s.srv = server.New(s.reg, log.New(io.Discard), server.Options{
		Mode:           gin.TestMode,
		Metrics:        true,
		TracerProvider: s.provider,
		SnapshotPath:   s.snapPath,
	})
}

func (s *ServerSuite) TearDownTest() {
	s.Require().NoError(s.provider.Shutdown(context.Background()))
}

func (s *ServerSuite) do(method, target, body string, header ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	s.srv.Handler().ServeHTTP(w, req)
	return w
}

func (s *ServerSuite) create(target, body string, header ...string) created {
	w := s.do(http.MethodPost, target, body, header...)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var out created
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *ServerSuite) requireError(w *httptest.ResponseRecorder, status int, code string) {
	s.Require().Equal(status, w.Code, w.Body.String())
	var out server.ErrorResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	s.Require().Equal(code, out.Code)
	s.Require().NotEmpty(out.Error)
}

func (s *ServerSuite) TestHealth() {
	w := s.do(http.MethodGet, "/healthz", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().JSONEq(`{"status":"ok","graphs":0}`, w.Body.String())
}

func (s *ServerSuite) TestCreateRunAndPath() {
	require := s.Require()
	c := s.create("/v1/graphs", weightedDirected)
	require.Equal(int64(0), c.Handle)
	require.Equal("list/float64", c.Kind)
	require.Nil(c.Seed)

	w := s.do(http.MethodGet, "/v1/graphs/0/run/dijkstra?start=0", "")
	require.Equal(http.StatusOK, w.Code, w.Body.String())
	var dr codec.DijkstraRecord[float64]
	require.NoError(json.Unmarshal(w.Body.Bytes(), &dr))
	res, err := codec.DecodeDijkstra(dr)
	require.NoError(err)
	for node, want := range map[int]float64{0: 0, 1: 3, 2: 1, 3: 4} {
		require.Equal(want, res.Dist[node].Value, "node %d", node)
	}

	w = s.do(http.MethodGet, "/v1/graphs/0/path?start=0&target=3", "")
	require.Equal(http.StatusOK, w.Code, w.Body.String())
	require.JSONEq(`{"source":0,"target":3,"path":[0,2,1,3],"dist":4,"reached":true}`, w.Body.String())

	w = s.do(http.MethodGet, "/v1/graphs/0/path?start=3&target=0", "")
	require.Equal(http.StatusOK, w.Code)
	require.JSONEq(`{"source":3,"target":0,"path":[0],"dist":null,"reached":false}`, w.Body.String())
}

func (s *ServerSuite) TestCreateYAMLInt64() {
	require := s.Require()
	c := s.create("/v1/graphs?weight=int64", diamondYAML, "Content-Type", "application/yaml")
	require.Equal("list/int64", c.Kind)

	w := s.do(http.MethodGet, "/v1/graphs/0/run/BFS?start=0", "")
	require.Equal(http.StatusOK, w.Code, w.Body.String())
	var tr codec.TraversalRecord
	require.NoError(json.Unmarshal(w.Body.Bytes(), &tr))
	require.Equal([]int{0, 1, 2, 3}, tr.Order)
	res, err := codec.DecodeTraversal(tr)
	require.NoError(err)
	require.Equal(2, res.Depth[3].Value)

	w = s.do(http.MethodGet, "/v1/graphs/0/run/dfs?start=0", "")
	require.Equal(http.StatusOK, w.Code)
	require.NoError(json.Unmarshal(w.Body.Bytes(), &tr))
	require.Len(tr.Order, 4)
	require.Contains(tr.Order, 3)
}

func (s *ServerSuite) TestGetGraphRoundTrips() {
	require := s.Require()
	s.create("/v1/graphs?weight=float64", weightedDirected)

	w := s.do(http.MethodGet, "/v1/graphs/0", "")
	require.Equal(http.StatusOK, w.Code)
	var rec codec.GraphRecord[float64]
	require.NoError(json.Unmarshal(w.Body.Bytes(), &rec))
	require.Len(rec.Edges, 5)
	require.Len(rec.Nodes, 4)
	require.Equal("a", *rec.Nodes[0].Label)

	w = s.do(http.MethodGet, "/v1/graphs/0?format=yaml", "")
	require.Equal(http.StatusOK, w.Code)
	require.Contains(w.Header().Get("Content-Type"), "application/yaml")
	var back codec.GraphRecord[float64]
	require.NoError(codec.Unmarshal(codec.YAML, w.Body.Bytes(), &back))
	require.Equal(rec, back)
}

func (s *ServerSuite) TestList() {
	s.create("/v1/graphs", weightedDirected)
	s.create("/v1/graphs?weight=int64", diamondYAML, "Content-Type", "text/yaml")

	w := s.do(http.MethodGet, "/v1/graphs", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().JSONEq(`[
		{"handle":0,"kind":"list/float64","directed":true,"nodes":4,"edges":5},
		{"handle":1,"kind":"list/int64","directed":false,"nodes":4,"edges":4}
	]`, w.Body.String())
}

func (s *ServerSuite) TestGenerate() {
	require := s.Require()
	body := `{"nodes":4,"probability":1,"min_weight":2,"max_weight":2,"representation":"matrix","weight_type":"int64","seed":7}`
	c := s.create("/v1/graphs/generate", body)
	require.Equal("matrix/int64", c.Kind)
	require.NotNil(c.Seed)
	require.Equal(int64(7), *c.Seed)

	e, err := s.reg.Lookup(registry.Handle(c.Handle))
	require.NoError(err)
	require.Equal(6, e.Summary().Edges, "complete undirected graph on 4 nodes")

	c = s.create("/v1/graphs/generate", `{"nodes":3,"probability":0.5}`)
	require.Equal("list/float64", c.Kind)
	require.NotNil(c.Seed, "a seed is drawn and echoed")

	c = s.create("/v1/graphs/generate", `{"nodes":3,"probability":0.5,"seed":0}`)
	require.NotNil(c.Seed)
	require.Zero(*c.Seed, "an explicit zero seed is kept")
}

func (s *ServerSuite) TestGenerateRejects() {
	tests := map[string]string{
		"probability":     `{"nodes":3,"probability":2}`,
		"negative nodes":  `{"nodes":-1,"probability":0.5}`,
		"too many nodes":  `{"nodes":5001,"probability":0.5}`,
		"representation":  `{"nodes":3,"probability":0.5,"representation":"tree"}`,
		"weight type":     `{"nodes":3,"probability":0.5,"weight_type":"int32"}`,
		"fractional":      `{"nodes":3,"probability":0.5,"weight_type":"int64","min_weight":1.5}`,
		"inverted range":  `{"nodes":3,"probability":0.5,"min_weight":9,"max_weight":1,"seed":1}`,
		"not json at all": `nodes=3`,
	}
	for name, body := range tests {
		s.Run(name, func() {
			s.requireError(s.do(http.MethodPost, "/v1/graphs/generate", body), http.StatusBadRequest, server.CodeInvalidRequest)
		})
	}
	s.Require().Zero(s.reg.Len())
}

func (s *ServerSuite) TestErrors() {
	s.create("/v1/graphs", weightedDirected)

	s.requireError(s.do(http.MethodPost, "/v1/graphs", `{"type":"list"}`), http.StatusBadRequest, server.CodeMalformedRecord)
	s.requireError(s.do(http.MethodPost, "/v1/graphs", `{`), http.StatusBadRequest, server.CodeMalformedRecord)
	s.requireError(s.do(http.MethodPost, "/v1/graphs",
		`{"type":"matrix","directed":true,"size":4611686018427387904,"nodes":[],"edges":[]}`),
		http.StatusBadRequest, server.CodeMalformedRecord)
	s.requireError(s.do(http.MethodPost, "/v1/graphs?weight=int32", weightedDirected), http.StatusBadRequest, server.CodeInvalidRequest)
	s.requireError(s.do(http.MethodPost, "/v1/graphs?weight=complex", weightedDirected), http.StatusBadRequest, server.CodeInvalidRequest)

	s.requireError(s.do(http.MethodGet, "/v1/graphs/9", ""), http.StatusNotFound, server.CodeNotFound)
	s.requireError(s.do(http.MethodGet, "/v1/graphs/abc", ""), http.StatusBadRequest, server.CodeInvalidRequest)
	s.requireError(s.do(http.MethodGet, "/v1/graphs/9/run/bfs?start=0", ""), http.StatusNotFound, server.CodeNotFound)
	s.requireError(s.do(http.MethodGet, "/v1/graphs/0/run/prim?start=0", ""), http.StatusBadRequest, server.CodeInvalidRequest)
	s.requireError(s.do(http.MethodGet, "/v1/graphs/0/run/bfs", ""), http.StatusBadRequest, server.CodeInvalidRequest)
	s.requireError(s.do(http.MethodGet, "/v1/graphs/0/run/bfs?start=x", ""), http.StatusBadRequest, server.CodeInvalidRequest)
	s.requireError(s.do(http.MethodGet, "/v1/graphs/0/path?start=0", ""), http.StatusBadRequest, server.CodeInvalidRequest)
	s.requireError(s.do(http.MethodGet, "/v1/graphs/0?format=xml", ""), http.StatusBadRequest, server.CodeInvalidRequest)
}

func (s *ServerSuite) TestNonFiniteWeightRejected() {
	body := "type: list\ndirected: true\nnodes: []\nedges:\n  - {from: 0, to: 1, weight: .inf}\n"
	s.requireError(s.do(http.MethodPost, "/v1/graphs", body, "Content-Type", "application/yaml"),
		http.StatusBadRequest, server.CodeMalformedRecord)
	s.Require().Zero(s.reg.Len())
}

func (s *ServerSuite) TestUnknownSourceIsNotAnError() {
	s.create("/v1/graphs", weightedDirected)
	w := s.do(http.MethodGet, "/v1/graphs/0/run/bfs?start=42", "")
	s.Require().Equal(http.StatusOK, w.Code)
	s.Require().JSONEq(`{"type":"traversal","source":42,"order":[],"parent":[],"depth":[]}`, w.Body.String())
}

func (s *ServerSuite) TestSnapshot() {
	require := s.Require()
	s.create("/v1/graphs", weightedDirected)

	w := s.do(http.MethodPost, "/v1/snapshot", "")
	require.Equal(http.StatusOK, w.Code, w.Body.String())
	var out server.SnapshotResponse
	require.NoError(json.Unmarshal(w.Body.Bytes(), &out))
	require.Equal(server.SnapshotResponse{Path: s.snapPath, Graphs: 1}, out)

	restored := registry.New()
	n, err := snapshot.Load(s.snapPath, restored)
	require.NoError(err)
	require.Equal(1, n)

	disabled := server.New(registry.New(), log.New(io.Discard), server.Options{Mode: gin.TestMode})
	rec := httptest.NewRecorder()
	disabled.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/snapshot", nil))
	s.requireError(rec, http.StatusConflict, server.CodeSnapshotDisabled)
}

func (s *ServerSuite) TestRequestID() {
	w := s.do(http.MethodGet, "/healthz", "", server.RequestIDHeader, "abc-123")
	s.Require().Equal("abc-123", w.Header().Get(server.RequestIDHeader))

	w = s.do(http.MethodGet, "/healthz", "")
	s.Require().Len(w.Header().Get(server.RequestIDHeader), 36, "fresh UUID")
}

func (s *ServerSuite) TestMetrics() {
	require := s.Require()
	s.create("/v1/graphs", weightedDirected)
	s.do(http.MethodGet, "/v1/graphs/0/run/bfs?start=0", "")

	w := s.do(http.MethodGet, "/metrics", "")
	require.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(body, `graphd_http_requests_total{method="POST",route="/v1/graphs",status="201"} 1`)
	require.Contains(body, `graphd_engine_runs_total{algorithm="bfs",kind="list/float64"} 1`)
	require.Contains(body, `graphd_registry_graphs 1`)
	require.Contains(body, "go_goroutines")
}

func (s *ServerSuite) TestSpans() {
	s.create("/v1/graphs", weightedDirected)
	s.do(http.MethodGet, "/v1/graphs/0/run/dijkstra?start=0", "")
	s.do(http.MethodGet, "/v1/graphs/7", "")

	names := map[string]bool{}
	serverSpan := false
	for _, sp := range s.spans.Ended() {
		names[sp.Name()] = true
		if strings.Contains(sp.Name(), "/v1/graphs/:handle/run/:algorithm") {
			serverSpan = true
		}
	}
	s.Require().True(names["registry.register"])
	s.Require().True(names["engine.run"])
	s.Require().True(serverSpan, "server spans are named after the route: %v", names)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func TestMetricsDisabled(t *testing.T) {
	srv := server.New(registry.New(), log.New(io.Discard), server.Options{Mode: gin.TestMode})
	require.Nil(t, srv.Metrics())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewTracerProviderWithoutEndpoint(t *testing.T) {
	tp, err := server.NewTracerProvider(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, tp.Shutdown(context.Background()))
}
