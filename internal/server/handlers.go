// SPDX-License-Identifier: MIT

package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/engine"
	"github.com/katalvlaran/graphd/internal/generate"
	"github.com/katalvlaran/graphd/internal/snapshot"
	"github.com/katalvlaran/graphd/registry"
)

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
	Graphs int    `json:"graphs"`
}

// CreateResponse is returned when a graph is registered.
type CreateResponse struct {
	Handle registry.Handle `json:"handle"`
	Kind   registry.Kind   `json:"kind"`

	// Seed is the generator seed, set for generated graphs only.
	Seed *int64 `json:"seed,omitempty"`
}

// GenerateRequest is the body of POST /v1/graphs/generate.
//
// Weights default to [generate.DefaultMinWeight, generate.DefaultMaxWeight];
// representation defaults to list, weight_type to float64, and a missing
// seed is drawn from the clock and echoed back.
type GenerateRequest struct {
	Nodes          int      `json:"nodes" binding:"min=0,max=5000"`
	Probability    float64  `json:"probability" binding:"min=0,max=1"`
	MinWeight      *float64 `json:"min_weight"`
	MaxWeight      *float64 `json:"max_weight"`
	Directed       bool     `json:"directed"`
	Representation string   `json:"representation" binding:"omitempty,oneof=list matrix"`
	WeightType     string   `json:"weight_type" binding:"omitempty,oneof=int64 float64"`
	Seed           *int64   `json:"seed"`
}

// SnapshotResponse is returned by POST /v1/snapshot.
type SnapshotResponse struct {
	Path   string `json:"path"`
	Graphs int    `json:"graphs"`
}

// handleHealth handles GET /healthz.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Graphs: s.reg.Len()})
}

// handleCreate handles POST /v1/graphs.
//
// The body is a graph record, YAML when Content-Type says so and JSON
// otherwise; ?weight picks the weight type (default float64).
//
// Response:
//
//	201 Created: CreateResponse
//	400 Bad Request: malformed record or unsupported weight type
func (s *Server) handleCreate(c *gin.Context) {
	wt, err := core.ParseWeightType(c.DefaultQuery("weight", string(core.WeightFloat64)))
	if err != nil {
		fail(c, err)
		return
	}

	_, span := s.tracer.Start(c.Request.Context(), "registry.register",
		trace.WithAttributes(attribute.String("graphd.weight_type", string(wt))))
	defer span.End()

	var h registry.Handle
	switch f := bodyFormat(c); wt {
	case core.WeightInt64:
		h, err = decodeAndRegister[int64](s.reg, c.Request.Body, f)
	case core.WeightFloat64:
		h, err = decodeAndRegister[float64](s.reg, c.Request.Body, f)
	default:
		err = fmt.Errorf("%w: weight type %s", registry.ErrUnsupportedKind, wt)
	}
	if err != nil {
		span.RecordError(err)
		fail(c, err)
		return
	}
	span.SetAttributes(attribute.Int64("graphd.handle", int64(h)))
	s.created(c, h, nil)
}

// handleGenerate handles POST /v1/graphs/generate.
//
// Response:
//
//	201 Created: CreateResponse with the seed used
//	400 Bad Request: invalid generator parameters
func (s *Server) handleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	p, err := req.params()
	if err != nil {
		fail(c, err)
		return
	}
	seed := p.Normalize()

	_, span := s.tracer.Start(c.Request.Context(), "registry.generate",
		trace.WithAttributes(
			attribute.Int("graphd.nodes", p.Nodes),
			attribute.Float64("graphd.probability", p.Probability),
			attribute.Int64("graphd.seed", seed)))
	defer span.End()

	h, err := generate.Register(s.reg, p)
	if err != nil {
		span.RecordError(err)
		fail(c, err)
		return
	}
	s.created(c, h, &seed)
}

// handleList handles GET /v1/graphs.
func (s *Server) handleList(c *gin.Context) {
	out := make([]registry.Summary, 0, s.reg.Len())
	for _, h := range s.reg.Handles() {
		e, err := s.reg.Lookup(h)
		if err != nil {
			continue
		}
		out = append(out, e.Summary())
	}
	respond(c, http.StatusOK, out)
}

// handleGet handles GET /v1/graphs/:handle.
//
// Response:
//
//	200 OK: graph record
//	400 Bad Request: unparsable handle
//	404 Not Found: unknown handle
func (s *Server) handleGet(c *gin.Context) {
	e, err := s.lookup(c)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, e.Record())
}

// handleRun handles GET /v1/graphs/:handle/run/:algorithm?start=N.
//
// Response:
//
//	200 OK: traversal record (bfs, dfs) or dijkstra record
//	400 Bad Request: unknown algorithm, missing or bad start
//	404 Not Found: unknown handle
func (s *Server) handleRun(c *gin.Context) {
	e, err := s.lookup(c)
	if err != nil {
		fail(c, err)
		return
	}
	alg, err := engine.ParseAlgorithm(c.Param("algorithm"))
	if err != nil {
		fail(c, err)
		return
	}
	start, err := intQuery(c, "start")
	if err != nil {
		fail(c, err)
		return
	}

	_, span := s.tracer.Start(c.Request.Context(), "engine.run",
		trace.WithAttributes(
			attribute.String("graphd.algorithm", string(alg)),
			attribute.Int64("graphd.handle", int64(e.Handle())),
			attribute.String("graphd.kind", e.Kind().String()),
			attribute.Int("graphd.start", start)))
	out, err := e.Run(alg, start)
	span.End()
	if err != nil {
		fail(c, err)
		return
	}
	if s.metrics != nil {
		s.metrics.AlgorithmRuns.WithLabelValues(string(alg), e.Kind().String()).Inc()
	}
	respond(c, http.StatusOK, out)
}

// handlePath handles GET /v1/graphs/:handle/path?start=N&target=M.
//
// Response:
//
//	200 OK: path record; reached=false when target is unreachable
//	400 Bad Request: missing or bad start/target
//	404 Not Found: unknown handle
func (s *Server) handlePath(c *gin.Context) {
	e, err := s.lookup(c)
	if err != nil {
		fail(c, err)
		return
	}
	start, err := intQuery(c, "start")
	if err != nil {
		fail(c, err)
		return
	}
	target, err := intQuery(c, "target")
	if err != nil {
		fail(c, err)
		return
	}

	_, span := s.tracer.Start(c.Request.Context(), "engine.path",
		trace.WithAttributes(
			attribute.Int64("graphd.handle", int64(e.Handle())),
			attribute.Int("graphd.start", start),
			attribute.Int("graphd.target", target)))
	out := e.Path(start, target)
	span.End()
	if s.metrics != nil {
		s.metrics.AlgorithmRuns.WithLabelValues(string(engine.Dijkstra), e.Kind().String()).Inc()
	}
	respond(c, http.StatusOK, out)
}

// handleSnapshot handles POST /v1/snapshot.
//
// Response:
//
//	200 OK: SnapshotResponse
//	409 Conflict: no snapshot path configured
func (s *Server) handleSnapshot(c *gin.Context) {
	if s.opts.SnapshotPath == "" {
		fail(c, ErrSnapshotDisabled)
		return
	}
	_, span := s.tracer.Start(c.Request.Context(), "snapshot.save")
	defer span.End()

	n := s.reg.Len()
	if err := snapshot.Save(s.opts.SnapshotPath, s.reg); err != nil {
		span.RecordError(err)
		fail(c, err)
		return
	}
	loggerFrom(c).Info("snapshot saved", "path", s.opts.SnapshotPath, "graphs", n)
	c.JSON(http.StatusOK, SnapshotResponse{Path: s.opts.SnapshotPath, Graphs: n})
}

// created writes a CreateResponse for h.
func (s *Server) created(c *gin.Context, h registry.Handle, seed *int64) {
	e, err := s.reg.Lookup(h)
	if err != nil {
		fail(c, err)
		return
	}
	if s.metrics != nil {
		s.metrics.GraphsRegistered.Set(float64(s.reg.Len()))
	}
	loggerFrom(c).Info("graph registered", "handle", h, "kind", e.Kind())
	c.JSON(http.StatusCreated, CreateResponse{Handle: h, Kind: e.Kind(), Seed: seed})
}

// lookup resolves the :handle path parameter.
func (s *Server) lookup(c *gin.Context) (registry.Entry, error) {
	h, err := registry.ParseHandle(c.Param("handle"))
	if err != nil {
		return nil, err
	}
	return s.reg.Lookup(h)
}

// params converts the request into generator parameters.
func (r GenerateRequest) params() (generate.Params, error) {
	rep, err := core.ParseRepresentation(r.Representation)
	if err != nil {
		return generate.Params{}, err
	}
	wt, err := core.ParseWeightType(r.WeightType)
	if err != nil {
		return generate.Params{}, err
	}
	p := generate.Params{
		Nodes:          r.Nodes,
		Probability:    r.Probability,
		MinWeight:      generate.DefaultMinWeight,
		MaxWeight:      generate.DefaultMaxWeight,
		Directed:       r.Directed,
		Representation: rep,
		WeightType:     wt,
	}
	if r.MinWeight != nil {
		p.MinWeight = *r.MinWeight
	}
	if r.MaxWeight != nil {
		p.MaxWeight = *r.MaxWeight
	}
	if r.Seed != nil {
		seed := *r.Seed
		p.Seed = &seed
	}
	return p, nil
}

func decodeAndRegister[W core.Weight](r *registry.Registry, body io.Reader, f codec.Format) (registry.Handle, error) {
	var rec codec.GraphRecord[W]
	if err := codec.Decode(body, f, &rec); err != nil {
		return 0, err
	}
	return registry.RegisterRecord(r, rec)
}

// bodyFormat reads the request Content-Type; anything but YAML is JSON.
func bodyFormat(c *gin.Context) codec.Format {
	switch c.ContentType() {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return codec.YAML
	}
	return codec.JSON
}

// respond writes v as JSON, or as YAML when ?format=yaml.
func respond(c *gin.Context, status int, v any) {
	f, err := codec.ParseFormat(c.Query("format"))
	if err != nil {
		fail(c, err)
		return
	}
	if f == codec.YAML {
		data, err := codec.Marshal(codec.YAML, v)
		if err != nil {
			fail(c, err)
			return
		}
		c.Data(status, "application/yaml; charset=utf-8", data)
		return
	}
	c.JSON(status, v)
}

// intQuery reads a required integer query parameter.
func intQuery(c *gin.Context, name string) (int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidRequest, name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidRequest, name, raw)
	}
	return v, nil
}
