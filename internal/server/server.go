// SPDX-License-Identifier: MIT

// Package server exposes a graph registry over HTTP with gin.
//
// Routes:
//
//	GET  /healthz
//	GET  /metrics                              (when metrics are enabled)
//	POST /v1/graphs?weight=int64|float64       body: graph record (JSON or YAML)
//	POST /v1/graphs/generate                   body: GenerateRequest
//	GET  /v1/graphs
//	GET  /v1/graphs/:handle
//	GET  /v1/graphs/:handle/run/:algorithm?start=N
//	GET  /v1/graphs/:handle/path?start=N&target=M
//	POST /v1/snapshot
//
// Every GET accepts ?format=yaml to receive YAML instead of JSON. Errors
// are returned as ErrorResponse.
package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphd/registry"
)

// Options configures a Server.
type Options struct {
	// Mode is the gin mode (debug, release or test). Empty keeps gin's current mode.
	Mode string

	// Metrics enables the Prometheus collectors and /metrics.
	Metrics bool

	// TracerProvider creates the request spans. Nil uses the global provider.
	TracerProvider trace.TracerProvider

	// SnapshotPath is written by POST /v1/snapshot. Empty disables the route.
	SnapshotPath string
}

// Server serves one registry.
type Server struct {
	reg     *registry.Registry
	log     *log.Logger
	opts    Options
	metrics *Metrics // nil when disabled
	tracer  trace.Tracer
	router  *gin.Engine
}

// New builds a Server around reg. logger receives access and error logs.
func New(reg *registry.Registry, logger *log.Logger, opts Options) *Server {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	if logger == nil {
		logger = log.Default()
	}
	tp := opts.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	s := &Server{
		reg:    reg,
		log:    logger,
		opts:   opts,
		tracer: tp.Tracer(tracerName),
	}
	if opts.Metrics {
		s.metrics = NewMetrics(prometheus.NewRegistry())
		s.metrics.GraphsRegistered.Set(float64(reg.Len()))
	}
	s.router = s.routes(tp)
	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the collectors of s, or nil when metrics are disabled.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) routes(tp trace.TracerProvider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(ServiceName, otelgin.WithTracerProvider(tp)))
	r.Use(s.requestID(), accessLog())
	if s.metrics != nil {
		r.Use(s.metrics.middleware())
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/v1")
	{
		v1.POST("/graphs", s.handleCreate)
		v1.POST("/graphs/generate", s.handleGenerate)
		v1.GET("/graphs", s.handleList)
		v1.GET("/graphs/:handle", s.handleGet)
		v1.GET("/graphs/:handle/run/:algorithm", s.handleRun)
		v1.GET("/graphs/:handle/path", s.handlePath)
		v1.POST("/snapshot", s.handleSnapshot)
	}
	return r
}
