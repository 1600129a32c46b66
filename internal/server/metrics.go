// SPDX-License-Identifier: MIT

package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace for all metrics
const metricsNamespace = "graphd"

// Metrics holds the Prometheus collectors of one server.
//
// Fields:
//
//   - RequestsTotal: requests by method, route and status
//   - RequestDuration: request latency by method and route
//   - AlgorithmRuns: algorithm executions by algorithm and graph kind
//   - GraphsRegistered: graphs currently held by the registry
type Metrics struct {
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	AlgorithmRuns    *prometheus.CounterVec
	GraphsRegistered prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewMetrics registers the server collectors, plus the Go runtime and
// process collectors, on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		AlgorithmRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "engine",
			Name:      "runs_total",
			Help:      "Algorithm runs by algorithm and graph kind.",
		}, []string{"algorithm", "kind"}),
		GraphsRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "registry",
			Name:      "graphs",
			Help:      "Graphs held by the registry.",
		}),
		gatherer: reg,
	}
}

// Handler serves the exposition format for the collectors of m.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// middleware records the count and latency of every request.
func (m *Metrics) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
