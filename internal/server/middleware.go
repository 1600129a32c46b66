// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// gin context keys
const (
	requestIDKey = "graphd.request_id"
	loggerKey    = "graphd.logger"
)

// requestID reuses an incoming X-Request-ID or mints a UUID, echoes it in
// the response and attaches a request-scoped logger.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)
		c.Set(requestIDKey, id)
		c.Set(loggerKey, s.log.With("request_id", id))
		trace.SpanFromContext(c.Request.Context()).SetAttributes(attribute.String("graphd.request_id", id))
		c.Next()
	}
}

// accessLog writes one line per request. Probe and scrape traffic is
// logged at debug level.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger := loggerFrom(c)
		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		}
		switch c.FullPath() {
		case "/healthz", "/metrics":
			logger.Debug("request", kv...)
		default:
			logger.Info("request", kv...)
		}
	}
}

// loggerFrom returns the request logger, or the default logger outside
// the middleware chain.
func loggerFrom(c *gin.Context) *log.Logger {
	if v, ok := c.Get(loggerKey); ok {
		if l, ok := v.(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
