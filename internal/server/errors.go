// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/graphd/builder"
	"github.com/katalvlaran/graphd/codec"
	"github.com/katalvlaran/graphd/core"
	"github.com/katalvlaran/graphd/engine"
	"github.com/katalvlaran/graphd/internal/generate"
	"github.com/katalvlaran/graphd/registry"
)

var (
	// ErrInvalidRequest indicates a missing or unparsable query parameter or body.
	ErrInvalidRequest = errors.New("server: invalid request")

	// ErrSnapshotDisabled indicates a snapshot request without a configured path.
	ErrSnapshotDisabled = errors.New("server: snapshot path not configured")
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeNotFound         = "NOT_FOUND"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeMalformedRecord  = "MALFORMED_RECORD"
	CodeSnapshotDisabled = "SNAPSHOT_DISABLED"
	CodeInternal         = "INTERNAL"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`

	// Code is the error code.
	Code string `json:"code,omitempty"`
}

// classify maps an error onto an HTTP status and error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, codec.ErrMalformed):
		return http.StatusBadRequest, CodeMalformedRecord
	case errors.Is(err, ErrSnapshotDisabled):
		return http.StatusConflict, CodeSnapshotDisabled
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, registry.ErrInvalidHandle),
		errors.Is(err, registry.ErrUnsupportedKind),
		errors.Is(err, engine.ErrUnknownAlgorithm),
		errors.Is(err, core.ErrUnknownWeightType),
		errors.Is(err, core.ErrUnknownRepresentation),
		errors.Is(err, codec.ErrUnknownFormat),
		errors.Is(err, generate.ErrUnsupportedWeightType),
		errors.Is(err, builder.ErrTooFewVertices),
		errors.Is(err, builder.ErrInvalidProbability),
		errors.Is(err, builder.ErrInvalidWeightRange):
		return http.StatusBadRequest, CodeInvalidRequest
	}
	return http.StatusInternalServerError, CodeInternal
}

// fail logs err, marks the request span as failed and writes the error body.
func fail(c *gin.Context, err error) {
	status, code := classify(err)
	logger := loggerFrom(c)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "code", code, "err", err)
	} else {
		logger.Warn("request rejected", "code", code, "err", err)
	}

	span := trace.SpanFromContext(c.Request.Context())
	span.RecordError(err)
	span.SetStatus(codes.Error, code)

	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Code: code})
}
