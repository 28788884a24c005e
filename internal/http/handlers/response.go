// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints. The API
// intentionally has no single uniform envelope: each route documents its own
// shape (the admin frontend predates this server and expects the historical
// payloads). What is uniform is the failure path: fail() logs server-side
// errors with request context and writes a structured JSON error.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ndevra/go-chatbot-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope used by router-level fallbacks and
// structural failures (bad routes, method not allowed, panics).
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go constants)
	Code string `json:"code" example:"not_found"`
	// Human-readable message (safe to show to users)
	Message string `json:"message" example:"resource not found"`
}

// fail aborts the request with a structured error and logs server-side errors.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(). External packages (e.g. router
// setup) call it to return consistent fallback envelopes.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failJSON aborts with an endpoint-specific error body, logging 5xx with the
// request-scoped logger first. Used by routes whose error shape is fixed by
// the frontend contract rather than the generic envelope.
func failJSON(c *gin.Context, status int, body gin.H) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().Int("status", status).Interface("body", body).Msg("api error")
	}
	c.AbortWithStatusJSON(status, body)
}

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}
