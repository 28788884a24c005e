// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides the storage readiness gate applied to every /api route:
// when the database is not reachable, requests are refused up front with 503
// and the fixed payload the frontend watches for, instead of each handler
// timing out on its own.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ReadyFunc reports whether the backing store is currently usable. It must
// be cheap and bounded; the repo layer's Ping satisfies both.
type ReadyFunc func(c *gin.Context) error

// RequireReady returns a Gin middleware that aborts with 503 when ready
// reports an error. The response body is fixed by the frontend contract.
func RequireReady(ready ReadyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ready(c); err != nil {
			lg := LoggerFrom(c)
			lg.Warn().Err(err).Msg("storage not ready, refusing request")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error":   "Database not connected",
				"message": "Please try again in a few moments",
			})
			return
		}
		c.Next()
	}
}
