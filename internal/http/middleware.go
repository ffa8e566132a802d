// Package http provides the HTTP server, routing and middleware.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"blogapp/internal/httputil"
)

// CustomLoggerMiddleware logs HTTP requests with the request id assigned by
// the requestid middleware.
func CustomLoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("http request",
			slog.String("request_id", requestid.Get(c)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", c.ClientIP()),
		)
	}
}

// HealthHandler reports process liveness.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// ReadinessHandler reports readiness to serve traffic. It flips to 503 once
// shutdown has begun so load balancers can drain the instance.
func ReadinessHandler(isShuttingDown func() bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isShuttingDown() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// notFoundHandler returns a JSON body for unknown routes.
func notFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, httputil.ErrorResponse{
		Error:   "not_found",
		Message: "route not found",
	})
}
