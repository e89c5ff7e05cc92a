package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/google/uuid"
)

// RequestIDKey is the header carrying the request ID
const RequestIDKey = "X-Request-ID"

// Logger logs one line per request with latency and status
func Logger() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		path := string(c.Path())

		// Skip logging for health check paths
		skipLogging := path == "/health/live" || path == "/health/ready"

		// Generate or reuse the request ID
		requestID := string(c.Request.Header.Peek(RequestIDKey))
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Response.Header.Set(RequestIDKey, requestID)

		// Log request information (skipping health checks)
		var logger *slog.Logger
		if !skipLogging {
			logger = slog.Default().With(
				"request_id", requestID,
				"method", string(c.Method()),
				"path", path,
				"client_ip", c.ClientIP(),
			)
			logger.Info("request started")
		}

		// Process request
		c.Next(ctx)

		// Log response information (skipping health checks)
		if !skipLogging {
			latency := time.Since(start)
			statusCode := c.Response.StatusCode()

			logger = logger.With(
				"status", statusCode,
				"latency", latency.String(),
				"latency_ms", latency.Milliseconds(),
			)

			if statusCode >= 500 {
				logger.Error("request completed with server error")
			} else if statusCode >= 400 {
				logger.Warn("request completed with client error")
			} else {
				logger.Info("request completed successfully")
			}
		}
	}
}

// GetRequestID returns the request ID assigned to this request
func GetRequestID(c *app.RequestContext) string {
	return string(c.Response.Header.Peek(RequestIDKey))
}
