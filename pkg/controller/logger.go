package controller

import (
	"context"
	"time"

	"auditor/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CtxKey is a string-based type used for storing values in request contexts.
// It avoids collisions with other packages' context keys.
type CtxKey string

const (
	// RequestIDKey is the context key under which the current request ID is stored.
	RequestIDKey CtxKey = "RequestID"
)

// RequestID returns the request ID stored in the context by AccessLog, or an
// empty string when none is set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// AccessLog returns a middleware that injects a request-scoped logger and
// request ID into the request context, then logs a structured access log
// after the handler finishes.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// set request ID
		requestID := c.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)

		// set logger
		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), requestID))
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()

		c.Next()

		logger.Info(ctx, "Access log",
			zap.Int("status_code", c.Writer.Status()),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.String("url", c.Request.URL.String()),
			zap.String("referer", c.Request.Referer()),
			zap.String("method", c.Request.Method),
		)
	}
}
