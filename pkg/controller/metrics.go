package controller

import (
	"strconv"
	"time"

	"auditor/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics returns a middleware that records request counts and latencies
// through the provided meter provider.
func Metrics(provider metric.MeterProvider) (gin.HandlerFunc, error) {
	meter := provider.Meter("api")

	requests, err := meter.Int64Counter("http_server_requests_total",
		metric.WithDescription("Number of handled HTTP requests."))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	latency, err := meter.Float64Histogram("http_server_request_duration_seconds",
		metric.WithDescription("HTTP request latency in seconds."),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// unmatched routes are grouped to keep cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		routeAttrs := metric.WithAttributes(
			attribute.String("method", c.Request.Method),
			attribute.String("path", path),
		)
		requests.Add(c.Request.Context(), 1,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("path", path),
				attribute.String("status", strconv.Itoa(c.Writer.Status())),
			))
		latency.Record(c.Request.Context(), time.Since(start).Seconds(), routeAttrs)
	}, nil
}
