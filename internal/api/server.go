// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the contract auditing service.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"auditor/internal/api/handler/v1handler"
	"auditor/internal/config"
	"auditor/pkg/controller"
	"auditor/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// SecHandlerOptions configures the security handler (authn/authz) for v1 endpoints.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// DocsPath is the HTTP path at which the Swagger playground is served.
	DocsPath string

	// Environment selects the gin mode; anything but the development
	// environment runs gin in release mode.
	Environment string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		DocsPath:          cfg.HTTP.DocsPath,

		Environment: cfg.Environment,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus)
// - Embedded OpenAPI v1 spec and Swagger UI (DocsPath)
// - v1 API routes behind bearer authentication and the feature gate
// - pprof endpoints for profiling
// It also applies CORS, access logging, request metrics and a global request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	if opts.Environment != logger.DevelopmentEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.ContextWithFallback = true

	// otel metrics, exported through the default prometheus registry
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	requestMetrics, err := controller.Metrics(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create request metrics: %w", err)
	}

	engine.Use(gin.Recovery(), controller.AccessLog(), controller.CORS(), requestMetrics)

	// prometheus metrics
	engine.GET(opts.MetricsPath, gin.WrapH(promhttp.Handler()))

	// v1 specs file
	engine.GET("/specs/v1.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/yaml", v1Spec)
	})
	// v1 api swagger playground
	engine.GET(opts.DocsPath+"/*any", gin.WrapH(v5emb.New(
		"Smart Contract Auditor",
		"/specs/v1.yaml",
		opts.DocsPath+"/",
	)))

	// pprof
	engine.GET("/debug/pprof/*any", gin.WrapH(controller.PprofMux()))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	v1handler.New(deps.Deps).Register(engine, secHandler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(engine, opts.RequestTimeout, `{"error":"request timed out"}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
