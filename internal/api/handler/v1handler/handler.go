// Package v1handler implements the v1 REST endpoints on top of the domain
// services. Handlers only translate between HTTP and the service layer;
// business rules live in the services.
package v1handler

import (
	"errors"
	"net/http"
	"strconv"

	"auditor/internal/analyzer"
	"auditor/internal/billing"
	"auditor/internal/contracts"
	"auditor/internal/intent"
	"auditor/internal/simulator"
	"auditor/pkg/logger"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when the caller does not pass one.
const DefaultLimit = 20

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// Deps bundles the services the handler dispatches to.
type Deps struct {
	Contracts contracts.Contracts
	Analyzer  analyzer.Analyzer
	Simulator simulator.Simulator
	Intent    intent.Verifier
	Billing   billing.Billing
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register wires all v1 routes into the router. The payment verification
// endpoint and the tier catalog are public, everything else requires a
// bearer token; AI endpoints additionally pass through the feature gate.
func (h *Handler) Register(router gin.IRouter, sec *SecHandler) {
	api := router.Group("/api")

	api.GET("/x402/tiers", h.ListTiers)
	api.POST("/x402/payment/verify", h.VerifyPayment)

	authed := api.Group("", sec.Middleware())

	authed.POST("/contracts", h.RegisterContract)
	authed.GET("/contracts", h.ListContracts)
	authed.GET("/contracts/:id", h.GetContract)
	authed.DELETE("/contracts/:id", h.DeleteContract)
	authed.GET("/monitor/:address", h.MonitorContract)

	authed.POST("/analyze-contract", h.gate(gateAnalyze), h.AnalyzeContract)
	authed.POST("/optimize-contract", h.gate(gateOptimize), h.OptimizeContract)
	authed.POST("/deploy", h.gate(gateDeploy), h.ValidateDeployment)

	authed.POST("/simulate/transaction", h.gate(gateTransaction), h.SimulateTransaction)
	authed.POST("/simulate/what-if", h.gate(gateWhatIf), h.WhatIfScenario)
	authed.POST("/simulate/failure-paths", h.gate(gateFailurePaths), h.ExploreFailurePaths)
	authed.GET("/simulate/results", h.ListSimulations)
	authed.GET("/simulate/results/:id", h.GetSimulation)

	authed.POST("/verify/intent", h.gate(gateIntent), h.VerifyIntent)
	authed.GET("/verify/intent/:id", h.GetIntentVerification)

	authed.POST("/x402/payment/initiate", h.InitiatePayment)
	authed.POST("/x402/subscription", h.CreateSubscription)
	authed.GET("/x402/subscription", h.GetSubscription)
	authed.GET("/x402/access/history", h.AccessHistory)
}

// Response is the error body returned by every endpoint on failure.
type Response struct {
	// Code is the stable semantic error code, e.g. "NOT_FOUND".
	Code string `json:"code"`
	// Message is a human readable description of the failure.
	Message string `json:"message"`
}

//nolint: cyclop
func statusOf(k serrors.Kind) int {
	switch k {
	case serrors.ErrBadRequest:
		return http.StatusBadRequest
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case serrors.ErrPaymentRequired:
		return http.StatusPaymentRequired
	case serrors.ErrForbidden:
		return http.StatusForbidden
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrConflict:
		return http.StatusConflict
	case serrors.ErrQuotaExceeded, serrors.ErrRateLimited:
		return http.StatusTooManyRequests
	case serrors.ErrTimeout:
		return http.StatusGatewayTimeout
	case serrors.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func defaultMessage(k serrors.Kind) string {
	switch k {
	case serrors.ErrNotFound:
		return "resource not found"
	case serrors.ErrUnauthorized:
		return "unauthorized"
	case serrors.ErrForbidden:
		return "forbidden"
	case serrors.ErrBadRequest:
		return "invalid request"
	case serrors.ErrConflict:
		return "conflict"
	case serrors.ErrPaymentRequired:
		return "payment required"
	case serrors.ErrQuotaExceeded:
		return "quota exceeded"
	case serrors.ErrRateLimited:
		return "too many requests"
	case serrors.ErrTimeout:
		return "request timed out"
	case serrors.ErrUnavailable:
		return "service unavailable"
	default:
		return "internal error"
	}
}

// writeError maps a service error onto an HTTP status and a Response body.
// Plain errors never leak their text to the client.
func writeError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var k serrors.Kind
	if !errors.As(err, &k) {
		logger.Error(ctx, "request failed", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError,
			Response{Code: serrors.ErrInternal.Error(), Message: defaultMessage(serrors.ErrInternal)})

		return
	}

	message := defaultMessage(k)
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		message = serr.Message()
	}

	status := statusOf(k)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	}

	c.AbortWithStatusJSON(status, Response{Code: k.Error(), Message: message})
}

// pageParams reads the cursor/limit query parameters of a list endpoint.
func pageParams(c *gin.Context) (string, uint, error) {
	cursor := c.Query("cursor")

	limit := uint(DefaultLimit)
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			return "", 0, serrors.With(serrors.ErrBadRequest, "limit must be a positive integer")
		}
		limit = uint(parsed)
		if limit > MaxLimit {
			limit = MaxLimit
		}
	}

	return cursor, limit, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, serrors.With(serrors.ErrBadRequest, "%s must be a valid UUID", name)
	}

	return id, nil
}

type listResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
}
