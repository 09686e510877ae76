package v1handler

import (
	"net/http"
	"time"

	"auditor/internal/billing"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type tiersResponse struct {
	Tiers []domain.TierSpec `json:"tiers"`
}

// ListTiers returns the static tier catalog. The endpoint is public.
func (h *Handler) ListTiers(c *gin.Context) {
	c.JSON(http.StatusOK, tiersResponse{Tiers: h.deps.Billing.Tiers()})
}

type initiatePaymentRequest struct {
	Tier       string     `json:"tier"`
	Network    string     `json:"network"`
	ContractID *uuid.UUID `json:"contractId"`
}

type initiatePaymentResponse struct {
	domain.Payment
	PaymentURL string `json:"paymentUrl"`
}

// InitiatePayment records a pending tier purchase and returns the x402
// facilitator URL to complete it.
func (h *Handler) InitiatePayment(c *gin.Context) {
	var req initiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	initiation, err := h.deps.Billing.InitiatePayment(c.Request.Context(), UserID(c), billing.InitiatePaymentParams{
		Tier:       domain.Tier(req.Tier),
		Network:    req.Network,
		ContractID: contractID(req.ContractID),
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, initiatePaymentResponse{
		Payment:    initiation.Payment,
		PaymentURL: initiation.PaymentURL,
	})
}

type verifyPaymentRequest struct {
	PaymentID       uuid.UUID `json:"paymentId"`
	Network         string    `json:"network"`
	TransactionHash string    `json:"transactionHash"`
}

type verifyPaymentResponse struct {
	IsValid     bool                 `json:"isValid"`
	Status      domain.PaymentStatus `json:"paymentStatus"`
	Tier        domain.Tier          `json:"tier"`
	AccessLevel int                  `json:"accessLevel"`
	ConfirmedAt *time.Time           `json:"confirmedAt,omitempty"`
}

// VerifyPayment confirms a payment with the facilitator and activates the
// purchased tier. The endpoint is public: the facilitator calls back without
// a bearer token. Verifying the same transaction hash again returns the
// stored verdict.
func (h *Handler) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}
	if req.PaymentID == uuid.Nil {
		writeError(c, serrors.With(serrors.ErrBadRequest, "paymentId is required"))

		return
	}

	verdict, err := h.deps.Billing.VerifyPayment(c.Request.Context(), billing.VerifyPaymentParams{
		PaymentID:       domain.PaymentID(req.PaymentID),
		Network:         req.Network,
		TransactionHash: req.TransactionHash,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	resp := verifyPaymentResponse{
		IsValid:     verdict.IsValid,
		Status:      verdict.Status,
		Tier:        verdict.Tier,
		AccessLevel: verdict.AccessLevel,
	}
	if !verdict.ConfirmedAt.IsZero() {
		resp.ConfirmedAt = &verdict.ConfirmedAt
	}

	c.JSON(http.StatusOK, resp)
}

type createSubscriptionRequest struct {
	Tier      string `json:"tier"`
	Network   string `json:"network"`
	AutoRenew *bool  `json:"autoRenew"`
}

// CreateSubscription creates a recurring subscription for the caller.
func (h *Handler) CreateSubscription(c *gin.Context) {
	var req createSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	// renewal defaults to on, matching tier activation after a payment
	autoRenew := true
	if req.AutoRenew != nil {
		autoRenew = *req.AutoRenew
	}

	subscription, err := h.deps.Billing.CreateSubscription(c.Request.Context(), UserID(c), billing.CreateSubscriptionParams{
		Tier:      domain.Tier(req.Tier),
		Network:   req.Network,
		AutoRenew: autoRenew,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, subscription)
}

// GetSubscription returns the caller's active subscription, creating the
// free-tier default when the caller has none.
func (h *Handler) GetSubscription(c *gin.Context) {
	subscription, err := h.deps.Billing.CurrentSubscription(c.Request.Context(), UserID(c))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, subscription)
}

// AccessHistory returns a page of the caller's gated feature accesses,
// newest first.
func (h *Handler) AccessHistory(c *gin.Context) {
	cursor, limit, err := pageParams(c)
	if err != nil {
		writeError(c, err)

		return
	}

	items, next, err := h.deps.Billing.AccessHistory(c.Request.Context(), UserID(c), cursor, limit)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, listResponse[domain.AccessLog]{Items: items, NextCursor: next})
}
