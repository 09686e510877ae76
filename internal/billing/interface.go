// Package billing implements the x402 subscription tiers: payment
// initiation and verification, subscriptions, the per-feature quota gate and
// access logging.
package billing

import (
	"context"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/x402"
)

// InitiatePaymentParams describes a payment initiation request.
type InitiatePaymentParams struct {
	Tier       domain.Tier
	Network    string
	ContractID *domain.ContractID
}

// Initiation is returned from InitiatePayment and tells the caller where to
// complete the payment.
type Initiation struct {
	Payment domain.Payment
	// PaymentURL is the facilitator URL the user must be redirected to.
	PaymentURL string
}

// VerifyPaymentParams describes a payment verification request.
type VerifyPaymentParams struct {
	PaymentID       domain.PaymentID
	Network         string
	TransactionHash string
}

// Verdict is the outcome of a payment verification. Verifying the same
// transaction hash again returns the same verdict.
type Verdict struct {
	IsValid     bool
	Status      domain.PaymentStatus
	Tier        domain.Tier
	AccessLevel int
	ConfirmedAt time.Time
}

// CreateSubscriptionParams describes a subscription creation request.
type CreateSubscriptionParams struct {
	Tier      domain.Tier
	Network   string
	AutoRenew bool
}

// PaymentGateway is the slice of the x402 client the billing service uses.
type PaymentGateway interface {
	PaymentURL(network string) (string, error)
	VerifyPayment(ctx context.Context, network, transactionHash string) (*x402.Verification, error)
}

// Options configures the billing service.
type Options struct {
	// ReceiverAddress is the on-chain address payments are made to.
	ReceiverAddress string
}

//go:generate mockgen -package mockbilling -source=interface.go -destination=mock/mockbilling.go *

// Billing manages payments, subscriptions and the feature gate.
type Billing interface {
	// Tiers returns the static tier catalog.
	Tiers() []domain.TierSpec
	// InitiatePayment records a pending payment for a tier purchase and
	// returns the facilitator URL to complete it.
	InitiatePayment(ctx context.Context, userID domain.UserID, params InitiatePaymentParams) (*Initiation, error)
	// VerifyPayment confirms a payment with the x402 facilitator and
	// activates the purchased tier. It is idempotent per transaction hash.
	VerifyPayment(ctx context.Context, params VerifyPaymentParams) (*Verdict, error)
	// CreateSubscription creates a recurring subscription for the user.
	CreateSubscription(ctx context.Context,
		userID domain.UserID,
		params CreateSubscriptionParams) (*domain.Subscription, error)
	// CurrentSubscription returns the user's active subscription, creating
	// the free-tier default when the user has none.
	CurrentSubscription(ctx context.Context, userID domain.UserID) (*domain.Subscription, error)
	// Authorize checks that the user's subscription grants the feature and
	// consumes one call from the monthly quota.
	Authorize(ctx context.Context, userID domain.UserID, feature domain.Feature) (*domain.Subscription, error)
	// LogAccess records one gated feature access.
	LogAccess(ctx context.Context, log domain.AccessLog) error
	// AccessHistory returns a page of the user's access log, newest first.
	AccessHistory(ctx context.Context,
		userID domain.UserID,
		cursor string,
		limit uint) ([]domain.AccessLog, string, error)
	// RenewDue advances due subscriptions: auto-renewing ones (and the free
	// tier) get a fresh quota and billing date, the rest become past due. It
	// returns the number of subscriptions processed.
	RenewDue(ctx context.Context, now time.Time, limit uint) (int, error)
}
