package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/logger"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// billingPeriod is the length of one subscription cycle.
const billingPeriod = 30 * 24 * time.Hour

type billing struct {
	options Options
	storage storage.Storage
	gateway PaymentGateway
}

// Tiers returns the static tier catalog.
func (b billing) Tiers() []domain.TierSpec {
	return domain.TierCatalog()
}

// InitiatePayment records a pending payment and returns the facilitator URL
// the user has to complete it at.
func (b billing) InitiatePayment(ctx context.Context,
	userID domain.UserID,
	params InitiatePaymentParams) (*Initiation, error) {
	spec, ok := domain.TierByName(params.Tier)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "tier %q not supported", params.Tier)
	}
	if params.Tier == domain.TierFree {
		return nil, serrors.With(serrors.ErrBadRequest, "the free tier does not require a payment")
	}
	paymentURL, err := b.gateway.PaymentURL(params.Network)
	if err != nil {
		return nil, err
	}

	payment, err := b.storage.StorePayment(ctx, domain.Payment{
		UserID:           userID,
		ContractID:       params.ContractID,
		Network:          params.Network,
		AmountLamports:   spec.MonthlyPriceLamports,
		AmountUSD:        spec.MonthlyPriceUSD,
		ReceiverAddress:  b.options.ReceiverAddress,
		Status:           domain.PaymentStatusPending,
		Tier:             spec.Tier,
		AccessLevel:      spec.Tier.AccessLevel(),
		FeaturesUnlocked: spec.Features,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store payment: %w", err)
	}

	return &Initiation{Payment: *payment, PaymentURL: paymentURL}, nil
}

// VerifyPayment confirms a payment with the facilitator and activates the
// purchased tier. A transaction hash that already settled a payment returns
// the stored verdict unchanged.
func (b billing) VerifyPayment(ctx context.Context, params VerifyPaymentParams) (*Verdict, error) {
	if params.TransactionHash == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "transaction hash is required")
	}

	existing, err := b.storage.PaymentByTransactionHash(ctx, params.TransactionHash)
	if err != nil {
		return nil, fmt.Errorf("could not get payment: %w", err)
	}
	if existing != nil {
		return verdict(existing), nil
	}

	verification, err := b.gateway.VerifyPayment(ctx, params.Network, params.TransactionHash)
	if err != nil && !errors.Is(err, serrors.ErrBadRequest) {
		return nil, err
	}
	if err != nil || !verification.Valid {
		payment, ferr := b.storage.UpdatePaymentByID(ctx, params.PaymentID, storage.PaymentUpdates{
			Status:          domain.PaymentStatusFailed,
			TransactionHash: &params.TransactionHash,
		})
		if ferr != nil {
			return nil, fmt.Errorf("could not update payment: %w", ferr)
		}
		if payment == nil {
			return nil, serrors.With(serrors.ErrNotFound, "payment not found")
		}

		return verdict(payment), nil
	}

	confirmedAt := time.Now().UTC()
	if verification.ConfirmedAt != nil {
		confirmedAt = *verification.ConfirmedAt
	}
	expiresAt := confirmedAt.Add(billingPeriod)

	var payment *domain.Payment
	if err := b.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		payment, err = tx.UpdatePaymentByID(ctx, params.PaymentID, storage.PaymentUpdates{
			Status:          domain.PaymentStatusConfirmed,
			TransactionHash: &params.TransactionHash,
			PayerAddress:    &verification.PayerAddress,
			ConfirmedAt:     &confirmedAt,
			ExpiresAt:       &expiresAt,
		})
		if err != nil {
			return fmt.Errorf("could not update payment: %w", err)
		}
		if payment == nil {
			return serrors.With(serrors.ErrNotFound, "payment not found")
		}

		return b.activateTier(ctx, tx, payment)
	}); err != nil {
		return nil, err
	}

	return verdict(payment), nil
}

// activateTier replaces the user's active subscription with one for the tier
// the payment purchased.
func (b billing) activateTier(ctx context.Context, tx storage.AllStorage, payment *domain.Payment) error {
	spec, ok := domain.TierByName(payment.Tier)
	if !ok {
		return serrors.With(serrors.ErrInternal, "payment references unknown tier %q", payment.Tier)
	}

	current, err := tx.ActiveSubscriptionByUserID(ctx, payment.UserID)
	if err != nil {
		return fmt.Errorf("could not get subscription: %w", err)
	}
	if current != nil {
		if _, err := tx.UpdateSubscriptionByID(ctx, current.ID, storage.SubscriptionUpdates{
			Status: domain.SubscriptionStatusCancelled,
		}); err != nil {
			return fmt.Errorf("could not cancel subscription: %w", err)
		}
	}

	if _, err := tx.StoreSubscription(ctx, domain.Subscription{
		UserID:               payment.UserID,
		Tier:                 spec.Tier,
		RecurringPaymentHash: payment.TransactionHash,
		Network:              payment.Network,
		MonthlyPriceLamports: spec.MonthlyPriceLamports,
		MonthlyPriceUSD:      spec.MonthlyPriceUSD,
		Status:               domain.SubscriptionStatusActive,
		NextBillingDate:      payment.ConfirmedAt.Add(billingPeriod),
		AutoRenew:            true,
		Features:             spec.Features,
		APICallsLimit:        spec.APICallsLimit,
	}); err != nil {
		return fmt.Errorf("could not store subscription: %w", err)
	}

	return nil
}

func verdict(payment *domain.Payment) *Verdict {
	return &Verdict{
		IsValid:     payment.Status == domain.PaymentStatusConfirmed,
		Status:      payment.Status,
		Tier:        payment.Tier,
		AccessLevel: payment.AccessLevel,
		ConfirmedAt: payment.ConfirmedAt,
	}
}

// CreateSubscription creates a recurring subscription without an upfront
// payment, billed through the renewal sweep.
func (b billing) CreateSubscription(ctx context.Context,
	userID domain.UserID,
	params CreateSubscriptionParams) (*domain.Subscription, error) {
	spec, ok := domain.TierByName(params.Tier)
	if !ok {
		return nil, serrors.With(serrors.ErrBadRequest, "tier %q not supported", params.Tier)
	}

	subscription, err := b.storage.StoreSubscription(ctx, domain.Subscription{
		UserID:               userID,
		Tier:                 spec.Tier,
		Network:              params.Network,
		MonthlyPriceLamports: spec.MonthlyPriceLamports,
		MonthlyPriceUSD:      spec.MonthlyPriceUSD,
		Status:               domain.SubscriptionStatusActive,
		NextBillingDate:      time.Now().UTC().Add(billingPeriod),
		AutoRenew:            params.AutoRenew,
		Features:             spec.Features,
		APICallsLimit:        spec.APICallsLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store subscription: %w", err)
	}

	return subscription, nil
}

// CurrentSubscription returns the user's active subscription, creating the
// free-tier default when the user has none yet.
func (b billing) CurrentSubscription(ctx context.Context, userID domain.UserID) (*domain.Subscription, error) {
	subscription, err := b.storage.ActiveSubscriptionByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get subscription: %w", err)
	}
	if subscription != nil {
		return subscription, nil
	}

	spec, _ := domain.TierByName(domain.TierFree)
	subscription, err = b.storage.StoreSubscription(ctx, domain.Subscription{
		UserID:          userID,
		Tier:            spec.Tier,
		Network:         "solana",
		Status:          domain.SubscriptionStatusActive,
		NextBillingDate: time.Now().UTC().Add(billingPeriod),
		AutoRenew:       true,
		Features:        spec.Features,
		APICallsLimit:   spec.APICallsLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store subscription: %w", err)
	}

	return subscription, nil
}

// Authorize checks that the user's subscription grants the feature and
// consumes one call from the monthly quota.
func (b billing) Authorize(ctx context.Context,
	userID domain.UserID,
	feature domain.Feature) (*domain.Subscription, error) {
	subscription, err := b.CurrentSubscription(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !domain.Grants(subscription.Features, feature) {
		return nil, serrors.With(serrors.ErrPaymentRequired,
			"the %s tier does not include %s", subscription.Tier, feature)
	}

	allowed, err := b.storage.IncrementSubscriptionUsage(ctx, subscription.ID)
	if err != nil {
		return nil, fmt.Errorf("could not increment usage: %w", err)
	}
	if !allowed {
		return nil, serrors.With(serrors.ErrQuotaExceeded,
			"monthly limit of %d API calls reached", subscription.APICallsLimit)
	}

	return subscription, nil
}

// LogAccess records one gated feature access. Failures are logged but not
// surfaced; access logging never fails the gated call itself.
func (b billing) LogAccess(ctx context.Context, log domain.AccessLog) error {
	if _, err := b.storage.StoreAccessLog(ctx, log); err != nil {
		logger.Get(ctx).Error("could not store access log",
			zap.String("endpoint", log.Endpoint), zap.Error(err))

		return fmt.Errorf("could not store access log: %w", err)
	}

	return nil
}

// AccessHistory returns a page of the user's access log, newest first, using
// RFC3339 cursor pagination.
func (b billing) AccessHistory(ctx context.Context,
	userID domain.UserID,
	cursor string,
	limit uint) ([]domain.AccessLog, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := b.storage.AccessLogsByUserID(ctx, userID, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get access logs: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Logs, next, nil
}

// RenewDue advances subscriptions whose billing date has elapsed. The free
// tier never pays, so it always renews; paid tiers renew only with
// auto_renew set and otherwise become past due.
func (b billing) RenewDue(ctx context.Context, now time.Time, limit uint) (int, error) {
	due, err := b.storage.DueSubscriptions(ctx, now, limit)
	if err != nil {
		return 0, fmt.Errorf("could not get due subscriptions: %w", err)
	}

	for _, subscription := range due {
		updates := storage.SubscriptionUpdates{Status: domain.SubscriptionStatusPastDue}
		if subscription.AutoRenew || subscription.Tier == domain.TierFree {
			next := subscription.NextBillingDate.Add(billingPeriod)
			zero := 0
			updates = storage.SubscriptionUpdates{
				Status:           domain.SubscriptionStatusActive,
				NextBillingDate:  &next,
				MonthlyCallsUsed: &zero,
			}
		}

		if _, err := b.storage.UpdateSubscriptionByID(ctx, subscription.ID, updates); err != nil {
			return 0, fmt.Errorf("could not renew subscription %s: %w", uuid.UUID(subscription.ID), err)
		}
	}

	return len(due), nil
}

// New creates a new Billing backed by the provided storage and x402 gateway.
func New(storage storage.Storage, gateway PaymentGateway, options Options) Billing {
	return &billing{
		options: options,
		storage: storage,
		gateway: gateway,
	}
}
