package storage

import (
	"context"
	"time"

	"auditor/pkg/domain"
)

// PaymentUpdates describes a set of optional fields that can be applied to an
// existing payment during an update. Only non-nil fields will be updated.
type PaymentUpdates struct {
	// Status is the new settlement status to set for the payment.
	Status domain.PaymentStatus
	// TransactionHash, when provided, attaches the settlement hash.
	TransactionHash *string
	// PayerAddress, when provided, records the verified payer address.
	PayerAddress *string
	// ConfirmedAt, when provided, sets the confirmation timestamp.
	ConfirmedAt *time.Time
	// ExpiresAt, when provided, sets the access expiry timestamp.
	ExpiresAt *time.Time
}

// SubscriptionUpdates describes optional fields applied to a subscription.
type SubscriptionUpdates struct {
	// Status, when non-empty, is the new subscription status.
	Status domain.SubscriptionStatus
	// NextBillingDate, when provided, sets the next billing date.
	NextBillingDate *time.Time
	// MonthlyCallsUsed, when provided, replaces the usage counter.
	MonthlyCallsUsed *int
	// AutoRenew, when provided, toggles automatic renewal.
	AutoRenew *bool
}

// UserAccessLogs groups a page of access log rows together with an optional
// NextCursor used for pagination.
type UserAccessLogs struct {
	// Logs contains the current page of access log records.
	Logs []domain.AccessLog
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// BillingStorage persists payments, subscriptions and access logs backing the
// tier gate.
type BillingStorage interface {
	// StorePayment inserts a payment and returns the stored row.
	StorePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)
	// PaymentByID fetches a payment by its ID for the given user. Returns nil
	// when not found.
	PaymentByID(ctx context.Context, userID domain.UserID, ID domain.PaymentID) (*domain.Payment, error)
	// PaymentByTransactionHash fetches a payment by its settlement hash across
	// all users. Returns nil when not found.
	PaymentByTransactionHash(ctx context.Context, hash string) (*domain.Payment, error)
	// UpdatePaymentByID updates a payment and returns the updated row, or nil
	// when it was not found.
	UpdatePaymentByID(ctx context.Context, ID domain.PaymentID, updates PaymentUpdates) (*domain.Payment, error)

	// StoreSubscription inserts a subscription and returns the stored row.
	StoreSubscription(ctx context.Context, subscription domain.Subscription) (*domain.Subscription, error)
	// ActiveSubscriptionByUserID returns the newest non-cancelled subscription
	// of a user, or nil when the user has none.
	ActiveSubscriptionByUserID(ctx context.Context, userID domain.UserID) (*domain.Subscription, error)
	// UpdateSubscriptionByID updates a subscription, sets updated_at
	// automatically and returns the updated row, or nil when it was not found.
	UpdateSubscriptionByID(ctx context.Context,
		ID domain.SubscriptionID,
		updates SubscriptionUpdates) (*domain.Subscription, error)
	// IncrementSubscriptionUsage atomically increments monthly_calls_used of an
	// active subscription, but only while usage stays within the subscription's
	// call limit (a negative limit means unlimited). It reports whether the
	// increment was applied.
	IncrementSubscriptionUsage(ctx context.Context, ID domain.SubscriptionID) (bool, error)
	// DueSubscriptions returns up to limit active subscriptions whose next
	// billing date is at or before the given time, oldest first.
	DueSubscriptions(ctx context.Context, dueBefore time.Time, limit uint) ([]domain.Subscription, error)

	// StoreAccessLog inserts an access log row and returns the stored row.
	StoreAccessLog(ctx context.Context, log domain.AccessLog) (*domain.AccessLog, error)
	// AccessLogsByUserID returns a page of access log rows for a user created
	// before the optional cursor time, limited by the given limit.
	AccessLogsByUserID(ctx context.Context,
		userID domain.UserID,
		cursor time.Time,
		limit uint) (UserAccessLogs, error)
}
