package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier names a subscription level bounding feature access and monthly quota.
type Tier string

const (
	TierFree       Tier = "free"
	TierBasic      Tier = "basic"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Valid reports whether t names a known tier.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierPro, TierEnterprise:
		return true
	default:
		return false
	}
}

// AccessLevel returns the numeric access level of the tier (0=free .. 3=enterprise).
func (t Tier) AccessLevel() int {
	switch t {
	case TierBasic:
		return 1
	case TierPro:
		return 2
	case TierEnterprise:
		return 3
	default:
		return 0
	}
}

// Feature names a gated capability of the service.
type Feature string

const (
	FeatureBasicAnalysis      Feature = "basic_analysis"
	FeatureLimitedSimulations Feature = "limited_simulations"
	FeatureContractAnalysis   Feature = "contract_analysis"
	FeatureSimulations        Feature = "simulations"
	FeatureIntentVerification Feature = "intent_verification"
	FeatureMaliciousDetection Feature = "malicious_detection"
	FeaturePriorityQueue      Feature = "priority_queue"
	FeatureAllFeatures        Feature = "all_features"
	FeatureCustomAnalysis     Feature = "custom_analysis"
	FeatureAPIAccess          Feature = "api_access"
	FeatureDedicatedSupport   Feature = "dedicated_support"
)

// TierSpec describes the static pricing and entitlements of one tier.
type TierSpec struct {
	Tier                 Tier      `json:"tier"`
	MonthlyPriceLamports int64     `json:"monthlyPriceLamports"`
	MonthlyPriceUSD      float64   `json:"monthlyPriceUsd"`
	Features             []Feature `json:"features"`
	APICallsLimit        int       `json:"apiCallsLimit"`
	PrioritySupport      bool      `json:"prioritySupport"`
	Description          string    `json:"description"`
}

// PaymentID uniquely identifies a payment.
type PaymentID uuid.UUID

// PaymentStatus is the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is one x402 payment initiated to unlock a tier.
type Payment struct {
	ID         PaymentID   `json:"id"`
	UserID     UserID      `json:"userId"`
	ContractID *ContractID `json:"contractId,omitempty"`

	// TransactionHash is the settlement hash; empty until a verification
	// attaches it. Unique once present.
	TransactionHash string `json:"transactionHash,omitempty"`
	Network         string `json:"network"`
	AmountLamports  int64  `json:"amountLamports"`
	AmountUSD       float64 `json:"amountUsd,omitempty"`
	PayerAddress    string `json:"payerAddress,omitempty"`
	ReceiverAddress string `json:"receiverAddress"`

	Status           PaymentStatus `json:"paymentStatus"`
	Tier             Tier          `json:"tier"`
	AccessLevel      int           `json:"accessLevel"`
	FeaturesUnlocked []Feature     `json:"featuresUnlocked"`

	CreatedAt   time.Time `json:"createdAt"`
	ConfirmedAt time.Time `json:"confirmedAt,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt,omitempty"`
}

// SubscriptionID uniquely identifies a subscription.
type SubscriptionID uuid.UUID

// SubscriptionStatus is the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	// SubscriptionStatusActive means the subscription grants access.
	SubscriptionStatusActive SubscriptionStatus = "active"
	// SubscriptionStatusPastDue means the billing date elapsed without renewal.
	SubscriptionStatusPastDue SubscriptionStatus = "past_due"
	// SubscriptionStatusCancelled is terminal.
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a recurring tier purchase. Only MonthlyCallsUsed, Status
// and the billing fields mutate after creation.
type Subscription struct {
	ID     SubscriptionID `json:"id"`
	UserID UserID         `json:"userId"`

	Tier                 Tier    `json:"tier"`
	RecurringPaymentHash string  `json:"recurringPaymentHash,omitempty"`
	Network              string  `json:"network"`
	MonthlyPriceLamports int64   `json:"monthlyPriceLamports"`
	MonthlyPriceUSD      float64 `json:"monthlyPriceUsd,omitempty"`

	Status          SubscriptionStatus `json:"status"`
	NextBillingDate time.Time          `json:"nextBillingDate,omitempty"`
	AutoRenew       bool               `json:"autoRenew"`

	Features         []Feature `json:"features"`
	APICallsLimit    int       `json:"apiCallsLimit"`
	MonthlyCallsUsed int       `json:"monthlyCallsUsed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AccessLogID uniquely identifies an access log row.
type AccessLogID uuid.UUID

// AccessLog records one gated feature access for usage tracking.
type AccessLog struct {
	ID        AccessLogID `json:"id"`
	PaymentID *PaymentID  `json:"paymentId,omitempty"`
	UserID    UserID      `json:"userId"`

	Endpoint        string      `json:"endpoint"`
	FeatureAccessed Feature     `json:"featureAccessed"`
	RequestType     RequestType `json:"requestType"`

	TokensUsed      int     `json:"tokensUsed,omitempty"`
	ExecutionTimeMS float64 `json:"executionTimeMs"`
	Success         bool    `json:"success"`
	ErrorMessage    string  `json:"errorMessage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
