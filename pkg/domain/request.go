package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestID uniquely identifies an AI request.
type RequestID uuid.UUID

// RequestType classifies what kind of work an AI request performed.
type RequestType string

const (
	// RequestTypeAnalyze is a security analysis request.
	RequestTypeAnalyze RequestType = "analyze"
	// RequestTypeOptimize is a gas optimization request.
	RequestTypeOptimize RequestType = "optimize"
	// RequestTypeDeploy is a deployment validation request.
	RequestTypeDeploy RequestType = "deploy"
	// RequestTypeTransactionSimulation is a single transaction simulation.
	RequestTypeTransactionSimulation RequestType = "transaction_simulation"
	// RequestTypeWhatIfScenario is a what-if scenario analysis.
	RequestTypeWhatIfScenario RequestType = "what_if_scenario"
	// RequestTypeFailurePaths is a failure path exploration.
	RequestTypeFailurePaths RequestType = "failure_path_exploration"
	// RequestTypeIntentVerification is an intent vs behavior verification.
	RequestTypeIntentVerification RequestType = "intent_verification"
)

// Request records one round-trip to an AI provider. A row is written per
// endpoint call together with its result.
type Request struct {
	// ID is the unique identifier of the request.
	ID RequestID `json:"id"`
	// UserID is the user on whose behalf the request ran.
	UserID UserID `json:"userId"`
	// ContractID links the request to a registered contract, when one was used.
	ContractID *ContractID `json:"contractId,omitempty"`

	// Provider is the provider that actually served the request. With the
	// fallback chain this may differ from the provider the caller asked for.
	Provider Provider `json:"providerUsed"`
	// Type classifies the request.
	Type RequestType `json:"requestType"`

	// ExecutionTimeMS is the wall-clock duration of the provider call.
	ExecutionTimeMS float64 `json:"executionTimeMs"`
	// TokensUsed is the token count reported by the provider, when available.
	TokensUsed int `json:"tokensUsed,omitempty"`

	// CreatedAt is the time the request row was written.
	CreatedAt time.Time `json:"createdAt"`
}
