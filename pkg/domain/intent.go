package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationID uniquely identifies an intent verification.
type VerificationID uuid.UUID

// HiddenLogicFinding locates code whose behavior is not reflected in the
// contract's documentation (dead code, time-locked or conditional logic).
type HiddenLogicFinding struct {
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Severity    Severity `json:"severity"`
}

// PatternIndicator names one malicious pattern indicator found in a contract.
type PatternIndicator struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// IntentVerification is the persisted outcome of comparing a contract's
// documented intent against its AI-inferred actual behavior.
type IntentVerification struct {
	ID         VerificationID `json:"id"`
	ContractID *ContractID    `json:"contractId,omitempty"`
	UserID     UserID         `json:"userId"`
	RequestID  RequestID      `json:"requestId"`

	// Intent vs behavior.
	DocumentedIntent string   `json:"documentedIntent"`
	ActualBehavior   string   `json:"actualBehavior"`
	IntentMatchScore int      `json:"intentMatchScore"`
	IntentFindings   []string `json:"intentFindings"`

	// Hidden logic detection.
	HiddenLogicDetected   bool                 `json:"hiddenLogicDetected"`
	DeadCodeAreas         []HiddenLogicFinding `json:"deadCodeAreas"`
	DelayedExecutionLogic []HiddenLogicFinding `json:"delayedExecutionLogic"`
	ConditionalActivation []HiddenLogicFinding `json:"conditionalActivation"`

	// Malicious pattern fingerprinting.
	MaliciousPatternsFound bool               `json:"maliciousPatternsFound"`
	RugPullIndicators      []PatternIndicator `json:"rugPullIndicators"`
	HoneypotIndicators     []PatternIndicator `json:"honeypotIndicators"`
	MaliciousRiskScore     int                `json:"maliciousRiskScore"`

	OverallTrustScore int    `json:"overallTrustScore"`
	AIRecommendation  string `json:"aiRecommendation"`

	CreatedAt time.Time `json:"createdAt"`
}
