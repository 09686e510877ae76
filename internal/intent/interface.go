// Package intent verifies a contract's documented intent against its actual
// behavior, detecting hidden logic and malicious patterns.
package intent

import (
	"context"

	"auditor/pkg/domain"
)

// VerifyParams describes an intent verification request. Either ContractID or
// SourceCode must be set.
type VerifyParams struct {
	ContractID *domain.ContractID
	SourceCode string
	// DocumentedIntent is the README or comment text describing what the
	// contract claims to do.
	DocumentedIntent string
	Provider         domain.Provider
}

// Verification bundles a completed verification with its request record.
type Verification struct {
	Result  domain.IntentVerification
	Request domain.Request
}

//go:generate mockgen -package mockintent -source=interface.go -destination=mock/mockintent.go *

// Verifier verifies contract intent.
type Verifier interface {
	// Verify compares the documented intent with the contract's behavior as
	// inferred by an AI provider and persists the outcome.
	Verify(ctx context.Context, userID domain.UserID, params VerifyParams) (*Verification, error)
	// VerificationByID returns a previously completed verification.
	VerificationByID(ctx context.Context,
		userID domain.UserID,
		ID domain.VerificationID) (*domain.IntentVerification, error)
}
