// Package analyzer implements AI-backed contract analysis, gas optimization
// and deployment validation.
package analyzer

import (
	"context"

	"auditor/pkg/domain"
)

// SourceParams selects the contract source for an analysis. Callers provide
// either a registered contract ID or inline source code.
type SourceParams struct {
	// ContractID references a registered contract owned by the caller.
	ContractID *domain.ContractID
	// SourceCode is inline contract source, used when ContractID is nil.
	SourceCode string
	// Provider is the preferred AI provider. Defaults to openai.
	Provider domain.Provider
}

// Analysis is the outcome of a security analysis.
type Analysis struct {
	// Result is the persisted analysis row.
	Result domain.AnalysisResult
	// Request is the persisted accounting row.
	Request domain.Request
	// Explanation is the provider's overall assessment.
	Explanation string
}

// Optimization is the outcome of a gas optimization request.
type Optimization struct {
	// Result is the persisted analysis row.
	Result domain.AnalysisResult
	// Request is the persisted accounting row.
	Request domain.Request
	// Summary is the provider's overall summary.
	Summary string
}

// Deployment is the outcome of a deployment validation.
type Deployment struct {
	// Result is the persisted analysis row.
	Result domain.AnalysisResult
	// Request is the persisted accounting row.
	Request domain.Request

	// IsValid reports whether the contract is considered safe to deploy.
	IsValid bool
	// Network is the chain the validation was run against.
	Network string
	// EstimatedGas is the provider's deployment gas estimate, when given.
	EstimatedGas *int64
	// Warnings lists deployment concerns raised by the provider.
	Warnings []string
}

//go:generate mockgen -package mockanalyzer -source=interface.go -destination=mock/mockanalyzer.go *
type Analyzer interface {
	Analyze(ctx context.Context, userID domain.UserID, params SourceParams) (*Analysis, error)
	Optimize(ctx context.Context, userID domain.UserID, params SourceParams) (*Optimization, error)
	ValidateDeployment(ctx context.Context,
		userID domain.UserID,
		contractID domain.ContractID,
		network string,
		provider domain.Provider) (*Deployment, error)
}
