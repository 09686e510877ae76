// Package simulator implements AI-backed transaction simulation, what-if
// scenario analysis and failure path exploration.
package simulator

import (
	"context"

	"auditor/pkg/domain"
)

// TransactionParams describes a transaction simulation request.
type TransactionParams struct {
	// ContractID references a registered contract owned by the caller.
	ContractID *domain.ContractID
	// SourceCode is inline contract source, used when ContractID is nil.
	SourceCode string
	// Provider is the preferred AI provider. Defaults to openai.
	Provider domain.Provider

	// FromAddress is the transaction sender, if known.
	FromAddress string
	// Value is the transferred amount in wei.
	Value string
	// Calldata is the hex encoded call payload.
	Calldata string
	// StateAssumptions fix the pre-state of selected addresses.
	StateAssumptions []domain.StateAssumption
}

// WhatIfParams describes a what-if scenario request.
type WhatIfParams struct {
	ContractID *domain.ContractID
	SourceCode string
	Provider   domain.Provider

	// ScenarioDescription states the scenario in plain language, e.g. "what
	// happens if the owner changes the fee to 50%?".
	ScenarioDescription string
	// FunctionToTest names the function the scenario exercises.
	FunctionToTest string
	// InitialState is the assumed state before the change.
	InitialState map[string]any
	// ModifiedState is the state the scenario applies.
	ModifiedState map[string]any
}

// FailurePathParams describes a failure path exploration request.
type FailurePathParams struct {
	ContractID *domain.ContractID
	SourceCode string
	Provider   domain.Provider
}

// Transaction is the outcome of a transaction simulation.
type Transaction struct {
	// Result is the persisted simulation row.
	Result domain.SimulationResult
	// Request is the persisted accounting row.
	Request domain.Request
}

// WhatIf is the outcome of a what-if scenario analysis.
type WhatIf struct {
	// Result is the persisted simulation row.
	Result domain.SimulationResult
	// Request is the persisted accounting row.
	Request domain.Request
	// Scenarios are the persisted analyzed scenarios.
	Scenarios []domain.Scenario
	// Recommendations from the provider, when it gave any.
	Recommendations []string
}

// Failure is the outcome of a failure path exploration.
type Failure struct {
	// Result is the persisted simulation row.
	Result domain.SimulationResult
	// Request is the persisted accounting row.
	Request domain.Request
	// Paths are the persisted failure paths, most severe first.
	Paths []domain.FailurePath
	// RiskAssessment summarizes the overall risk.
	RiskAssessment string
}

// Simulation is a stored simulation together with its linked rows.
type Simulation struct {
	Result    domain.SimulationResult
	Scenarios []domain.Scenario
	Paths     []domain.FailurePath
}

//go:generate mockgen -package mocksimulator -source=interface.go -destination=mock/mocksimulator.go *
type Simulator interface {
	SimulateTransaction(ctx context.Context, userID domain.UserID, params TransactionParams) (*Transaction, error)
	WhatIf(ctx context.Context, userID domain.UserID, params WhatIfParams) (*WhatIf, error)
	FailurePaths(ctx context.Context, userID domain.UserID, params FailurePathParams) (*Failure, error)

	Result(ctx context.Context, userID domain.UserID, simulationID domain.SimulationID) (*Simulation, error)
	UserSimulations(ctx context.Context,
		userID domain.UserID,
		simulationType domain.SimulationType,
		cursor string,
		limit uint) ([]domain.SimulationResult, string, error)
}
