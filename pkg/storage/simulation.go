package storage

import (
	"context"
	"time"

	"auditor/pkg/domain"
)

// UserSimulations groups a page of simulation results returned for a user
// together with an optional NextCursor used for pagination.
type UserSimulations struct {
	// Simulations contains the current page of simulation result records.
	Simulations []domain.SimulationResult
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// SimulationStorage persists simulation results together with their what-if
// scenarios and explored failure paths.
type SimulationStorage interface {
	// StoreSimulationResult inserts a simulation result and returns the stored row.
	StoreSimulationResult(ctx context.Context, result domain.SimulationResult) (*domain.SimulationResult, error)
	// SimulationResultByID fetches a simulation result by its ID for the given
	// user. Returns nil when not found.
	SimulationResultByID(ctx context.Context,
		userID domain.UserID,
		ID domain.SimulationID) (*domain.SimulationResult, error)
	// UserSimulations returns a page of simulation results for a user created
	// before the optional cursor time, limited by the given limit. If
	// simulationType is non-empty, results are filtered to that type.
	UserSimulations(ctx context.Context,
		userID domain.UserID,
		simulationType domain.SimulationType,
		cursor time.Time,
		limit uint) (UserSimulations, error)

	// StoreScenarios inserts one or more what-if scenarios and returns the
	// stored rows.
	StoreScenarios(ctx context.Context, scenarios ...domain.Scenario) ([]domain.Scenario, error)
	// ScenariosBySimulationID returns all scenarios of a simulation, oldest first.
	ScenariosBySimulationID(ctx context.Context, simulationID domain.SimulationID) ([]domain.Scenario, error)

	// StoreFailurePaths inserts one or more failure paths and returns the
	// stored rows.
	StoreFailurePaths(ctx context.Context, paths ...domain.FailurePath) ([]domain.FailurePath, error)
	// FailurePathsBySimulationID returns all failure paths of a simulation,
	// most severe first.
	FailurePathsBySimulationID(ctx context.Context,
		simulationID domain.SimulationID) ([]domain.FailurePath, error)
}

// IntentStorage persists intent verification reports.
type IntentStorage interface {
	// StoreIntentVerification inserts an intent verification and returns the
	// stored row.
	StoreIntentVerification(ctx context.Context,
		verification domain.IntentVerification) (*domain.IntentVerification, error)
	// IntentVerificationByID fetches an intent verification by its ID for the
	// given user. Returns nil when not found.
	IntentVerificationByID(ctx context.Context,
		userID domain.UserID,
		ID domain.VerificationID) (*domain.IntentVerification, error)
}
