package postgres

import (
	"context"
	"fmt"
	"time"

	"auditor/pkg/domain"
	"auditor/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	simulationResultsTable   = "simulation_results"
	simulationScenariosTable = "simulation_scenarios"
	failurePathsTable        = "failure_paths"
	intentVerificationsTable = "intent_verifications"
)

func (p *PgSQL) StoreSimulationResult(ctx context.Context,
	result domain.SimulationResult) (*domain.SimulationResult, error) {
	var pgResult PgSimulationResult
	if err := pgResult.FromDomain(result); err != nil {
		return nil, err
	}

	var row PgSimulationResult
	found, err := p.Builder.Insert(simulationResultsTable).
		Rows(pgResult).
		Returning(&PgSimulationResult{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store simulation result into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// SimulationResultByID returns a simulation result by its ID for the given user.
func (p *PgSQL) SimulationResultByID(ctx context.Context,
	userID domain.UserID,
	id domain.SimulationID) (*domain.SimulationResult, error) {
	var row PgSimulationResult
	found, err := p.Builder.From(simulationResultsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch simulation result by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserSimulations returns a list of simulation results for a user filtered by
// optional type and cursor, limited by limit. Results are ordered by
// created_at DESC, id DESC.
func (p *PgSQL) UserSimulations(ctx context.Context,
	userID domain.UserID,
	simulationType domain.SimulationType,
	cursor time.Time,
	limit uint) (storage.UserSimulations, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	}
	if simulationType != "" {
		w = append(w, goqu.I("simulation_type").Eq(string(simulationType)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgSimulationResult
	if err := p.Builder.From(simulationResultsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserSimulations{}, fmt.Errorf("could not fetch user simulations from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	out := make([]domain.SimulationResult, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return storage.UserSimulations{}, err
		}

		out = append(out, *d)
	}

	return storage.UserSimulations{
		Simulations: out,
		NextCursor:  nextCursor,
	}, nil
}

func (p *PgSQL) StoreScenarios(ctx context.Context, scenarios ...domain.Scenario) ([]domain.Scenario, error) {
	if len(scenarios) == 0 {
		return nil, nil
	}

	pgScenarios := make([]PgScenario, len(scenarios))
	for i := range pgScenarios {
		if err := pgScenarios[i].FromDomain(scenarios[i]); err != nil {
			return nil, err
		}
	}

	var rows []PgScenario
	if err := p.Builder.Insert(simulationScenariosTable).
		Rows(pgScenarios).
		Returning(&PgScenario{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store scenarios into pg: %w", err)
	}

	out := make([]domain.Scenario, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// ScenariosBySimulationID returns all scenarios of a simulation, oldest first.
func (p *PgSQL) ScenariosBySimulationID(ctx context.Context,
	simulationID domain.SimulationID) ([]domain.Scenario, error) {
	var rows []PgScenario
	if err := p.Builder.From(simulationScenariosTable).
		Where(goqu.I("simulation_id").Eq(uuid.UUID(simulationID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch scenarios by simulation id: %w", err)
	}

	out := make([]domain.Scenario, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) StoreFailurePaths(ctx context.Context,
	paths ...domain.FailurePath) ([]domain.FailurePath, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	pgPaths := make([]PgFailurePath, len(paths))
	for i := range pgPaths {
		if err := pgPaths[i].FromDomain(paths[i]); err != nil {
			return nil, err
		}
	}

	var rows []PgFailurePath
	if err := p.Builder.Insert(failurePathsTable).
		Rows(pgPaths).
		Returning(&PgFailurePath{}).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not store failure paths into pg: %w", err)
	}

	out := make([]domain.FailurePath, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

// FailurePathsBySimulationID returns all failure paths of a simulation. Rows
// are ordered most severe first using the severity rank.
func (p *PgSQL) FailurePathsBySimulationID(ctx context.Context,
	simulationID domain.SimulationID) ([]domain.FailurePath, error) {
	var rows []PgFailurePath
	if err := p.Builder.From(failurePathsTable).
		Where(goqu.I("simulation_id").Eq(uuid.UUID(simulationID))).
		Order(
			goqu.L("CASE severity WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 ELSE 4 END").Asc(),
			goqu.I("created_at").Asc(),
		).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch failure paths by simulation id: %w", err)
	}

	out := make([]domain.FailurePath, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

func (p *PgSQL) StoreIntentVerification(ctx context.Context,
	verification domain.IntentVerification) (*domain.IntentVerification, error) {
	var pgVerification PgIntentVerification
	if err := pgVerification.FromDomain(verification); err != nil {
		return nil, err
	}

	var row PgIntentVerification
	found, err := p.Builder.Insert(intentVerificationsTable).
		Rows(pgVerification).
		Returning(&PgIntentVerification{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store intent verification into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// IntentVerificationByID returns an intent verification by its ID for the
// given user.
func (p *PgSQL) IntentVerificationByID(ctx context.Context,
	userID domain.UserID,
	id domain.VerificationID) (*domain.IntentVerification, error) {
	var row PgIntentVerification
	found, err := p.Builder.From(intentVerificationsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("user_id").Eq(uuid.UUID(userID)),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch intent verification by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
