package postgres_test

import (
	"context"
	"testing"
	"time"

	"auditor/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func storeTestRequest(t *testing.T, pgSQL requestStorer, userID domain.UserID) domain.RequestID {
	t.Helper()

	req, err := pgSQL.StoreRequest(context.Background(), domain.Request{
		UserID:          userID,
		Provider:        domain.ProviderOpenAI,
		Type:            domain.RequestTypeAnalyze,
		ExecutionTimeMS: 100,
		TokensUsed:      250,
	})
	require.NoError(t, err)
	require.NotNil(t, req)

	return req.ID
}

type requestStorer interface {
	StoreRequest(ctx context.Context, request domain.Request) (*domain.Request, error)
}

func TestPgSQL_StoreAnalysisResult(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	requestID := storeTestRequest(t, pgSQL, userID)

	score := 42
	created, err := pgSQL.StoreAnalysisResult(ctx, domain.AnalysisResult{
		RequestID: requestID,
		Type:      domain.AnalysisTypeSecurity,
		RiskScore: &score,
		Findings: []domain.Finding{
			{Severity: domain.SeverityHigh, Title: "Reentrancy", Description: "external call before state update"},
		},
		RawResponse: `{"risk_score": 42}`,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.RiskScore)
	require.Equal(t, 42, *created.RiskScore)
	require.Len(t, created.Findings, 1)

	got, err := pgSQL.AnalysisResultByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.SeverityHigh, got.Findings[0].Severity)
}

func TestPgSQL_UserRequests(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	storeTestRequest(t, pgSQL, userID)
	storeTestRequest(t, pgSQL, userID)

	rows, err := pgSQL.UserRequests(ctx, userID, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, domain.ProviderOpenAI, rows[0].Provider)
}

func TestPgSQL_SimulationResults(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	requestID := storeTestRequest(t, pgSQL, userID)

	gas := int64(21000)
	created, err := pgSQL.StoreSimulationResult(ctx, domain.SimulationResult{
		UserID:    userID,
		RequestID: requestID,
		Type:      domain.SimulationTypeTransaction,
		Calldata:  "0xa9059cbb",
		Status:    domain.SimulationStatusSuccess,
		GasUsed:   &gas,
		Findings: []domain.SimulationFinding{
			{Type: "gas", Severity: domain.SeverityLow, Description: "transfer within expected cost"},
		},
		AIInsights: "transfer succeeds under assumed balances",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.NotNil(t, created.GasUsed)

	got, err := pgSQL.SimulationResultByID(ctx, userID, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.SimulationStatusSuccess, got.Status)

	// other users must not see the result
	other, err := pgSQL.SimulationResultByID(ctx, domain.UserID(uuid.New()), created.ID)
	require.NoError(t, err)
	require.Nil(t, other)

	page, err := pgSQL.UserSimulations(ctx, userID, domain.SimulationTypeTransaction, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, page.Simulations, 1)

	page, err = pgSQL.UserSimulations(ctx, userID, domain.SimulationTypeFailurePath, time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, page.Simulations)
}

func TestPgSQL_ScenariosAndFailurePaths(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	requestID := storeTestRequest(t, pgSQL, userID)

	sim, err := pgSQL.StoreSimulationResult(ctx, domain.SimulationResult{
		UserID:    userID,
		RequestID: requestID,
		Type:      domain.SimulationTypeScenario,
		Status:    domain.SimulationStatusWarning,
	})
	require.NoError(t, err)

	scenarios, err := pgSQL.StoreScenarios(ctx, domain.Scenario{
		SimulationID:     sim.ID,
		Name:             "price spike",
		Description:      "oracle price doubles",
		ExpectedBehavior: "liquidations halt",
		Outcome:          domain.ScenarioOutcomeUnexpected,
	})
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	gotScenarios, err := pgSQL.ScenariosBySimulationID(ctx, sim.ID)
	require.NoError(t, err)
	require.Len(t, gotScenarios, 1)
	require.Equal(t, "price spike", gotScenarios[0].Name)

	simID := sim.ID
	paths, err := pgSQL.StoreFailurePaths(ctx,
		domain.FailurePath{
			SimulationID:      &simID,
			Description:       "oracle manipulation drains vault",
			Severity:          domain.SeverityLow,
			TriggerConditions: []string{"flash loan available"},
			Consequences:      []string{"vault drained"},
			MitigationSteps:   []string{"use TWAP oracle"},
		},
		domain.FailurePath{
			SimulationID:      &simID,
			Description:       "admin key compromise",
			Severity:          domain.SeverityCritical,
			TriggerConditions: []string{"leaked key"},
			Consequences:      []string{"full control"},
			MitigationSteps:   []string{"use multisig"},
		},
	)
	require.NoError(t, err)
	require.Len(t, paths, 2)

	gotPaths, err := pgSQL.FailurePathsBySimulationID(ctx, sim.ID)
	require.NoError(t, err)
	require.Len(t, gotPaths, 2)
	require.Equal(t, domain.SeverityCritical, gotPaths[0].Severity, "most severe first")
}

func TestPgSQL_IntentVerifications(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	userID := domain.UserID(uuid.New())
	requestID := storeTestRequest(t, pgSQL, userID)

	created, err := pgSQL.StoreIntentVerification(ctx, domain.IntentVerification{
		UserID:           userID,
		RequestID:        requestID,
		DocumentedIntent: "simple token transfer contract",
		ActualBehavior:   "token transfers plus owner-only drain function",
		IntentMatchScore: 40,
		IntentFindings:   []string{"undocumented drain function"},
		HiddenLogicDetected: true,
		ConditionalActivation: []domain.HiddenLogicFinding{
			{Type: "owner_gate", Description: "drain activates for owner only", Severity: domain.SeverityHigh},
		},
		MaliciousPatternsFound: true,
		RugPullIndicators: []domain.PatternIndicator{
			{Name: "drain_function", Description: "owner can withdraw all balances", Severity: domain.SeverityCritical},
		},
		MaliciousRiskScore: 80,
		OverallTrustScore:  20,
		AIRecommendation:   "do not interact",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	got, err := pgSQL.IntentVerificationByID(ctx, userID, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.HiddenLogicDetected)
	require.Len(t, got.RugPullIndicators, 1)

	// other users must not see the verification
	other, err := pgSQL.IntentVerificationByID(ctx, domain.UserID(uuid.New()), created.ID)
	require.NoError(t, err)
	require.Nil(t, other)
}
