package simulator

import (
	"context"
	"fmt"
	"time"

	"auditor/pkg/aiprovider"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
)

// AI is the slice of the provider manager the simulator depends on. The
// simulator builds its own prompts and parses the raw completions.
type AI interface {
	Complete(ctx context.Context,
		preferred domain.Provider,
		req aiprovider.CompletionRequest) (aiprovider.Completion, domain.Provider, error)
}

// simulator is the concrete implementation of the Simulator interface.
type simulator struct {
	storage storage.Storage
	ai      AI
}

func (s simulator) resolveSource(ctx context.Context,
	userID domain.UserID,
	contractID *domain.ContractID,
	sourceCode string) (string, *domain.ContractID, error) {
	if contractID != nil {
		contract, err := s.storage.ContractByID(ctx, userID, *contractID)
		if err != nil {
			return "", nil, fmt.Errorf("could not get contract: %w", err)
		}
		if contract == nil {
			return "", nil, serrors.With(serrors.ErrNotFound, "contract not found")
		}

		return contract.SourceCode, &contract.ID, nil
	}
	if sourceCode == "" {
		return "", nil, serrors.With(serrors.ErrBadRequest, "either contract_id or source_code must be provided")
	}

	return sourceCode, nil, nil
}

func preferredProvider(provider domain.Provider) (domain.Provider, error) {
	if provider == "" {
		return domain.ProviderOpenAI, nil
	}
	if !provider.Valid() {
		return "", serrors.With(serrors.ErrBadRequest, "unknown provider %q", provider)
	}

	return provider, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}

// SimulateTransaction runs a transaction through the provider chain and
// persists the simulation result. Provider responses that are not valid JSON
// are kept as raw insight text with a generic finding, matching how little
// can be assumed about model output.
func (s simulator) SimulateTransaction(ctx context.Context,
	userID domain.UserID,
	params TransactionParams) (*Transaction, error) {
	sourceCode, contractID, err := s.resolveSource(ctx, userID, params.ContractID, params.SourceCode)
	if err != nil {
		return nil, err
	}
	provider, err := preferredProvider(params.Provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	completion, served, err := s.ai.Complete(ctx, provider, aiprovider.CompletionRequest{
		Prompt:      transactionPrompt(sourceCode, params),
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	result := domain.SimulationResult{
		ContractID:       contractID,
		UserID:           userID,
		Type:             domain.SimulationTypeTransaction,
		Calldata:         params.Calldata,
		StateAssumptions: params.StateAssumptions,
		AIInsights:       completion.Content,
	}
	if report, ok := parseTransactionReport(completion.Content); ok {
		result.Status = simulationStatus(report.Status)
		result.GasUsed = report.GasEstimate
		result.ExecutionTrace = report.Trace
		for _, f := range report.Findings {
			f.Severity = findingSeverity(string(f.Severity))
			if f.Type == "" {
				f.Type = "execution_analysis"
			}
			result.Findings = append(result.Findings, f)
		}
	} else {
		result.Status = domain.SimulationStatusSuccess
		result.ExecutionTrace = map[string]any{"status": "simulated"}
		result.Findings = []domain.SimulationFinding{{
			Type:        "execution_analysis",
			Severity:    domain.SeverityInfo,
			Description: truncate(completion.Content, 200),
		}}
	}

	var storedRequest *domain.Request
	var storedResult *domain.SimulationResult
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		req, err := tx.StoreRequest(ctx, domain.Request{
			UserID:          userID,
			ContractID:      contractID,
			Provider:        served,
			Type:            domain.RequestTypeTransactionSimulation,
			ExecutionTimeMS: elapsed,
			TokensUsed:      completion.TokensUsed,
		})
		if err != nil {
			return fmt.Errorf("could not store request: %w", err)
		}
		storedRequest = req

		result.RequestID = req.ID
		res, err := tx.StoreSimulationResult(ctx, result)
		if err != nil {
			return fmt.Errorf("could not store simulation result: %w", err)
		}
		storedResult = res

		return nil
	}); err != nil {
		return nil, err
	}

	return &Transaction{Result: *storedResult, Request: *storedRequest}, nil
}

// defaultRecommendations are returned when the provider response could not be
// parsed into structured recommendations.
var defaultRecommendations = []string{
	"Review state change implications",
	"Test edge cases",
	"Verify security assumptions",
}

// WhatIf analyzes a what-if scenario and persists the simulation together
// with the analyzed scenario row.
func (s simulator) WhatIf(ctx context.Context, userID domain.UserID, params WhatIfParams) (*WhatIf, error) {
	if params.ScenarioDescription == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "scenario description is required")
	}
	sourceCode, contractID, err := s.resolveSource(ctx, userID, params.ContractID, params.SourceCode)
	if err != nil {
		return nil, err
	}
	provider, err := preferredProvider(params.Provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	completion, served, err := s.ai.Complete(ctx, provider, aiprovider.CompletionRequest{
		Prompt:      whatIfPrompt(sourceCode, params),
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("scenario analysis failed: %w", err)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	scenario := domain.Scenario{
		Name:          truncate(params.ScenarioDescription, 50),
		Description:   params.ScenarioDescription,
		InitialState:  params.InitialState,
		ModifiedState: params.ModifiedState,
		AIAnalysis:    completion.Content,
	}
	recommendations := defaultRecommendations
	if report, ok := parseWhatIfReport(completion.Content); ok {
		scenario.ExpectedBehavior = report.ExpectedBehavior
		scenario.ActualBehavior = report.ActualBehavior
		scenario.Outcome = domain.ScenarioOutcomeSuccess
		if len(report.Recommendations) > 0 {
			recommendations = report.Recommendations
		}
	} else {
		scenario.ExpectedBehavior = "Initial state behavior"
		scenario.ActualBehavior = truncate(completion.Content, 500)
		scenario.Outcome = domain.ScenarioOutcomeUnexpected
	}

	var out WhatIf
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		req, err := tx.StoreRequest(ctx, domain.Request{
			UserID:          userID,
			ContractID:      contractID,
			Provider:        served,
			Type:            domain.RequestTypeWhatIfScenario,
			ExecutionTimeMS: elapsed,
			TokensUsed:      completion.TokensUsed,
		})
		if err != nil {
			return fmt.Errorf("could not store request: %w", err)
		}
		out.Request = *req

		res, err := tx.StoreSimulationResult(ctx, domain.SimulationResult{
			ContractID: contractID,
			UserID:     userID,
			RequestID:  req.ID,
			Type:       domain.SimulationTypeScenario,
			Status:     domain.SimulationStatusSuccess,
			AIInsights: completion.Content,
		})
		if err != nil {
			return fmt.Errorf("could not store simulation result: %w", err)
		}
		out.Result = *res

		scenario.SimulationID = res.ID
		scenarios, err := tx.StoreScenarios(ctx, scenario)
		if err != nil {
			return fmt.Errorf("could not store scenario: %w", err)
		}
		out.Scenarios = scenarios

		return nil
	}); err != nil {
		return nil, err
	}

	out.Recommendations = recommendations

	return &out, nil
}

// FailurePaths explores worst-case execution paths and persists each path
// identified by the provider.
func (s simulator) FailurePaths(ctx context.Context,
	userID domain.UserID,
	params FailurePathParams) (*Failure, error) {
	sourceCode, contractID, err := s.resolveSource(ctx, userID, params.ContractID, params.SourceCode)
	if err != nil {
		return nil, err
	}
	provider, err := preferredProvider(params.Provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	completion, served, err := s.ai.Complete(ctx, provider, aiprovider.CompletionRequest{
		Prompt:      failurePathPrompt(sourceCode),
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("failure path analysis failed: %w", err)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	var paths []domain.FailurePath
	if entries, ok := parseFailureReport(completion.Content); ok && len(entries) > 0 {
		for _, e := range entries {
			paths = append(paths, domain.FailurePath{
				ContractID:        contractID,
				Description:       e.Description,
				Severity:          findingSeverity(e.Severity),
				TriggerConditions: e.Triggers,
				Consequences:      e.Consequences,
				MitigationSteps:   e.Mitigations,
				AIReasoning:       e.Reasoning,
			})
		}
	} else {
		paths = []domain.FailurePath{{
			ContractID:        contractID,
			Description:       "Comprehensive failure scenario analysis",
			Severity:          domain.SeverityHigh,
			TriggerConditions: []string{"edge_case_triggered"},
			Consequences:      []string{"potential_state_issues"},
			MitigationSteps:   []string{"validate_inputs", "add_guards"},
			AIReasoning:       completion.Content,
		}}
	}

	var out Failure
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		req, err := tx.StoreRequest(ctx, domain.Request{
			UserID:          userID,
			ContractID:      contractID,
			Provider:        served,
			Type:            domain.RequestTypeFailurePaths,
			ExecutionTimeMS: elapsed,
			TokensUsed:      completion.TokensUsed,
		})
		if err != nil {
			return fmt.Errorf("could not store request: %w", err)
		}
		out.Request = *req

		res, err := tx.StoreSimulationResult(ctx, domain.SimulationResult{
			ContractID: contractID,
			UserID:     userID,
			RequestID:  req.ID,
			Type:       domain.SimulationTypeFailurePath,
			Status:     domain.SimulationStatusSuccess,
			AIInsights: completion.Content,
		})
		if err != nil {
			return fmt.Errorf("could not store simulation result: %w", err)
		}
		out.Result = *res

		simulationID := res.ID
		for i := range paths {
			paths[i].SimulationID = &simulationID
		}
		stored, err := tx.StoreFailurePaths(ctx, paths...)
		if err != nil {
			return fmt.Errorf("could not store failure paths: %w", err)
		}
		out.Paths = stored

		return nil
	}); err != nil {
		return nil, err
	}

	out.RiskAssessment = riskAssessment(out.Paths)

	return &out, nil
}

// riskAssessment summarizes the most severe path found.
func riskAssessment(paths []domain.FailurePath) string {
	worst := domain.SeverityInfo
	rank := map[domain.Severity]int{
		domain.SeverityInfo:     0,
		domain.SeverityLow:      1,
		domain.SeverityMedium:   2,
		domain.SeverityHigh:     3,
		domain.SeverityCritical: 4,
	}
	for _, p := range paths {
		if rank[p.Severity] > rank[worst] {
			worst = p.Severity
		}
	}

	switch worst {
	case domain.SeverityCritical:
		return "Critical - Exploitable failure paths identified"
	case domain.SeverityHigh:
		return "High - Multiple failure paths identified"
	case domain.SeverityMedium:
		return "Medium - Failure paths require review"
	default:
		return "Low - No significant failure paths identified"
	}
}

// Result fetches a stored simulation with its scenarios and failure paths.
func (s simulator) Result(ctx context.Context,
	userID domain.UserID,
	simulationID domain.SimulationID) (*Simulation, error) {
	result, err := s.storage.SimulationResultByID(ctx, userID, simulationID)
	if err != nil {
		return nil, fmt.Errorf("could not get simulation result: %w", err)
	}
	if result == nil {
		return nil, serrors.With(serrors.ErrNotFound, "simulation result not found")
	}

	out := Simulation{Result: *result}
	switch result.Type {
	case domain.SimulationTypeScenario:
		out.Scenarios, err = s.storage.ScenariosBySimulationID(ctx, result.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get scenarios: %w", err)
		}
	case domain.SimulationTypeFailurePath:
		out.Paths, err = s.storage.FailurePathsBySimulationID(ctx, result.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get failure paths: %w", err)
		}
	}

	return &out, nil
}

// UserSimulations returns a page of simulations for the given user, optionally
// filtered by type, using RFC3339 cursor pagination.
func (s simulator) UserSimulations(ctx context.Context,
	userID domain.UserID,
	simulationType domain.SimulationType,
	cursor string,
	limit uint) ([]domain.SimulationResult, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}

	page, err := s.storage.UserSimulations(ctx, userID, simulationType, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get user simulations: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Simulations, next, nil
}

// New creates a new Simulator backed by the provided storage and provider
// manager.
func New(storage storage.Storage, ai AI) Simulator {
	return &simulator{
		storage: storage,
		ai:      ai,
	}
}
