package simulator_test

import (
	"context"
	"errors"
	"testing"

	"auditor/internal/simulator"
	"auditor/pkg/aiprovider"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
	mockstorage "auditor/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// fakeAI returns a canned completion and records the prompt it was given.
type fakeAI struct {
	content  string
	provider domain.Provider
	err      error

	gotPrompt    string
	gotPreferred domain.Provider
}

func (f *fakeAI) Complete(_ context.Context,
	preferred domain.Provider,
	req aiprovider.CompletionRequest) (aiprovider.Completion, domain.Provider, error) {
	f.gotPrompt, f.gotPreferred = req.Prompt, preferred
	if f.err != nil {
		return aiprovider.Completion{}, "", f.err
	}
	provider := f.provider
	if provider == "" {
		provider = domain.ProviderOpenAI
	}

	return aiprovider.Completion{Content: f.content, TokensUsed: 100}, provider, nil
}

func newTestSimulator(t *testing.T, ai *fakeAI) (*gomock.Controller, *mockstorage.MockStorage, simulator.Simulator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, simulator.New(st, ai)
}

func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func expectRequestStored(t *testing.T, tx *mockstorage.MockAllStorage, wantType domain.RequestType) {
	t.Helper()

	tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.Request) (*domain.Request, error) {
			if req.Type != wantType {
				t.Fatalf("expected request type %s, got %s", wantType, req.Type)
			}
			req.ID = domain.RequestID(uuid.New())

			return &req, nil
		},
	)
}

func TestSimulator_SimulateTransaction_StructuredResponse(t *testing.T) {
	ai := &fakeAI{content: `{
		"status": "reverted",
		"gas_estimate": 53000,
		"findings": [{"severity": "HIGH", "description": "call to untrusted address"}],
		"trace": {"step": "CALL"}
	}`}
	ctrl, st, s := newTestSimulator(t, ai)
	userID := domain.UserID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		expectRequestStored(t, tx, domain.RequestTypeTransactionSimulation)
		tx.EXPECT().StoreSimulationResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.SimulationResult) (*domain.SimulationResult, error) {
				if res.Status != domain.SimulationStatusReverted {
					t.Fatalf("expected reverted status, got %s", res.Status)
				}
				if res.GasUsed == nil || *res.GasUsed != 53000 {
					t.Fatalf("expected gas estimate, got %v", res.GasUsed)
				}
				if len(res.Findings) != 1 || res.Findings[0].Severity != domain.SeverityHigh {
					t.Fatalf("expected normalized finding, got %+v", res.Findings)
				}
				if res.Findings[0].Type != "execution_analysis" {
					t.Fatalf("expected default finding type, got %q", res.Findings[0].Type)
				}
				res.ID = domain.SimulationID(uuid.New())

				return &res, nil
			},
		)
	})

	got, err := s.SimulateTransaction(context.Background(), userID, simulator.TransactionParams{
		SourceCode: "contract C {}",
		Calldata:   "0xa9059cbb",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result.Calldata != "0xa9059cbb" {
		t.Fatalf("expected calldata persisted, got %q", got.Result.Calldata)
	}
}

func TestSimulator_SimulateTransaction_RawTextFallback(t *testing.T) {
	ai := &fakeAI{content: "The transaction will likely succeed because the balance is sufficient."}
	ctrl, st, s := newTestSimulator(t, ai)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		expectRequestStored(t, tx, domain.RequestTypeTransactionSimulation)
		tx.EXPECT().StoreSimulationResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.SimulationResult) (*domain.SimulationResult, error) {
				if res.Status != domain.SimulationStatusSuccess {
					t.Fatalf("expected success fallback, got %s", res.Status)
				}
				if len(res.Findings) != 1 || res.Findings[0].Severity != domain.SeverityInfo {
					t.Fatalf("expected generic info finding, got %+v", res.Findings)
				}
				if res.AIInsights == "" {
					t.Fatalf("expected raw response kept")
				}

				return &res, nil
			},
		)
	})

	if _, err := s.SimulateTransaction(context.Background(), domain.UserID(uuid.New()), simulator.TransactionParams{
		SourceCode: "contract C {}",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSimulator_SimulateTransaction_MissingSource(t *testing.T) {
	_, _, s := newTestSimulator(t, &fakeAI{})

	_, err := s.SimulateTransaction(context.Background(), domain.UserID{}, simulator.TransactionParams{})
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestSimulator_WhatIf(t *testing.T) {
	ai := &fakeAI{content: "```json\n" + `{
		"expected_behavior": "fee stays at 2%",
		"actual_behavior": "fee jumps to 50%, swaps become uneconomical",
		"security_impact": "owner can grief users",
		"recommendations": ["cap the fee", "timelock fee changes"]
	}` + "\n```"}
	ctrl, st, s := newTestSimulator(t, ai)
	simulationID := domain.SimulationID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		expectRequestStored(t, tx, domain.RequestTypeWhatIfScenario)
		tx.EXPECT().StoreSimulationResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.SimulationResult) (*domain.SimulationResult, error) {
				if res.Type != domain.SimulationTypeScenario {
					t.Fatalf("expected scenario simulation, got %s", res.Type)
				}
				res.ID = simulationID

				return &res, nil
			},
		)
		tx.EXPECT().StoreScenarios(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, scenarios ...domain.Scenario) ([]domain.Scenario, error) {
				if len(scenarios) != 1 {
					t.Fatalf("expected one scenario")
				}
				sc := scenarios[0]
				if sc.SimulationID != simulationID {
					t.Fatalf("expected scenario linked to simulation")
				}
				if sc.ExpectedBehavior != "fee stays at 2%" {
					t.Fatalf("expected parsed behavior, got %q", sc.ExpectedBehavior)
				}
				if sc.Outcome != domain.ScenarioOutcomeSuccess {
					t.Fatalf("expected success outcome, got %s", sc.Outcome)
				}

				return scenarios, nil
			},
		)
	})

	got, err := s.WhatIf(context.Background(), domain.UserID(uuid.New()), simulator.WhatIfParams{
		SourceCode:          "contract C {}",
		ScenarioDescription: "What happens if owner changes the fee to 50%?",
		FunctionToTest:      "setFee",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Recommendations) != 2 || got.Recommendations[0] != "cap the fee" {
		t.Fatalf("expected parsed recommendations, got %+v", got.Recommendations)
	}
}

func TestSimulator_WhatIf_MissingDescription(t *testing.T) {
	_, _, s := newTestSimulator(t, &fakeAI{})

	_, err := s.WhatIf(context.Background(), domain.UserID{}, simulator.WhatIfParams{SourceCode: "contract C {}"})
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestSimulator_FailurePaths_StructuredResponse(t *testing.T) {
	ai := &fakeAI{content: `[
		{"description": "reentrancy on withdraw", "severity": "critical",
		 "triggers": ["fallback re-enters"], "consequences": ["drained funds"],
		 "mitigations": ["checks-effects-interactions"], "reasoning": "external call before state update"},
		{"description": "unbounded loop over holders", "severity": "medium",
		 "triggers": ["many holders"], "consequences": ["out of gas"], "mitigations": ["paginate"]}
	]`}
	ctrl, st, s := newTestSimulator(t, ai)
	simulationID := domain.SimulationID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		expectRequestStored(t, tx, domain.RequestTypeFailurePaths)
		tx.EXPECT().StoreSimulationResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.SimulationResult) (*domain.SimulationResult, error) {
				res.ID = simulationID

				return &res, nil
			},
		)
		tx.EXPECT().StoreFailurePaths(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, paths ...domain.FailurePath) ([]domain.FailurePath, error) {
				if len(paths) != 2 {
					t.Fatalf("expected two paths, got %d", len(paths))
				}
				if paths[0].Severity != domain.SeverityCritical {
					t.Fatalf("expected critical severity, got %s", paths[0].Severity)
				}
				if paths[0].SimulationID == nil || *paths[0].SimulationID != simulationID {
					t.Fatalf("expected paths linked to simulation")
				}

				return paths, nil
			},
		)
	})

	got, err := s.FailurePaths(context.Background(), domain.UserID(uuid.New()), simulator.FailurePathParams{
		SourceCode: "contract C {}",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RiskAssessment != "Critical - Exploitable failure paths identified" {
		t.Fatalf("unexpected risk assessment: %q", got.RiskAssessment)
	}
}

func TestSimulator_FailurePaths_RawTextFallback(t *testing.T) {
	ai := &fakeAI{content: "I found several issues but cannot produce JSON right now."}
	ctrl, st, s := newTestSimulator(t, ai)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		expectRequestStored(t, tx, domain.RequestTypeFailurePaths)
		tx.EXPECT().StoreSimulationResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.SimulationResult) (*domain.SimulationResult, error) {
				res.ID = domain.SimulationID(uuid.New())

				return &res, nil
			},
		)
		tx.EXPECT().StoreFailurePaths(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, paths ...domain.FailurePath) ([]domain.FailurePath, error) {
				if len(paths) != 1 || paths[0].Severity != domain.SeverityHigh {
					t.Fatalf("expected single generic high path, got %+v", paths)
				}
				if paths[0].AIReasoning == "" {
					t.Fatalf("expected raw response kept as reasoning")
				}

				return paths, nil
			},
		)
	})

	got, err := s.FailurePaths(context.Background(), domain.UserID(uuid.New()), simulator.FailurePathParams{
		SourceCode: "contract C {}",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RiskAssessment != "High - Multiple failure paths identified" {
		t.Fatalf("unexpected risk assessment: %q", got.RiskAssessment)
	}
}

func TestSimulator_Result(t *testing.T) {
	_, st, s := newTestSimulator(t, &fakeAI{})
	userID := domain.UserID(uuid.New())
	id := domain.SimulationID(uuid.New())

	// failure path simulations load their paths
	st.EXPECT().SimulationResultByID(gomock.Any(), userID, id).
		Return(&domain.SimulationResult{ID: id, Type: domain.SimulationTypeFailurePath}, nil)
	st.EXPECT().FailurePathsBySimulationID(gomock.Any(), id).
		Return([]domain.FailurePath{{Severity: domain.SeverityHigh}}, nil)

	got, err := s.Result(context.Background(), userID, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Paths) != 1 {
		t.Fatalf("expected paths loaded, got %+v", got.Paths)
	}

	// not found
	st.EXPECT().SimulationResultByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = s.Result(context.Background(), userID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSimulator_UserSimulations_InvalidCursor(t *testing.T) {
	_, _, s := newTestSimulator(t, &fakeAI{})

	_, _, err := s.UserSimulations(context.Background(), domain.UserID{}, "", "not-a-time", 10)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
