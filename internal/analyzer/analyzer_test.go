package analyzer_test

import (
	"context"
	"errors"
	"testing"

	"auditor/internal/analyzer"
	"auditor/pkg/aiprovider"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
	mockstorage "auditor/pkg/storage/mock"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// fakeAI stubs the provider manager with canned results per operation.
type fakeAI struct {
	analysis     aiprovider.Result[aiprovider.AnalysisReport]
	optimization aiprovider.Result[aiprovider.OptimizationReport]
	deployment   aiprovider.Result[aiprovider.DeploymentReport]
	err          error

	gotProvider domain.Provider
	gotSource   string
	gotNetwork  string
}

func (f *fakeAI) AnalyzeContract(_ context.Context,
	preferred domain.Provider,
	sourceCode string) (aiprovider.Result[aiprovider.AnalysisReport], error) {
	f.gotProvider, f.gotSource = preferred, sourceCode

	return f.analysis, f.err
}

func (f *fakeAI) OptimizeContract(_ context.Context,
	preferred domain.Provider,
	sourceCode string) (aiprovider.Result[aiprovider.OptimizationReport], error) {
	f.gotProvider, f.gotSource = preferred, sourceCode

	return f.optimization, f.err
}

func (f *fakeAI) ValidateDeployment(_ context.Context,
	preferred domain.Provider,
	sourceCode, network string) (aiprovider.Result[aiprovider.DeploymentReport], error) {
	f.gotProvider, f.gotSource, f.gotNetwork = preferred, sourceCode, network

	return f.deployment, f.err
}

func newTestAnalyzer(t *testing.T, ai *fakeAI) (*gomock.Controller, *mockstorage.MockStorage, analyzer.Analyzer) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, analyzer.New(st, ai)
}

// expectWithTx wires Storage.WithTx to execute the callback with a
// MockAllStorage.
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

func TestAnalyzer_Analyze_InlineSource(t *testing.T) {
	ai := &fakeAI{analysis: aiprovider.Result[aiprovider.AnalysisReport]{
		Report: aiprovider.AnalysisReport{
			Findings:    []domain.Finding{{Severity: domain.SeverityHigh, Title: "Reentrancy"}},
			RiskScore:   70,
			Explanation: "risky",
		},
		Provider:   domain.ProviderClaude,
		Raw:        `{"risk_score":70}`,
		TokensUsed: 512,
	}}
	ctrl, st, a := newTestAnalyzer(t, ai)
	userID := domain.UserID(uuid.New())
	requestID := domain.RequestID(uuid.New())

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.Request) (*domain.Request, error) {
				if req.Type != domain.RequestTypeAnalyze {
					t.Fatalf("expected analyze request, got %s", req.Type)
				}
				if req.Provider != domain.ProviderClaude {
					t.Fatalf("expected serving provider recorded, got %s", req.Provider)
				}
				if req.TokensUsed != 512 {
					t.Fatalf("expected tokens recorded, got %d", req.TokensUsed)
				}
				req.ID = requestID

				return &req, nil
			},
		)
		tx.EXPECT().StoreAnalysisResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.AnalysisResult) (*domain.AnalysisResult, error) {
				if res.RequestID != requestID {
					t.Fatalf("expected result linked to request")
				}
				if res.Type != domain.AnalysisTypeSecurity {
					t.Fatalf("expected security result, got %s", res.Type)
				}
				if res.RiskScore == nil || *res.RiskScore != 70 {
					t.Fatalf("expected risk score 70, got %v", res.RiskScore)
				}

				return &res, nil
			},
		)
	})

	got, err := a.Analyze(context.Background(), userID, analyzer.SourceParams{SourceCode: "contract C {}"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Explanation != "risky" {
		t.Fatalf("expected explanation, got %q", got.Explanation)
	}
	if ai.gotProvider != domain.ProviderOpenAI {
		t.Fatalf("expected default provider openai, got %s", ai.gotProvider)
	}
	if len(got.Result.Findings) != 1 {
		t.Fatalf("expected findings persisted, got %+v", got.Result.Findings)
	}
}

func TestAnalyzer_Analyze_ByContractID(t *testing.T) {
	ai := &fakeAI{analysis: aiprovider.Result[aiprovider.AnalysisReport]{Provider: domain.ProviderOpenAI}}
	ctrl, st, a := newTestAnalyzer(t, ai)
	userID := domain.UserID(uuid.New())
	contractID := domain.ContractID(uuid.New())

	st.EXPECT().ContractByID(gomock.Any(), userID, contractID).
		Return(&domain.Contract{ID: contractID, SourceCode: "contract Stored {}"}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.Request) (*domain.Request, error) {
				if req.ContractID == nil || *req.ContractID != contractID {
					t.Fatalf("expected request linked to contract")
				}

				return &req, nil
			},
		)
		tx.EXPECT().StoreAnalysisResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.AnalysisResult) (*domain.AnalysisResult, error) {
				return &res, nil
			},
		)
	})

	if _, err := a.Analyze(context.Background(), userID, analyzer.SourceParams{ContractID: &contractID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ai.gotSource != "contract Stored {}" {
		t.Fatalf("expected stored source used, got %q", ai.gotSource)
	}
}

func TestAnalyzer_Analyze_BadInput(t *testing.T) {
	_, st, a := newTestAnalyzer(t, &fakeAI{})

	// neither contract_id nor source_code
	_, err := a.Analyze(context.Background(), domain.UserID{}, analyzer.SourceParams{})
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// unknown provider
	_, err = a.Analyze(context.Background(), domain.UserID{}, analyzer.SourceParams{
		SourceCode: "contract C {}",
		Provider:   "llama",
	})
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	// unknown contract
	contractID := domain.ContractID(uuid.New())
	st.EXPECT().ContractByID(gomock.Any(), gomock.Any(), contractID).Return(nil, nil)
	_, err = a.Analyze(context.Background(), domain.UserID{}, analyzer.SourceParams{ContractID: &contractID})
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnalyzer_Analyze_ProviderChainFailure(t *testing.T) {
	ai := &fakeAI{err: serrors.With(serrors.ErrUnavailable, "all AI providers failed")}
	_, _, a := newTestAnalyzer(t, ai)

	_, err := a.Analyze(context.Background(), domain.UserID{}, analyzer.SourceParams{SourceCode: "contract C {}"})
	if err == nil || !errors.Is(err, serrors.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAnalyzer_Optimize(t *testing.T) {
	ai := &fakeAI{optimization: aiprovider.Result[aiprovider.OptimizationReport]{
		Report: aiprovider.OptimizationReport{
			Suggestions: []domain.Suggestion{{Area: "storage", Suggestion: "pack structs"}},
			Summary:     "minor savings",
		},
		Provider: domain.ProviderOpenAI,
	}}
	ctrl, st, a := newTestAnalyzer(t, ai)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.Request) (*domain.Request, error) {
				if req.Type != domain.RequestTypeOptimize {
					t.Fatalf("expected optimize request, got %s", req.Type)
				}

				return &req, nil
			},
		)
		tx.EXPECT().StoreAnalysisResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.AnalysisResult) (*domain.AnalysisResult, error) {
				if res.Type != domain.AnalysisTypeOptimization {
					t.Fatalf("expected optimization result, got %s", res.Type)
				}
				if res.RiskScore != nil {
					t.Fatalf("expected no risk score for optimization")
				}

				return &res, nil
			},
		)
	})

	got, err := a.Optimize(context.Background(), domain.UserID(uuid.New()), analyzer.SourceParams{
		SourceCode: "contract C {}",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Summary != "minor savings" || len(got.Result.Suggestions) != 1 {
		t.Fatalf("unexpected optimization: %+v", got)
	}
}

func TestAnalyzer_ValidateDeployment(t *testing.T) {
	gas := int64(1_200_000)
	ai := &fakeAI{deployment: aiprovider.Result[aiprovider.DeploymentReport]{
		Report: aiprovider.DeploymentReport{
			IsValid:      true,
			Warnings:     []string{"constructor has no access control"},
			EstimatedGas: &gas,
		},
		Provider: domain.ProviderOpenAI,
	}}
	ctrl, st, a := newTestAnalyzer(t, ai)
	userID := domain.UserID(uuid.New())
	contractID := domain.ContractID(uuid.New())

	st.EXPECT().ContractByID(gomock.Any(), userID, contractID).
		Return(&domain.Contract{ID: contractID, SourceCode: "contract C {}"}, nil)
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.Request) (*domain.Request, error) { return &req, nil },
		)
		tx.EXPECT().StoreAnalysisResult(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, res domain.AnalysisResult) (*domain.AnalysisResult, error) {
				if res.Type != domain.AnalysisTypeDeployment {
					t.Fatalf("expected deployment result, got %s", res.Type)
				}
				if len(res.Suggestions) != 1 || res.Suggestions[0].Area != "deployment" {
					t.Fatalf("expected warnings stored as suggestions, got %+v", res.Suggestions)
				}

				return &res, nil
			},
		)
	})

	got, err := a.ValidateDeployment(context.Background(), userID, contractID, "sepolia", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsValid || got.Network != "sepolia" {
		t.Fatalf("unexpected deployment verdict: %+v", got)
	}
	if got.EstimatedGas == nil || *got.EstimatedGas != gas {
		t.Fatalf("expected gas estimate, got %v", got.EstimatedGas)
	}
	if ai.gotNetwork != "sepolia" {
		t.Fatalf("expected network passed to provider, got %q", ai.gotNetwork)
	}
}

func TestAnalyzer_ValidateDeployment_UnknownNetwork(t *testing.T) {
	_, _, a := newTestAnalyzer(t, &fakeAI{})

	_, err := a.ValidateDeployment(context.Background(),
		domain.UserID{},
		domain.ContractID(uuid.New()),
		"dogecoin",
		"")
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}
