package v1handler_test

import (
	"context"
	"net/http"
	"testing"

	"auditor/internal/analyzer"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func activeSubscription(userID domain.UserID, tier domain.Tier) *domain.Subscription {
	return &domain.Subscription{
		ID:     domain.SubscriptionID(uuid.New()),
		UserID: userID,
		Tier:   tier,
		Status: domain.SubscriptionStatusActive,
	}
}

func TestHandler_AnalyzeContract_SurfacesFallbackProvider(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureBasicAnalysis).
		Return(activeSubscription(ts.userID, domain.TierFree), nil)

	score := 72
	analysis := &analyzer.Analysis{
		Result: domain.AnalysisResult{
			ID:        domain.AnalysisResultID(uuid.New()),
			Type:      domain.AnalysisTypeSecurity,
			RiskScore: &score,
			Findings:  []domain.Finding{{Severity: domain.SeverityHigh, Title: "Reentrancy"}},
		},
		// caller asked for openai, the chain fell back to claude
		Request:     domain.Request{Provider: domain.ProviderClaude, TokensUsed: 420, ExecutionTimeMS: 12.5},
		Explanation: "one high severity issue",
	}
	ts.analyzer.EXPECT().
		Analyze(gomock.Any(), ts.userID, analyzer.SourceParams{
			SourceCode: "contract A {}",
			Provider:   domain.ProviderOpenAI,
		}).
		Return(analysis, nil)

	var logged domain.AccessLog
	ts.billing.EXPECT().
		LogAccess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry domain.AccessLog) error {
			logged = entry

			return nil
		})

	rec := ts.do(t, http.MethodPost, "/api/analyze-contract", ts.token, map[string]any{
		"sourceCode": "contract A {}",
		"provider":   "openai",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	type response struct {
		RiskScore    *int            `json:"riskScore"`
		ProviderUsed domain.Provider `json:"providerUsed"`
		TokensUsed   int             `json:"tokensUsed"`
		Explanation  string          `json:"explanation"`
	}
	got := decodeBody[response](t, rec)
	if got.ProviderUsed != domain.ProviderClaude {
		t.Fatalf("providerUsed = %q, want claude", got.ProviderUsed)
	}
	if got.RiskScore == nil || *got.RiskScore != 72 {
		t.Fatalf("riskScore = %v", got.RiskScore)
	}
	if got.TokensUsed != 420 {
		t.Fatalf("tokensUsed = %d", got.TokensUsed)
	}

	if logged.Endpoint != "/api/analyze-contract" {
		t.Fatalf("logged endpoint = %q", logged.Endpoint)
	}
	if logged.FeatureAccessed != domain.FeatureBasicAnalysis {
		t.Fatalf("logged feature = %q", logged.FeatureAccessed)
	}
	if logged.RequestType != domain.RequestTypeAnalyze {
		t.Fatalf("logged request type = %q", logged.RequestType)
	}
	if !logged.Success {
		t.Fatalf("access should be logged as successful")
	}
}

func TestHandler_AnalyzeContract_QuotaExceeded(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureBasicAnalysis).
		Return(nil, serrors.With(serrors.ErrQuotaExceeded, "monthly limit of 100 API calls reached"))

	rec := ts.do(t, http.MethodPost, "/api/analyze-contract", ts.token, map[string]any{
		"sourceCode": "contract A {}",
	})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeBody[struct {
		Code string `json:"code"`
	}](t, rec)
	if resp.Code != serrors.ErrQuotaExceeded.Error() {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestHandler_OptimizeContract_PaymentRequired(t *testing.T) {
	ts := newTestServer(t)

	// gas optimization is gated on the paid analysis feature
	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureContractAnalysis).
		Return(nil, serrors.With(serrors.ErrPaymentRequired, "the free tier does not include contract_analysis"))

	rec := ts.do(t, http.MethodPost, "/api/optimize-contract", ts.token, map[string]any{
		"sourceCode": "contract A {}",
	})
	if rec.Code != http.StatusPaymentRequired {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_AnalyzeContract_FailureLoggedAsUnsuccessful(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureBasicAnalysis).
		Return(activeSubscription(ts.userID, domain.TierFree), nil)
	ts.analyzer.EXPECT().
		Analyze(gomock.Any(), ts.userID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "either contractId or sourceCode must be provided"))

	var logged domain.AccessLog
	ts.billing.EXPECT().
		LogAccess(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry domain.AccessLog) error {
			logged = entry

			return nil
		})

	rec := ts.do(t, http.MethodPost, "/api/analyze-contract", ts.token, map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if logged.Success {
		t.Fatalf("failed call must be logged as unsuccessful")
	}
}

func TestHandler_ValidateDeployment(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureContractAnalysis).
		Return(activeSubscription(ts.userID, domain.TierBasic), nil)
	ts.billing.EXPECT().LogAccess(gomock.Any(), gomock.Any()).Return(nil)

	contractID := domain.ContractID(uuid.New())
	gas := int64(1_200_000)
	ts.analyzer.EXPECT().
		ValidateDeployment(gomock.Any(), ts.userID, contractID, "polygon", domain.ProviderOpenAI).
		Return(&analyzer.Deployment{
			Result:       domain.AnalysisResult{Type: domain.AnalysisTypeDeployment},
			Request:      domain.Request{Provider: domain.ProviderOpenAI},
			IsValid:      true,
			Network:      "polygon",
			EstimatedGas: &gas,
			Warnings:     []string{"floating pragma"},
		}, nil)

	rec := ts.do(t, http.MethodPost, "/api/deploy", ts.token, map[string]any{
		"contractId": uuid.UUID(contractID).String(),
		"network":    "polygon",
		"provider":   "openai",
		// ignored, kept for API compatibility
		"constructorArgs": []any{"0xdead", 7},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	type response struct {
		IsValid      bool     `json:"isValid"`
		Network      string   `json:"network"`
		EstimatedGas *int64   `json:"estimatedGas"`
		Warnings     []string `json:"warnings"`
	}
	got := decodeBody[response](t, rec)
	if !got.IsValid {
		t.Fatalf("isValid = false")
	}
	if got.Network != "polygon" {
		t.Fatalf("network = %q", got.Network)
	}
	if got.EstimatedGas == nil || *got.EstimatedGas != gas {
		t.Fatalf("estimatedGas = %v", got.EstimatedGas)
	}
	if len(got.Warnings) != 1 {
		t.Fatalf("warnings = %v", got.Warnings)
	}
}

func TestHandler_ValidateDeployment_MissingContractID(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureContractAnalysis).
		Return(activeSubscription(ts.userID, domain.TierBasic), nil)
	ts.billing.EXPECT().LogAccess(gomock.Any(), gomock.Any()).Return(nil)

	rec := ts.do(t, http.MethodPost, "/api/deploy", ts.token, map[string]any{"network": "polygon"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
