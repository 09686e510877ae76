package v1handler_test

import (
	"net/http"
	"testing"

	"auditor/internal/simulator"
	"auditor/pkg/domain"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestHandler_SimulateTransaction(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureLimitedSimulations).
		Return(activeSubscription(ts.userID, domain.TierFree), nil)
	ts.billing.EXPECT().LogAccess(gomock.Any(), gomock.Any()).Return(nil)

	gas := int64(53_000)
	ts.simulator.EXPECT().
		SimulateTransaction(gomock.Any(), ts.userID, simulator.TransactionParams{
			SourceCode:  "contract A {}",
			FromAddress: "0xfeed",
			Value:       "1000000000000000000",
			Calldata:    "0xa9059cbb",
		}).
		Return(&simulator.Transaction{
			Result: domain.SimulationResult{
				ID:      domain.SimulationID(uuid.New()),
				Type:    domain.SimulationTypeTransaction,
				Status:  domain.SimulationStatusReverted,
				GasUsed: &gas,
				Findings: []domain.SimulationFinding{
					{Type: "execution_analysis", Severity: domain.SeverityHigh, Description: "transfer exceeds balance"},
				},
			},
			Request: domain.Request{Provider: domain.ProviderOpenAI, ExecutionTimeMS: 8.2},
		}, nil)

	rec := ts.do(t, http.MethodPost, "/api/simulate/transaction", ts.token, map[string]any{
		"sourceCode":  "contract A {}",
		"fromAddress": "0xfeed",
		"value":       "1000000000000000000",
		"calldata":    "0xa9059cbb",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	type response struct {
		Status       domain.SimulationStatus    `json:"status"`
		GasUsed      *int64                     `json:"gasUsed"`
		Findings     []domain.SimulationFinding `json:"findings"`
		ProviderUsed domain.Provider            `json:"providerUsed"`
	}
	got := decodeBody[response](t, rec)
	if got.Status != domain.SimulationStatusReverted {
		t.Fatalf("status = %q", got.Status)
	}
	if got.GasUsed == nil || *got.GasUsed != gas {
		t.Fatalf("gasUsed = %v", got.GasUsed)
	}
	if len(got.Findings) != 1 {
		t.Fatalf("findings = %v", got.Findings)
	}
	if got.ProviderUsed != domain.ProviderOpenAI {
		t.Fatalf("providerUsed = %q", got.ProviderUsed)
	}
}

func TestHandler_WhatIfScenario(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureSimulations).
		Return(activeSubscription(ts.userID, domain.TierBasic), nil)
	ts.billing.EXPECT().LogAccess(gomock.Any(), gomock.Any()).Return(nil)

	simulationID := domain.SimulationID(uuid.New())
	ts.simulator.EXPECT().
		WhatIf(gomock.Any(), ts.userID, simulator.WhatIfParams{
			SourceCode:          "contract A {}",
			ScenarioDescription: "owner raises fee to 50%",
			FunctionToTest:      "setFee",
		}).
		Return(&simulator.WhatIf{
			Result: domain.SimulationResult{ID: simulationID, Type: domain.SimulationTypeScenario},
			Scenarios: []domain.Scenario{{
				ID:           domain.ScenarioID(uuid.New()),
				SimulationID: simulationID,
				Outcome:      domain.ScenarioOutcomeSuccess,
			}},
			Recommendations: []string{"cap the fee"},
			Request:         domain.Request{Provider: domain.ProviderGrok},
		}, nil)

	rec := ts.do(t, http.MethodPost, "/api/simulate/what-if", ts.token, map[string]any{
		"sourceCode":          "contract A {}",
		"scenarioDescription": "owner raises fee to 50%",
		"functionToTest":      "setFee",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	type response struct {
		Scenarios       []domain.Scenario `json:"scenarios"`
		Recommendations []string          `json:"recommendations"`
	}
	got := decodeBody[response](t, rec)
	if len(got.Scenarios) != 1 {
		t.Fatalf("scenarios = %v", got.Scenarios)
	}
	if len(got.Recommendations) != 1 || got.Recommendations[0] != "cap the fee" {
		t.Fatalf("recommendations = %v", got.Recommendations)
	}
}

func TestHandler_ExploreFailurePaths(t *testing.T) {
	ts := newTestServer(t)

	ts.billing.EXPECT().
		Authorize(gomock.Any(), ts.userID, domain.FeatureSimulations).
		Return(activeSubscription(ts.userID, domain.TierPro), nil)
	ts.billing.EXPECT().LogAccess(gomock.Any(), gomock.Any()).Return(nil)

	ts.simulator.EXPECT().
		FailurePaths(gomock.Any(), ts.userID, simulator.FailurePathParams{SourceCode: "contract A {}"}).
		Return(&simulator.Failure{
			Result: domain.SimulationResult{Type: domain.SimulationTypeFailurePath},
			Paths: []domain.FailurePath{
				{Description: "owner drains pool", Severity: domain.SeverityCritical},
			},
			RiskAssessment: "Critical - Exploitable failure paths identified",
			Request:        domain.Request{Provider: domain.ProviderOpenAI},
		}, nil)

	rec := ts.do(t, http.MethodPost, "/api/simulate/failure-paths", ts.token, map[string]any{
		"sourceCode": "contract A {}",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	type response struct {
		Paths          []domain.FailurePath `json:"failurePaths"`
		RiskAssessment string               `json:"riskAssessment"`
	}
	got := decodeBody[response](t, rec)
	if len(got.Paths) != 1 || got.Paths[0].Severity != domain.SeverityCritical {
		t.Fatalf("paths = %v", got.Paths)
	}
	if got.RiskAssessment == "" {
		t.Fatalf("riskAssessment missing")
	}
}

func TestHandler_ListSimulations_TypeFilter(t *testing.T) {
	ts := newTestServer(t)

	ts.simulator.EXPECT().
		UserSimulations(gomock.Any(), ts.userID, domain.SimulationTypeScenario, "", uint(20)).
		Return([]domain.SimulationResult{{Type: domain.SimulationTypeScenario}}, "", nil)

	rec := ts.do(t, http.MethodGet, "/api/simulate/results?type=scenario", ts.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_GetSimulation(t *testing.T) {
	ts := newTestServer(t)

	id := domain.SimulationID(uuid.New())
	ts.simulator.EXPECT().
		Result(gomock.Any(), ts.userID, id).
		Return(&simulator.Simulation{
			Result: domain.SimulationResult{ID: id, Type: domain.SimulationTypeFailurePath},
			Paths:  []domain.FailurePath{{Severity: domain.SeverityHigh}},
		}, nil)

	rec := ts.do(t, http.MethodGet, "/api/simulate/results/"+uuid.UUID(id).String(), ts.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	type response struct {
		Type  domain.SimulationType `json:"simulationType"`
		Paths []domain.FailurePath  `json:"failurePaths"`
	}
	got := decodeBody[response](t, rec)
	if got.Type != domain.SimulationTypeFailurePath {
		t.Fatalf("type = %q", got.Type)
	}
	if len(got.Paths) != 1 {
		t.Fatalf("paths = %v", got.Paths)
	}
}
