package v1handler

import (
	"net/http"

	"auditor/internal/simulator"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type simulateTransactionRequest struct {
	ContractID       *uuid.UUID               `json:"contractId"`
	SourceCode       string                   `json:"sourceCode"`
	Provider         string                   `json:"provider"`
	FromAddress      string                   `json:"fromAddress"`
	Value            string                   `json:"value"`
	Calldata         string                   `json:"calldata"`
	StateAssumptions []domain.StateAssumption `json:"stateAssumptions"`
}

type simulationResponse struct {
	domain.SimulationResult
	accounting
}

// SimulateTransaction simulates a single transaction against the selected
// contract.
func (h *Handler) SimulateTransaction(c *gin.Context) {
	var req simulateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	transaction, err := h.deps.Simulator.SimulateTransaction(c.Request.Context(), UserID(c), simulator.TransactionParams{
		ContractID:       contractID(req.ContractID),
		SourceCode:       req.SourceCode,
		Provider:         domain.Provider(req.Provider),
		FromAddress:      req.FromAddress,
		Value:            req.Value,
		Calldata:         req.Calldata,
		StateAssumptions: req.StateAssumptions,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, simulationResponse{
		SimulationResult: transaction.Result,
		accounting:       accountingOf(transaction.Request),
	})
}

type whatIfRequest struct {
	ContractID          *uuid.UUID     `json:"contractId"`
	SourceCode          string         `json:"sourceCode"`
	Provider            string         `json:"provider"`
	ScenarioDescription string         `json:"scenarioDescription"`
	FunctionToTest      string         `json:"functionToTest"`
	InitialState        map[string]any `json:"initialState"`
	ModifiedState       map[string]any `json:"modifiedState"`
}

type whatIfResponse struct {
	domain.SimulationResult
	Scenarios       []domain.Scenario `json:"scenarios"`
	Recommendations []string          `json:"recommendations,omitempty"`
	accounting
}

// WhatIfScenario analyzes a hypothetical state change on the selected
// contract.
func (h *Handler) WhatIfScenario(c *gin.Context) {
	var req whatIfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	whatIf, err := h.deps.Simulator.WhatIf(c.Request.Context(), UserID(c), simulator.WhatIfParams{
		ContractID:          contractID(req.ContractID),
		SourceCode:          req.SourceCode,
		Provider:            domain.Provider(req.Provider),
		ScenarioDescription: req.ScenarioDescription,
		FunctionToTest:      req.FunctionToTest,
		InitialState:        req.InitialState,
		ModifiedState:       req.ModifiedState,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, whatIfResponse{
		SimulationResult: whatIf.Result,
		Scenarios:        whatIf.Scenarios,
		Recommendations:  whatIf.Recommendations,
		accounting:       accountingOf(whatIf.Request),
	})
}

type failurePathsResponse struct {
	domain.SimulationResult
	Paths          []domain.FailurePath `json:"failurePaths"`
	RiskAssessment string               `json:"riskAssessment"`
	accounting
}

// ExploreFailurePaths explores worst-case execution paths of the selected
// contract.
func (h *Handler) ExploreFailurePaths(c *gin.Context) {
	var req sourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	failure, err := h.deps.Simulator.FailurePaths(c.Request.Context(), UserID(c), simulator.FailurePathParams{
		ContractID: contractID(req.ContractID),
		SourceCode: req.SourceCode,
		Provider:   domain.Provider(req.Provider),
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, failurePathsResponse{
		SimulationResult: failure.Result,
		Paths:            failure.Paths,
		RiskAssessment:   failure.RiskAssessment,
		accounting:       accountingOf(failure.Request),
	})
}

// ListSimulations returns a page of the caller's simulations, optionally
// filtered by type, newest first.
func (h *Handler) ListSimulations(c *gin.Context) {
	cursor, limit, err := pageParams(c)
	if err != nil {
		writeError(c, err)

		return
	}

	simulationType := domain.SimulationType(c.Query("type"))

	items, next, err := h.deps.Simulator.UserSimulations(c.Request.Context(), UserID(c), simulationType, cursor, limit)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, listResponse[domain.SimulationResult]{Items: items, NextCursor: next})
}

type simulationDetailResponse struct {
	domain.SimulationResult
	Scenarios []domain.Scenario    `json:"scenarios,omitempty"`
	Paths     []domain.FailurePath `json:"failurePaths,omitempty"`
}

// GetSimulation returns a stored simulation with its scenarios and failure
// paths.
func (h *Handler) GetSimulation(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		writeError(c, err)

		return
	}

	simulation, err := h.deps.Simulator.Result(c.Request.Context(), UserID(c), domain.SimulationID(id))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, simulationDetailResponse{
		SimulationResult: simulation.Result,
		Scenarios:        simulation.Scenarios,
		Paths:            simulation.Paths,
	})
}
