package v1handler

import (
	"net/http"

	"auditor/internal/analyzer"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sourceRequest selects the contract to work on: a registered contract by ID
// or inline source code.
type sourceRequest struct {
	ContractID *uuid.UUID `json:"contractId"`
	SourceCode string     `json:"sourceCode"`
	Provider   string     `json:"provider"`
}

func (r sourceRequest) params() analyzer.SourceParams {
	return analyzer.SourceParams{
		ContractID: contractID(r.ContractID),
		SourceCode: r.SourceCode,
		Provider:   domain.Provider(r.Provider),
	}
}

func contractID(id *uuid.UUID) *domain.ContractID {
	if id == nil {
		return nil
	}
	cid := domain.ContractID(*id)

	return &cid
}

// accounting is the per-request accounting block appended to AI responses.
type accounting struct {
	ProviderUsed    domain.Provider `json:"providerUsed"`
	TokensUsed      int             `json:"tokensUsed,omitempty"`
	ExecutionTimeMS float64         `json:"executionTimeMs"`
}

func accountingOf(request domain.Request) accounting {
	return accounting{
		ProviderUsed:    request.Provider,
		TokensUsed:      request.TokensUsed,
		ExecutionTimeMS: request.ExecutionTimeMS,
	}
}

type analysisResponse struct {
	domain.AnalysisResult
	Explanation string `json:"explanation,omitempty"`
	accounting
}

// AnalyzeContract runs a security analysis on the selected contract.
func (h *Handler) AnalyzeContract(c *gin.Context) {
	var req sourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	analysis, err := h.deps.Analyzer.Analyze(c.Request.Context(), UserID(c), req.params())
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, analysisResponse{
		AnalysisResult: analysis.Result,
		Explanation:    analysis.Explanation,
		accounting:     accountingOf(analysis.Request),
	})
}

type optimizationResponse struct {
	domain.AnalysisResult
	Summary string `json:"summary,omitempty"`
	accounting
}

// OptimizeContract runs a gas optimization analysis on the selected contract.
func (h *Handler) OptimizeContract(c *gin.Context) {
	var req sourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	optimization, err := h.deps.Analyzer.Optimize(c.Request.Context(), UserID(c), req.params())
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, optimizationResponse{
		AnalysisResult: optimization.Result,
		Summary:        optimization.Summary,
		accounting:     accountingOf(optimization.Request),
	})
}

type deployRequest struct {
	ContractID uuid.UUID `json:"contractId"`
	Network    string    `json:"network"`
	Provider   string    `json:"provider"`
	// ConstructorArgs is accepted for compatibility; validation does not use
	// constructor arguments yet.
	ConstructorArgs []any `json:"constructorArgs"`
}

type deployResponse struct {
	domain.AnalysisResult
	IsValid      bool     `json:"isValid"`
	Network      string   `json:"network"`
	EstimatedGas *int64   `json:"estimatedGas,omitempty"`
	Warnings     []string `json:"warnings"`
	accounting
}

// ValidateDeployment validates a registered contract for deployment on a
// network.
func (h *Handler) ValidateDeployment(c *gin.Context) {
	var req deployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}
	if req.ContractID == uuid.Nil {
		writeError(c, serrors.With(serrors.ErrBadRequest, "contractId is required"))

		return
	}

	deployment, err := h.deps.Analyzer.ValidateDeployment(c.Request.Context(), UserID(c),
		domain.ContractID(req.ContractID), req.Network, domain.Provider(req.Provider))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, deployResponse{
		AnalysisResult: deployment.Result,
		IsValid:        deployment.IsValid,
		Network:        deployment.Network,
		EstimatedGas:   deployment.EstimatedGas,
		Warnings:       deployment.Warnings,
		accounting:     accountingOf(deployment.Request),
	})
}
