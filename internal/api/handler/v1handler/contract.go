package v1handler

import (
	"net/http"

	"auditor/internal/contracts"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
)

type registerContractRequest struct {
	Name       string `json:"name"`
	SourceCode string `json:"sourceCode"`
	Address    string `json:"address"`
	Network    string `json:"network"`
	Language   string `json:"language"`
}

// RegisterContract registers a new contract for the caller.
func (h *Handler) RegisterContract(c *gin.Context) {
	var req registerContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	contract, err := h.deps.Contracts.Register(c.Request.Context(), UserID(c), contracts.RegisterParams{
		Name:       req.Name,
		SourceCode: req.SourceCode,
		Address:    req.Address,
		Network:    req.Network,
		Language:   req.Language,
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusCreated, contract)
}

// ListContracts returns a page of the caller's contracts, newest first.
func (h *Handler) ListContracts(c *gin.Context) {
	cursor, limit, err := pageParams(c)
	if err != nil {
		writeError(c, err)

		return
	}

	items, next, err := h.deps.Contracts.UserContracts(c.Request.Context(), UserID(c), cursor, limit)
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, listResponse[domain.Contract]{Items: items, NextCursor: next})
}

// GetContract returns one of the caller's contracts by ID.
func (h *Handler) GetContract(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		writeError(c, err)

		return
	}

	contract, err := h.deps.Contracts.Contract(c.Request.Context(), UserID(c), domain.ContractID(id))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, contract)
}

// DeleteContract soft-deletes one of the caller's contracts and pauses its
// monitoring.
func (h *Handler) DeleteContract(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		writeError(c, err)

		return
	}

	if err := h.deps.Contracts.Delete(c.Request.Context(), UserID(c), domain.ContractID(id)); err != nil {
		writeError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// MonitorContract returns the monitoring state of a deployed contract,
// starting monitoring on the first request.
func (h *Handler) MonitorContract(c *gin.Context) {
	monitoring, err := h.deps.Contracts.Monitor(c.Request.Context(), UserID(c), c.Param("address"))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, monitoring)
}
