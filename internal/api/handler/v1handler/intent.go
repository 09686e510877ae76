package v1handler

import (
	"net/http"

	"auditor/internal/intent"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type verifyIntentRequest struct {
	ContractID       *uuid.UUID `json:"contractId"`
	SourceCode       string     `json:"sourceCode"`
	DocumentedIntent string     `json:"documentedIntent"`
	Provider         string     `json:"provider"`
}

type verificationResponse struct {
	domain.IntentVerification
	accounting
}

// VerifyIntent compares a contract's documented intent with its actual
// behavior.
func (h *Handler) VerifyIntent(c *gin.Context) {
	var req verifyIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload"))

		return
	}

	verification, err := h.deps.Intent.Verify(c.Request.Context(), UserID(c), intent.VerifyParams{
		ContractID:       contractID(req.ContractID),
		SourceCode:       req.SourceCode,
		DocumentedIntent: req.DocumentedIntent,
		Provider:         domain.Provider(req.Provider),
	})
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, verificationResponse{
		IntentVerification: verification.Result,
		accounting:         accountingOf(verification.Request),
	})
}

// GetIntentVerification returns a stored verification by ID.
func (h *Handler) GetIntentVerification(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		writeError(c, err)

		return
	}

	verification, err := h.deps.Intent.VerificationByID(c.Request.Context(), UserID(c), domain.VerificationID(id))
	if err != nil {
		writeError(c, err)

		return
	}

	c.JSON(http.StatusOK, verification)
}
