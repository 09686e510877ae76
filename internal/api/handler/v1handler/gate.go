package v1handler

import (
	"net/http"
	"time"

	"auditor/pkg/domain"

	"github.com/gin-gonic/gin"
)

// gateSpec names the feature an endpoint consumes and how its accesses are
// classified in the access log.
type gateSpec struct {
	feature     domain.Feature
	requestType domain.RequestType
}

//nolint: gochecknoglobals
var (
	gateAnalyze      = gateSpec{domain.FeatureBasicAnalysis, domain.RequestTypeAnalyze}
	gateOptimize     = gateSpec{domain.FeatureContractAnalysis, domain.RequestTypeOptimize}
	gateDeploy       = gateSpec{domain.FeatureContractAnalysis, domain.RequestTypeDeploy}
	gateTransaction  = gateSpec{domain.FeatureLimitedSimulations, domain.RequestTypeTransactionSimulation}
	gateWhatIf       = gateSpec{domain.FeatureSimulations, domain.RequestTypeWhatIfScenario}
	gateFailurePaths = gateSpec{domain.FeatureSimulations, domain.RequestTypeFailurePaths}
	gateIntent       = gateSpec{domain.FeatureIntentVerification, domain.RequestTypeIntentVerification}
)

// gate returns a middleware that authorizes the request against the user's
// subscription before the handler runs and records the access afterwards.
// Authorization consumes one call from the monthly quota.
func (h *Handler) gate(spec gateSpec) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)

		if _, err := h.deps.Billing.Authorize(c.Request.Context(), userID, spec.feature); err != nil {
			writeError(c, err)

			return
		}

		start := time.Now()
		c.Next()

		entry := domain.AccessLog{
			UserID:          userID,
			Endpoint:        c.FullPath(),
			FeatureAccessed: spec.feature,
			RequestType:     spec.requestType,
			ExecutionTimeMS: float64(time.Since(start).Microseconds()) / 1000,
			Success:         c.Writer.Status() < http.StatusBadRequest,
		}
		// LogAccess reports its own failure, the gated call already succeeded
		_ = h.deps.Billing.LogAccess(c.Request.Context(), entry)
	}
}
