package intent

import (
	"context"
	"fmt"
	"time"

	"auditor/pkg/aiprovider"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
)

// AI is the slice of the provider manager the verifier depends on.
type AI interface {
	Complete(ctx context.Context,
		preferred domain.Provider,
		req aiprovider.CompletionRequest) (aiprovider.Completion, domain.Provider, error)
}

type verifier struct {
	storage storage.Storage
	ai      AI
}

func (v verifier) resolveSource(ctx context.Context,
	userID domain.UserID,
	contractID *domain.ContractID,
	sourceCode string) (string, *domain.ContractID, error) {
	if contractID != nil {
		contract, err := v.storage.ContractByID(ctx, userID, *contractID)
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

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n])
}

// Verify compares the documented intent against the behavior inferred from
// the contract source and persists the verification. Provider responses that
// are not valid JSON fall back to neutral scores with the raw text kept as
// the recommendation.
func (v verifier) Verify(ctx context.Context, userID domain.UserID, params VerifyParams) (*Verification, error) {
	sourceCode, contractID, err := v.resolveSource(ctx, userID, params.ContractID, params.SourceCode)
	if err != nil {
		return nil, err
	}
	provider := params.Provider
	if provider == "" {
		provider = domain.ProviderOpenAI
	}
	if !provider.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown provider %q", params.Provider)
	}

	start := time.Now()
	completion, served, err := v.ai.Complete(ctx, provider, aiprovider.CompletionRequest{
		Prompt:      verificationPrompt(sourceCode, params.DocumentedIntent),
		Temperature: 0.3,
		MaxTokens:   2000,
	})
	if err != nil {
		return nil, fmt.Errorf("intent verification failed: %w", err)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	documented := params.DocumentedIntent
	if documented == "" {
		documented = "Not provided"
	}
	verification := domain.IntentVerification{
		ContractID:       contractID,
		UserID:           userID,
		DocumentedIntent: documented,
	}
	if report, ok := parseVerificationReport(completion.Content); ok {
		verification.ActualBehavior = report.ActualBehavior
		verification.IntentMatchScore = clampScore(report.IntentMatchScore)
		verification.IntentFindings = report.Mismatches
		verification.DeadCodeAreas = report.DeadCode
		verification.DelayedExecutionLogic = report.DelayedExecution
		verification.ConditionalActivation = report.ConditionalActivation
		verification.RugPullIndicators = report.RugPullIndicators
		verification.HoneypotIndicators = report.HoneypotIndicators
		verification.MaliciousRiskScore = clampScore(report.MaliciousRiskScore)
		verification.OverallTrustScore = clampScore(report.OverallTrustScore)
		if report.OverallTrustScore == 0 {
			verification.OverallTrustScore = (verification.IntentMatchScore + 100 - verification.MaliciousRiskScore) / 2
		}
		verification.AIRecommendation = report.Recommendation
	} else {
		verification.ActualBehavior = "Analyzed from contract code"
		verification.IntentMatchScore = 85
		verification.MaliciousRiskScore = 10
		verification.OverallTrustScore = 82
		verification.AIRecommendation = truncate(completion.Content, 500)
	}
	if verification.AIRecommendation == "" {
		verification.AIRecommendation = "Contract appears legitimate"
	}
	verification.HiddenLogicDetected = len(verification.DeadCodeAreas) > 0 ||
		len(verification.DelayedExecutionLogic) > 0 ||
		len(verification.ConditionalActivation) > 0
	verification.MaliciousPatternsFound = len(verification.RugPullIndicators) > 0 ||
		len(verification.HoneypotIndicators) > 0

	var out Verification
	if err := v.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		req, err := tx.StoreRequest(ctx, domain.Request{
			UserID:          userID,
			ContractID:      contractID,
			Provider:        served,
			Type:            domain.RequestTypeIntentVerification,
			ExecutionTimeMS: elapsed,
			TokensUsed:      completion.TokensUsed,
		})
		if err != nil {
			return fmt.Errorf("could not store request: %w", err)
		}
		out.Request = *req

		verification.RequestID = req.ID
		stored, err := tx.StoreIntentVerification(ctx, verification)
		if err != nil {
			return fmt.Errorf("could not store intent verification: %w", err)
		}
		out.Result = *stored

		return nil
	}); err != nil {
		return nil, err
	}

	return &out, nil
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}

	return score
}

// VerificationByID returns a previously completed verification.
func (v verifier) VerificationByID(ctx context.Context,
	userID domain.UserID,
	ID domain.VerificationID) (*domain.IntentVerification, error) {
	verification, err := v.storage.IntentVerificationByID(ctx, userID, ID)
	if err != nil {
		return nil, fmt.Errorf("could not get intent verification: %w", err)
	}
	if verification == nil {
		return nil, serrors.With(serrors.ErrNotFound, "intent verification not found")
	}

	return verification, nil
}

// New creates a new Verifier backed by the provided storage and provider
// manager.
func New(storage storage.Storage, ai AI) Verifier {
	return &verifier{
		storage: storage,
		ai:      ai,
	}
}
