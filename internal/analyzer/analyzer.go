package analyzer

import (
	"context"
	"fmt"
	"time"

	"auditor/internal/contracts"
	"auditor/pkg/aiprovider"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
	"auditor/pkg/storage"
)

// AI is the slice of the provider manager the analyzer depends on.
type AI interface {
	AnalyzeContract(ctx context.Context,
		preferred domain.Provider,
		sourceCode string) (aiprovider.Result[aiprovider.AnalysisReport], error)
	OptimizeContract(ctx context.Context,
		preferred domain.Provider,
		sourceCode string) (aiprovider.Result[aiprovider.OptimizationReport], error)
	ValidateDeployment(ctx context.Context,
		preferred domain.Provider,
		sourceCode, network string) (aiprovider.Result[aiprovider.DeploymentReport], error)
}

// analyzer is the concrete implementation of the Analyzer interface. It
// resolves contract source, runs the provider chain and persists the request
// accounting row together with the result in one transaction.
type analyzer struct {
	storage storage.Storage
	ai      AI
}

// resolveSource returns the contract source to analyze, either from a
// registered contract or from the inline source code.
func (a analyzer) resolveSource(ctx context.Context,
	userID domain.UserID,
	params SourceParams) (string, *domain.ContractID, error) {
	if params.ContractID != nil {
		contract, err := a.storage.ContractByID(ctx, userID, *params.ContractID)
		if err != nil {
			return "", nil, fmt.Errorf("could not get contract: %w", err)
		}
		if contract == nil {
			return "", nil, serrors.With(serrors.ErrNotFound, "contract not found")
		}

		return contract.SourceCode, &contract.ID, nil
	}
	if params.SourceCode == "" {
		return "", nil, serrors.With(serrors.ErrBadRequest, "either contract_id or source_code must be provided")
	}

	return params.SourceCode, nil, nil
}

func preferredProvider(provider domain.Provider) (domain.Provider, error) {
	if provider == "" {
		return domain.ProviderOpenAI, nil
	}
	if !provider.Valid() {
		return "", serrors.With(serrors.ErrBadRequest, "unknown provider %q", provider)
	}

	return provider, nil
}

// persist writes the request accounting row and the analysis result in one
// transaction. The stored rows are returned with their generated fields.
func (a analyzer) persist(ctx context.Context,
	request domain.Request,
	result domain.AnalysisResult) (*domain.Request, *domain.AnalysisResult, error) {
	var storedRequest *domain.Request
	var storedResult *domain.AnalysisResult
	if err := a.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		req, err := tx.StoreRequest(ctx, request)
		if err != nil {
			return fmt.Errorf("could not store request: %w", err)
		}
		storedRequest = req

		result.RequestID = req.ID
		res, err := tx.StoreAnalysisResult(ctx, result)
		if err != nil {
			return fmt.Errorf("could not store analysis result: %w", err)
		}
		storedResult = res

		return nil
	}); err != nil {
		return nil, nil, err
	}

	return storedRequest, storedResult, nil
}

// Analyze runs a security analysis of the given contract source and persists
// the outcome.
func (a analyzer) Analyze(ctx context.Context, userID domain.UserID, params SourceParams) (*Analysis, error) {
	sourceCode, contractID, err := a.resolveSource(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	provider, err := preferredProvider(params.Provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := a.ai.AnalyzeContract(ctx, provider, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	riskScore := res.Report.RiskScore
	request, result, err := a.persist(ctx,
		domain.Request{
			UserID:          userID,
			ContractID:      contractID,
			Provider:        res.Provider,
			Type:            domain.RequestTypeAnalyze,
			ExecutionTimeMS: elapsed,
			TokensUsed:      res.TokensUsed,
		},
		domain.AnalysisResult{
			ContractID:  contractID,
			Type:        domain.AnalysisTypeSecurity,
			RiskScore:   &riskScore,
			Findings:    res.Report.Findings,
			RawResponse: res.Raw,
		})
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Result:      *result,
		Request:     *request,
		Explanation: res.Report.Explanation,
	}, nil
}

// Optimize runs a gas optimization of the given contract source and persists
// the outcome.
func (a analyzer) Optimize(ctx context.Context, userID domain.UserID, params SourceParams) (*Optimization, error) {
	sourceCode, contractID, err := a.resolveSource(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	provider, err := preferredProvider(params.Provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := a.ai.OptimizeContract(ctx, provider, sourceCode)
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	request, result, err := a.persist(ctx,
		domain.Request{
			UserID:          userID,
			ContractID:      contractID,
			Provider:        res.Provider,
			Type:            domain.RequestTypeOptimize,
			ExecutionTimeMS: elapsed,
			TokensUsed:      res.TokensUsed,
		},
		domain.AnalysisResult{
			ContractID:  contractID,
			Type:        domain.AnalysisTypeOptimization,
			Suggestions: res.Report.Suggestions,
			RawResponse: res.Raw,
		})
	if err != nil {
		return nil, err
	}

	return &Optimization{
		Result:  *result,
		Request: *request,
		Summary: res.Report.Summary,
	}, nil
}

// ValidateDeployment checks a registered contract for deployment on the given
// network and persists the outcome. Unlike Analyze and Optimize, inline
// source is not accepted.
func (a analyzer) ValidateDeployment(ctx context.Context,
	userID domain.UserID,
	contractID domain.ContractID,
	network string,
	provider domain.Provider) (*Deployment, error) {
	if !contracts.ValidNetwork(network) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown network %q", network)
	}

	contract, err := a.storage.ContractByID(ctx, userID, contractID)
	if err != nil {
		return nil, fmt.Errorf("could not get contract: %w", err)
	}
	if contract == nil {
		return nil, serrors.With(serrors.ErrNotFound, "contract not found")
	}

	preferred, err := preferredProvider(provider)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := a.ai.ValidateDeployment(ctx, preferred, contract.SourceCode, network)
	if err != nil {
		return nil, fmt.Errorf("deployment validation failed: %w", err)
	}
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	suggestions := make([]domain.Suggestion, 0, len(res.Report.Warnings))
	for _, w := range res.Report.Warnings {
		suggestions = append(suggestions, domain.Suggestion{Area: "deployment", Suggestion: w})
	}

	request, result, err := a.persist(ctx,
		domain.Request{
			UserID:          userID,
			ContractID:      &contract.ID,
			Provider:        res.Provider,
			Type:            domain.RequestTypeDeploy,
			ExecutionTimeMS: elapsed,
			TokensUsed:      res.TokensUsed,
		},
		domain.AnalysisResult{
			ContractID:  &contract.ID,
			Type:        domain.AnalysisTypeDeployment,
			Suggestions: suggestions,
			RawResponse: res.Raw,
		})
	if err != nil {
		return nil, err
	}

	return &Deployment{
		Result:       *result,
		Request:      *request,
		IsValid:      res.Report.IsValid,
		Network:      network,
		EstimatedGas: res.Report.EstimatedGas,
		Warnings:     res.Report.Warnings,
	}, nil
}

// New creates a new Analyzer backed by the provided storage and provider
// manager.
func New(storage storage.Storage, ai AI) Analyzer {
	return &analyzer{
		storage: storage,
		ai:      ai,
	}
}
