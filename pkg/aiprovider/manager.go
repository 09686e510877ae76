package aiprovider

import (
	"context"
	"errors"

	"auditor/pkg/domain"
	"auditor/pkg/logger"
	"auditor/pkg/serrors"

	"go.uber.org/zap"
)

// Result pairs a parsed report with provenance shared by all manager methods.
type Result[T any] struct {
	// Report is the parsed provider output.
	Report T
	// Provider is the provider that actually served the request.
	Provider domain.Provider
	// Raw is the full completion text as returned by the provider.
	Raw string
	// TokensUsed is the token count reported by the provider.
	TokensUsed int
}

// Manager runs requests against a set of provider clients with fallback. The
// preferred provider is tried first, then the remaining clients in their
// configured order. There is no backoff or circuit breaking; attempts are
// strictly sequential.
type Manager struct {
	clients []Client
}

// NewManager creates a Manager over the given clients, kept in priority
// order. At least one client must be configured.
func NewManager(clients ...Client) (*Manager, error) {
	if len(clients) == 0 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"no AI providers available, configure at least one API key")
	}

	return &Manager{clients: clients}, nil
}

// Providers returns the names of the configured clients in priority order.
func (m *Manager) Providers() []domain.Provider {
	out := make([]domain.Provider, 0, len(m.clients))
	for _, c := range m.clients {
		out = append(out, c.Name())
	}

	return out
}

// ordered returns the clients with the preferred one moved to the front.
func (m *Manager) ordered(preferred domain.Provider) []Client {
	out := make([]Client, 0, len(m.clients))
	for _, c := range m.clients {
		if c.Name() == preferred {
			out = append(out, c)
		}
	}
	for _, c := range m.clients {
		if c.Name() != preferred {
			out = append(out, c)
		}
	}

	return out
}

// attempt runs fn against each client until one succeeds. A parse failure
// counts as a provider failure and moves on to the next client. When every
// client fails, the aggregate error is wrapped in ErrUnavailable.
func (m *Manager) attempt(ctx context.Context, preferred domain.Provider, fn func(Client) error) (domain.Provider, error) {
	var errs []error
	for _, client := range m.ordered(preferred) {
		if err := fn(client); err != nil {
			logger.Warn(ctx, "AI provider failed, trying next",
				zap.String("provider", string(client.Name())),
				zap.Error(err))
			errs = append(errs, err)

			continue
		}

		return client.Name(), nil
	}

	return "", serrors.Wrap(serrors.ErrUnavailable, errors.Join(errs...), "all AI providers failed")
}

// AnalyzeContract runs a security analysis of the given source code.
func (m *Manager) AnalyzeContract(ctx context.Context,
	preferred domain.Provider,
	sourceCode string) (Result[AnalysisReport], error) {
	var res Result[AnalysisReport]
	provider, err := m.attempt(ctx, preferred, func(c Client) error {
		completion, err := c.Complete(ctx, CompletionRequest{
			System:      analysisSystem,
			Prompt:      analysisPrompt(sourceCode),
			Temperature: 0.3,
			MaxTokens:   2000,
		})
		if err != nil {
			return err
		}
		// decode into a fresh report so a failed attempt's partial parse
		// cannot leak into the next provider's result
		var report AnalysisReport
		if err := parseReport(completion.Content, &report); err != nil {
			return err
		}

		res.Report = report
		res.Raw = completion.Content
		res.TokensUsed = completion.TokensUsed

		return nil
	})
	if err != nil {
		return Result[AnalysisReport]{}, err
	}

	res.Provider = provider

	return res, nil
}

// OptimizeContract asks for gas optimization suggestions for the given source
// code.
func (m *Manager) OptimizeContract(ctx context.Context,
	preferred domain.Provider,
	sourceCode string) (Result[OptimizationReport], error) {
	var res Result[OptimizationReport]
	provider, err := m.attempt(ctx, preferred, func(c Client) error {
		completion, err := c.Complete(ctx, CompletionRequest{
			System:      optimizationSystem,
			Prompt:      optimizationPrompt(sourceCode),
			Temperature: 0.3,
			MaxTokens:   1500,
		})
		if err != nil {
			return err
		}
		var report OptimizationReport
		if err := parseReport(completion.Content, &report); err != nil {
			return err
		}

		res.Report = report
		res.Raw = completion.Content
		res.TokensUsed = completion.TokensUsed

		return nil
	})
	if err != nil {
		return Result[OptimizationReport]{}, err
	}

	res.Provider = provider

	return res, nil
}

// ValidateDeployment checks the source code for deployment on the given
// network.
func (m *Manager) ValidateDeployment(ctx context.Context,
	preferred domain.Provider,
	sourceCode, network string) (Result[DeploymentReport], error) {
	var res Result[DeploymentReport]
	provider, err := m.attempt(ctx, preferred, func(c Client) error {
		completion, err := c.Complete(ctx, CompletionRequest{
			System:      deploymentSystem(network),
			Prompt:      deploymentPrompt(sourceCode, network),
			Temperature: 0.2,
			MaxTokens:   1000,
		})
		if err != nil {
			return err
		}
		var report DeploymentReport
		if err := parseReport(completion.Content, &report); err != nil {
			return err
		}

		res.Report = report
		res.Raw = completion.Content
		res.TokensUsed = completion.TokensUsed

		return nil
	})
	if err != nil {
		return Result[DeploymentReport]{}, err
	}

	res.Provider = provider

	return res, nil
}

// Complete runs a free-form completion with fallback. Callers that need
// domain-specific prompts (simulation, intent verification) build the request
// themselves and parse the raw content.
func (m *Manager) Complete(ctx context.Context,
	preferred domain.Provider,
	req CompletionRequest) (Completion, domain.Provider, error) {
	var completion Completion
	provider, err := m.attempt(ctx, preferred, func(c Client) error {
		var err error
		completion, err = c.Complete(ctx, req)

		return err
	})
	if err != nil {
		return Completion{}, "", err
	}

	return completion, provider, nil
}
