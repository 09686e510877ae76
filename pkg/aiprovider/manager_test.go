package aiprovider_test

import (
	"context"
	"errors"
	"testing"

	"auditor/pkg/aiprovider"
	mockaiprovider "auditor/pkg/aiprovider/mock"
	"auditor/pkg/domain"
	"auditor/pkg/logger"
	"auditor/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.Setup(logger.DevelopmentEnvironment)
}

func newClient(ctrl *gomock.Controller, name domain.Provider) *mockaiprovider.MockClient {
	c := mockaiprovider.NewMockClient(ctrl)
	c.EXPECT().Name().Return(name).AnyTimes()

	return c
}

func TestNewManager_NoClients(t *testing.T) {
	t.Parallel()

	_, err := aiprovider.NewManager()
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestManager_AnalyzeContract_PreferredSucceeds(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	openAI := newClient(ctrl, domain.ProviderOpenAI)
	claude := newClient(ctrl, domain.ProviderClaude)

	openAI.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{
		Content:    `{"security_findings":[{"severity":"high","title":"Reentrancy","description":"call before state update"}],"risk_score":70,"explanation":"risky"}`,
		TokensUsed: 321,
	}, nil)

	m, err := aiprovider.NewManager(openAI, claude)
	require.NoError(t, err)

	res, err := m.AnalyzeContract(context.Background(), domain.ProviderOpenAI, "contract C {}")
	require.NoError(t, err)
	require.Equal(t, domain.ProviderOpenAI, res.Provider)
	require.Equal(t, 70, res.Report.RiskScore)
	require.Len(t, res.Report.Findings, 1)
	require.Equal(t, 321, res.TokensUsed)
}

func TestManager_AnalyzeContract_FallsBack(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	openAI := newClient(ctrl, domain.ProviderOpenAI)
	claude := newClient(ctrl, domain.ProviderClaude)

	openAI.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return(aiprovider.Completion{}, errors.New("upstream 500"))
	claude.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{
		Content: `{"security_findings":[],"risk_score":5,"explanation":"clean"}`,
	}, nil)

	m, err := aiprovider.NewManager(openAI, claude)
	require.NoError(t, err)

	res, err := m.AnalyzeContract(context.Background(), domain.ProviderOpenAI, "contract C {}")
	require.NoError(t, err, "fallback success must not surface the first provider's error")
	require.Equal(t, domain.ProviderClaude, res.Provider)
	require.Equal(t, 5, res.Report.RiskScore)
}

func TestManager_AnalyzeContract_ParseFailureFallsBack(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	openAI := newClient(ctrl, domain.ProviderOpenAI)
	claude := newClient(ctrl, domain.ProviderClaude)

	// invalid JSON counts as a provider failure
	openAI.EXPECT().Complete(gomock.Any(), gomock.Any()).
		Return(aiprovider.Completion{Content: "sorry, I cannot help with that"}, nil)
	claude.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{
		Content: "```json\n{\"security_findings\":[],\"risk_score\":10,\"explanation\":\"ok\"}\n```",
	}, nil)

	m, err := aiprovider.NewManager(openAI, claude)
	require.NoError(t, err)

	res, err := m.AnalyzeContract(context.Background(), domain.ProviderOpenAI, "contract C {}")
	require.NoError(t, err)
	require.Equal(t, domain.ProviderClaude, res.Provider)
	require.Equal(t, 10, res.Report.RiskScore, "fenced JSON should still parse")
}

func TestManager_AnalyzeContract_FallbackDiscardsPartialParse(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	openAI := newClient(ctrl, domain.ProviderOpenAI)
	claude := newClient(ctrl, domain.ProviderClaude)

	// risk_score decodes before the type error on explanation, so a shared
	// report would keep 99 around after the failed attempt
	openAI.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{
		Content: `{"risk_score":99,"explanation":5}`,
	}, nil)
	claude.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{
		Content: `{"security_findings":[],"explanation":"fine"}`,
	}, nil)

	m, err := aiprovider.NewManager(openAI, claude)
	require.NoError(t, err)

	res, err := m.AnalyzeContract(context.Background(), domain.ProviderOpenAI, "contract C {}")
	require.NoError(t, err)
	require.Equal(t, domain.ProviderClaude, res.Provider)
	require.Zero(t, res.Report.RiskScore, "result must reflect only the provider that succeeded")
	require.Equal(t, "fine", res.Report.Explanation)
}

func TestManager_AllProvidersFail(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	openAI := newClient(ctrl, domain.ProviderOpenAI)
	claude := newClient(ctrl, domain.ProviderClaude)

	errOpenAI := errors.New("openai down")
	errClaude := errors.New("claude down")
	openAI.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{}, errOpenAI)
	claude.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{}, errClaude)

	m, err := aiprovider.NewManager(openAI, claude)
	require.NoError(t, err)

	_, err = m.AnalyzeContract(context.Background(), domain.ProviderOpenAI, "contract C {}")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.ErrorIs(t, err, errOpenAI, "aggregate error should retain every provider failure")
	require.ErrorIs(t, err, errClaude)
}

func TestManager_Complete_PreferredFirst(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	openAI := newClient(ctrl, domain.ProviderOpenAI)
	grok := newClient(ctrl, domain.ProviderGrok)

	// preferred grok must be tried before higher-priority openai
	grok.EXPECT().Complete(gomock.Any(), gomock.Any()).Return(aiprovider.Completion{Content: "ok"}, nil)

	m, err := aiprovider.NewManager(openAI, grok)
	require.NoError(t, err)

	completion, provider, err := m.Complete(context.Background(),
		domain.ProviderGrok,
		aiprovider.CompletionRequest{Prompt: "hello"})
	require.NoError(t, err)
	require.Equal(t, domain.ProviderGrok, provider)
	require.Equal(t, "ok", completion.Content)
}
