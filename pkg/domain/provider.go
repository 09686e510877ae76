package domain

// Provider identifies an external AI provider capable of contract analysis.
type Provider string

const (
	// ProviderOpenAI is the OpenAI chat completions API.
	ProviderOpenAI Provider = "openai"
	// ProviderClaude is the Anthropic messages API.
	ProviderClaude Provider = "claude"
	// ProviderGrok is the xAI chat completions API.
	ProviderGrok Provider = "grok"
)

// DefaultProviderOrder is the fixed priority order used by the fallback chain
// when no explicit order is configured.
var DefaultProviderOrder = []Provider{ProviderOpenAI, ProviderClaude, ProviderGrok} //nolint: gochecknoglobals

// Valid reports whether p names a known provider.
func (p Provider) Valid() bool {
	switch p {
	case ProviderOpenAI, ProviderClaude, ProviderGrok:
		return true
	default:
		return false
	}
}
