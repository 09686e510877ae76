// Package aiprovider defines the abstraction over external AI chat APIs used
// for contract analysis, plus a Manager that adds provider fallback on top.
package aiprovider

import (
	"context"

	"auditor/pkg/domain"
)

// CompletionRequest describes one prompt sent to a provider.
type CompletionRequest struct {
	// System is the system instruction framing the model's role.
	System string
	// Prompt is the user message.
	Prompt string
	// Temperature controls sampling randomness.
	Temperature float64
	// MaxTokens bounds the completion length.
	MaxTokens int
}

// Completion is a provider's answer to a CompletionRequest.
type Completion struct {
	// Content is the raw completion text.
	Content string
	// TokensUsed is the total token count reported by the provider, zero when
	// the provider does not report usage.
	TokensUsed int
}

// Client is the abstraction for AI chat providers. Implementations perform a
// single completion round-trip; prompt construction and response parsing live
// in this package so that all providers behave identically.
//
//go:generate mockgen -package mockaiprovider -source=interface.go -destination=mock/mockaiprovider.go *
type Client interface {
	// Name identifies the provider.
	Name() domain.Provider
	// Complete sends the request and returns the completion.
	Complete(ctx context.Context, req CompletionRequest) (Completion, error)
}
