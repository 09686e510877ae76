// Package anthropic provides an aiprovider.Client implementation backed by
// the Anthropic messages API (Claude).
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"auditor/pkg/aiprovider"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"
	model      = "claude-3-sonnet-20240229"
)

// Client talks to the Anthropic REST API and fulfills the aiprovider.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Anthropic
	apiKey     string       // apiKey is the Anthropic API key
}

// Name identifies this provider.
func (c *Client) Name() domain.Provider { return domain.ProviderClaude }

// Complete sends a messages request to Anthropic and returns the first text
// block plus the reported token usage.
func (c *Client) Complete(ctx context.Context, req aiprovider.CompletionRequest) (aiprovider.Completion, error) {
	// https://docs.anthropic.com/en/api/messages
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	type messagesReq struct {
		Model     string    `json:"model"`
		MaxTokens int       `json:"max_tokens"`
		System    string    `json:"system,omitempty"`
		Messages  []message `json:"messages"`
	}

	bodyBytes, err := json.Marshal(messagesReq{
		Model:     model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages: []message{
			{Role: "user", Content: req.Prompt},
		},
	})
	if err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return aiprovider.Completion{},
			serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return aiprovider.Completion{}, fmt.Errorf("completion failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var messagesResp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		Usage struct {
			InputTokens  int `json:"input_tokens"`
			OutputTokens int `json:"output_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(b, &messagesResp); err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not decode response: %w", err)
	}
	if len(messagesResp.Content) == 0 {
		return aiprovider.Completion{}, fmt.Errorf("no content in response")
	}

	return aiprovider.Completion{
		Content:    messagesResp.Content[0].Text,
		TokensUsed: messagesResp.Usage.InputTokens + messagesResp.Usage.OutputTokens,
	}, nil
}

// Ensure Client conforms to the aiprovider.Client interface at compile time.
var _ aiprovider.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API key to
// interact with the Anthropic API.
func New(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}
