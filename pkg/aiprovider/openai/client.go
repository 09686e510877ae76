// Package openai provides an aiprovider.Client implementation backed by the
// OpenAI chat completions API.
package openai

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
	apiURL = "https://api.openai.com/v1/chat/completions"
	model  = "gpt-4"
)

// Client talks to the OpenAI REST API and fulfills the aiprovider.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to OpenAI
	apiKey     string       // apiKey is the OpenAI API key
}

// Name identifies this provider.
func (c *Client) Name() domain.Provider { return domain.ProviderOpenAI }

// Complete sends a chat completion request to OpenAI and returns the first
// choice's content plus the reported token usage.
func (c *Client) Complete(ctx context.Context, req aiprovider.CompletionRequest) (aiprovider.Completion, error) {
	// https://platform.openai.com/docs/api-reference/chat/create
	type message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	type completionReq struct {
		Model       string    `json:"model"`
		Messages    []message `json:"messages"`
		Temperature float64   `json:"temperature,omitempty"`
		MaxTokens   int       `json:"max_tokens,omitempty"`
	}

	bodyBytes, err := json.Marshal(completionReq{
		Model: model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

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
	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			TotalTokens int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(b, &completionResp); err != nil {
		return aiprovider.Completion{}, fmt.Errorf("could not decode response: %w", err)
	}
	if len(completionResp.Choices) == 0 {
		return aiprovider.Completion{}, fmt.Errorf("no choices in response")
	}

	return aiprovider.Completion{
		Content:    completionResp.Choices[0].Message.Content,
		TokensUsed: completionResp.Usage.TotalTokens,
	}, nil
}

// Ensure Client conforms to the aiprovider.Client interface at compile time.
var _ aiprovider.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client and API key to
// interact with the OpenAI API.
func New(httpClient *http.Client, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
	}
}
