// Package x402 provides an HTTP client for the x402 payment facilitator,
// which settles per-network on-chain payments for gated content.
package x402

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"auditor/pkg/serrors"
)

// DefaultBaseURL is the public x402 facilitator.
const DefaultBaseURL = "https://api.x402.com"

// networks lists the chains the facilitator settles payments on. Payment
// initiation and verification both reject anything else.
var networks = map[string]struct{}{
	"solana":         {},
	"solana-devnet":  {},
	"base":           {},
	"base-sepolia":   {},
	"polygon":        {},
	"polygon-amoy":   {},
	"xlayer":         {},
	"xlayer-testnet": {},
	"peaq":           {},
	"sei":            {},
	"sei-testnet":    {},
}

// SupportedNetwork reports whether the facilitator settles on the given
// network.
func SupportedNetwork(network string) bool {
	_, ok := networks[network]

	return ok
}

// Networks returns the supported network identifiers.
func Networks() []string {
	out := make([]string, 0, len(networks))
	for n := range networks {
		out = append(out, n)
	}

	return out
}

// Verification is the facilitator's view of a settled transaction.
type Verification struct {
	Valid           bool       `json:"valid"`
	TransactionHash string     `json:"transaction_hash"`
	AmountLamports  int64      `json:"amount_lamports"`
	PayerAddress    string     `json:"payer_address"`
	ConfirmedAt     *time.Time `json:"confirmed_at"`
}

// Client talks to the x402 facilitator REST API. It is safe for concurrent
// use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the facilitator
	baseURL    string       // baseURL is the facilitator root, without trailing slash
}

// New constructs a Client that uses the provided http.Client against the
// given facilitator base URL. An empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// PaymentURL returns the paid-content URL the payer must be redirected to for
// the given network.
func (c *Client) PaymentURL(network string) (string, error) {
	if !SupportedNetwork(network) {
		return "", serrors.With(serrors.ErrBadRequest, "network %q not supported", network)
	}

	return fmt.Sprintf("%s/api/%s/paid-content", c.baseURL, network), nil
}

// VerifyPayment asks the facilitator whether the given transaction settled on
// the given network. A facilitator rejection (non-2xx) maps to ErrBadRequest;
// transport failures are returned as-is.
func (c *Client) VerifyPayment(ctx context.Context, network, transactionHash string) (*Verification, error) {
	paymentURL, err := c.PaymentURL(network)
	if err != nil {
		return nil, err
	}

	type verifyReq struct {
		TransactionHash string `json:"transaction_hash"`
	}
	bodyBytes, err := json.Marshal(verifyReq{TransactionHash: transactionHash})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		paymentURL+"/verify",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrBadRequest,
			"payment verification failed: %s", strings.TrimSpace(string(b)))
	}

	var verification Verification
	if err := json.Unmarshal(b, &verification); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	verification.TransactionHash = transactionHash

	return &verification, nil
}
