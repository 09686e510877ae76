package x402_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"auditor/pkg/serrors"
	"auditor/pkg/x402"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *x402.Client {
	return x402.New(&http.Client{Transport: fn}, "https://facilitator.test")
}

func TestSupportedNetwork(t *testing.T) {
	require.True(t, x402.SupportedNetwork("solana"))
	require.True(t, x402.SupportedNetwork("base-sepolia"))
	require.False(t, x402.SupportedNetwork("bitcoin"))
	require.False(t, x402.SupportedNetwork(""))
}

func TestClient_PaymentURL(t *testing.T) {
	c := x402.New(http.DefaultClient, "https://facilitator.test/")

	u, err := c.PaymentURL("solana-devnet")
	require.NoError(t, err)
	require.Equal(t, "https://facilitator.test/api/solana-devnet/paid-content", u)

	_, err = c.PaymentURL("dogecoin")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_VerifyPayment_success(t *testing.T) {
	confirmedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "facilitator.test", r.URL.Host)
		require.Equal(t, "/api/solana/paid-content/verify", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"transaction_hash":"tx-abc"}`, string(b))

		body := `{"valid":true,"amount_lamports":100000000,"payer_address":"payer-1",` +
			`"confirmed_at":"` + confirmedAt.Format(time.RFC3339) + `"}`

		return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}, nil
	})

	v, err := c.VerifyPayment(context.Background(), "solana", "tx-abc")
	require.NoError(t, err)
	require.True(t, v.Valid)
	require.Equal(t, "tx-abc", v.TransactionHash)
	require.Equal(t, int64(100000000), v.AmountLamports)
	require.Equal(t, "payer-1", v.PayerAddress)
	require.NotNil(t, v.ConfirmedAt)
	require.True(t, v.ConfirmedAt.Equal(confirmedAt))
}

func TestClient_VerifyPayment_unsupportedNetwork(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		t.Fatal("no request expected for an unsupported network")

		return nil, nil
	})

	_, err := c.VerifyPayment(context.Background(), "bitcoin", "tx-abc")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestClient_VerifyPayment_rejected(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body:       io.NopCloser(strings.NewReader("transaction not settled")),
		}, nil
	})

	_, err := c.VerifyPayment(context.Background(), "base", "tx-missing")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "transaction not settled")
}

func TestClient_VerifyPayment_rateLimited(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
		}, nil
	})

	_, err := c.VerifyPayment(context.Background(), "polygon", "tx-abc")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}
