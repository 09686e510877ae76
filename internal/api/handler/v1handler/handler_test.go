package v1handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auditor/internal/api/handler/v1handler"
	mockanalyzer "auditor/internal/analyzer/mock"
	mockbilling "auditor/internal/billing/mock"
	mockcontracts "auditor/internal/contracts/mock"
	mockintent "auditor/internal/intent/mock"
	mocksimulator "auditor/internal/simulator/mock"
	"auditor/pkg/domain"
	"auditor/pkg/logger"
	"auditor/pkg/serrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	gin.SetMode(gin.TestMode)
	m.Run()
}

type testServer struct {
	engine *gin.Engine

	contracts *mockcontracts.MockContracts
	analyzer  *mockanalyzer.MockAnalyzer
	simulator *mocksimulator.MockSimulator
	intent    *mockintent.MockVerifier
	billing   *mockbilling.MockBilling

	userID domain.UserID
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		contracts: mockcontracts.NewMockContracts(ctrl),
		analyzer:  mockanalyzer.NewMockAnalyzer(ctrl),
		simulator: mocksimulator.NewMockSimulator(ctrl),
		intent:    mockintent.NewMockVerifier(ctrl),
		billing:   mockbilling.NewMockBilling(ctrl),
	}

	priv, pubPEM := genRSAKeys(t)
	sec := newSecHandlerForTest(t, pubPEM)

	h := v1handler.New(v1handler.Deps{
		Contracts: ts.contracts,
		Analyzer:  ts.analyzer,
		Simulator: ts.simulator,
		Intent:    ts.intent,
		Billing:   ts.billing,
	})

	ts.engine = gin.New()
	h.Register(ts.engine, sec)

	uid := uuid.New()
	ts.userID = domain.UserID(uid)
	now := time.Now()
	ts.token = signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	return ts
}

// do performs a request against the test server. A non-empty token is sent
// as a bearer token, body is JSON encoded when non-nil.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.engine.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}

	return out
}

func TestErrorMapping_PlainErrorHidesDetails(t *testing.T) {
	ts := newTestServer(t)
	ts.contracts.EXPECT().
		Contract(gomock.Any(), ts.userID, gomock.Any()).
		Return(nil, errors.New("pq: connection refused"))

	rec := ts.do(t, http.MethodGet, "/api/contracts/"+uuid.NewString(), ts.token, nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeBody[v1handler.Response](t, rec)
	if resp.Code != serrors.ErrInternal.Error() {
		t.Fatalf("code = %q", resp.Code)
	}
	if resp.Message != "internal error" {
		t.Fatalf("plain error text must not leak, got %q", resp.Message)
	}
}

func TestErrorMapping_KindSentinel_NotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.contracts.EXPECT().
		Contract(gomock.Any(), ts.userID, gomock.Any()).
		Return(nil, serrors.KindOnly(serrors.ErrNotFound))

	rec := ts.do(t, http.MethodGet, "/api/contracts/"+uuid.NewString(), ts.token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeBody[v1handler.Response](t, rec)
	if resp.Code != serrors.ErrNotFound.Error() {
		t.Fatalf("code = %q", resp.Code)
	}
	if resp.Message != "resource not found" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestErrorMapping_SemanticMessagePreserved(t *testing.T) {
	ts := newTestServer(t)
	ts.contracts.EXPECT().
		Register(gomock.Any(), ts.userID, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "sourceCode is required"))

	rec := ts.do(t, http.MethodPost, "/api/contracts", ts.token, map[string]any{"name": "Token"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	resp := decodeBody[v1handler.Response](t, rec)
	if resp.Code != serrors.ErrBadRequest.Error() {
		t.Fatalf("code = %q", resp.Code)
	}
	if resp.Message != "sourceCode is required" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/contracts", "/api/x402/subscription", "/api/simulate/results"} {
		rec := ts.do(t, http.MethodGet, path, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d", path, rec.Code)
		}
		resp := decodeBody[v1handler.Response](t, rec)
		if resp.Code != serrors.ErrUnauthorized.Error() {
			t.Fatalf("%s: code = %q", path, resp.Code)
		}
	}
}

func TestAuth_GarbageToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/contracts", "not-a-jwt", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestListParams_InvalidLimit(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/contracts?limit=banana", ts.token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	rec = ts.do(t, http.MethodGet, "/api/contracts?limit=0", ts.token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
