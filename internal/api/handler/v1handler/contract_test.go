package v1handler_test

import (
	"net/http"
	"testing"
	"time"

	"auditor/internal/contracts"
	"auditor/pkg/domain"
	"auditor/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func sampleContract(userID domain.UserID) domain.Contract {
	return domain.Contract{
		ID:         domain.ContractID(uuid.New()),
		UserID:     userID,
		Name:       "Token",
		SourceCode: "contract Token {}",
		Network:    "ethereum",
		Language:   "solidity",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func TestHandler_RegisterContract(t *testing.T) {
	ts := newTestServer(t)

	contract := sampleContract(ts.userID)
	ts.contracts.EXPECT().
		Register(gomock.Any(), ts.userID, contracts.RegisterParams{
			Name:       "Token",
			SourceCode: "contract Token {}",
			Network:    "polygon",
		}).
		Return(&contract, nil)

	rec := ts.do(t, http.MethodPost, "/api/contracts", ts.token, map[string]any{
		"name":       "Token",
		"sourceCode": "contract Token {}",
		"network":    "polygon",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	got := decodeBody[domain.Contract](t, rec)
	if got.ID != contract.ID {
		t.Fatalf("ID mismatch")
	}
	if got.Name != "Token" {
		t.Fatalf("name = %q", got.Name)
	}
}

func TestHandler_ListContracts_DefaultLimit(t *testing.T) {
	ts := newTestServer(t)

	c1 := sampleContract(ts.userID)
	c2 := sampleContract(ts.userID)
	ts.contracts.EXPECT().
		UserContracts(gomock.Any(), ts.userID, "", uint(20)).
		Return([]domain.Contract{c1, c2}, "cursor123", nil)

	rec := ts.do(t, http.MethodGet, "/api/contracts", ts.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	type page struct {
		Items      []domain.Contract `json:"items"`
		NextCursor string            `json:"nextCursor"`
	}
	got := decodeBody[page](t, rec)
	if len(got.Items) != 2 {
		t.Fatalf("items len = %d", len(got.Items))
	}
	if got.NextCursor != "cursor123" {
		t.Fatalf("nextCursor = %q", got.NextCursor)
	}
}

func TestHandler_GetContract(t *testing.T) {
	ts := newTestServer(t)

	contract := sampleContract(ts.userID)
	ts.contracts.EXPECT().
		Contract(gomock.Any(), ts.userID, contract.ID).
		Return(&contract, nil)

	rec := ts.do(t, http.MethodGet, "/api/contracts/"+uuid.UUID(contract.ID).String(), ts.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decodeBody[domain.Contract](t, rec)
	if got.ID != contract.ID {
		t.Fatalf("ID mismatch")
	}
}

func TestHandler_GetContract_BadID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/contracts/not-a-uuid", ts.token, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_DeleteContract(t *testing.T) {
	ts := newTestServer(t)

	id := domain.ContractID(uuid.New())
	ts.contracts.EXPECT().
		Delete(gomock.Any(), ts.userID, id).
		Return(nil)

	rec := ts.do(t, http.MethodDelete, "/api/contracts/"+uuid.UUID(id).String(), ts.token, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_DeleteContract_NotFound(t *testing.T) {
	ts := newTestServer(t)

	id := domain.ContractID(uuid.New())
	ts.contracts.EXPECT().
		Delete(gomock.Any(), ts.userID, id).
		Return(serrors.With(serrors.ErrNotFound, "contract not found"))

	rec := ts.do(t, http.MethodDelete, "/api/contracts/"+uuid.UUID(id).String(), ts.token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHandler_MonitorContract(t *testing.T) {
	ts := newTestServer(t)

	monitoring := domain.Monitoring{
		ID:          domain.MonitoringID(uuid.New()),
		ContractID:  domain.ContractID(uuid.New()),
		Status:      domain.MonitoringStatusActive,
		LastChecked: time.Now(),
	}
	ts.contracts.EXPECT().
		Monitor(gomock.Any(), ts.userID, "0xabc123").
		Return(&monitoring, nil)

	rec := ts.do(t, http.MethodGet, "/api/monitor/0xabc123", ts.token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	got := decodeBody[domain.Monitoring](t, rec)
	if got.Status != domain.MonitoringStatusActive {
		t.Fatalf("status = %q", got.Status)
	}
}
