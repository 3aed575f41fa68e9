package handlers

import (
	"distance-matrix-service/internal/api/dto"
	"distance-matrix-service/internal/domain"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookupHandlerList(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeLookupRepo{
		listed: []*domain.Lookup{
			{ID: 2, Origin: "A", Destination: "B", Status: "OK", ItemCount: 1, RequestedAt: now},
			{ID: 1, Origin: "C", Destination: "D", Status: "REQUEST_DENIED", ItemCount: 0, RequestedAt: now.Add(-time.Hour)},
		},
	}
	h := &LookupHandler{Repo: repo}

	req := httptest.NewRequest(http.MethodGet, "/lookups", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	var got dto.ListLookupsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(got.Lookups) != 2 {
		t.Fatalf("expected 2 lookups, got %d", len(got.Lookups))
	}
	if got.Lookups[0].LookupID != 2 || got.Lookups[0].Status != "OK" {
		t.Errorf("unexpected first lookup: %+v", got.Lookups[0])
	}
	if got.Lookups[1].ItemCount != 0 {
		t.Errorf("unexpected second lookup: %+v", got.Lookups[1])
	}
}

func TestLookupHandlerListFailure(t *testing.T) {
	h := &LookupHandler{Repo: &fakeLookupRepo{err: errors.New("db down")}}

	req := httptest.NewRequest(http.MethodGet, "/lookups", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestLookupHandlerMethodNotAllowed(t *testing.T) {
	h := &LookupHandler{Repo: &fakeLookupRepo{}}

	req := httptest.NewRequest(http.MethodDelete, "/lookups", nil)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
}
