package handlers

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// stubCoverageStore serves canned records for handler tests.
type stubCoverageStore struct {
	records map[int64]*domain.Coverage
	err     error
}

func (s *stubCoverageStore) Create(ctx context.Context, c *domain.Coverage) (*domain.Coverage, error) {
	return c, nil
}

func (s *stubCoverageStore) Get(ctx context.Context, id int64) (*domain.Coverage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.records[id], nil
}

func (s *stubCoverageStore) List(ctx context.Context) ([]*domain.Coverage, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*domain.Coverage, 0, len(s.records))
	for _, c := range s.records {
		out = append(out, c)
	}
	return out, nil
}

func coverageRecord() *domain.Coverage {
	return &domain.Coverage{
		ID:         5,
		ShipmentID: 1,
		DebitNote:  "#",
		Date:       time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestCoverageGet(t *testing.T) {
	h := &CoverageHandler{Store: &stubCoverageStore{
		records: map[int64]*domain.Coverage{5: coverageRecord()},
	}}

	req := httptest.NewRequest(http.MethodGet, "/coverage/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["debit_note"] != "#" {
		t.Errorf("debit_note = %v, want #", body["debit_note"])
	}
	if body["date"] != "2025-03-20" {
		t.Errorf("date = %v, want 2025-03-20", body["date"])
	}
}

func TestCoverageGetNotFound(t *testing.T) {
	h := &CoverageHandler{Store: &stubCoverageStore{records: map[int64]*domain.Coverage{}}}

	req := httptest.NewRequest(http.MethodGet, "/coverage/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCoverageGetInvalidID(t *testing.T) {
	h := &CoverageHandler{Store: &stubCoverageStore{}}

	req := httptest.NewRequest(http.MethodGet, "/coverage/abc", nil)
	req.SetPathValue("id", "abc")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCoverageList(t *testing.T) {
	h := &CoverageHandler{Store: &stubCoverageStore{
		records: map[int64]*domain.Coverage{5: coverageRecord()},
	}}

	req := httptest.NewRequest(http.MethodGet, "/coverage", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Coverage []json.RawMessage `json:"coverage"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Coverage) != 1 {
		t.Errorf("coverage = %d items, want 1", len(body.Coverage))
	}
}
