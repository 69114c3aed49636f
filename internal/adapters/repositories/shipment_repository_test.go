package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func shipmentFixture(deal string) *domain.Shipment {
	return &domain.Shipment{
		DealNumber:           deal,
		Date:                 time.Date(2025, time.March, 19, 0, 0, 0, 0, time.UTC),
		DisportETA:           time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC),
		VolumeBBL:            620000,
		WeightMetric:         84712.331,
		CCY:                  "USD",
		Unit:                 "MT",
		SubjectMatterInsured: "Crude Oil In Bulk",
		SumInsured:           decimal.RequireFromString("48000000.00"),
	}
}

func TestShipmentUpsertByDealNumber(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLShipmentStore(db)
	ctx := context.Background()

	first, err := store.Upsert(ctx, shipmentFixture("DL-2025-117"))
	if err != nil {
		t.Fatalf("upsert (insert): %v", err)
	}
	if first.ID == 0 {
		t.Fatal("expected non-zero ID")
	}

	changed := shipmentFixture("DL-2025-117")
	changed.WeightMetric = 85000
	changed.SubjectMatterInsured = "Fuel Oil In Bulk"

	second, err := store.Upsert(ctx, changed)
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert changed ID: %d -> %d", first.ID, second.ID)
	}

	if n := countRows(t, db, "shipments"); n != 1 {
		t.Errorf("shipments rows = %d, want 1 (idempotent on deal number)", n)
	}

	var weight float64
	var smi string
	err = db.QueryRow(`SELECT weight_metric, subject_matter_insured FROM shipments WHERE id = ?;`, first.ID).
		Scan(&weight, &smi)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if weight != 85000 || smi != "Fuel Oil In Bulk" {
		t.Errorf("stored = %v/%q, want overwritten fields", weight, smi)
	}
}

func TestShipmentBulkCreate(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLShipmentStore(db)
	ctx := context.Background()

	batch := []*domain.Shipment{
		shipmentFixture("DL-2025-201"),
		shipmentFixture("DL-2025-202"),
		shipmentFixture("DL-2025-203"),
	}
	if err := store.BulkCreate(ctx, batch); err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if n := countRows(t, db, "shipments"); n != 3 {
		t.Errorf("shipments rows = %d, want 3", n)
	}

	// A duplicate deal number inside the batch rolls everything back.
	bad := []*domain.Shipment{
		shipmentFixture("DL-2025-300"),
		shipmentFixture("DL-2025-201"),
	}
	if err := store.BulkCreate(ctx, bad); err == nil {
		t.Fatal("bulk create with duplicate deal number: expected error")
	}
	if n := countRows(t, db, "shipments"); n != 3 {
		t.Errorf("shipments rows = %d, want 3 (all-or-nothing batch)", n)
	}
}

func TestGetWithTotals(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLShipmentStore(db)
	ctx := context.Background()

	sh, err := store.Create(ctx, shipmentFixture("DL-2025-117"))
	if err != nil {
		t.Fatalf("create shipment: %v", err)
	}

	bills := []*domain.BillOfLading{
		{
			ShipmentID:  sh.ID,
			Number:      "SILNVS25117500",
			Date:        time.Date(2025, time.March, 19, 0, 0, 0, 0, time.UTC),
			QuantityMT:  40000.5,
			QuantityBBL: 295000,
			Value:       decimal.RequireFromString("21000000.25"),
		},
		{
			ShipmentID:  sh.ID,
			Number:      "SILNVS25117501",
			Date:        time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
			QuantityMT:  44711.831,
			QuantityBBL: 325000,
			Value:       decimal.RequireFromString("27000000.00"),
		},
	}
	if err := store.BulkCreateBills(ctx, bills); err != nil {
		t.Fatalf("bulk create bills: %v", err)
	}

	totals, err := store.GetWithTotals(ctx, sh.ID)
	if err != nil {
		t.Fatalf("get with totals: %v", err)
	}
	if totals == nil {
		t.Fatal("totals = nil, want aggregated row")
	}
	if totals.DealNumber != "DL-2025-117" {
		t.Errorf("deal number = %q", totals.DealNumber)
	}
	if math.Abs(totals.TotalWeightMT-84712.331) > 1e-6 {
		t.Errorf("total weight = %v, want 84712.331", totals.TotalWeightMT)
	}
	if totals.TotalVolumeBBL != 620000 {
		t.Errorf("total volume = %v, want 620000", totals.TotalVolumeBBL)
	}
	want := decimal.RequireFromString("48000000.25")
	if !totals.TotalValueUSD.Equal(want) {
		t.Errorf("total value = %v, want %v", totals.TotalValueUSD, want)
	}
}

func TestGetWithTotalsNoBills(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLShipmentStore(db)
	ctx := context.Background()

	sh, err := store.Create(ctx, shipmentFixture("DL-2025-118"))
	if err != nil {
		t.Fatalf("create shipment: %v", err)
	}

	totals, err := store.GetWithTotals(ctx, sh.ID)
	if err != nil {
		t.Fatalf("get with totals: %v", err)
	}
	if totals == nil {
		t.Fatal("totals = nil; a shipment without bills still aggregates to zeros")
	}
	if totals.TotalWeightMT != 0 || totals.TotalVolumeBBL != 0 || !totals.TotalValueUSD.IsZero() {
		t.Errorf("totals = %+v, want zeros", totals)
	}
}

func TestGetWithTotalsMissingShipment(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLShipmentStore(db)

	totals, err := store.GetWithTotals(context.Background(), 404)
	if err != nil {
		t.Fatalf("get with totals: %v", err)
	}
	if totals != nil {
		t.Errorf("totals = %+v, want nil for a missing shipment", totals)
	}
}
