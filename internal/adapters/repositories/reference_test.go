package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"testing"
	"time"
)

// Operator and Port are get-or-create; Vessel overwrites on an IMO
// match. The asymmetry is deliberate and load-bearing for repeat
// imports, so it gets pinned down here.

func TestOperatorGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLOperatorStore(db)
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, &domain.Operator{FirstName: "Anna", LastName: "Petrova"})
	if err != nil {
		t.Fatalf("first: %v", err)
	}

	second, err := store.GetOrCreate(ctx, &domain.Operator{FirstName: "Anna", LastName: "Petrova"})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call made a new row: %d != %d", second.ID, first.ID)
	}

	if n := countRows(t, db, "operators"); n != 1 {
		t.Errorf("operators rows = %d, want 1", n)
	}

	other, err := store.GetOrCreate(ctx, &domain.Operator{FirstName: "Anna", LastName: "Smirnova"})
	if err != nil {
		t.Fatalf("other: %v", err)
	}
	if other.ID == first.ID {
		t.Error("different last name must insert a new operator")
	}
}

func TestPortGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLPortStore(db)
	ctx := context.Background()

	first, err := store.GetOrCreate(ctx, &domain.Port{Name: "Victoria", Country: "Canada"})
	if err != nil {
		t.Fatalf("first: %v", err)
	}

	// Same natural key: the stored record comes back untouched.
	second, err := store.GetOrCreate(ctx, &domain.Port{Name: "Victoria", Country: "Canada"})
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call made a new row: %d != %d", second.ID, first.ID)
	}
	if n := countRows(t, db, "ports"); n != 1 {
		t.Errorf("ports rows = %d, want 1", n)
	}

	// Same name, different country is a different port.
	seychelles, err := store.GetOrCreate(ctx, &domain.Port{Name: "Victoria", Country: "Seychelles"})
	if err != nil {
		t.Fatalf("seychelles: %v", err)
	}
	if seychelles.ID == first.ID {
		t.Error("same name in another country must insert a new port")
	}
}

func TestVesselUpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLVesselStore(db)
	ctx := context.Background()

	built := time.Date(2008, time.June, 12, 0, 0, 0, 0, time.UTC)
	first, err := store.Upsert(ctx, &domain.Vessel{IMO: 9333619, Name: "SILVER NAVIS", BuiltOn: built})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Unlike ports/operators, a repeat upsert rewrites the record.
	renamed, err := store.Upsert(ctx, &domain.Vessel{IMO: 9333619, Name: "SILVER NAVIS II", BuiltOn: built})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if renamed.ID != first.ID {
		t.Errorf("upsert changed ID: %d -> %d", first.ID, renamed.ID)
	}

	stored, err := store.GetByIMO(ctx, 9333619)
	if err != nil {
		t.Fatalf("get by imo: %v", err)
	}
	if stored.Name != "SILVER NAVIS II" {
		t.Errorf("stored name = %q, want the overwritten name", stored.Name)
	}

	if n := countRows(t, db, "vessels"); n != 1 {
		t.Errorf("vessels rows = %d, want 1", n)
	}

	missing, err := store.GetByIMO(ctx, 1234567)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("get missing = %+v, want nil", missing)
	}
}

func TestVesselList(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLVesselStore(db)
	ctx := context.Background()

	for i, name := range []string{"ALFA", "BRAVO"} {
		_, err := store.Upsert(ctx, &domain.Vessel{
			IMO:     int64(9000000 + i),
			Name:    name,
			BuiltOn: time.Date(2000+i, time.January, 1, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", name, err)
		}
	}

	vessels, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(vessels) != 2 || vessels[0].Name != "ALFA" || vessels[1].Name != "BRAVO" {
		t.Errorf("list = %+v, want [ALFA BRAVO]", vessels)
	}
}
