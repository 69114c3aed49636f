package repositories

import (
	"cargo-coverage-service/internal/domain"
	"cargo-coverage-service/internal/ports"
	"context"
	"errors"
	"testing"
)

func TestEntityCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLEntityStore(db)
	ctx := context.Background()

	created, err := store.Create(ctx, &domain.Entity{
		Name:     "Saybolt",
		Category: "surveyor",
		Notes:    "loadport inspections",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("create: expected non-zero ID")
	}

	got, err := store.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Name != "Saybolt" || got.Category != "surveyor" {
		t.Errorf("get = %+v, want the created entity", got)
	}

	byName, err := store.GetByName(ctx, "Saybolt")
	if err != nil {
		t.Fatalf("get by name: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Errorf("get by name = %+v, want id %d", byName, created.ID)
	}

	missing, err := store.Get(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("get missing = %+v, want nil", missing)
	}
}

func TestEntityCreateDuplicateName(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLEntityStore(db)
	ctx := context.Background()

	if _, err := store.Create(ctx, &domain.Entity{Name: "SGS"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := store.Create(ctx, &domain.Entity{Name: "SGS", Category: "other"})
	if !errors.Is(err, ports.ErrUniqueViolation) {
		t.Fatalf("second create err = %v, want ErrUniqueViolation", err)
	}

	if n := countRows(t, db, "entities"); n != 1 {
		t.Errorf("entities rows = %d, want 1 after rollback", n)
	}
}

func TestEntityUpsertByName(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLEntityStore(db)
	ctx := context.Background()

	first, err := store.UpsertByName(ctx, &domain.Entity{Name: "Amspec", Category: "surveyor"})
	if err != nil {
		t.Fatalf("upsert (insert): %v", err)
	}

	// Full overwrite of every field, same row.
	second, err := store.UpsertByName(ctx, &domain.Entity{
		Name:     "Amspec",
		Category: "inspection",
		Notes:    "disport only",
	})
	if err != nil {
		t.Fatalf("upsert (update): %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("upsert changed ID: %d -> %d", first.ID, second.ID)
	}

	stored, err := store.GetByName(ctx, "Amspec")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Category != "inspection" || stored.Notes != "disport only" {
		t.Errorf("stored = %+v, want overwritten fields", stored)
	}

	if n := countRows(t, db, "entities"); n != 1 {
		t.Errorf("entities rows = %d, want 1 (idempotent upsert)", n)
	}
}

func TestEntityList(t *testing.T) {
	db := newTestDB(t)
	store := NewSQLEntityStore(db)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d"} {
		if _, err := store.Create(ctx, &domain.Entity{Name: name}); err != nil {
			t.Fatalf("create %q: %v", name, err)
		}
	}

	page, err := store.List(ctx, 1, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page) != 2 || page[0].Name != "b" || page[1].Name != "c" {
		t.Errorf("list(1, 2) = %+v, want [b c]", page)
	}

	empty, err := store.List(ctx, 10, 5)
	if err != nil {
		t.Fatalf("list past end: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("list past end = %+v, want empty", empty)
	}
}
