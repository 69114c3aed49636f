package ports

import (
	"cargo-coverage-service/internal/domain"
	"context"
)

// Port: a boundary for the generic named-record store.
// Reads return (nil, nil) when no record matches.
type EntityStore interface {
	Get(ctx context.Context, id int64) (*domain.Entity, error)
	GetByName(ctx context.Context, name string) (*domain.Entity, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Entity, error)

	// Create inserts a new entity. A duplicate name rolls back and
	// returns ErrUniqueViolation.
	Create(ctx context.Context, e *domain.Entity) (*domain.Entity, error)

	// UpsertByName overwrites every field of the entity with the given
	// name, or creates it. Full overwrite, no partial-field semantics.
	UpsertByName(ctx context.Context, e *domain.Entity) (*domain.Entity, error)
}
