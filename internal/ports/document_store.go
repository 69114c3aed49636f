package ports

import (
	"cargo-coverage-service/internal/domain"
	"context"
)

// Port: a boundary for vessel documents (certificates).
type DocumentStore interface {
	Create(ctx context.Context, d *domain.Document) (*domain.Document, error)

	// Get and List hydrate the nested vessel and provider party.
	Get(ctx context.Context, id int64) (*domain.Document, error)
	List(ctx context.Context) ([]*domain.Document, error)
}
