package ports

import (
	"cargo-coverage-service/internal/domain"
	"context"
)

// Port: boundaries for coverage and policy records. Create and read
// only; this layer never updates or deletes either.

type CoverageStore interface {
	Create(ctx context.Context, c *domain.Coverage) (*domain.Coverage, error)

	// Get hydrates the nested policy and its parties when a policy is
	// still attached.
	Get(ctx context.Context, id int64) (*domain.Coverage, error)
	List(ctx context.Context) ([]*domain.Coverage, error)
}

type PolicyStore interface {
	Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error)
	Get(ctx context.Context, id int64) (*domain.Policy, error)
	List(ctx context.Context) ([]*domain.Policy, error)
}
