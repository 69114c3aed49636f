package ports

import (
	"cargo-coverage-service/internal/domain"
	"context"
)

// Port: boundaries for parties and contracts. Minimal surface — these
// exist so the policy/coverage/merge graphs can be wired up.

type PartyStore interface {
	Create(ctx context.Context, p *domain.Party) (*domain.Party, error)
	Get(ctx context.Context, id int64) (*domain.Party, error)
}

type ContractStore interface {
	Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error)
	Get(ctx context.Context, id int64) (*domain.Contract, error)
}
