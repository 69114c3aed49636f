package ports

import (
	"cargo-coverage-service/internal/domain"
	"context"
)

// Port: reference-data boundaries keyed by natural business keys.
//
// Operator and Port are get-or-create: an existing record is returned
// unchanged even when non-key fields differ. Vessel is a true upsert:
// an existing IMO gets all fields overwritten (vessel metadata
// corrections flow through imports). The asymmetry is a preserved
// behavioral contract; see DESIGN.md before changing it.

type OperatorStore interface {
	GetOrCreate(ctx context.Context, op *domain.Operator) (*domain.Operator, error)
}

type PortStore interface {
	GetOrCreate(ctx context.Context, p *domain.Port) (*domain.Port, error)
}

type VesselStore interface {
	Get(ctx context.Context, id int64) (*domain.Vessel, error)
	GetByIMO(ctx context.Context, imo int64) (*domain.Vessel, error)
	List(ctx context.Context) ([]*domain.Vessel, error)
	Upsert(ctx context.Context, v *domain.Vessel) (*domain.Vessel, error)
}
