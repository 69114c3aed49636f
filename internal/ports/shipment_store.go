package ports

import (
	"cargo-coverage-service/internal/domain"
	"context"
)

// Port: a boundary for shipment records and their bill-of-lading lines.
type ShipmentStore interface {
	// Create inserts unconditionally.
	Create(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error)

	// Upsert matches on deal number; overwrites all fields when found,
	// inserts otherwise.
	Upsert(ctx context.Context, s *domain.Shipment) (*domain.Shipment, error)

	// BulkCreate inserts many shipments in one transaction. Used by the
	// CSV importer; all-or-nothing.
	BulkCreate(ctx context.Context, shipments []*domain.Shipment) error

	// BulkCreateBills inserts bill-of-lading rows in one transaction,
	// all-or-nothing.
	BulkCreateBills(ctx context.Context, bills []*domain.BillOfLading) error

	// GetWithTotals aggregates the shipment's bills of lading. Totals
	// are zero when there are no line items; the result is nil only
	// when the shipment itself does not exist.
	GetWithTotals(ctx context.Context, shipmentID int64) (*domain.ShipmentTotals, error)

	// GetMergeSource assembles the joined record set behind the
	// form-merge view for one shipment; nil when the shipment is
	// missing or has no coverage.
	GetMergeSource(ctx context.Context, shipmentID int64) (*domain.MergeSource, error)

	ListMergeSources(ctx context.Context) ([]*domain.MergeSource, error)
}
