package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"fmt"
)

// PGShipmentStore is the postgres leg of the shipment importer. Only the
// bulk path speaks the $N placeholder dialect; the API server always
// runs on sqlite through SQLShipmentStore.
type PGShipmentStore struct{ DB *sql.DB }

func NewPGShipmentStore(db *sql.DB) *PGShipmentStore {
	return &PGShipmentStore{DB: db}
}

const pgShipmentInsert = `
	INSERT INTO shipments (` + shipmentColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`

// BulkCreate inserts many shipments in one transaction. Any failure
// rolls back the whole batch.
func (s *PGShipmentStore) BulkCreate(ctx context.Context, shipments []*domain.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bulk create shipments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, pgShipmentInsert)
	if err != nil {
		return fmt.Errorf("bulk create shipments: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sh := range shipments {
		if _, err := stmt.ExecContext(ctx, shipmentArgs(sh)...); err != nil {
			return fmt.Errorf("bulk create shipments: insert deal=%s: %w", sh.DealNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bulk create shipments: commit tx: %w", err)
	}

	return nil
}
