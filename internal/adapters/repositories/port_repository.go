package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the PortStore port.
type SQLPortStore struct{ DB *sql.DB }

func NewSQLPortStore(db *sql.DB) *SQLPortStore {
	return &SQLPortStore{DB: db}
}

// GetOrCreate matches on (name, country) and returns an existing port
// unchanged, else inserts.
func (s *SQLPortStore) GetOrCreate(ctx context.Context, p *domain.Port) (*domain.Port, error) {
	query := `
	SELECT id, name, country
	FROM ports
	WHERE name = ? AND country = ?;
	`
	existing := &domain.Port{}
	err := s.DB.QueryRowContext(ctx, query, p.Name, p.Country).
		Scan(&existing.ID, &existing.Name, &existing.Country)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get or create port: lookup: %w", err)
	}

	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO ports (name, country) VALUES (?, ?);`,
		p.Name, p.Country,
	)
	if err != nil {
		return nil, fmt.Errorf("get or create port: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get or create port: last insert id: %w", err)
	}

	created := *p
	created.ID = id
	return &created, nil
}
