package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the OperatorStore port.
type SQLOperatorStore struct{ DB *sql.DB }

func NewSQLOperatorStore(db *sql.DB) *SQLOperatorStore {
	return &SQLOperatorStore{DB: db}
}

// GetOrCreate matches on (first_name, last_name). An existing operator
// is returned as stored; non-key fields are never updated here.
func (s *SQLOperatorStore) GetOrCreate(ctx context.Context, op *domain.Operator) (*domain.Operator, error) {
	query := `
	SELECT id, first_name, last_name
	FROM operators
	WHERE first_name = ? AND last_name = ?;
	`
	existing := &domain.Operator{}
	err := s.DB.QueryRowContext(ctx, query, op.FirstName, op.LastName).
		Scan(&existing.ID, &existing.FirstName, &existing.LastName)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get or create operator: lookup: %w", err)
	}

	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO operators (first_name, last_name) VALUES (?, ?);`,
		op.FirstName, op.LastName,
	)
	if err != nil {
		return nil, fmt.Errorf("get or create operator: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get or create operator: last insert id: %w", err)
	}

	created := *op
	created.ID = id
	return &created, nil
}
