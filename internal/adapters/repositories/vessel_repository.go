package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the VesselStore port.
type SQLVesselStore struct{ DB *sql.DB }

func NewSQLVesselStore(db *sql.DB) *SQLVesselStore {
	return &SQLVesselStore{DB: db}
}

func (s *SQLVesselStore) Get(ctx context.Context, id int64) (*domain.Vessel, error) {
	return s.getOne(ctx, `WHERE id = ?`, id)
}

func (s *SQLVesselStore) GetByIMO(ctx context.Context, imo int64) (*domain.Vessel, error) {
	return s.getOne(ctx, `WHERE imo = ?`, imo)
}

func (s *SQLVesselStore) getOne(ctx context.Context, where string, arg any) (*domain.Vessel, error) {
	query := `SELECT id, imo, name, built_on FROM vessels ` + where + `;`

	v := &domain.Vessel{}
	err := s.DB.QueryRowContext(ctx, query, arg).Scan(&v.ID, &v.IMO, &v.Name, &v.BuiltOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vessel: %w", err)
	}

	return v, nil
}

func (s *SQLVesselStore) List(ctx context.Context) ([]*domain.Vessel, error) {
	query := `
	SELECT id, imo, name, built_on
	FROM vessels
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vessels: query: %w", err)
	}
	defer rows.Close()

	vessels := make([]*domain.Vessel, 0, 16)
	for rows.Next() {
		v := &domain.Vessel{}
		if err := rows.Scan(&v.ID, &v.IMO, &v.Name, &v.BuiltOn); err != nil {
			return nil, fmt.Errorf("list vessels: scan row: %w", err)
		}
		vessels = append(vessels, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vessels: row iteration: %w", err)
	}

	return vessels, nil
}

// Upsert matches on the IMO number. Unlike operators and ports, an
// existing vessel gets every field overwritten: registry corrections to
// the name or build date flow through repeat imports.
func (s *SQLVesselStore) Upsert(ctx context.Context, v *domain.Vessel) (*domain.Vessel, error) {
	existing, err := s.GetByIMO(ctx, v.IMO)
	if err != nil {
		return nil, fmt.Errorf("upsert vessel: %w", err)
	}

	if existing != nil {
		query := `
		UPDATE vessels
		SET imo = ?, name = ?, built_on = ?
		WHERE id = ?;
		`
		if _, err := s.DB.ExecContext(ctx, query, v.IMO, v.Name, v.BuiltOn, existing.ID); err != nil {
			return nil, fmt.Errorf("upsert vessel: update imo=%d: %w", v.IMO, err)
		}

		updated := *v
		updated.ID = existing.ID
		return &updated, nil
	}

	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO vessels (imo, name, built_on) VALUES (?, ?, ?);`,
		v.IMO, v.Name, v.BuiltOn,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert vessel: insert imo=%d: %w", v.IMO, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("upsert vessel: last insert id: %w", err)
	}

	created := *v
	created.ID = id
	return &created, nil
}
