package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the DocumentStore port.
type SQLDocumentStore struct{ DB *sql.DB }

func NewSQLDocumentStore(db *sql.DB) *SQLDocumentStore {
	return &SQLDocumentStore{DB: db}
}

func (s *SQLDocumentStore) Create(ctx context.Context, d *domain.Document) (*domain.Document, error) {
	query := `
	INSERT INTO documents (vessel_id, provider_id, number, valid_from, valid_to)
	VALUES (?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		d.VesselID, d.ProviderID, d.Number, d.ValidFrom, d.ValidTo,
	)
	if err != nil {
		return nil, fmt.Errorf("create document: vessel_id=%d: %w", d.VesselID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create document: last insert id: %w", err)
	}

	created := *d
	created.ID = id
	return &created, nil
}

const documentQuery = `
	SELECT
		d.id, d.vessel_id, d.provider_id, d.number, d.valid_from, d.valid_to,
		v.imo, v.name, v.built_on,
		prov.name, prov.address
	FROM documents d
	JOIN vessels v ON v.id = d.vessel_id
	JOIN parties prov ON prov.id = d.provider_id
`

func scanDocument(row interface{ Scan(...any) error }) (*domain.Document, error) {
	d := &domain.Document{
		Vessel:   &domain.Vessel{},
		Provider: &domain.Party{},
	}

	err := row.Scan(
		&d.ID, &d.VesselID, &d.ProviderID, &d.Number, &d.ValidFrom, &d.ValidTo,
		&d.Vessel.IMO, &d.Vessel.Name, &d.Vessel.BuiltOn,
		&d.Provider.Name, &d.Provider.Address,
	)
	if err != nil {
		return nil, err
	}

	d.Vessel.ID = d.VesselID
	d.Provider.ID = d.ProviderID
	return d, nil
}

func (s *SQLDocumentStore) Get(ctx context.Context, id int64) (*domain.Document, error) {
	row := s.DB.QueryRowContext(ctx, documentQuery+` WHERE d.id = ?;`, id)

	d, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document: id=%d: %w", id, err)
	}

	return d, nil
}

func (s *SQLDocumentStore) List(ctx context.Context) ([]*domain.Document, error) {
	rows, err := s.DB.QueryContext(ctx, documentQuery+` ORDER BY d.id;`)
	if err != nil {
		return nil, fmt.Errorf("list documents: query: %w", err)
	}
	defer rows.Close()

	docs := make([]*domain.Document, 0, 16)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("list documents: scan row: %w", err)
		}
		docs = append(docs, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: row iteration: %w", err)
	}

	return docs, nil
}
