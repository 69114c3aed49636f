package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the PolicyStore port.
type SQLPolicyStore struct{ DB *sql.DB }

func NewSQLPolicyStore(db *sql.DB) *SQLPolicyStore {
	return &SQLPolicyStore{DB: db}
}

func (s *SQLPolicyStore) Create(ctx context.Context, p *domain.Policy) (*domain.Policy, error) {
	query := `
	INSERT INTO policies (number, provider_id, insured_id, date, inception, expiry)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		p.Number, p.ProviderID, p.InsuredID, p.Date, p.Inception, p.Expiry,
	)
	if err != nil {
		return nil, fmt.Errorf("create policy: number=%s: %w", p.Number, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create policy: last insert id: %w", err)
	}

	created := *p
	created.ID = id
	return &created, nil
}

const policyQuery = `
	SELECT
		p.id, p.number, p.provider_id, p.insured_id,
		p.date, p.inception, p.expiry,
		prov.name, prov.address,
		ins.name, ins.address
	FROM policies p
	JOIN parties prov ON prov.id = p.provider_id
	JOIN parties ins ON ins.id = p.insured_id
`

func scanPolicy(row interface{ Scan(...any) error }) (*domain.Policy, error) {
	p := &domain.Policy{
		Provider: &domain.Party{},
		Insured:  &domain.Party{},
	}

	err := row.Scan(
		&p.ID, &p.Number, &p.ProviderID, &p.InsuredID,
		&p.Date, &p.Inception, &p.Expiry,
		&p.Provider.Name, &p.Provider.Address,
		&p.Insured.Name, &p.Insured.Address,
	)
	if err != nil {
		return nil, err
	}

	p.Provider.ID = p.ProviderID
	p.Insured.ID = p.InsuredID
	return p, nil
}

func (s *SQLPolicyStore) Get(ctx context.Context, id int64) (*domain.Policy, error) {
	row := s.DB.QueryRowContext(ctx, policyQuery+` WHERE p.id = ?;`, id)

	p, err := scanPolicy(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get policy: id=%d: %w", id, err)
	}

	return p, nil
}

func (s *SQLPolicyStore) List(ctx context.Context) ([]*domain.Policy, error) {
	rows, err := s.DB.QueryContext(ctx, policyQuery+` ORDER BY p.id;`)
	if err != nil {
		return nil, fmt.Errorf("list policies: query: %w", err)
	}
	defer rows.Close()

	policies := make([]*domain.Policy, 0, 16)
	for rows.Next() {
		p, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("list policies: scan row: %w", err)
		}
		policies = append(policies, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list policies: row iteration: %w", err)
	}

	return policies, nil
}
