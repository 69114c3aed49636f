package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementations of the PartyStore and ContractStore ports.

type SQLPartyStore struct{ DB *sql.DB }

func NewSQLPartyStore(db *sql.DB) *SQLPartyStore {
	return &SQLPartyStore{DB: db}
}

func (s *SQLPartyStore) Create(ctx context.Context, p *domain.Party) (*domain.Party, error) {
	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO parties (name, address) VALUES (?, ?);`,
		p.Name, p.Address,
	)
	if err != nil {
		return nil, fmt.Errorf("create party: name=%s: %w", p.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create party: last insert id: %w", err)
	}

	created := *p
	created.ID = id
	return &created, nil
}

func (s *SQLPartyStore) Get(ctx context.Context, id int64) (*domain.Party, error) {
	p := &domain.Party{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, name, address FROM parties WHERE id = ?;`, id,
	).Scan(&p.ID, &p.Name, &p.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get party: id=%d: %w", id, err)
	}

	return p, nil
}

type SQLContractStore struct{ DB *sql.DB }

func NewSQLContractStore(db *sql.DB) *SQLContractStore {
	return &SQLContractStore{DB: db}
}

func (s *SQLContractStore) Create(ctx context.Context, c *domain.Contract) (*domain.Contract, error) {
	res, err := s.DB.ExecContext(ctx,
		`INSERT INTO contracts (number, buyer_id) VALUES (?, ?);`,
		c.Number, c.BuyerID,
	)
	if err != nil {
		return nil, fmt.Errorf("create contract: number=%s: %w", c.Number, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create contract: last insert id: %w", err)
	}

	created := *c
	created.ID = id
	return &created, nil
}

func (s *SQLContractStore) Get(ctx context.Context, id int64) (*domain.Contract, error) {
	c := &domain.Contract{}
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, number, buyer_id FROM contracts WHERE id = ?;`, id,
	).Scan(&c.ID, &c.Number, &c.BuyerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get contract: id=%d: %w", id, err)
	}

	return c, nil
}
