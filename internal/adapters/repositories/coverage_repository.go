package repositories

import (
	"cargo-coverage-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the CoverageStore port.
type SQLCoverageStore struct{ DB *sql.DB }

func NewSQLCoverageStore(db *sql.DB) *SQLCoverageStore {
	return &SQLCoverageStore{DB: db}
}

func (s *SQLCoverageStore) Create(ctx context.Context, c *domain.Coverage) (*domain.Coverage, error) {
	debitNote := c.DebitNote
	if debitNote == "" {
		debitNote = domain.DefaultDebitNote
	}

	query := `
	INSERT INTO coverage (shipment_id, policy_id, debit_note, date, ordinary_risks_rate, war_risks_rate)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query,
		c.ShipmentID, c.PolicyID, debitNote, c.Date,
		c.OrdinaryRisksRate, c.WarRisksRate,
	)
	if err != nil {
		return nil, fmt.Errorf("create coverage: shipment_id=%d: %w", c.ShipmentID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create coverage: last insert id: %w", err)
	}

	created := *c
	created.ID = id
	created.DebitNote = debitNote
	return &created, nil
}

// Policies are left-joined: a deleted policy leaves the coverage row in
// place with a null policy reference.
const coverageQuery = `
	SELECT
		c.id, c.shipment_id, c.policy_id, c.debit_note, c.date,
		c.ordinary_risks_rate, c.war_risks_rate,
		p.id, p.number, p.provider_id, p.insured_id,
		p.date, p.inception, p.expiry,
		prov.id, prov.name, prov.address,
		ins.id, ins.name, ins.address
	FROM coverage c
	LEFT JOIN policies p ON p.id = c.policy_id
	LEFT JOIN parties prov ON prov.id = p.provider_id
	LEFT JOIN parties ins ON ins.id = p.insured_id
`

func scanCoverage(row interface{ Scan(...any) error }) (*domain.Coverage, error) {
	c := &domain.Coverage{}

	var (
		polID, provID, insID          sql.NullInt64
		polProviderID, polInsuredID   sql.NullInt64
		polNumber                     sql.NullString
		polDate, polInception, polExp sql.NullTime
		provName, provAddr            sql.NullString
		insName, insAddr              sql.NullString
	)

	err := row.Scan(
		&c.ID, &c.ShipmentID, &c.PolicyID, &c.DebitNote, &c.Date,
		&c.OrdinaryRisksRate, &c.WarRisksRate,
		&polID, &polNumber, &polProviderID, &polInsuredID,
		&polDate, &polInception, &polExp,
		&provID, &provName, &provAddr,
		&insID, &insName, &insAddr,
	)
	if err != nil {
		return nil, err
	}

	if polID.Valid {
		c.Policy = &domain.Policy{
			ID:         polID.Int64,
			Number:     polNumber.String,
			ProviderID: polProviderID.Int64,
			InsuredID:  polInsuredID.Int64,
			Date:       polDate.Time,
			Inception:  polInception.Time,
			Expiry:     polExp.Time,
		}
		if provID.Valid {
			c.Policy.Provider = &domain.Party{
				ID: provID.Int64, Name: provName.String, Address: provAddr.String,
			}
		}
		if insID.Valid {
			c.Policy.Insured = &domain.Party{
				ID: insID.Int64, Name: insName.String, Address: insAddr.String,
			}
		}
	}

	return c, nil
}

func (s *SQLCoverageStore) Get(ctx context.Context, id int64) (*domain.Coverage, error) {
	row := s.DB.QueryRowContext(ctx, coverageQuery+` WHERE c.id = ?;`, id)

	c, err := scanCoverage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get coverage: id=%d: %w", id, err)
	}

	return c, nil
}

func (s *SQLCoverageStore) List(ctx context.Context) ([]*domain.Coverage, error) {
	rows, err := s.DB.QueryContext(ctx, coverageQuery+` ORDER BY c.id;`)
	if err != nil {
		return nil, fmt.Errorf("list coverage: query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.Coverage, 0, 16)
	for rows.Next() {
		c, err := scanCoverage(rows)
		if err != nil {
			return nil, fmt.Errorf("list coverage: scan row: %w", err)
		}
		records = append(records, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list coverage: row iteration: %w", err)
	}

	return records, nil
}
