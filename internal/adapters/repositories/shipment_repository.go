package repositories

import (
	"cargo-coverage-service/internal/domain"
	"cargo-coverage-service/internal/platform/obs"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the ShipmentStore port.
type SQLShipmentStore struct{ DB *sql.DB }

func NewSQLShipmentStore(db *sql.DB) *SQLShipmentStore {
	return &SQLShipmentStore{DB: db}
}

const shipmentColumns = `deal_number, date, disport_eta, volume_bbl, weight_metric,
		ccy, unit, subject_matter_insured, contract_id, disport_id, loadport_id,
		operator_id, surveyor_disport_id, surveyor_loadport_id, sum_insured, vessel_id`

func shipmentArgs(s *domain.Shipment) []any {
	return []any{
		s.DealNumber, s.Date, s.DisportETA, s.VolumeBBL, s.WeightMetric,
		s.CCY, s.Unit, s.SubjectMatterInsured, s.ContractID, s.DisportID,
		s.LoadportID, s.OperatorID, s.SurveyorDisportID, s.SurveyorLoadportID,
		s.SumInsured, s.VesselID,
	}
}

// Create inserts unconditionally; a duplicate deal number surfaces as a
// database error.
func (s *SQLShipmentStore) Create(ctx context.Context, sh *domain.Shipment) (*domain.Shipment, error) {
	query := `
	INSERT INTO shipments (` + shipmentColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	res, err := s.DB.ExecContext(ctx, query, shipmentArgs(sh)...)
	if err != nil {
		return nil, fmt.Errorf("create shipment: deal=%s: %w", sh.DealNumber, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create shipment: last insert id: %w", err)
	}

	created := *sh
	created.ID = id
	return &created, nil
}

// Upsert matches on deal number and overwrites every field when a
// shipment exists, else inserts. The store does not stop callers from
// rewriting a deal number; in practice it never changes.
func (s *SQLShipmentStore) Upsert(ctx context.Context, sh *domain.Shipment) (*domain.Shipment, error) {
	var id int64
	err := s.DB.QueryRowContext(ctx,
		`SELECT id FROM shipments WHERE deal_number = ?;`, sh.DealNumber,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return s.Create(ctx, sh)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert shipment: lookup deal=%s: %w", sh.DealNumber, err)
	}

	query := `
	UPDATE shipments
	SET deal_number = ?, date = ?, disport_eta = ?, volume_bbl = ?,
		weight_metric = ?, ccy = ?, unit = ?, subject_matter_insured = ?,
		contract_id = ?, disport_id = ?, loadport_id = ?, operator_id = ?,
		surveyor_disport_id = ?, surveyor_loadport_id = ?, sum_insured = ?,
		vessel_id = ?
	WHERE id = ?;
	`
	args := append(shipmentArgs(sh), id)
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("upsert shipment: update deal=%s: %w", sh.DealNumber, err)
	}

	updated := *sh
	updated.ID = id
	return &updated, nil
}

// BulkCreate inserts many shipments in one transaction. Any failure
// rolls back the whole batch.
func (s *SQLShipmentStore) BulkCreate(ctx context.Context, shipments []*domain.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bulk create shipments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO shipments (` + shipmentColumns + `)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
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

// BulkCreateBills inserts bill-of-lading rows in one transaction,
// all-or-nothing.
func (s *SQLShipmentStore) BulkCreateBills(ctx context.Context, bills []*domain.BillOfLading) error {
	if len(bills) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("bulk create bills: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO bills_of_lading (shipment_id, number, bl_date, quantity_mt, quantity_bbl, value)
	VALUES (?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("bulk create bills: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bills {
		_, err := stmt.ExecContext(ctx,
			b.ShipmentID, b.Number, b.Date, b.QuantityMT, b.QuantityBBL, b.Value)
		if err != nil {
			return fmt.Errorf("bulk create bills: insert shipment_id=%d: %w", b.ShipmentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("bulk create bills: commit tx: %w", err)
	}

	return nil
}

// GetWithTotals sums the shipment's bill-of-lading lines. The left join
// keeps shipments with no lines: their totals coalesce to zero. Only a
// missing shipment yields a nil result.
func (s *SQLShipmentStore) GetWithTotals(ctx context.Context, shipmentID int64) (_ *domain.ShipmentTotals, err error) {
	defer obs.Time(ctx, "shipments.GetWithTotals")(&err)

	query := `
	SELECT
		s.id,
		s.deal_number,
		s.disport_eta,
		COALESCE(SUM(b.quantity_mt), 0.0),
		COALESCE(SUM(b.quantity_bbl), 0.0),
		COALESCE(SUM(b.value), 0.0)
	FROM shipments s
	LEFT JOIN bills_of_lading b ON b.shipment_id = s.id
	WHERE s.id = ?
	GROUP BY s.id, s.deal_number, s.disport_eta;
	`
	t := &domain.ShipmentTotals{}
	scanErr := s.DB.QueryRowContext(ctx, query, shipmentID).Scan(
		&t.ID, &t.DealNumber, &t.DisportETA,
		&t.TotalWeightMT, &t.TotalVolumeBBL, &t.TotalValueUSD,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, nil
	}
	if scanErr != nil {
		err = fmt.Errorf("get shipment totals: id=%d: %w", shipmentID, scanErr)
		return nil, err
	}

	return t, nil
}

const mergeSourceQuery = `
	SELECT
		s.id, s.deal_number, s.date, s.disport_eta, s.volume_bbl,
		s.weight_metric, s.ccy, s.unit, s.subject_matter_insured,
		s.contract_id, s.disport_id, s.loadport_id, s.operator_id,
		s.surveyor_disport_id, s.surveyor_loadport_id, s.sum_insured,
		s.vessel_id,
		c.id, c.policy_id, c.debit_note, c.date,
		c.ordinary_risks_rate, c.war_risks_rate,
		p.id, p.number, p.provider_id, p.insured_id,
		p.date, p.inception, p.expiry,
		ins.id, ins.name, ins.address,
		buyer.id, buyer.name, buyer.address,
		v.id, v.imo, v.name, v.built_on,
		lp.name, dp.name, sl.name, sd.name
	FROM shipments s
	JOIN coverage c ON c.shipment_id = s.id
	JOIN policies p ON p.id = c.policy_id
	JOIN parties ins ON ins.id = p.insured_id
	JOIN contracts ct ON ct.id = s.contract_id
	JOIN parties buyer ON buyer.id = ct.buyer_id
	JOIN vessels v ON v.id = s.vessel_id
	JOIN ports lp ON lp.id = s.loadport_id
	JOIN ports dp ON dp.id = s.disport_id
	JOIN entities sl ON sl.id = s.surveyor_loadport_id
	JOIN entities sd ON sd.id = s.surveyor_disport_id
`

func scanMergeSource(row interface{ Scan(...any) error }) (*domain.MergeSource, error) {
	m := &domain.MergeSource{}
	sh := &m.Shipment
	cov := &m.Coverage
	pol := &m.Policy

	err := row.Scan(
		&sh.ID, &sh.DealNumber, &sh.Date, &sh.DisportETA, &sh.VolumeBBL,
		&sh.WeightMetric, &sh.CCY, &sh.Unit, &sh.SubjectMatterInsured,
		&sh.ContractID, &sh.DisportID, &sh.LoadportID, &sh.OperatorID,
		&sh.SurveyorDisportID, &sh.SurveyorLoadportID, &sh.SumInsured,
		&sh.VesselID,
		&cov.ID, &cov.PolicyID, &cov.DebitNote, &cov.Date,
		&cov.OrdinaryRisksRate, &cov.WarRisksRate,
		&pol.ID, &pol.Number, &pol.ProviderID, &pol.InsuredID,
		&pol.Date, &pol.Inception, &pol.Expiry,
		&m.Insured.ID, &m.Insured.Name, &m.Insured.Address,
		&m.Buyer.ID, &m.Buyer.Name, &m.Buyer.Address,
		&m.Vessel.ID, &m.Vessel.IMO, &m.Vessel.Name, &m.Vessel.BuiltOn,
		&m.LoadportName, &m.DisportName,
		&m.SurveyorLoadportName, &m.SurveyorDisportName,
	)
	if err != nil {
		return nil, err
	}

	cov.ShipmentID = sh.ID
	return m, nil
}

// GetMergeSource loads the full relation graph behind the form-merge
// view for one shipment. A shipment without coverage is not mergeable
// and yields nil.
func (s *SQLShipmentStore) GetMergeSource(ctx context.Context, shipmentID int64) (_ *domain.MergeSource, err error) {
	defer obs.Time(ctx, "shipments.GetMergeSource")(&err)

	row := s.DB.QueryRowContext(ctx, mergeSourceQuery+` WHERE s.id = ?;`, shipmentID)
	m, scanErr := scanMergeSource(row)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return nil, nil
	}
	if scanErr != nil {
		err = fmt.Errorf("get merge source: id=%d: %w", shipmentID, scanErr)
		return nil, err
	}

	return m, nil
}

func (s *SQLShipmentStore) ListMergeSources(ctx context.Context) (_ []*domain.MergeSource, err error) {
	defer obs.Time(ctx, "shipments.ListMergeSources")(&err)

	rows, queryErr := s.DB.QueryContext(ctx, mergeSourceQuery+` ORDER BY s.id;`)
	if queryErr != nil {
		err = fmt.Errorf("list merge sources: query: %w", queryErr)
		return nil, err
	}
	defer rows.Close()

	sources := make([]*domain.MergeSource, 0, 16)
	for rows.Next() {
		m, scanErr := scanMergeSource(rows)
		if scanErr != nil {
			err = fmt.Errorf("list merge sources: scan row: %w", scanErr)
			return nil, err
		}
		sources = append(sources, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		err = fmt.Errorf("list merge sources: row iteration: %w", rowsErr)
		return nil, err
	}

	return sources, nil
}
