package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Key column DDL differs per engine: sqlite aliases the rowid through
// INTEGER PRIMARY KEY, postgres needs an identity column to generate
// ids for inserts that omit them.
const (
	sqliteIDColumn = "INTEGER PRIMARY KEY"
	pgIDColumn     = "BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY"
)

// InitSchema creates the sqlite schema the API server and local
// importer run against. Safe to run repeatedly.
func InitSchema(db *sql.DB) error {
	return initSchema(db, sqliteIDColumn)
}

// InitSchemaPG creates the same schema in the postgres dialect for the
// importer's DATABASE_URL path.
func InitSchemaPG(db *sql.DB) error {
	return initSchema(db, pgIDColumn)
}

// Decimal-valued columns (rates, sums insured, bill values) are TEXT so
// fixed-point values round-trip exactly through shopspring/decimal;
// date and timestamp columns use declared DATE/TIMESTAMP types so the
// driver scans them back into time.Time. DOUBLE PRECISION gets REAL
// affinity under sqlite and float8 under postgres.
func initSchema(db *sql.DB, idColumn string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schemaStatements(idColumn) {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

func schemaStatements(id string) []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS parties (
			id ` + id + `,
			name TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT ''
		);`,

		`CREATE TABLE IF NOT EXISTS contracts (
			id ` + id + `,
			number TEXT NOT NULL,
			buyer_id INTEGER NOT NULL REFERENCES parties(id)
		);`,

		`CREATE TABLE IF NOT EXISTS policies (
			id ` + id + `,
			number TEXT NOT NULL,
			provider_id INTEGER NOT NULL REFERENCES parties(id),
			insured_id INTEGER NOT NULL REFERENCES parties(id),
			date DATE NOT NULL,
			inception TIMESTAMP NOT NULL,
			expiry TIMESTAMP NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS shipments (
			id ` + id + `,
			deal_number TEXT NOT NULL UNIQUE,
			date DATE NOT NULL,
			disport_eta DATE NOT NULL,
			volume_bbl DOUBLE PRECISION NOT NULL DEFAULT 0,
			weight_metric DOUBLE PRECISION NOT NULL DEFAULT 0,
			ccy TEXT NOT NULL DEFAULT 'USD',
			unit TEXT NOT NULL DEFAULT '',
			subject_matter_insured TEXT NOT NULL DEFAULT '',
			contract_id INTEGER NOT NULL DEFAULT 0,
			disport_id INTEGER NOT NULL DEFAULT 0,
			loadport_id INTEGER NOT NULL DEFAULT 0,
			operator_id INTEGER NOT NULL DEFAULT 0,
			surveyor_disport_id INTEGER NOT NULL DEFAULT 0,
			surveyor_loadport_id INTEGER NOT NULL DEFAULT 0,
			sum_insured TEXT NOT NULL DEFAULT '0',
			vessel_id INTEGER NOT NULL DEFAULT 0
		);`,

		`CREATE TABLE IF NOT EXISTS bills_of_lading (
			id ` + id + `,
			shipment_id INTEGER NOT NULL REFERENCES shipments(id),
			number TEXT NOT NULL DEFAULT '',
			bl_date DATE,
			quantity_mt DOUBLE PRECISION NOT NULL DEFAULT 0,
			quantity_bbl DOUBLE PRECISION NOT NULL DEFAULT 0,
			value TEXT NOT NULL DEFAULT '0'
		);`,

		`CREATE TABLE IF NOT EXISTS coverage (
			id ` + id + `,
			shipment_id INTEGER NOT NULL REFERENCES shipments(id),
			policy_id INTEGER REFERENCES policies(id),
			debit_note TEXT NOT NULL DEFAULT '#',
			date DATE NOT NULL,
			ordinary_risks_rate TEXT NOT NULL DEFAULT '0',
			war_risks_rate TEXT NOT NULL DEFAULT '0'
		);`,

		`CREATE TABLE IF NOT EXISTS vessels (
			id ` + id + `,
			imo INTEGER NOT NULL UNIQUE,
			name TEXT NOT NULL,
			built_on DATE NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS ports (
			id ` + id + `,
			name TEXT NOT NULL,
			country TEXT NOT NULL,
			UNIQUE (name, country)
		);`,

		`CREATE TABLE IF NOT EXISTS operators (
			id ` + id + `,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			UNIQUE (first_name, last_name)
		);`,

		`CREATE TABLE IF NOT EXISTS documents (
			id ` + id + `,
			vessel_id INTEGER NOT NULL REFERENCES vessels(id),
			provider_id INTEGER NOT NULL REFERENCES parties(id),
			number TEXT NOT NULL DEFAULT '',
			valid_from DATE NOT NULL,
			valid_to DATE NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS entities (
			id ` + id + `,
			name TEXT NOT NULL UNIQUE,
			category TEXT NOT NULL DEFAULT '',
			notes TEXT NOT NULL DEFAULT ''
		);`,

		`CREATE INDEX IF NOT EXISTS idx_bills_of_lading_shipment
		ON bills_of_lading(shipment_id);`,

		`CREATE INDEX IF NOT EXISTS idx_coverage_shipment
		ON coverage(shipment_id);`,
	}
}
