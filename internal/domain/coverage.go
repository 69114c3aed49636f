package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coverage is a risk record tying a shipment to an underwriter's policy.
// PolicyID is nullable: removing a policy must not delete the coverage
// rows that reference it.
type Coverage struct {
	ID                int64
	ShipmentID        int64
	PolicyID          *int64
	DebitNote         string
	Date              time.Time
	OrdinaryRisksRate decimal.Decimal
	WarRisksRate      decimal.Decimal

	Policy *Policy
}

// DefaultDebitNote is assigned when a coverage is created without an
// underwriter's debit note reference.
const DefaultDebitNote = "#"

// SumInsured is a placeholder until the rating computation lands.
func (c *Coverage) SumInsured() decimal.Decimal {
	return decimal.NewFromInt(1)
}

// Premium is a placeholder until the rating computation lands.
func (c *Coverage) Premium() decimal.Decimal {
	return decimal.NewFromInt(1)
}
