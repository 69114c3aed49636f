package dto

import (
	"cargo-coverage-service/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

// Nested REST views. Decimals marshal as quoted strings, which keeps
// rates and premiums exact on the wire.

type PartyView struct {
	Name string `json:"name"`
}

type PolicyView struct {
	Number   string    `json:"number"`
	Provider PartyView `json:"provider"`
	Insured  PartyView `json:"insured"`
	Expiry   time.Time `json:"expiry"`
}

type CoverageResponse struct {
	Shipment          int64           `json:"shipment"`
	Policy            *PolicyView     `json:"policy"`
	DebitNote         string          `json:"debit_note"`
	Date              string          `json:"date"`
	OrdinaryRisksRate decimal.Decimal `json:"ordinary_risks_rate"`
	WarRisksRate      decimal.Decimal `json:"war_risks_rate"`
	Premium           decimal.Decimal `json:"premium"`
}

type ListCoverageResponse struct {
	Coverage []CoverageResponse `json:"coverage"`
}

func NewPolicyView(p *domain.Policy) *PolicyView {
	if p == nil {
		return nil
	}

	view := &PolicyView{Number: p.Number, Expiry: p.Expiry}
	if p.Provider != nil {
		view.Provider = PartyView{Name: p.Provider.Name}
	}
	if p.Insured != nil {
		view.Insured = PartyView{Name: p.Insured.Name}
	}

	return view
}

func NewCoverageResponse(c *domain.Coverage) CoverageResponse {
	return CoverageResponse{
		Shipment:          c.ShipmentID,
		Policy:            NewPolicyView(c.Policy),
		DebitNote:         c.DebitNote,
		Date:              c.Date.Format(time.DateOnly),
		OrdinaryRisksRate: c.OrdinaryRisksRate,
		WarRisksRate:      c.WarRisksRate,
		Premium:           c.Premium(),
	}
}

type PolicyResponse struct {
	Number   string    `json:"number"`
	Provider PartyView `json:"provider"`
	Insured  PartyView `json:"insured"`
	Date     string    `json:"date"`
	Expiry   time.Time `json:"expiry"`
}

type ListPoliciesResponse struct {
	Policies []PolicyResponse `json:"policies"`
}

func NewPolicyResponse(p *domain.Policy) PolicyResponse {
	res := PolicyResponse{
		Number: p.Number,
		Date:   p.Date.Format(time.DateOnly),
		Expiry: p.Expiry,
	}
	if p.Provider != nil {
		res.Provider = PartyView{Name: p.Provider.Name}
	}
	if p.Insured != nil {
		res.Insured = PartyView{Name: p.Insured.Name}
	}

	return res
}
