package dto

import (
	"cargo-coverage-service/internal/domain"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormMergeResponse is the flattened field set handed to the external
// document-merge step. Every value is pre-formatted text; the merge
// template does no further processing.
type FormMergeResponse struct {
	DealNumber           string `json:"deal_number"`
	Insured              string `json:"insured"`
	Address              string `json:"address"`
	Beneficiary          string `json:"beneficiary"`
	BeneficiaryAddress   string `json:"beneficiary_address"`
	SurveyorLoadport     string `json:"surveyor_loadport"`
	SurveyorDisport      string `json:"surveyor_disport"`
	BasisOfValuation     string `json:"basis_of_valuation"`
	Date                 string `json:"date"`
	BLDate               string `json:"bl_date"`
	Loadport             string `json:"loadport"`
	Disport              string `json:"disport"`
	PolicyNumber         string `json:"policy_number"`
	PolicyDate           string `json:"policy_date"`
	SubjectMatterInsured string `json:"subject_matter_insured"`
	Vessel               string `json:"vessel"`
	IMO                  string `json:"imo"`
	YearBuilt            string `json:"year_built"`
	WeightMetric         string `json:"weight_metric"`
	SumInsured           string `json:"sum_insured"`

	// Unsupported names merge fields the serializer cannot produce
	// yet, so consumers can detect the gap instead of reading silence.
	// The attached bill-of-lading list is the one outstanding field.
	Unsupported []string `json:"unsupported"`
}

type ListFormMergeResponse struct {
	Merges []FormMergeResponse `json:"merges"`
}

// pendingMergeFields: bl_number needs a nested list of formatted bill
// references ("Bill of Lading # <number> dated <date>") which the
// template engine cannot consume yet.
var pendingMergeFields = []string{"bl_number"}

// Each output field is an explicit extraction over the typed merge
// source; there is no dynamic attribute traversal.
func NewFormMergeResponse(m *domain.MergeSource, now time.Time) FormMergeResponse {
	return FormMergeResponse{
		DealNumber:           m.Shipment.DealNumber,
		Insured:              m.Insured.Name,
		Address:              m.Insured.Address,
		Beneficiary:          m.Buyer.Name,
		BeneficiaryAddress:   m.Buyer.Address,
		SurveyorLoadport:     m.SurveyorLoadportName,
		SurveyorDisport:      m.SurveyorDisportName,
		BasisOfValuation:     basisOfValuation(),
		Date:                 clampDate(m.Shipment.Date, now),
		BLDate:               m.Shipment.Date.Format(time.DateOnly),
		Loadport:             m.LoadportName,
		Disport:              m.DisportName,
		PolicyNumber:         m.Policy.Number,
		PolicyDate:           m.Policy.Inception.Format(time.DateOnly),
		SubjectMatterInsured: m.Shipment.SubjectMatterInsured,
		Vessel:               m.Vessel.Name,
		IMO:                  strconv.FormatInt(m.Vessel.IMO, 10),
		YearBuilt:            yearBuilt(m.Vessel.BuiltOn),
		WeightMetric:         formatWeight(m.Shipment.WeightMetric),
		SumInsured:           formatSumInsured(m.Shipment.CCY, m.Shipment.SumInsured),
		Unsupported:          pendingMergeFields,
	}
}

// Cargo is always valued at full invoice value on these forms.
func basisOfValuation() string {
	return "100%"
}

// clampDate never renders a future date: a shipment dated ahead of the
// merge run shows the run date instead.
func clampDate(stored, now time.Time) string {
	today := now.Truncate(24 * time.Hour)
	if stored.After(today) {
		return today.Format(time.DateOnly)
	}
	return stored.Format(time.DateOnly)
}

func yearBuilt(builtOn time.Time) string {
	return strconv.Itoa(builtOn.Year())
}

// "1234.5" metric tons renders as "1,234.500".
func formatWeight(weight float64) string {
	return humanize.FormatFloat("#,###.###", weight)
}

// A sum insured of 1234567.5 USD renders as "USD 1,234,567.50".
func formatSumInsured(ccy string, sum decimal.Decimal) string {
	f, _ := sum.Float64()
	return ccy + " " + humanize.FormatFloat("#,###.##", f)
}
