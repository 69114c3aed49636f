package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Shipment is the central record of the system. DealNumber is the
// business key: unique, and the match key for upserts.
type Shipment struct {
	ID                   int64
	DealNumber           string
	Date                 time.Time
	DisportETA           time.Time
	VolumeBBL            float64
	WeightMetric         float64
	CCY                  string
	Unit                 string
	SubjectMatterInsured string
	ContractID           int64
	DisportID            int64
	LoadportID           int64
	OperatorID           int64
	SurveyorDisportID    int64
	SurveyorLoadportID   int64
	SumInsured           decimal.Decimal
	VesselID             int64
}

// BillOfLading is one cargo line under a shipment. Quantities carry both
// mass (metric tons) and volume (barrels); Value is the insured value.
type BillOfLading struct {
	ID          int64
	ShipmentID  int64
	Number      string
	Date        time.Time
	QuantityMT  float64
	QuantityBBL float64
	Value       decimal.Decimal
}

// ShipmentTotals is the aggregation of a shipment's bills of lading.
// Totals are zero, not absent, when the shipment has no line items.
type ShipmentTotals struct {
	ID             int64
	DealNumber     string
	DisportETA     time.Time
	TotalWeightMT  float64
	TotalVolumeBBL float64
	TotalValueUSD  decimal.Decimal
}
