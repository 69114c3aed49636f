// Package csvimport reads the fixed-schema shipment CSV exported from
// the logistics system. Parsing is strict: one malformed row fails the
// whole file, so the caller's bulk insert never partially applies.
package csvimport

import (
	"cargo-coverage-service/internal/domain"
	"cargo-coverage-service/internal/textutil"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Column order of logistics_shipment.csv. The header row is skipped but
// must have this exact width.
var fieldNames = []string{
	"number",
	"date",
	"disport_eta",
	"volume_bbl",
	"weight_metric",
	"ccy",
	"unit",
	"subject_matter_insured",
	"contract_id",
	"disport_id",
	"loadport_id",
	"operator_id",
	"surveyor_disport_id",
	"surveyor_loadport_id",
	"sum_insured",
	"vessel_id",
}

// ReadShipments parses the CSV at path into shipment records.
func ReadShipments(path string) ([]*domain.Shipment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read shipments: open %q: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(fieldNames)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read shipments: parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read shipments: %q is empty", path)
	}

	// First record is the header.
	shipments := make([]*domain.Shipment, 0, len(records)-1)
	for i, record := range records[1:] {
		sh, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("read shipments: row %d: %w", i+2, err)
		}
		shipments = append(shipments, sh)
	}

	return shipments, nil
}

func parseRow(record []string) (*domain.Shipment, error) {
	dealNumber := strings.TrimSpace(record[0])
	if dealNumber == "" {
		return nil, fmt.Errorf("deal number is empty")
	}

	date, err := parseDate(record[1])
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	eta, err := parseDate(record[2])
	if err != nil {
		return nil, fmt.Errorf("disport_eta: %w", err)
	}

	volume, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
	if err != nil {
		return nil, fmt.Errorf("volume_bbl: %w", err)
	}

	weight, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
	if err != nil {
		return nil, fmt.Errorf("weight_metric: %w", err)
	}

	sumInsured, err := decimal.NewFromString(strings.TrimSpace(record[14]))
	if err != nil {
		return nil, fmt.Errorf("sum_insured: %w", err)
	}

	refs := make([]int64, 0, 7)
	for _, idx := range []int{8, 9, 10, 11, 12, 13, 15} {
		ref, err := strconv.ParseInt(strings.TrimSpace(record[idx]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fieldNames[idx], err)
		}
		refs = append(refs, ref)
	}

	return &domain.Shipment{
		DealNumber:           dealNumber,
		Date:                 date,
		DisportETA:           eta,
		VolumeBBL:            volume,
		WeightMetric:         weight,
		CCY:                  strings.TrimSpace(record[5]),
		Unit:                 strings.TrimSpace(record[6]),
		SubjectMatterInsured: strings.TrimSpace(record[7]),
		ContractID:           refs[0],
		DisportID:            refs[1],
		LoadportID:           refs[2],
		OperatorID:           refs[3],
		SurveyorDisportID:    refs[4],
		SurveyorLoadportID:   refs[5],
		SumInsured:           sumInsured,
		VesselID:             refs[6],
	}, nil
}

// parseDate accepts ISO dates and falls back to the textual shapes the
// logistics exports sometimes carry ("19 March 2025").
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	if t, ok := textutil.ParseDate(raw); ok {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}
