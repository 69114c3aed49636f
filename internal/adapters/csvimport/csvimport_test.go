package csvimport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

const header = "number,date,disport_eta,volume_bbl,weight_metric,ccy,unit," +
	"subject_matter_insured,contract_id,disport_id,loadport_id,operator_id," +
	"surveyor_disport_id,surveyor_loadport_id,sum_insured,vessel_id"

func writeCSV(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "logistics_shipment.csv")
	content := strings.Join(append([]string{header}, lines...), "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestReadShipments(t *testing.T) {
	path := writeCSV(t,
		"DL-2025-117,2025-03-19,2025-04-02,620000,84712.331,USD,MT,Crude Oil In Bulk,1,2,3,4,5,6,48000000.00,7",
		"DL-2025-118,19 March 2025,2025-04-10,300000,40000,USD,MT,Fuel Oil In Bulk,1,2,3,4,5,6,21000000.50,7",
	)

	shipments, err := ReadShipments(path)
	if err != nil {
		t.Fatalf("read shipments: %v", err)
	}
	if len(shipments) != 2 {
		t.Fatalf("got %d shipments, want 2", len(shipments))
	}

	first := shipments[0]
	if first.DealNumber != "DL-2025-117" {
		t.Errorf("deal number = %q", first.DealNumber)
	}
	if !first.Date.Equal(time.Date(2025, time.March, 19, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v", first.Date)
	}
	if first.VolumeBBL != 620000 || first.WeightMetric != 84712.331 {
		t.Errorf("quantities = %v/%v", first.VolumeBBL, first.WeightMetric)
	}
	if !first.SumInsured.Equal(decimal.RequireFromString("48000000.00")) {
		t.Errorf("sum insured = %v", first.SumInsured)
	}
	if first.ContractID != 1 || first.VesselID != 7 || first.SurveyorLoadportID != 6 {
		t.Errorf("references = %+v", first)
	}

	// Textual export dates parse too.
	second := shipments[1]
	if !second.Date.Equal(time.Date(2025, time.March, 19, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("textual date = %v", second.Date)
	}
}

func TestReadShipmentsMalformedRowFailsAll(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{
			"bad date",
			"DL-1,not-a-date,2025-04-02,1,1,USD,MT,x,1,1,1,1,1,1,100,1",
		},
		{
			"bad sum insured",
			"DL-1,2025-03-19,2025-04-02,1,1,USD,MT,x,1,1,1,1,1,1,lots,1",
		},
		{
			"empty deal number",
			" ,2025-03-19,2025-04-02,1,1,USD,MT,x,1,1,1,1,1,1,100,1",
		},
		{
			"bad reference id",
			"DL-1,2025-03-19,2025-04-02,1,1,USD,MT,x,abc,1,1,1,1,1,100,1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeCSV(t,
				"DL-OK,2025-03-19,2025-04-02,1,1,USD,MT,x,1,1,1,1,1,1,100,1",
				tc.row,
			)

			if _, err := ReadShipments(path); err == nil {
				t.Fatal("expected the whole import to fail")
			}
		})
	}
}

func TestReadShipmentsWrongWidth(t *testing.T) {
	path := writeCSV(t, "DL-1,2025-03-19,only-three-fields")

	if _, err := ReadShipments(path); err == nil {
		t.Fatal("expected error for a short row")
	}
}
