package domain

// MergeSource is the denormalized input of the form-merge view: one
// shipment with every related record the merge fields traverse. Stores
// assemble it in a single joined read so the serializer never touches
// the database.
type MergeSource struct {
	Shipment Shipment
	Coverage Coverage
	Policy   Policy
	Insured  Party
	Buyer    Party
	Vessel   Vessel

	LoadportName         string
	DisportName          string
	SurveyorLoadportName string
	SurveyorDisportName  string
}
