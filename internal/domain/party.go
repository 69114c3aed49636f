package domain

// A contracting party: underwriter, insured, buyer or any other legal
// entity that appears on policies and contracts.
type Party struct {
	ID      int64
	Name    string
	Address string
}

// Contract links a shipment to the buying party. Only the fields the
// reporting layer traverses are modeled here.
type Contract struct {
	ID      int64
	Number  string
	BuyerID int64
}
