package domain

// Port of loading or discharge. Natural key is (Name, Country): the same
// port name recurs across countries.
type Port struct {
	ID      int64
	Name    string
	Country string
}

// Operator is the person running a deal. Natural key is the full name.
type Operator struct {
	ID        int64
	FirstName string
	LastName  string
}
