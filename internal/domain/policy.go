package domain

import "time"

// An underwriter's policy. Provider and Insured are hydrated by the
// store on reads that need the nested parties; they stay nil otherwise.
type Policy struct {
	ID         int64
	Number     string
	ProviderID int64
	InsuredID  int64
	Date       time.Time
	Inception  time.Time
	Expiry     time.Time

	Provider *Party
	Insured  *Party
}
