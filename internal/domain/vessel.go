package domain

import "time"

// Vessel identified by its IMO number (the natural key; unique worldwide).
type Vessel struct {
	ID      int64
	IMO     int64
	Name    string
	BuiltOn time.Time
}

// Document is a vessel certificate issued by a provider party, valid
// within [ValidFrom, ValidTo].
type Document struct {
	ID         int64
	VesselID   int64
	ProviderID int64
	Number     string
	ValidFrom  time.Time
	ValidTo    time.Time

	Vessel   *Vessel
	Provider *Party
}

// IsValid reports whether the document's validity window covers now.
func (d *Document) IsValid(now time.Time) bool {
	day := now.Truncate(24 * time.Hour)
	return !day.Before(d.ValidFrom.Truncate(24*time.Hour)) &&
		!day.After(d.ValidTo.Truncate(24*time.Hour))
}
