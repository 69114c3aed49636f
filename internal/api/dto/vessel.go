package dto

import (
	"cargo-coverage-service/internal/domain"
	"time"
)

type VesselResponse struct {
	Name    string `json:"name"`
	IMO     int64  `json:"imo"`
	BuiltOn string `json:"built_on"`
}

type ListVesselsResponse struct {
	Vessels []VesselResponse `json:"vessels"`
}

func NewVesselResponse(v *domain.Vessel) VesselResponse {
	return VesselResponse{
		Name:    v.Name,
		IMO:     v.IMO,
		BuiltOn: v.BuiltOn.Format(time.DateOnly),
	}
}

type DocumentResponse struct {
	ID        int64          `json:"id"`
	Vessel    VesselResponse `json:"vessel"`
	Provider  PartyView      `json:"provider"`
	Number    string         `json:"number"`
	ValidFrom string         `json:"valid_from"`
	ValidTo   string         `json:"valid_to"`
	IsValid   bool           `json:"is_valid"`
}

type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// NewDocumentResponse derives is_valid from the validity window against
// the supplied clock reading.
func NewDocumentResponse(d *domain.Document, now time.Time) DocumentResponse {
	res := DocumentResponse{
		ID:        d.ID,
		Number:    d.Number,
		ValidFrom: d.ValidFrom.Format(time.DateOnly),
		ValidTo:   d.ValidTo.Format(time.DateOnly),
		IsValid:   d.IsValid(now),
	}
	if d.Vessel != nil {
		res.Vessel = NewVesselResponse(d.Vessel)
	}
	if d.Provider != nil {
		res.Provider = PartyView{Name: d.Provider.Name}
	}

	return res
}
