package handlers

import (
	"cargo-coverage-service/internal/api/dto"
	"cargo-coverage-service/internal/ports"
	"log"
	"net/http"
)

// VesselHandler exposes read-only vessel endpoints.
type VesselHandler struct {
	Store ports.VesselStore
}

func (h *VesselHandler) List(w http.ResponseWriter, r *http.Request) {
	vessels, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("list vessels failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVesselsResponse{
		Vessels: make([]dto.VesselResponse, 0, len(vessels)),
	}
	for _, v := range vessels {
		res.Vessels = append(res.Vessels, dto.NewVesselResponse(v))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *VesselHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, err := h.Store.Get(r.Context(), id)
	if err != nil {
		log.Printf("get vessel failed: id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if v == nil {
		writeError(w, r, http.StatusNotFound, "vessel not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewVesselResponse(v))
}
