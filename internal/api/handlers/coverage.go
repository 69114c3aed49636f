package handlers

import (
	"cargo-coverage-service/internal/api/dto"
	"cargo-coverage-service/internal/ports"
	"log"
	"net/http"
)

// CoverageHandler exposes read-only coverage record endpoints.
type CoverageHandler struct {
	Store ports.CoverageStore
}

func (h *CoverageHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("list coverage failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCoverageResponse{
		Coverage: make([]dto.CoverageResponse, 0, len(records)),
	}
	for _, c := range records {
		res.Coverage = append(res.Coverage, dto.NewCoverageResponse(c))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *CoverageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, err := h.Store.Get(r.Context(), id)
	if err != nil {
		log.Printf("get coverage failed: id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if c == nil {
		writeError(w, r, http.StatusNotFound, "coverage not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewCoverageResponse(c))
}
