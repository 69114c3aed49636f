package handlers

import (
	"cargo-coverage-service/internal/api/dto"
	"cargo-coverage-service/internal/ports"
	"log"
	"net/http"
	"time"
)

// MergeHandler serves the flattened form-merge representation consumed
// by the external document-generation step.
type MergeHandler struct {
	Store ports.ShipmentStore
	Now   func() time.Time
}

func (h *MergeHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *MergeHandler) List(w http.ResponseWriter, r *http.Request) {
	sources, err := h.Store.ListMergeSources(r.Context())
	if err != nil {
		log.Printf("list merge sources failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	now := h.now()
	res := dto.ListFormMergeResponse{
		Merges: make([]dto.FormMergeResponse, 0, len(sources)),
	}
	for _, m := range sources {
		res.Merges = append(res.Merges, dto.NewFormMergeResponse(m, now))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *MergeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	m, err := h.Store.GetMergeSource(r.Context(), id)
	if err != nil {
		log.Printf("get merge source failed: id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if m == nil {
		writeError(w, r, http.StatusNotFound, "shipment not found or not mergeable")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewFormMergeResponse(m, h.now()))
}
