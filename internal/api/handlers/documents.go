package handlers

import (
	"cargo-coverage-service/internal/api/dto"
	"cargo-coverage-service/internal/ports"
	"log"
	"net/http"
	"time"
)

// DocumentHandler exposes read-only vessel document endpoints.
// Now is injectable so validity windows are testable; it defaults to
// the wall clock.
type DocumentHandler struct {
	Store ports.DocumentStore
	Now   func() time.Time
}

func (h *DocumentHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("list documents failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	now := h.now()
	res := dto.ListDocumentsResponse{
		Documents: make([]dto.DocumentResponse, 0, len(docs)),
	}
	for _, d := range docs {
		res.Documents = append(res.Documents, dto.NewDocumentResponse(d, now))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	d, err := h.Store.Get(r.Context(), id)
	if err != nil {
		log.Printf("get document failed: id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if d == nil {
		writeError(w, r, http.StatusNotFound, "document not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDocumentResponse(d, h.now()))
}
