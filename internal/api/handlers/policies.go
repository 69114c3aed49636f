package handlers

import (
	"cargo-coverage-service/internal/api/dto"
	"cargo-coverage-service/internal/ports"
	"log"
	"net/http"
)

// PolicyHandler exposes read-only policy endpoints.
type PolicyHandler struct {
	Store ports.PolicyStore
}

func (h *PolicyHandler) List(w http.ResponseWriter, r *http.Request) {
	policies, err := h.Store.List(r.Context())
	if err != nil {
		log.Printf("list policies failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPoliciesResponse{
		Policies: make([]dto.PolicyResponse, 0, len(policies)),
	}
	for _, p := range policies {
		res.Policies = append(res.Policies, dto.NewPolicyResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PolicyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.Store.Get(r.Context(), id)
	if err != nil {
		log.Printf("get policy failed: id=%d err=%v", id, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if p == nil {
		writeError(w, r, http.StatusNotFound, "policy not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPolicyResponse(p))
}
