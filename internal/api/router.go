package api

import (
	"cargo-coverage-service/internal/api/handlers"
	"cargo-coverage-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their store dependencies and returns
// an http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(
	coverage ports.CoverageStore,
	policies ports.PolicyStore,
	vessels ports.VesselStore,
	documents ports.DocumentStore,
	shipments ports.ShipmentStore,
) http.Handler {
	mux := http.NewServeMux()

	coverageHandler := &handlers.CoverageHandler{Store: coverage}
	policyHandler := &handlers.PolicyHandler{Store: policies}
	vesselHandler := &handlers.VesselHandler{Store: vessels}
	documentHandler := &handlers.DocumentHandler{Store: documents}
	mergeHandler := &handlers.MergeHandler{Store: shipments}

	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /coverage", coverageHandler.List)
	mux.HandleFunc("GET /coverage/{id}", coverageHandler.Get)
	mux.HandleFunc("GET /policies", policyHandler.List)
	mux.HandleFunc("GET /policies/{id}", policyHandler.Get)
	mux.HandleFunc("GET /vessels", vesselHandler.List)
	mux.HandleFunc("GET /vessels/{id}", vesselHandler.Get)
	mux.HandleFunc("GET /documents", documentHandler.List)
	mux.HandleFunc("GET /documents/{id}", documentHandler.Get)
	mux.HandleFunc("GET /merge", mergeHandler.List)
	mux.HandleFunc("GET /merge/{id}", mergeHandler.Get)

	return loggingMiddleware(mux)
}
