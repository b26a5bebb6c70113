package rest

import "net/http"

// NewRouter registers every REST endpoint on a new ServeMux.
func NewRouter(calculations *CalculationHandler, factors *FactorHandler, health *HealthHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /v1/calculations/electricity", calculations.CreateElectricity)
	mux.HandleFunc("POST /v1/calculations/transport", calculations.CreateTransport)
	mux.HandleFunc("GET /v1/calculations/{id}", calculations.Get)

	mux.HandleFunc("GET /v1/factors/resolve", factors.Resolve)

	return mux
}
