package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

const (
	statusOK   = "ok"
	statusDown = "down"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// cacheSizer is implemented by the factor lookup cache.
type cacheSizer interface {
	Len() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	cache   cacheSizer
	version string
}

// HealthOption configures optional HealthHandler components.
type HealthOption func(*HealthHandler)

// WithFactorCache reports the factor cache as a component of /health.
func WithFactorCache(c cacheSizer) HealthOption {
	return func(h *HealthHandler) { h.cache = c }
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{db: db, version: version}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Entries *int   `json:"entries,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	writeJSON(w, probeCode(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports every component with the build version. The cache never
// degrades overall status; a cold cache only costs extra lookups.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := map[string]CompStatus{
		"database": h.pingDB(r.Context()),
	}
	if h.cache != nil {
		n := h.cache.Len()
		components["factorCache"] = CompStatus{Status: statusOK, Entries: &n}
	}

	overall := components["database"].Status
	writeJSON(w, probeCode(overall), HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func probeCode(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
