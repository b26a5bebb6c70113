package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/greencampus/emission-engine/internal/domain"
	"github.com/greencampus/emission-engine/internal/service/emission"
)

// factorService defines the minimal interface needed by FactorHandler.
type factorService interface {
	ResolveFactor(ctx context.Context, input emission.ResolveFactorInput) (*domain.ResolvedFactor, error)
}

// FactorHandler serves factor catalog REST endpoints.
type FactorHandler struct {
	svc factorService
	log *slog.Logger
}

// NewFactorHandler creates a FactorHandler.
func NewFactorHandler(svc factorService, logger *slog.Logger) *FactorHandler {
	return &FactorHandler{svc: svc, log: logger.With("handler", "factor")}
}

type factorResponse struct {
	Category  string  `json:"category"`
	Country   *string `json:"country"`
	National  bool    `json:"national"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Hash      string  `json:"hash"`
	VersionID int64   `json:"versionId"`
	ValidFrom string  `json:"validFrom"`
	ValidTo   *string `json:"validTo"`
}

// Resolve handles GET /v1/factors/resolve?category=&countryCode=&period=.
func (h *FactorHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	f, err := h.svc.ResolveFactor(r.Context(), emission.ResolveFactorInput{
		Category:    q.Get("category"),
		CountryCode: q.Get("countryCode"),
		Period:      q.Get("period"),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := factorResponse{
		Category:  f.Category,
		Country:   f.Country,
		National:  f.IsNational(),
		Value:     f.Value,
		Unit:      f.Unit,
		Hash:      f.Hash,
		VersionID: f.VersionID,
		ValidFrom: f.ValidFrom.Format(domain.DateLayout),
	}
	if f.ValidTo != nil {
		validTo := f.ValidTo.Format(domain.DateLayout)
		resp.ValidTo = &validTo
	}

	writeJSON(w, http.StatusOK, resp)
}
