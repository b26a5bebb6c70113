package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greencampus/emission-engine/internal/domain"
	"github.com/greencampus/emission-engine/internal/service/emission"
	"github.com/greencampus/emission-engine/internal/transport/middleware"
)

// ReplayedHeader is set on responses that return an existing calculation.
const ReplayedHeader = "Idempotent-Replayed"

// calculationService defines the minimal interface needed by CalculationHandler.
type calculationService interface {
	Calculate(ctx context.Context, input emission.CalculateInput) (*emission.Result, error)
	GetCalculation(ctx context.Context, input emission.GetCalculationInput) (*emission.CalculationDetails, error)
}

// CalculationHandler serves calculation REST endpoints.
type CalculationHandler struct {
	svc calculationService
	log *slog.Logger
}

// NewCalculationHandler creates a CalculationHandler.
func NewCalculationHandler(svc calculationService, logger *slog.Logger) *CalculationHandler {
	return &CalculationHandler{svc: svc, log: logger.With("handler", "calculation")}
}

type electricityRequest struct {
	KWh            *float64 `json:"kwh"`
	CountryCode    string   `json:"countryCode"`
	Period         string   `json:"period"`
	IdempotencyKey string   `json:"idempotencyKey"`
}

type transportRequest struct {
	Km             *float64 `json:"km"`
	Mode           string   `json:"mode"`
	CountryCode    string   `json:"countryCode"`
	Period         string   `json:"period"`
	IdempotencyKey string   `json:"idempotencyKey"`
}

type calculationResponse struct {
	CalcID     string  `json:"calcId"`
	KgCO2e     float64 `json:"kgCO2e"`
	FactorHash string  `json:"factorHash"`
}

type calculationDetailsResponse struct {
	CalcID     string         `json:"calcId"`
	Category   string         `json:"category"`
	Input      map[string]any `json:"input"`
	KgCO2e     float64        `json:"kgCO2e"`
	FactorHash string         `json:"factorHash"`
	CreatedAt  time.Time      `json:"createdAt"`
	Audit      auditResponse  `json:"audit"`
}

type auditResponse struct {
	ID             string         `json:"id"`
	FactorSnapshot map[string]any `json:"factorSnapshot"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// CreateElectricity handles POST /v1/calculations/electricity.
func (h *CalculationHandler) CreateElectricity(w http.ResponseWriter, r *http.Request) {
	var req electricityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.KWh == nil {
		handleError(w, r, h.log, domain.NewValidationError("kwh", "required"))
		return
	}

	h.calculate(w, r, emission.CalculateInput{
		Kind:           domain.KindElectricity,
		Quantity:       *req.KWh,
		CountryCode:    req.CountryCode,
		Period:         req.Period,
		IdempotencyKey: idempotencyKey(r, req.IdempotencyKey),
	})
}

// CreateTransport handles POST /v1/calculations/transport.
func (h *CalculationHandler) CreateTransport(w http.ResponseWriter, r *http.Request) {
	var req transportRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Km == nil {
		handleError(w, r, h.log, domain.NewValidationError("km", "required"))
		return
	}

	h.calculate(w, r, emission.CalculateInput{
		Kind:           domain.KindTransport,
		Quantity:       *req.Km,
		Mode:           req.Mode,
		CountryCode:    req.CountryCode,
		Period:         req.Period,
		IdempotencyKey: idempotencyKey(r, req.IdempotencyKey),
	})
}

func (h *CalculationHandler) calculate(w http.ResponseWriter, r *http.Request, input emission.CalculateInput) {
	result, err := h.svc.Calculate(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
		w.Header().Set(ReplayedHeader, "true")
	}

	writeJSON(w, status, calculationResponse{
		CalcID:     result.CalcID.String(),
		KgCO2e:     result.KgCO2e,
		FactorHash: result.FactorHash,
	})
}

// Get handles GET /v1/calculations/{id}.
func (h *CalculationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("calcId", "must be a UUID"))
		return
	}

	details, err := h.svc.GetCalculation(r.Context(), emission.GetCalculationInput{CalculationID: id})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	calc := details.Calculation
	writeJSON(w, http.StatusOK, calculationDetailsResponse{
		CalcID:     calc.ID.String(),
		Category:   calc.Category,
		Input:      calc.Input,
		KgCO2e:     calc.KgCO2e,
		FactorHash: calc.FactorHash,
		CreatedAt:  calc.CreatedAt,
		Audit: auditResponse{
			ID:             details.Audit.ID.String(),
			FactorSnapshot: details.Audit.FactorSnapshot,
			CreatedAt:      details.Audit.CreatedAt,
		},
	})
}

// idempotencyKey prefers the Idempotency-Key header over the body token.
func idempotencyKey(r *http.Request, fromBody string) string {
	if h := strings.TrimSpace(r.Header.Get(middleware.IdempotencyKeyHeader)); h != "" {
		return h
	}
	return fromBody
}
