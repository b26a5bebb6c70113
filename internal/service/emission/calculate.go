package emission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/greencampus/emission-engine/internal/domain"
	"github.com/greencampus/emission-engine/pkg/ctxutil"
)

// Calculate processes one submission exactly once per (user, category,
// idempotency key): a repeated submission returns the stored result instead
// of computing a new one.
func (s *Service) Calculate(ctx context.Context, input CalculateInput) (*Result, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	snapshot := input.snapshot()
	category := input.Kind.Category()
	key := snapshot.IdempotencyKey()
	country := snapshot["countryCode"].(string)

	date, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return nil, domain.NewValidationError("period", "must be YYYY-MM")
	}

	existing, found, err := s.findExisting(ctx, userID, category, key)
	if err != nil {
		return nil, err
	}
	if found {
		s.log.InfoContext(ctx, "calculation replayed",
			slog.String("user_id", userID.String()),
			slog.String("category", category),
			slog.String("calc_id", existing.ID.String()),
		)
		return newResult(existing, true), nil
	}

	factor, err := s.resolveFactor(ctx, category, country, date)
	if err != nil {
		return nil, err
	}

	kg := Compute(input.Quantity, factor.Value)

	calc, replayed, err := s.commit(ctx, userID, input.Kind, snapshot, kg, factor)
	if err != nil {
		return nil, err
	}

	if !replayed {
		s.log.InfoContext(ctx, "calculation created",
			slog.String("user_id", userID.String()),
			slog.String("category", category),
			slog.String("calc_id", calc.ID.String()),
			slog.Float64("kg_co2e", calc.KgCO2e),
			slog.String("factor_hash", calc.FactorHash),
		)
	}

	return newResult(calc, replayed), nil
}

// GetCalculation returns one of the caller's calculations with its audit
// snapshot.
func (s *Service) GetCalculation(ctx context.Context, input GetCalculationInput) (*CalculationDetails, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	calc, err := s.calculations.GetByID(ctx, userID, input.CalculationID)
	if err != nil {
		return nil, fmt.Errorf("get calculation: %w", err)
	}

	audit, err := s.calculations.GetAudit(ctx, calc.ID)
	if err != nil {
		// Calculation and audit are committed together.
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrInconsistentState
		}
		return nil, fmt.Errorf("get calculation audit %s: %w", calc.ID, err)
	}

	return &CalculationDetails{Calculation: *calc, Audit: *audit}, nil
}
