package emission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/greencampus/emission-engine/internal/domain"
	"github.com/greencampus/emission-engine/pkg/ctxutil"
)

// commit writes the calculation and its audit snapshot in one transaction.
// If a concurrent submission already committed the same (user, category,
// idempotency key), the winner's row is returned with replayed set.
func (s *Service) commit(
	ctx context.Context,
	userID uuid.UUID,
	kind domain.CalculationKind,
	input domain.InputSnapshot,
	kgCO2e float64,
	factor *domain.ResolvedFactor,
) (*domain.Calculation, bool, error) {
	now := time.Now().UTC()
	calc := &domain.Calculation{
		ID:         uuid.New(),
		UserID:     userID,
		Category:   kind.Category(),
		Input:      input,
		KgCO2e:     kgCO2e,
		FactorHash: factor.Hash,
		CreatedAt:  now,
	}

	var (
		created  *domain.Calculation
		conflict bool
	)
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.calculations.Create(ctx, calc)
		if err != nil {
			conflict = errors.Is(err, domain.ErrAlreadyExists)
			return fmt.Errorf("create calculation: %w", err)
		}

		_, err = s.calculations.CreateAudit(ctx, &domain.CalculationAudit{
			ID:             uuid.New(),
			CalculationID:  c.ID,
			FactorSnapshot: domain.NewFactorSnapshot(kind.Category(), *factor),
			CreatedAt:      now,
		})
		if err != nil {
			return fmt.Errorf("create calculation audit: %w", err)
		}

		created = c
		return nil
	})
	if err == nil {
		return created, false, nil
	}
	if !conflict {
		return nil, false, fmt.Errorf("persist calculation: %w", err)
	}

	// The transaction is aborted; read the winner through a fresh snapshot.
	key := input.IdempotencyKey()
	winner, err := s.recoverExisting(ctx, userID, calc.Category, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "uniqueness conflict but no committed calculation found",
				slog.String("user_id", userID.String()),
				slog.String("category", calc.Category),
				slog.String("idempotency_key", key),
				slog.Int("attempts", s.cfg.RecoveryReadAttempts),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			return nil, false, fmt.Errorf("calculation %s/%s: %w", calc.Category, key, domain.ErrInconsistentState)
		}
		return nil, false, fmt.Errorf("recover calculation after conflict: %w", err)
	}

	s.log.WarnContext(ctx, "idempotency race recovered",
		slog.String("user_id", userID.String()),
		slog.String("category", calc.Category),
		slog.String("calc_id", winner.ID.String()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	return winner, true, nil
}

// recoverExisting re-reads the row that won a uniqueness race. The read is
// repeated a bounded number of times while the row is not yet visible; any
// other error ends it immediately. Returns domain.ErrNotFound when every
// attempt missed.
func (s *Service) recoverExisting(ctx context.Context, userID uuid.UUID, category, key string) (*domain.Calculation, error) {
	backoff := retry.WithMaxRetries(uint64(s.cfg.RecoveryReadAttempts-1), retry.NewConstant(s.cfg.RecoveryReadDelay))

	var winner *domain.Calculation
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		calc, found, err := s.findExisting(ctx, userID, category, key)
		if err != nil {
			return err
		}
		if !found {
			return retry.RetryableError(domain.ErrNotFound)
		}
		winner = calc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return winner, nil
}
