package emission

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/greencampus/emission-engine/internal/domain"
)

// findExisting looks up the calculation already stored for (userID,
// category, key). found is false when there is none.
func (s *Service) findExisting(ctx context.Context, userID uuid.UUID, category, key string) (*domain.Calculation, bool, error) {
	calc, err := s.calculations.FindByIdempotencyKey(ctx, userID, category, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("find calculation by idempotency key: %w", err)
	}
	return calc, true, nil
}
