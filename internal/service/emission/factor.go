package emission

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/greencampus/emission-engine/internal/domain"
)

// resolveFactor selects the factor for category/country on date. A catalog
// miss becomes domain.ErrNoApplicableFactor so callers can tell it apart from
// storage failures.
func (s *Service) resolveFactor(ctx context.Context, category, country string, date time.Time) (*domain.ResolvedFactor, error) {
	f, err := s.factors.Resolve(ctx, category, country, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s in %s for %s: %w",
				category, country, date.Format(domain.PeriodLayout), domain.ErrNoApplicableFactor)
		}
		return nil, fmt.Errorf("resolve factor: %w", err)
	}
	return f, nil
}

// ResolveFactor previews which factor a calculation for the given category,
// country and period would use.
func (s *Service) ResolveFactor(ctx context.Context, input ResolveFactorInput) (*domain.ResolvedFactor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	date, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return nil, domain.NewValidationError("period", "must be YYYY-MM")
	}

	return s.resolveFactor(ctx,
		strings.TrimSpace(input.Category),
		domain.NormalizeCountryCode(input.CountryCode),
		date,
	)
}
