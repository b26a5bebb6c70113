package emission

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/greencampus/emission-engine/internal/domain"
)

const (
	maxIdempotencyKeyLen = 255
	maxCategoryLen       = 64
	maxModeLen           = 32
)

// CalculateInput holds the parameters of one submission.
type CalculateInput struct {
	Kind           domain.CalculationKind
	Quantity       float64
	CountryCode    string
	Period         string
	IdempotencyKey string
	// Mode is the transport mode (bus, car, ...). Recorded in the input
	// snapshot only; ignored for electricity.
	Mode string
}

// Validate checks all fields and collects all errors.
func (i CalculateInput) Validate() error {
	var errs []domain.FieldError

	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be electricity or transport"})
	}

	quantityField := i.Kind.QuantityField()
	switch {
	case math.IsNaN(i.Quantity) || math.IsInf(i.Quantity, 0):
		errs = append(errs, domain.FieldError{Field: quantityField, Message: "must be a finite number"})
	case i.Quantity < 0:
		errs = append(errs, domain.FieldError{Field: quantityField, Message: "must be non-negative"})
	}

	errs = append(errs, validateCountry(i.CountryCode)...)
	errs = append(errs, validatePeriod(i.Period)...)

	key := strings.TrimSpace(i.IdempotencyKey)
	if key == "" {
		errs = append(errs, domain.FieldError{Field: domain.IdempotencyKeyField, Message: "required"})
	}
	if len(key) > maxIdempotencyKeyLen {
		errs = append(errs, domain.FieldError{Field: domain.IdempotencyKeyField, Message: "max 255 characters"})
	}

	if len(strings.TrimSpace(i.Mode)) > maxModeLen {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "max 32 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// snapshot builds the opaque input stored with the calculation. The
// idempotency key is always embedded; the uniqueness constraint reads it
// from there.
func (i CalculateInput) snapshot() domain.InputSnapshot {
	snap := domain.InputSnapshot{
		i.Kind.QuantityField():     i.Quantity,
		"countryCode":              domain.NormalizeCountryCode(i.CountryCode),
		"period":                   strings.TrimSpace(i.Period),
		domain.IdempotencyKeyField: strings.TrimSpace(i.IdempotencyKey),
	}
	if i.Kind == domain.KindTransport {
		if mode := strings.ToLower(strings.TrimSpace(i.Mode)); mode != "" {
			snap["mode"] = mode
		}
	}
	return snap
}

// ResolveFactorInput holds the parameters for previewing a factor.
type ResolveFactorInput struct {
	Category    string
	CountryCode string
	Period      string
}

// Validate checks all fields and collects all errors.
func (i ResolveFactorInput) Validate() error {
	var errs []domain.FieldError

	category := strings.TrimSpace(i.Category)
	if category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "required"})
	}
	if len(category) > maxCategoryLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "max 64 characters"})
	}

	errs = append(errs, validateCountry(i.CountryCode)...)
	errs = append(errs, validatePeriod(i.Period)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetCalculationInput holds the parameters for reading a calculation.
type GetCalculationInput struct {
	CalculationID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i GetCalculationInput) Validate() error {
	if i.CalculationID == uuid.Nil {
		return domain.NewValidationError("calcId", "required")
	}
	return nil
}

func validateCountry(code string) []domain.FieldError {
	if !domain.IsCountryCode(domain.NormalizeCountryCode(code)) {
		return []domain.FieldError{{Field: "countryCode", Message: "must be an ISO-3166-1 alpha-2 code"}}
	}
	return nil
}

func validatePeriod(period string) []domain.FieldError {
	if _, err := domain.ParsePeriod(strings.TrimSpace(period)); err != nil {
		return []domain.FieldError{{Field: "period", Message: "must be YYYY-MM"}}
	}
	return nil
}
