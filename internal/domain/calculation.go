package domain

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKeyField is the input snapshot key that, together with the user
// and category, identifies one logical submission. The storage uniqueness
// constraint is defined over this key.
const IdempotencyKeyField = "idempotencyKey"

// InputSnapshot is the opaque original input of a calculation. New kinds may
// add fields without touching the uniqueness constraint.
type InputSnapshot map[string]any

// IdempotencyKey returns the embedded idempotency key, or "" if absent.
func (s InputSnapshot) IdempotencyKey() string {
	key, _ := s[IdempotencyKeyField].(string)
	return key
}

// Calculation is one persisted emission result. It is created exactly once
// per (UserID, Category, idempotency key) and never updated.
type Calculation struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Category   string
	Input      InputSnapshot
	KgCO2e     float64
	FactorHash string
	CreatedAt  time.Time
}

// CalculationAudit is the immutable snapshot of the factor applied to a
// Calculation, written in the same transaction.
type CalculationAudit struct {
	ID             uuid.UUID
	CalculationID  uuid.UUID
	FactorSnapshot map[string]any
	CreatedAt      time.Time
}

// NewFactorSnapshot captures the factor used for a calculation.
func NewFactorSnapshot(category string, f ResolvedFactor) map[string]any {
	snap := map[string]any{
		"category":    category,
		"factorValue": f.Value,
		"unit":        f.Unit,
		"hash":        f.Hash,
		"versionId":   f.VersionID,
		"validFrom":   f.ValidFrom.Format(DateLayout),
		"country":     nil,
		"validTo":     nil,
	}
	if f.Country != nil {
		snap["country"] = *f.Country
	}
	if f.ValidTo != nil {
		snap["validTo"] = f.ValidTo.Format(DateLayout)
	}
	return snap
}
