package emission

import (
	"github.com/google/uuid"

	"github.com/greencampus/emission-engine/internal/domain"
)

// Result is what a submission returns. Replayed is set when the calculation
// already existed, either found up front or recovered after a race.
type Result struct {
	CalcID     uuid.UUID
	KgCO2e     float64
	FactorHash string
	Replayed   bool
}

func newResult(calc *domain.Calculation, replayed bool) *Result {
	return &Result{
		CalcID:     calc.ID,
		KgCO2e:     calc.KgCO2e,
		FactorHash: calc.FactorHash,
		Replayed:   replayed,
	}
}

// CalculationDetails is a stored calculation with the factor snapshot it was
// computed from.
type CalculationDetails struct {
	Calculation domain.Calculation
	Audit       domain.CalculationAudit
}
