package emission

// Compute returns the emission in kgCO2e for quantity at factorValue. No
// rounding is applied; identical arguments yield bit-identical results.
func Compute(quantity, factorValue float64) float64 {
	return quantity * factorValue
}
