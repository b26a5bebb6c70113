package domain

import "time"

// FactorVersion is one publication of factors valid over [ValidFrom, ValidTo].
// A nil ValidTo means the version is open-ended.
type FactorVersion struct {
	ID        int64
	Hash      string
	ValidFrom time.Time
	ValidTo   *time.Time
}

// EmissionFactor is a conversion rate scoped by category and, optionally,
// country. A nil Country is the national default.
type EmissionFactor struct {
	ID        int64
	Category  string
	Country   *string
	Value     float64
	Unit      string
	VersionID int64
}

// ResolvedFactor is the factor selected for a calculation joined with its
// version.
type ResolvedFactor struct {
	FactorID  int64
	Category  string
	Country   *string
	Value     float64
	Unit      string
	VersionID int64
	Hash      string
	ValidFrom time.Time
	ValidTo   *time.Time
}

// IsNational reports whether the factor is the national fallback.
func (f ResolvedFactor) IsNational() bool { return f.Country == nil }
