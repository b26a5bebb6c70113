package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	// PeriodLayout is the accepted "YYYY-MM" period format.
	PeriodLayout = "2006-01"
	// DateLayout is used for dates in snapshots and API output.
	DateLayout = "2006-01-02"
)

// ParsePeriod converts a "YYYY-MM" period into its evaluation date: the first
// day of that month at midnight UTC.
func ParsePeriod(period string) (time.Time, error) {
	period = strings.TrimSpace(period)
	if len(period) != len(PeriodLayout) {
		return time.Time{}, fmt.Errorf("period %q: expected YYYY-MM", period)
	}
	t, err := time.Parse(PeriodLayout, period)
	if err != nil {
		return time.Time{}, fmt.Errorf("period %q: expected YYYY-MM", period)
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// NormalizeCountryCode trims and upper-cases an ISO-3166-1 alpha-2 code.
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCountryCode reports whether code has the alpha-2 shape (two ASCII
// letters, after normalization).
func IsCountryCode(code string) bool {
	code = NormalizeCountryCode(code)
	if len(code) != 2 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
