package money

import (
	"fmt"
	"math"
)

// ToCents converts a dollar amount to integer cents with half-up rounding.
func ToCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}

// ToDollars converts stored cents back to a dollar amount for display/edit forms.
func ToDollars(cents int64) float64 {
	return float64(cents) / 100
}

// FormatUSD renders cents as "$X.XX".
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
