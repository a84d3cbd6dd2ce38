// Package money wraps shopspring/decimal with the rounding regime the
// billing ledger uses: every intermediate result is rounded to 2 decimal
// places, not only the final total, so that consolidated amounts match the
// figures on archived printed invoices.
package money

import (
	"github.com/shopspring/decimal"
)

// Zero is decimal zero.
var Zero = decimal.Zero

// FromFloat creates a decimal from a float, rounded to 2 places.
func FromFloat(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// FromString parses a decimal from a string.
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// MustFromString parses a decimal from a string, panics on error.
// Intended for constants and test fixtures.
func MustFromString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Round2 rounds half away from zero to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Add adds two decimals and rounds to 2 places.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b).Round(2)
}

// Sub subtracts b from a and rounds to 2 places.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Round(2)
}

// Mul multiplies two decimals and rounds to 2 places.
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b).Round(2)
}

// Div divides a by b and rounds to 2 places. Division by zero yields zero,
// matching the missing-rate-means-no-tax convention.
func Div(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return Zero
	}
	return a.Div(b).Round(2)
}

// RateFraction converts a percent rate (12 for 12%) to its fraction (0.12).
// The fraction itself is not rounded; rounding happens on the amounts it
// produces.
func RateFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(decimal.NewFromInt(100))
}

// ExtractVAT computes the VAT component of a VAT-inclusive gross amount:
// gross / (1 + rate) * rate, rounded to 2 places. A zero rate yields zero.
func ExtractVAT(gross, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.IsZero() {
		return Zero
	}
	frac := RateFraction(ratePercent)
	return gross.Div(decimal.NewFromInt(1).Add(frac)).Mul(frac).Round(2)
}

// Withhold computes the withholding amount on a net sale: net * rate/100,
// rounded to 2 places. A zero rate yields zero.
func Withhold(net, ratePercent decimal.Decimal) decimal.Decimal {
	if ratePercent.IsZero() {
		return Zero
	}
	return net.Mul(RateFraction(ratePercent)).Round(2)
}

// Sum adds a slice of decimals, rounding after each addition.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := Zero
	for _, v := range values {
		total = total.Add(v).Round(2)
	}
	return total
}
