package render

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders a monetary value with two decimals and thousands
// separators. Zero renders as "0.00", never blank: operators reconcile the
// printed grids cell by cell.
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(2)
	if d.IsZero() {
		return "0.00"
	}
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
