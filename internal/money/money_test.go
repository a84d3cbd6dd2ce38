package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-issuer/internal/money"
)

func TestExtractVAT(t *testing.T) {
	gross := decimal.NewFromInt(700)
	rate := decimal.NewFromInt(12)

	vat := money.ExtractVAT(gross, rate)

	assert.True(t, vat.Equal(decimal.NewFromInt(75)), "expected 75, got %s", vat)
}

func TestExtractVAT_ZeroRate(t *testing.T) {
	vat := money.ExtractVAT(decimal.NewFromInt(700), decimal.Zero)
	assert.True(t, vat.IsZero())
}

func TestWithhold(t *testing.T) {
	wh := money.Withhold(decimal.NewFromInt(10000), decimal.NewFromInt(5))
	assert.True(t, wh.Equal(decimal.NewFromInt(500)))

	assert.True(t, money.Withhold(decimal.NewFromInt(10000), decimal.Zero).IsZero())
}

func TestRoundingAfterEachStep(t *testing.T) {
	a := money.MustFromString("0.115")
	b := money.MustFromString("0.115")

	// Each value rounds up to 0.12 before the add; the sum is 0.24, not
	// the 0.23 a round-at-the-end regime would produce.
	sum := money.Add(money.Round2(a), money.Round2(b))
	assert.Equal(t, "0.24", sum.StringFixed(2))
}

func TestDiv_ByZero(t *testing.T) {
	q := money.Div(decimal.NewFromInt(10), decimal.Zero)
	assert.True(t, q.IsZero())
}

func TestSum(t *testing.T) {
	total := money.Sum([]decimal.Decimal{
		money.MustFromString("1.11"),
		money.MustFromString("2.22"),
		money.MustFromString("3.33"),
	})
	assert.Equal(t, "6.66", total.StringFixed(2))
}

func TestFromString(t *testing.T) {
	d, err := money.FromString("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", d.StringFixed(2))

	_, err = money.FromString("not-a-number")
	assert.Error(t, err)
}
