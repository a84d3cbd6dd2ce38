package consolidate_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-issuer/internal/consolidate"
	"github.com/rezonia/invoice-issuer/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func waterLine(oldBillType int, amount string) model.RawBillingLine {
	return model.RawBillingLine{
		PBLKey:      "PRJ1/B2/L05",
		ClientCode:  "C001",
		BillMonth:   202512,
		PeriodFrom:  20251124,
		PeriodTo:    20251223,
		DueDate:     20251230,
		BillType:    model.BillTypeWater,
		OldBillType: oldBillType,
		Description: "WATER",
		Amount:      dec(amount),
	}
}

func TestMergeBills_UtilityAccumulation(t *testing.T) {
	// Water consumption plus its government-tax sub-charge merge into one
	// line with both buckets populated.
	lines := []model.RawBillingLine{
		waterLine(41, "13465.83"),
		waterLine(43, "343.38"),
	}

	merged, warns := consolidate.MergeBills(lines)

	require.Empty(t, warns)
	require.Len(t, merged, 1)

	m := merged[0]
	assert.True(t, m.VATExempt.Equal(dec("13465.83")), "got %s", m.VATExempt)
	assert.True(t, m.GovtTax.Equal(dec("343.38")), "got %s", m.GovtTax)
	assert.True(t, m.Amount.Equal(dec("13809.21")))
	assert.True(t, m.TotalAmount.Equal(dec("13809.21")), "got %s", m.TotalAmount)
}

func TestMergeBills_ElectricityGovtTaxKeptSeparate(t *testing.T) {
	// The 3/33 pair carries the old-bill-type discriminator in its merge
	// key: the government-tax sub-charge must not fold into the
	// consumption line.
	base := model.RawBillingLine{
		PBLKey:     "PRJ1/B1/L01",
		BillMonth:  202512,
		PeriodFrom: 20251101,
		PeriodTo:   20251130,
		DueDate:    20251215,
		BillType:   model.BillTypeElectricity,
	}

	consumption := base
	consumption.OldBillType = 31
	consumption.Amount = dec("2000")

	vatPart := base
	vatPart.OldBillType = 32
	vatPart.Amount = dec("240")

	govtTax := base
	govtTax.OldBillType = 33
	govtTax.Amount = dec("55.50")

	merged, warns := consolidate.MergeBills([]model.RawBillingLine{consumption, vatPart, govtTax})

	require.Empty(t, warns)
	require.Len(t, merged, 2)

	// Consumption and VAT sub-charges share a key and accumulate.
	assert.True(t, merged[0].VATSales.Equal(dec("2000.00")))
	assert.True(t, merged[0].VAT.Equal(dec("240.00")))
	assert.True(t, merged[0].Amount.Equal(dec("2240.00")))

	// The government-tax sub-charge stays a line of its own.
	assert.Equal(t, 33, merged[1].OldBillType)
	assert.True(t, merged[1].GovtTax.Equal(dec("55.50")))
}

func TestMergeBills_StandardSingleClassification(t *testing.T) {
	// Two rental lines sharing a key sum their gross first; the
	// decomposition runs once over the combined amount.
	line := model.RawBillingLine{
		PBLKey:      "PRJ1/B1/L01",
		BillMonth:   202512,
		PeriodFrom:  20251124,
		PeriodTo:    20251223,
		DueDate:     20251230,
		BillType:    model.BillTypeRental,
		Description: "RENTAL",
		Amount:      dec("350"),
		SalesType:   model.SalesVATable,
		VATRate:     dec("12"),
	}

	merged, warns := consolidate.MergeBills([]model.RawBillingLine{line, line})

	require.Empty(t, warns)
	require.Len(t, merged, 1)
	assert.True(t, merged[0].Amount.Equal(dec("700.00")))
	assert.True(t, merged[0].VAT.Equal(dec("75.00")))
	assert.True(t, merged[0].VATSales.Equal(dec("625.00")))
	assert.True(t, merged[0].TotalAmount.Equal(dec("700.00")))
}

func TestMergeBills_FirstSeenOrder(t *testing.T) {
	a := waterLine(41, "10")
	b := a
	b.PBLKey = "PRJ1/B9/L99"
	c := a
	c.BillType = model.BillTypeRental
	c.OldBillType = 0
	c.SalesType = model.SalesVATable

	merged, _ := consolidate.MergeBills([]model.RawBillingLine{a, b, c, waterLine(43, "1")})

	require.Len(t, merged, 3)
	assert.Equal(t, "PRJ1/B2/L05", merged[0].PBLKey)
	assert.Equal(t, "PRJ1/B9/L99", merged[1].PBLKey)
	assert.Equal(t, model.BillTypeRental, merged[2].BillType)
	// The trailing 43 sub-charge folded into the first group.
	assert.True(t, merged[0].GovtTax.Equal(dec("1.00")))
}

func TestMergeBills_KeyUniqueness(t *testing.T) {
	lines := []model.RawBillingLine{
		waterLine(41, "100"),
		waterLine(43, "5"),
		{PBLKey: "U2", BillMonth: 202512, PeriodFrom: 20251101, PeriodTo: 20251130, DueDate: 20251215, BillType: model.BillTypeElectricity, OldBillType: 31, Amount: dec("50")},
		{PBLKey: "U2", BillMonth: 202512, PeriodFrom: 20251101, PeriodTo: 20251130, DueDate: 20251215, BillType: model.BillTypeElectricity, OldBillType: 33, Amount: dec("2")},
		{PBLKey: "U2", BillMonth: 202512, PeriodFrom: 20251101, PeriodTo: 20251130, DueDate: 20251215, BillType: model.BillTypeRental, SalesType: model.SalesVATable, Amount: dec("900")},
	}

	merged, _ := consolidate.MergeBills(lines)

	seen := map[string]int{}
	for _, m := range merged {
		k := fmt.Sprintf("%s|%d|%d|%d|%d", m.PBLKey, m.BillMonth, m.PeriodFrom, m.PeriodTo, m.BillType)
		seen[k]++
	}
	for k, n := range seen {
		if n > 1 {
			// Only the documented 3/33 discriminator may duplicate the
			// nominal key.
			assert.Contains(t, k, fmt.Sprintf("|%d", model.BillTypeElectricity), "unexpected duplicate key %s", k)
			assert.Equal(t, 2, n)
		}
	}
}

func TestMergeBills_Idempotent(t *testing.T) {
	lines := []model.RawBillingLine{
		waterLine(41, "13465.83"),
		waterLine(43, "343.38"),
		{PBLKey: "U2", BillType: model.BillTypeRental, BillMonth: 202512, Amount: dec("700"), SalesType: model.SalesVATable, VATRate: dec("12")},
	}

	first, _ := consolidate.MergeBills(lines)
	second, _ := consolidate.MergeBills(lines)

	assert.Equal(t, first, second)
}

func TestMergeBills_FallthroughWarning(t *testing.T) {
	bad := waterLine(49, "100")

	merged, warns := consolidate.MergeBills([]model.RawBillingLine{bad})

	require.Len(t, merged, 1)
	require.Len(t, warns, 1)
	var cerr *model.ClassificationError
	assert.ErrorAs(t, warns[0], &cerr)

	// The line survives with zero tax effect.
	assert.True(t, merged[0].TotalAmount.IsZero())
	assert.True(t, merged[0].Amount.Equal(dec("100.00")))
}
