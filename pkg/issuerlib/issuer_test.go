package issuerlib_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-issuer/pkg/issuerlib"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func sampleBatch() []issuerlib.RawBillingLine {
	base := issuerlib.RawBillingLine{
		PBLKey:       "PRJ1/B1/L01",
		CompanyCode:  1,
		ProjectCode:  "ALP",
		ClientCode:   "C001",
		ClientName:   "Acme Trading Corp.",
		BillMonth:    202511,
		PeriodFrom:   20251124,
		PeriodTo:     20251223,
		DueDate:      20251230,
		DocumentType: "SERVICE INVOICE",
		SalesType:    issuerlib.SalesVATable,
		VATRate:      dec("12"),
	}

	rental := base
	rental.BillType = issuerlib.BillTypeRental
	rental.Description = "RENTAL"
	rental.Amount = dec("11200.00")

	cusa := base
	cusa.BillType = issuerlib.BillTypeCUSA
	cusa.Description = "CUSA"
	cusa.Amount = dec("2240.00")

	return []issuerlib.RawBillingLine{rental, cusa}
}

func TestIssuer_EndToEnd(t *testing.T) {
	issuer := issuerlib.NewIssuer(
		[]issuerlib.Company{{Code: 1, Name: "Alpha Land Corp.", TIN: "000-111-222-000"}},
		[]issuerlib.Project{{Code: "ALP", Name: "Alpha Tower", CompanyCode: 1}},
	)

	runAt := time.Date(2025, 12, 1, 14, 30, 45, 0, time.UTC)
	result := issuer.ConsolidateAt(sampleBatch(), 20251201, runAt, false)

	require.Len(t, result.Records, 1)
	require.Empty(t, result.Warnings)

	rec := result.Records[0]
	assert.Equal(t, "Alpha Land Corp.", rec.CompanyName)
	assert.Equal(t, issuerlib.StatusPrinted, rec.Status)
	assert.Equal(t, 20251201, rec.RunDate)
	assert.Equal(t, 143045, rec.RunTime)
	require.Len(t, rec.Items, 2)
	assert.True(t, rec.Totals.AmountDue.Equal(dec("13440.00")), rec.Totals.AmountDue.String())

	doc, err := issuer.RenderInvoice(rec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))

	batch, err := issuer.RenderBatch(result.Records)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(batch, []byte("%PDF")))

	summary, err := issuer.RenderSummary(result.Records, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(summary, []byte("%PDF")))

	wb, err := issuer.SummaryWorkbook(result.Records)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(wb, []byte("PK")))
}

func TestIssuer_UnknownReferenceCodesWarn(t *testing.T) {
	issuer := issuerlib.NewIssuer(nil, nil)

	result := issuer.Consolidate(sampleBatch(), 20251201)

	require.Len(t, result.Records, 1)
	assert.NotEmpty(t, result.Warnings)
	// Header lookup misses keep the raw codes so the invoice still renders.
	assert.Equal(t, 1, result.Records[0].CompanyCode)
	assert.Equal(t, "ALP", result.Records[0].ProjectCode)
}
