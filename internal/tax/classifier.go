// Package tax decomposes raw billing amounts into the invoice tax buckets:
// VATable sales, VAT-exempt sales, zero-rated sales, government tax, VAT and
// withholding tax.
//
// Two paths exist. Standard charges (rental, CUSA, parking, penalties) carry
// a VAT-inclusive gross; the VAT is extracted and the net bucketed by the
// line's sales-type tag. Metered utilities arrive pre-split into sub-charges
// whose old-bill-type sub-code selects the bucket directly from a fixed
// table, and sub-charges of one group accumulate additively.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/money"
)

// Bucket identifies the classification bucket a utility sub-charge lands in.
type Bucket int

const (
	BucketVATSales Bucket = iota
	BucketVAT
	BucketVATExempt
	BucketGovtTax
)

// utilityBuckets maps bill type, then old-bill-type sub-code, to a bucket.
// A combination absent from this table is a classification fallthrough: the
// line contributes zero to every bucket and is reported as an anomaly.
var utilityBuckets = map[int]map[int]Bucket{
	model.BillTypeElectricity: {31: BucketVATSales, 32: BucketVAT, 33: BucketGovtTax},
	model.BillTypeWater:       {41: BucketVATExempt, 42: BucketVAT, 43: BucketGovtTax},
	model.BillTypeLPG:         {51: BucketVATSales, 52: BucketVAT, 53: BucketGovtTax},
}

// Decomposition is the tax split of one line, or the additive accumulation
// of several utility sub-charges in one merge group.
type Decomposition struct {
	UnitCost       decimal.Decimal
	VATSales       decimal.Decimal
	VATExempt      decimal.Decimal
	ZeroRated      decimal.Decimal
	GovtTax        decimal.Decimal
	VAT            decimal.Decimal
	WithholdingTax decimal.Decimal
	Total          decimal.Decimal
}

// Add accumulates another decomposition field by field, rounding each sum to
// 2 places. Used by the utility merge path.
func (d Decomposition) Add(o Decomposition) Decomposition {
	return Decomposition{
		UnitCost:       money.Add(d.UnitCost, o.UnitCost),
		VATSales:       money.Add(d.VATSales, o.VATSales),
		VATExempt:      money.Add(d.VATExempt, o.VATExempt),
		ZeroRated:      money.Add(d.ZeroRated, o.ZeroRated),
		GovtTax:        money.Add(d.GovtTax, o.GovtTax),
		VAT:            money.Add(d.VAT, o.VAT),
		WithholdingTax: money.Add(d.WithholdingTax, o.WithholdingTax),
		Total:          money.Add(d.Total, o.Total),
	}
}

// Classify decomposes one standard (non-utility) billing line.
//
// The gross amount is VAT-inclusive: vat = gross/(1+r)*r, net = gross - vat,
// withholding = net * whRate. The net lands in exactly one bucket: zero-rated
// or exempt when the bill type has a unique sales type and the tag says so,
// VATable sales otherwise. Missing rates are zero rates, producing zero tax.
func Classify(line model.RawBillingLine) Decomposition {
	gross := money.Round2(line.Amount)
	vat := money.ExtractVAT(gross, line.VATRate)
	net := money.Sub(gross, vat)
	wh := money.Withhold(net, line.WithholdingRate)

	var d Decomposition
	d.UnitCost = net
	d.VAT = vat
	d.WithholdingTax = wh

	switch {
	case model.HasUniqueSalesType(line.BillType) && line.SalesType == model.SalesZeroRated:
		d.ZeroRated = net
	case model.HasUniqueSalesType(line.BillType) && line.SalesType == model.SalesExempt:
		d.VATExempt = net
	default:
		d.VATSales = net
	}

	d.Total = total(d)
	return d
}

// ClassifyUtility decomposes one utility sub-charge per the old-bill-type
// table. The whole gross lands in the selected bucket. Withholding applies
// only to the VATable-sales and VAT-exempt buckets, and never to water
// exempt sub-charges: the legacy system skipped those and the exception is
// preserved as observed behavior.
//
// An unmapped combination returns a zero decomposition together with a
// ClassificationError; callers keep the line (zero tax effect) and surface
// the anomaly.
func ClassifyUtility(line model.RawBillingLine) (Decomposition, error) {
	table, ok := utilityBuckets[line.BillType]
	if !ok {
		return Decomposition{}, &model.ClassificationError{PBLKey: line.PBLKey, BillType: line.BillType, OldBillType: line.OldBillType}
	}
	bucket, ok := table[line.OldBillType]
	if !ok {
		return Decomposition{}, &model.ClassificationError{PBLKey: line.PBLKey, BillType: line.BillType, OldBillType: line.OldBillType}
	}

	gross := money.Round2(line.Amount)

	var d Decomposition
	switch bucket {
	case BucketVATSales:
		d.VATSales = gross
		d.UnitCost = gross
		d.WithholdingTax = money.Withhold(gross, line.WithholdingRate)
	case BucketVATExempt:
		d.VATExempt = gross
		d.UnitCost = gross
		if line.BillType != model.BillTypeWater {
			d.WithholdingTax = money.Withhold(gross, line.WithholdingRate)
		}
	case BucketVAT:
		d.VAT = gross
	case BucketGovtTax:
		d.GovtTax = gross
		d.UnitCost = gross
	}

	d.Total = total(d)
	return d, nil
}

func total(d Decomposition) decimal.Decimal {
	sum := money.Add(d.VATSales, d.VATExempt)
	sum = money.Add(sum, d.ZeroRated)
	sum = money.Add(sum, d.GovtTax)
	sum = money.Add(sum, d.VAT)
	return money.Sub(sum, d.WithholdingTax)
}
