// Package consolidate turns raw period billing lines into finalized invoice
// records: merging duplicate charges, resolving remark lines and aggregating
// per-invoice ledgers and totals.
package consolidate

import (
	"fmt"

	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/money"
	"github.com/rezonia/invoice-issuer/internal/tax"
)

// mergeKey identifies one logical charge. OldBillType joins the key only for
// the electricity government-tax sub-charge (3/33); that pair is billed as a
// separate line item even though it shares the mother bill type, and the
// asymmetry against the other utility sub-codes is preserved as observed
// legacy behavior.
type mergeKey string

func keyFor(l model.RawBillingLine) mergeKey {
	k := fmt.Sprintf("%s|%06d|%08d|%08d|%d", l.PBLKey, l.BillMonth, l.PeriodFrom, l.PeriodTo, l.BillType)
	if l.BillType == model.BillTypeElectricity && l.OldBillType == 33 {
		k += fmt.Sprintf("|%d", l.OldBillType)
	}
	return mergeKey(k)
}

// mergeGroup collects the raw lines behind one merge key, in input order.
type mergeGroup struct {
	key   mergeKey
	lines []model.RawBillingLine
}

// MergeBills deduplicates raw billing lines into consolidated, tax-decomposed
// lines. Output order is first-seen key order; grouping is an explicit pass
// followed by finalization, so the caller's sort order does not change the
// result beyond that ordering.
//
// Classification fallthroughs (utility sub-codes missing from the lookup
// table) leave the affected line's buckets at zero and are returned as
// warnings; consolidation itself never fails.
func MergeBills(lines []model.RawBillingLine) ([]model.ConsolidatedBillLine, []error) {
	groups := groupByKey(lines)

	out := make([]model.ConsolidatedBillLine, 0, len(groups))
	var warnings []error
	for _, g := range groups {
		line, warns := finalizeGroup(g)
		out = append(out, line)
		warnings = append(warnings, warns...)
	}
	return out, warnings
}

func groupByKey(lines []model.RawBillingLine) []*mergeGroup {
	index := make(map[mergeKey]*mergeGroup, len(lines))
	var ordered []*mergeGroup
	for _, l := range lines {
		k := keyFor(l)
		g, ok := index[k]
		if !ok {
			g = &mergeGroup{key: k}
			index[k] = g
			ordered = append(ordered, g)
		}
		g.lines = append(g.lines, l)
	}
	return ordered
}

func finalizeGroup(g *mergeGroup) (model.ConsolidatedBillLine, []error) {
	first := g.lines[0]
	if model.IsUtilityBillType(first.BillType) {
		return finalizeUtility(g)
	}
	return finalizeStandard(g), nil
}

// finalizeStandard merges a standard group with a single classifier call:
// the raw amounts are summed first, then decomposed once.
func finalizeStandard(g *mergeGroup) model.ConsolidatedBillLine {
	merged := g.lines[0]
	gross := money.Round2(merged.Amount)
	for _, l := range g.lines[1:] {
		gross = money.Add(gross, l.Amount)
	}
	merged.Amount = gross

	return buildLine(merged, tax.Classify(merged))
}

// finalizeUtility accumulates every sub-charge of the group additively: raw
// amounts and each tax bucket, rounded after every addition.
func finalizeUtility(g *mergeGroup) (model.ConsolidatedBillLine, []error) {
	first := g.lines[0]
	gross := money.Zero
	acc := tax.Decomposition{}
	var warnings []error
	for _, l := range g.lines {
		gross = money.Add(gross, l.Amount)
		d, err := tax.ClassifyUtility(l)
		if err != nil {
			warnings = append(warnings, err)
			continue
		}
		acc = acc.Add(d)
	}

	merged := first
	merged.Amount = gross
	return buildLine(merged, acc), warnings
}

func buildLine(l model.RawBillingLine, d tax.Decomposition) model.ConsolidatedBillLine {
	return model.ConsolidatedBillLine{
		PBLKey:       l.PBLKey,
		CompanyCode:  l.CompanyCode,
		Branch:       l.Branch,
		Department:   l.Department,
		ProjectCode:  l.ProjectCode,
		ClientCode:   l.ClientCode,
		ClientName:   l.ClientName,
		ClientTIN:    l.ClientTIN,
		BillMonth:    l.BillMonth,
		PeriodFrom:   l.PeriodFrom,
		PeriodTo:     l.PeriodTo,
		DueDate:      l.DueDate,
		BillType:     l.BillType,
		OldBillType:  l.OldBillType,
		Description:  l.Description,
		DocumentType: l.DocumentType,

		UnitCost:       d.UnitCost,
		Amount:         money.Round2(l.Amount),
		VATSales:       d.VATSales,
		VATExempt:      d.VATExempt,
		ZeroRated:      d.ZeroRated,
		GovtTax:        d.GovtTax,
		VAT:            d.VAT,
		WithholdingTax: d.WithholdingTax,
		TotalAmount:    d.Total,
	}
}
