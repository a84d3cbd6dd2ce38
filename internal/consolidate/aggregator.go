package consolidate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/money"
	"github.com/rezonia/invoice-issuer/internal/refdata"
)

// invoiceKey groups consolidated lines into one invoice document.
type invoiceKey string

func invoiceKeyFor(l model.ConsolidatedBillLine) invoiceKey {
	return invoiceKey(fmt.Sprintf("%s|%s|%s", l.PBLKey, l.ClientCode, l.DocumentType))
}

// Aggregate groups consolidated lines into invoice records. Each record
// carries its item breakdown rows (due-date then bill-type order, renumbered
// after the final sort), running total buckets, per-bill-type ledger entries
// and the resolved remark lines.
//
// Presentation fields come from the reference store on the first line of a
// group; a failed lookup keeps the raw codes and surfaces a warning.
// Records come back stable-sorted by company code, branch, department and
// project code, case-insensitively.
func Aggregate(lines []model.ConsolidatedBillLine, store *refdata.Store, invoiceDate int) ([]model.InvoiceRecord, []error) {
	index := make(map[invoiceKey]*model.InvoiceRecord, len(lines))
	var ordered []*model.InvoiceRecord
	var warnings []error

	for _, l := range lines {
		k := invoiceKeyFor(l)
		rec, ok := index[k]
		if !ok {
			var warns []error
			rec, warns = newRecord(l, store, invoiceDate)
			warnings = append(warnings, warns...)
			index[k] = rec
			ordered = append(ordered, rec)
		}
		mergeLine(rec, l)
	}

	out := make([]model.InvoiceRecord, 0, len(ordered))
	for _, rec := range ordered {
		finalizeRecord(rec)
		out = append(out, *rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.CompanyCode != b.CompanyCode {
			return a.CompanyCode < b.CompanyCode
		}
		if c := strings.Compare(strings.ToLower(a.Branch), strings.ToLower(b.Branch)); c != 0 {
			return c < 0
		}
		if c := strings.Compare(strings.ToLower(a.Department), strings.ToLower(b.Department)); c != 0 {
			return c < 0
		}
		return strings.ToLower(a.ProjectCode) < strings.ToLower(b.ProjectCode)
	})

	return out, warnings
}

// newRecord initializes an invoice record from the first line of its group.
func newRecord(l model.ConsolidatedBillLine, store *refdata.Store, invoiceDate int) (*model.InvoiceRecord, []error) {
	rec := &model.InvoiceRecord{
		PBLKey:       l.PBLKey,
		ClientCode:   l.ClientCode,
		ClientName:   l.ClientName,
		ClientTIN:    l.ClientTIN,
		DocumentType: l.DocumentType,
		CompanyCode:  l.CompanyCode,
		Branch:       l.Branch,
		Department:   l.Department,
		ProjectCode:  l.ProjectCode,
		InvoiceDate:  invoiceDate,
	}

	var warnings []error
	if store != nil {
		if c, err := store.Company(l.CompanyCode); err != nil {
			warnings = append(warnings, err)
		} else {
			rec.CompanyName = c.Name
			rec.CompanyAddress = c.Address
			rec.CompanyTIN = c.TIN
		}
		if p, err := store.Project(l.ProjectCode); err != nil {
			warnings = append(warnings, err)
		} else {
			rec.ProjectName = p.Name
		}
	}
	return rec, warnings
}

// mergeLine folds one consolidated line into its group: appends the item
// row, accumulates every total bucket (rounding after each addition),
// updates the bill type's ledger entry in lock-step and re-resolves the
// remark lines.
func mergeLine(rec *model.InvoiceRecord, l model.ConsolidatedBillLine) {
	rec.Lines = append(rec.Lines, l)

	rec.Items = append(rec.Items, model.ItemBreakdown{
		BillType:       l.BillType,
		Description:    l.Description,
		DueDate:        l.DueDate,
		PeriodFrom:     l.PeriodFrom,
		PeriodTo:       l.PeriodTo,
		UnitCost:       l.UnitCost,
		VATSales:       l.VATSales,
		VATExempt:      l.VATExempt,
		ZeroRated:      l.ZeroRated,
		GovtTax:        l.GovtTax,
		VAT:            l.VAT,
		WithholdingTax: l.WithholdingTax,
		AmountDue:      l.TotalAmount,
	})

	t := &rec.Totals
	t.VATSales = money.Add(t.VATSales, l.VATSales)
	t.VATExempt = money.Add(t.VATExempt, l.VATExempt)
	t.ZeroRated = money.Add(t.ZeroRated, l.ZeroRated)
	t.GovtTax = money.Add(t.GovtTax, l.GovtTax)
	t.VAT = money.Add(t.VAT, l.VAT)
	t.WithholdingTax = money.Add(t.WithholdingTax, l.WithholdingTax)
	t.AmountDue = money.Add(t.AmountDue, l.TotalAmount)

	postLedger(rec, l)

	rec.Remarks = ResolveRemarks(rec.Remarks, l)
}

// postLedger updates (never replaces) the ledger entry for the line's bill
// type, creating it on the first occurrence.
func postLedger(rec *model.InvoiceRecord, l model.ConsolidatedBillLine) {
	for i := range rec.Ledger {
		if rec.Ledger[i].BillType == l.BillType {
			e := &rec.Ledger[i]
			e.Amount = money.Add(e.Amount, l.Amount)
			e.VAT = money.Add(e.VAT, l.VAT)
			e.WithholdingTax = money.Add(e.WithholdingTax, l.WithholdingTax)
			e.Total = money.Add(e.Total, l.TotalAmount)
			return
		}
	}
	rec.Ledger = append(rec.Ledger, model.LedgerEntry{
		BillType:       l.BillType,
		Description:    l.Description,
		Amount:         l.Amount,
		VAT:            l.VAT,
		WithholdingTax: l.WithholdingTax,
		Total:          l.TotalAmount,
	})
}

// finalizeRecord sorts item rows by due date then bill type and assigns
// item numbers in that order.
func finalizeRecord(rec *model.InvoiceRecord) {
	sort.SliceStable(rec.Items, func(i, j int) bool {
		if rec.Items[i].DueDate != rec.Items[j].DueDate {
			return rec.Items[i].DueDate < rec.Items[j].DueDate
		}
		return rec.Items[i].BillType < rec.Items[j].BillType
	})
	for i := range rec.Items {
		rec.Items[i].ItemNo = i + 1
	}
}
