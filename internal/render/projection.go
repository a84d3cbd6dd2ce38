package render

import (
	"fmt"

	"github.com/rezonia/invoice-issuer/internal/model"
)

// InvoicePDF is the presentation-only projection of an invoice record: every
// value pre-formatted as the display string the renderer places on the page.
// It is produced once per document and never mutated.
type InvoicePDF struct {
	CompanyName    string
	CompanyAddress string
	CompanyTIN     string
	ProjectName    string

	ClientName   string
	ClientTIN    string
	PBLKey       string
	DocumentType string
	InvoiceDate  string

	Items   []ItemRow
	Totals  BreakdownView
	Remarks [4]string

	Status     string
	PrintCount string
	RunStamp   string
}

// ItemRow is one pre-formatted item table row. Per-row amounts carry only
// the columns the item grid prints; the bucket split appears once, in the
// breakdown tables.
type ItemRow struct {
	ItemNo         string
	Description    string
	Period         string
	DueDate        string
	VAT            string
	WithholdingTax string
	AmountDue      string
}

// BreakdownView is the pre-formatted invoice-level tax breakdown, feeding
// both bottom grids: the sales classification table on the left and the
// totals reconciliation on the right.
type BreakdownView struct {
	VATSales       string
	VATExempt      string
	ZeroRated      string
	GovtTax        string
	VAT            string
	WithholdingTax string
	AmountDue      string
}

// Project flattens an invoice record into its display projection.
func Project(rec model.InvoiceRecord) InvoicePDF {
	view := InvoicePDF{
		CompanyName:    rec.CompanyName,
		CompanyAddress: rec.CompanyAddress,
		CompanyTIN:     rec.CompanyTIN,
		ProjectName:    rec.ProjectName,
		ClientName:     rec.ClientName,
		ClientTIN:      rec.ClientTIN,
		PBLKey:         rec.PBLKey,
		DocumentType:   rec.DocumentType,
		InvoiceDate:    model.DisplayDate(rec.InvoiceDate),
		Remarks:        rec.Remarks,
		Status:         rec.Status,
		PrintCount:     fmt.Sprintf("%d", rec.PrintCount),
	}

	if rec.RunDate != 0 {
		view.RunStamp = model.DisplayDate(rec.RunDate) + " " + model.DisplayTime(rec.RunTime)
	}

	view.Items = make([]ItemRow, 0, len(rec.Items))
	for _, it := range rec.Items {
		view.Items = append(view.Items, ItemRow{
			ItemNo:         fmt.Sprintf("%d", it.ItemNo),
			Description:    it.Description,
			Period:         fmt.Sprintf("%s - %s", model.DisplayDate(it.PeriodFrom), model.DisplayDate(it.PeriodTo)),
			DueDate:        model.DisplayDate(it.DueDate),
			VAT:            FormatAmount(it.VAT),
			WithholdingTax: FormatAmount(it.WithholdingTax),
			AmountDue:      FormatAmount(it.AmountDue),
		})
	}

	view.Totals = BreakdownView{
		VATSales:       FormatAmount(rec.Totals.VATSales),
		VATExempt:      FormatAmount(rec.Totals.VATExempt),
		ZeroRated:      FormatAmount(rec.Totals.ZeroRated),
		GovtTax:        FormatAmount(rec.Totals.GovtTax),
		VAT:            FormatAmount(rec.Totals.VAT),
		WithholdingTax: FormatAmount(rec.Totals.WithholdingTax),
		AmountDue:      FormatAmount(rec.Totals.AmountDue),
	}

	return view
}
