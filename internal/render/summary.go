package render

import (
	"fmt"

	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/money"
)

// SummaryBuilder renders a batch of finalized invoice records as the
// issuance summary report: legal-size landscape, one line per invoice,
// grouped by company and project with subtotals per group.
type SummaryBuilder struct {
	geo   PageGeometry
	title string
}

// NewSummaryBuilder creates a builder with the contractual summary geometry.
func NewSummaryBuilder(title string) *SummaryBuilder {
	if title == "" {
		title = "INVOICE ISSUANCE SUMMARY"
	}
	return &SummaryBuilder{geo: SummaryGeometry(), title: title}
}

type summaryRowKind int

const (
	rowGroupCaption summaryRowKind = iota
	rowInvoice
	rowSubtotal
	rowGrandTotal
)

// summaryRow is one pre-formatted report line. The whole report is
// flattened into rows first, then paginated, then drawn.
type summaryRow struct {
	kind  summaryRowKind
	cells []string
}

var summaryCols = []struct {
	width   float64
	caption string
	align   Align
}{
	{1.3, "UNIT", AlignLeft},
	{2.2, "CLIENT", AlignLeft},
	{1.0, "DATE", AlignCenter},
	{1.2, "VATABLE", AlignRight},
	{1.2, "VAT-EXEMPT", AlignRight},
	{1.2, "ZERO-RATED", AlignRight},
	{1.2, "GOVT TAX", AlignRight},
	{1.2, "VAT", AlignRight},
	{1.2, "W/TAX", AlignRight},
	{1.5, "AMOUNT DUE", AlignRight},
}

// Build renders the report. Records must already be in issuance sort order;
// grouping walks that order and starts a new group whenever the
// company+project key changes.
func (b *SummaryBuilder) Build(records []model.InvoiceRecord) ([]byte, error) {
	rows := buildSummaryRows(records)
	g := b.geo

	perPage := g.RowsPerPage(false)
	plan := paginate(len(rows), perPage, perPage)

	e := NewEngine("L", g)
	for pageIdx, span := range plan {
		e.AddPage()
		b.drawHeader(e, pageIdx+1, len(plan))
		y := b.drawColumnHeader(e)
		for i := span.start; i < span.end; i++ {
			b.drawRow(e, rows[i], y)
			y += g.RowHeight
		}
	}

	return e.Output()
}

func buildSummaryRows(records []model.InvoiceRecord) []summaryRow {
	var rows []summaryRow
	var group string
	var sub, grand model.TotalBreakdown

	flush := func(kind summaryRowKind, t model.TotalBreakdown, label string) {
		rows = append(rows, summaryRow{kind: kind, cells: []string{
			label, "", "",
			FormatAmount(t.VATSales), FormatAmount(t.VATExempt), FormatAmount(t.ZeroRated),
			FormatAmount(t.GovtTax), FormatAmount(t.VAT), FormatAmount(t.WithholdingTax),
			FormatAmount(t.AmountDue),
		}})
	}

	for _, rec := range records {
		if k := rec.GroupKey(); k != group {
			if group != "" {
				flush(rowSubtotal, sub, "SUBTOTAL "+group)
				sub = model.TotalBreakdown{}
			}
			group = k
			rows = append(rows, summaryRow{kind: rowGroupCaption, cells: []string{
				fmt.Sprintf("%s  %s / %s", k, rec.CompanyName, rec.ProjectName),
			}})
		}

		rows = append(rows, summaryRow{kind: rowInvoice, cells: []string{
			rec.PBLKey, rec.ClientName, model.DisplayDate(rec.InvoiceDate),
			FormatAmount(rec.Totals.VATSales), FormatAmount(rec.Totals.VATExempt),
			FormatAmount(rec.Totals.ZeroRated), FormatAmount(rec.Totals.GovtTax),
			FormatAmount(rec.Totals.VAT), FormatAmount(rec.Totals.WithholdingTax),
			FormatAmount(rec.Totals.AmountDue),
		}})

		sub = addBreakdown(sub, rec.Totals)
		grand = addBreakdown(grand, rec.Totals)
	}
	if group != "" {
		flush(rowSubtotal, sub, "SUBTOTAL "+group)
	}
	if len(records) > 0 {
		flush(rowGrandTotal, grand, "GRAND TOTAL")
	}
	return rows
}

func addBreakdown(a, b model.TotalBreakdown) model.TotalBreakdown {
	return model.TotalBreakdown{
		VATSales:       money.Add(a.VATSales, b.VATSales),
		VATExempt:      money.Add(a.VATExempt, b.VATExempt),
		ZeroRated:      money.Add(a.ZeroRated, b.ZeroRated),
		GovtTax:        money.Add(a.GovtTax, b.GovtTax),
		VAT:            money.Add(a.VAT, b.VAT),
		WithholdingTax: money.Add(a.WithholdingTax, b.WithholdingTax),
		AmountDue:      money.Add(a.AmountDue, b.AmountDue),
	}
}

func (b *SummaryBuilder) drawHeader(e *Engine, page, pages int) {
	g := b.geo
	e.SetFont("Helvetica", "B", 12)
	e.Text(g.Margin, g.Margin, g.BodyWidth(), 0.22, AlignCenter, b.title)
	e.SetFont("Helvetica", "", 8)
	e.Text(g.Width-g.Margin-1.6, g.Margin, 1.6, 0.16, AlignRight, fmt.Sprintf("Page %d of %d", page, pages))
	e.HLine(g.Margin, g.Width-g.Margin, g.Margin+g.HeaderHeight-0.08)
}

func (b *SummaryBuilder) drawColumnHeader(e *Engine) float64 {
	g := b.geo
	y := g.BodyTop()
	e.SetFont("Helvetica", "B", 7)
	x := g.Margin
	for _, c := range summaryCols {
		e.Text(x, y, c.width, g.RowHeight, c.align, c.caption)
		x += c.width
	}
	e.HLine(g.Margin, g.Width-g.Margin, y+g.RowHeight)
	return g.RowsTop()
}

func (b *SummaryBuilder) drawRow(e *Engine, row summaryRow, y float64) {
	g := b.geo
	switch row.kind {
	case rowGroupCaption:
		e.SetFont("Helvetica", "B", 8)
		e.Text(g.Margin, y, g.BodyWidth(), g.RowHeight, AlignLeft, row.cells[0])
		return
	case rowSubtotal, rowGrandTotal:
		e.SetFont("Helvetica", "B", 7)
	default:
		e.SetFont("Helvetica", "", 7)
	}
	x := g.Margin
	for c, cell := range row.cells {
		e.Text(x, y, summaryCols[c].width, g.RowHeight, summaryCols[c].align, cell)
		x += summaryCols[c].width
	}
}
