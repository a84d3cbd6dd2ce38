package render

import (
	"fmt"

	"github.com/rezonia/invoice-issuer/internal/model"
)

// InvoiceBuilder renders one finalized invoice record into a multi-page PDF.
// Pagination happens before drawing: the row-to-page plan is computed from
// the geometry, then every page is drawn with its repeated header, footer
// and breakdown tables.
type InvoiceBuilder struct {
	geo PageGeometry
}

// NewInvoiceBuilder creates a builder with the contractual invoice geometry.
func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{geo: InvoiceGeometry()}
}

// Build renders the record and returns the PDF bytes.
func (b *InvoiceBuilder) Build(rec model.InvoiceRecord) ([]byte, error) {
	view := Project(rec)
	g := b.geo

	plan := paginate(len(view.Items), g.RowsPerPage(true), g.RowsPerPage(false))

	e := NewEngine("P", g)
	t := &itemTable{e: e, geo: g, view: view}

	for pageIdx, span := range plan {
		e.AddPage()
		b.drawHeader(e, view, pageIdx+1, len(plan))

		y := t.drawColumnHeader()
		t.drawRows(span, y)

		if pageIdx == 0 {
			b.drawSignatory(e, view)
		}
		t.drawBreakdownTables()
		b.drawFooter(e, view, pageIdx+1, len(plan))
	}

	return e.Output()
}

// drawHeader draws the repeated page header: issuing company block, client
// block and document identification.
func (b *InvoiceBuilder) drawHeader(e *Engine, view InvoicePDF, page, pages int) {
	g := b.geo
	x, y := g.Margin, g.Margin

	e.SetFont("Helvetica", "B", 12)
	e.Text(x, y, g.BodyWidth(), 0.22, AlignCenter, view.CompanyName)
	e.SetFont("Helvetica", "", 8)
	y = e.WrapText(x+1.5, y+0.24, g.BodyWidth()-3, 0.16, view.CompanyAddress)
	e.Text(x, y, g.BodyWidth(), 0.16, AlignCenter, "TIN: "+view.CompanyTIN)
	y += 0.22

	e.SetFont("Helvetica", "B", 11)
	title := "SERVICE INVOICE"
	if view.DocumentType != "" {
		title = view.DocumentType
	}
	e.Text(x, y, g.BodyWidth(), 0.2, AlignCenter, title)
	y += 0.26

	e.SetFont("Helvetica", "", 8)
	e.Text(x, y, 0.9, 0.16, AlignLeft, "SOLD TO:")
	e.Text(x+0.9, y, 3.4, 0.16, AlignLeft, view.ClientName)
	e.Text(x+4.6, y, 1.2, 0.16, AlignLeft, "DATE:")
	e.Text(x+5.8, y, 1.7, 0.16, AlignRight, view.InvoiceDate)
	y += 0.18
	e.Text(x, y, 0.9, 0.16, AlignLeft, "TIN:")
	e.Text(x+0.9, y, 3.4, 0.16, AlignLeft, view.ClientTIN)
	e.Text(x+4.6, y, 1.2, 0.16, AlignLeft, "UNIT:")
	e.Text(x+5.8, y, 1.7, 0.16, AlignRight, view.PBLKey)
	y += 0.18
	e.Text(x, y, 0.9, 0.16, AlignLeft, "PROJECT:")
	e.Text(x+0.9, y, 3.4, 0.16, AlignLeft, view.ProjectName)
	if pages > 1 {
		e.Text(x+4.6, y, 3.0-0.1, 0.16, AlignRight, fmt.Sprintf("Page %d of %d", page, pages))
	}

	e.HLine(g.Margin, g.Width-g.Margin, g.Margin+g.HeaderHeight-0.08)
}

// drawSignatory draws the fixed signatory block, page 1 only, between the
// item table and the breakdown tables.
func (b *InvoiceBuilder) drawSignatory(e *Engine, view InvoicePDF) {
	g := b.geo
	top := g.SignatoryTop()
	x := g.Margin

	e.SetFont("Helvetica", "", 8)
	e.Text(x, top+0.05, 3.0, 0.16, AlignLeft, "REMARKS:")
	y := top + 0.23
	for _, line := range view.Remarks {
		if line == "" {
			continue
		}
		e.Text(x+0.2, y, 4.0, 0.16, AlignLeft, line)
		y += 0.17
	}

	sigX := g.Width - g.Margin - 2.6
	e.HLine(sigX, sigX+2.4, top+0.62)
	e.Text(sigX, top+0.66, 2.4, 0.16, AlignCenter, "Authorized Signature")
	e.HLine(sigX, sigX+2.4, top+0.98)
	e.Text(sigX, top+1.02, 2.4, 0.16, AlignCenter, "Received By / Date")
}

// drawFooter draws the repeated page footer with the run stamp and print
// status.
func (b *InvoiceBuilder) drawFooter(e *Engine, view InvoicePDF, page, pages int) {
	g := b.geo
	y := g.FooterTop() + 0.08

	e.SetFont("Helvetica", "", 7)
	if view.RunStamp != "" {
		status := view.Status
		if status == model.StatusReprinted {
			status = fmt.Sprintf("%s (x%s)", status, view.PrintCount)
		}
		e.Text(g.Margin, y, 3.5, 0.14, AlignLeft, fmt.Sprintf("Run: %s  Status: %s", view.RunStamp, status))
	}
	e.Text(g.Width-g.Margin-2.0, y, 2.0, 0.14, AlignRight, fmt.Sprintf("Page %d/%d", page, pages))
}
