// Package render lays invoice records out onto fixed-size pages and
// produces the final PDF documents.
//
// All geometry is expressed in inches against the physical page. The zone
// boundaries are contractual: regenerated documents must line up with
// archived printed invoices.
package render

// PageGeometry holds the fixed physical layout constants of one document
// type. Everything else (zone boundaries, rows per page) derives from it.
type PageGeometry struct {
	Width  float64 // page width, inches
	Height float64 // page height, inches
	Margin float64 // uniform margin, all sides

	HeaderHeight    float64 // repeated page header zone
	FooterHeight    float64 // repeated page footer zone
	BreakdownHeight float64 // breakdown tables block, every page
	SignatoryHeight float64 // signatory block, page 1 only
	RowHeight       float64 // one item table row
}

// InvoiceGeometry returns the layout of the printed invoice:
// 8.5x11in portrait.
func InvoiceGeometry() PageGeometry {
	return PageGeometry{
		Width:           8.5,
		Height:          11,
		Margin:          0.5,
		HeaderHeight:    1.9,
		FooterHeight:    0.45,
		BreakdownHeight: 1.55,
		SignatoryHeight: 1.15,
		RowHeight:       0.21,
	}
}

// SummaryGeometry returns the layout of the batch summary report:
// legal size 14x8.5in landscape.
func SummaryGeometry() PageGeometry {
	return PageGeometry{
		Width:        14,
		Height:       8.5,
		Margin:       0.4,
		HeaderHeight: 1.1,
		FooterHeight: 0.35,
		RowHeight:    0.19,
	}
}

// rowBandGap separates the column-header rule from the first data row.
const rowBandGap = 0.03

// BodyTop is the y coordinate of the body zone, where the repeated column
// header is drawn.
func (g PageGeometry) BodyTop() float64 {
	return g.Margin + g.HeaderHeight
}

// RowsTop is the y coordinate of the first data row, below the column
// header band.
func (g PageGeometry) RowsTop() float64 {
	return g.BodyTop() + g.RowHeight + rowBandGap
}

// FooterTop is the y coordinate of the footer zone.
func (g PageGeometry) FooterTop() float64 {
	return g.Height - g.Margin - g.FooterHeight
}

// BreakdownTop is the y coordinate of the breakdown tables block, anchored
// above the footer.
func (g PageGeometry) BreakdownTop() float64 {
	return g.FooterTop() - g.BreakdownHeight
}

// BodyBottom is the y coordinate where item rows must stop. The first page
// body is shorter: the signatory block sits between the item table and the
// breakdown tables there.
func (g PageGeometry) BodyBottom(firstPage bool) float64 {
	b := g.BreakdownTop()
	if firstPage {
		b -= g.SignatoryHeight
	}
	return b
}

// SignatoryTop is the y coordinate of the first-page signatory block.
func (g PageGeometry) SignatoryTop() float64 {
	return g.BreakdownTop() - g.SignatoryHeight
}

// RowsPerPage is how many whole item rows fit between the column header
// band and the body bottom. Rows are never split, so the count floors.
func (g PageGeometry) RowsPerPage(firstPage bool) int {
	n := int((g.BodyBottom(firstPage) - g.RowsTop()) / g.RowHeight)
	if n < 1 {
		n = 1
	}
	return n
}

// BodyWidth is the usable width between the margins.
func (g PageGeometry) BodyWidth() float64 {
	return g.Width - 2*g.Margin
}
