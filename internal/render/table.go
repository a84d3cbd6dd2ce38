package render

// pageSpan assigns a contiguous run of item rows to one page. Rows are
// never split: a row that does not fit whole moves to the next page.
type pageSpan struct {
	start, end int // row indices, [start, end)
}

// paginate computes the final row-to-page assignment up front, before any
// drawing happens. The first page holds fewer rows than continuation pages
// because the signatory block reserves part of its body. An empty table
// still produces one page.
func paginate(rowCount, firstPageRows, contPageRows int) []pageSpan {
	if rowCount <= firstPageRows {
		return []pageSpan{{0, rowCount}}
	}

	spans := []pageSpan{{0, firstPageRows}}
	for start := firstPageRows; start < rowCount; start += contPageRows {
		end := start + contPageRows
		if end > rowCount {
			end = rowCount
		}
		spans = append(spans, pageSpan{start, end})
	}
	return spans
}

// itemTable draws the variable-length item grid and the two fixed-shape
// breakdown grids of one invoice document.
type itemTable struct {
	e    *Engine
	geo  PageGeometry
	view InvoicePDF
}

// Item table column widths, inches. They sum to the invoice body width.
var itemCols = []struct {
	width   float64
	caption string
	align   Align
}{
	{0.4, "NO.", AlignCenter},
	{1.8, "DESCRIPTION", AlignLeft},
	{1.7, "PERIOD", AlignLeft},
	{0.9, "DUE DATE", AlignCenter},
	{0.9, "VAT", AlignRight},
	{0.8, "W/TAX", AlignRight},
	{1.0, "AMOUNT DUE", AlignRight},
}

// drawColumnHeader draws the item table caption row and returns the y
// cursor where data rows begin. Repeated at the top of every page body.
// The returned cursor is the same RowsTop the pagination capacity is
// computed from, so a full page's last row still ends above the body
// bottom.
func (t *itemTable) drawColumnHeader() float64 {
	g := t.geo
	y := g.BodyTop()
	t.e.SetFont("Helvetica", "B", 8)
	x := g.Margin
	for _, c := range itemCols {
		t.e.Text(x, y, c.width, g.RowHeight, c.align, c.caption)
		x += c.width
	}
	t.e.HLine(g.Margin, g.Width-g.Margin, y+g.RowHeight)
	return g.RowsTop()
}

// drawRows draws the rows of one page span starting at y.
func (t *itemTable) drawRows(span pageSpan, y float64) {
	g := t.geo
	t.e.SetFont("Helvetica", "", 8)
	for i := span.start; i < span.end; i++ {
		row := t.view.Items[i]
		cells := []string{
			row.ItemNo, row.Description, row.Period, row.DueDate,
			row.VAT, row.WithholdingTax, row.AmountDue,
		}
		x := g.Margin
		for c, cell := range cells {
			t.e.Text(x, y, itemCols[c].width, g.RowHeight, itemCols[c].align, cell)
			x += itemCols[c].width
		}
		y += g.RowHeight
	}
}

// drawBreakdownTables draws the two bottom grids, anchored to the breakdown
// zone of the current page. They repeat on every page of the document, not
// only the last: operators physically separate printed pages and each sheet
// must reconcile on its own.
func (t *itemTable) drawBreakdownTables() {
	g := t.geo
	top := g.BreakdownTop()
	rowH := 0.19
	half := g.BodyWidth() / 2

	// Left grid: sales classification.
	leftX := g.Margin
	leftW := half - 0.15
	t.e.Box(leftX, top, leftW, g.BreakdownHeight-0.1)
	t.e.SetFont("Helvetica", "B", 8)
	t.e.Text(leftX+0.1, top+0.05, leftW-0.2, rowH, AlignLeft, "SALES CLASSIFICATION")
	t.e.SetFont("Helvetica", "", 8)
	left := []struct{ label, value string }{
		{"VATable Sales", t.view.Totals.VATSales},
		{"VAT-Exempt Sales", t.view.Totals.VATExempt},
		{"Zero-Rated Sales", t.view.Totals.ZeroRated},
		{"Government Tax", t.view.Totals.GovtTax},
		{"VAT Amount", t.view.Totals.VAT},
	}
	y := top + 0.05 + rowH
	for _, r := range left {
		t.e.Text(leftX+0.1, y, 1.8, rowH, AlignLeft, r.label)
		t.e.Text(leftX+leftW-1.5, y, 1.4, rowH, AlignRight, r.value)
		y += rowH
	}

	// Right grid: totals reconciliation.
	rightX := g.Margin + half + 0.15
	rightW := half - 0.15
	t.e.Box(rightX, top, rightW, g.BreakdownHeight-0.1)
	t.e.SetFont("Helvetica", "B", 8)
	t.e.Text(rightX+0.1, top+0.05, rightW-0.2, rowH, AlignLeft, "SUMMARY")
	t.e.SetFont("Helvetica", "", 8)
	right := []struct{ label, value string }{
		{"Total Sales", t.view.Totals.VATSales},
		{"Add: VAT", t.view.Totals.VAT},
		{"Less: Withholding Tax", t.view.Totals.WithholdingTax},
	}
	y = top + 0.05 + rowH
	for _, r := range right {
		t.e.Text(rightX+0.1, y, 1.8, rowH, AlignLeft, r.label)
		t.e.Text(rightX+rightW-1.5, y, 1.4, rowH, AlignRight, r.value)
		y += rowH
	}
	t.e.HLine(rightX+0.1, rightX+rightW-0.1, y+0.02)
	t.e.SetFont("Helvetica", "B", 9)
	t.e.Text(rightX+0.1, y+0.05, 1.8, rowH, AlignLeft, "TOTAL AMOUNT DUE")
	t.e.Text(rightX+rightW-1.5, y+0.05, 1.4, rowH, AlignRight, t.view.Totals.AmountDue)
}
