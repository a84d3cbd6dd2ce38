package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/rezonia/invoice-issuer/internal/model"
)

// Align selects horizontal text alignment.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// Engine wraps the PDF backend with the absolute-coordinate placement
// primitives the renderers use. Placement is stateless between calls; the
// rendering pass threads its own cursor where one is needed.
type Engine struct {
	pdf *gofpdf.Fpdf
}

// NewEngine creates an engine over a fresh document of the given geometry.
// Automatic page breaks are disabled: pagination is an explicit decision of
// the table renderer, never the library's.
func NewEngine(orientation string, g PageGeometry) *Engine {
	size := "Letter"
	w, h := g.Width, g.Height
	if orientation == "L" {
		w, h = h, w
	}
	if w == 8.5 && h == 14 {
		size = "Legal"
	}
	pdf := gofpdf.New(orientation, "in", size, "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(g.Margin, g.Margin, g.Margin)
	return &Engine{pdf: pdf}
}

// AddPage starts a new page.
func (e *Engine) AddPage() {
	e.pdf.AddPage()
}

// SetFont sets the current font. Size is in points.
func (e *Engine) SetFont(family, style string, sizePt float64) {
	e.pdf.SetFont(family, style, sizePt)
}

// Text places a single line at absolute coordinates inside a cell of the
// given width and height, aligned left, center or right.
func (e *Engine) Text(x, y, w, h float64, align Align, text string) {
	e.pdf.SetXY(x, y)
	e.pdf.CellFormat(w, h, text, "", 0, string(align), false, 0, "")
}

// WrapText word-wraps text inside maxWidth starting at (x, y), one line per
// lineHeight, and returns the y cursor below the last line.
func (e *Engine) WrapText(x, y, maxWidth, lineHeight float64, text string) float64 {
	lines := e.pdf.SplitText(text, maxWidth)
	for _, line := range lines {
		e.pdf.SetXY(x, y)
		e.pdf.CellFormat(maxWidth, lineHeight, line, "", 0, "L", false, 0, "")
		y += lineHeight
	}
	return y
}

// Box draws a bordered rectangle.
func (e *Engine) Box(x, y, w, h float64) {
	e.pdf.Rect(x, y, w, h, "D")
}

// HLine draws a horizontal rule from x1 to x2 at y.
func (e *Engine) HLine(x1, x2, y float64) {
	e.pdf.Line(x1, y, x2, y)
}

// VLine draws a vertical rule at x from y1 to y2.
func (e *Engine) VLine(x, y1, y2 float64) {
	e.pdf.Line(x, y1, x, y2)
}

// Output closes the document and returns the PDF bytes.
func (e *Engine) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.pdf.Output(&buf); err != nil {
		return nil, model.NewRenderError("output", "failed to close document", err)
	}
	return buf.Bytes(), nil
}
