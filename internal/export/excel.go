// Package export produces spreadsheet projections of finalized invoice
// batches for the accounting side.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/render"
)

var summaryHeaders = []string{
	"Group", "Unit", "Client", "Invoice Date",
	"VATable Sales", "VAT-Exempt", "Zero-Rated", "Govt Tax",
	"VAT", "Withholding Tax", "Amount Due", "Status",
}

// SummaryWorkbook writes the batch summary as an XLSX workbook, one row per
// invoice, grouped the same way as the printed summary report
// (<2-digit company>_<project>). Returns the workbook bytes.
func SummaryWorkbook(records []model.InvoiceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, h := range summaryHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, rec := range records {
		values := []interface{}{
			rec.GroupKey(),
			rec.PBLKey,
			rec.ClientName,
			model.DisplayDate(rec.InvoiceDate),
			render.FormatAmount(rec.Totals.VATSales),
			render.FormatAmount(rec.Totals.VATExempt),
			render.FormatAmount(rec.Totals.ZeroRated),
			render.FormatAmount(rec.Totals.GovtTax),
			render.FormatAmount(rec.Totals.VAT),
			render.FormatAmount(rec.Totals.WithholdingTax),
			render.FormatAmount(rec.Totals.AmountDue),
			rec.Status,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
