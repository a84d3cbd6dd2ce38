// Package issuerlib provides a public API for billing consolidation and
// invoice document rendering.
//
// The package exposes the core types and a facade over the consolidation
// pipeline: merging raw billing lines, computing the tax decomposition,
// aggregating invoice records and rendering them as paginated PDFs.
//
// Example usage:
//
//	issuer := issuerlib.NewIssuer(companies, projects)
//	result := issuer.Consolidate(lines, 20251201)
//	doc, err := issuer.RenderInvoice(result.Records[0])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("invoice.pdf", doc, 0644)
package issuerlib

import "github.com/rezonia/invoice-issuer/internal/model"

// Re-export core types for public API
type (
	RawBillingLine       = model.RawBillingLine
	ConsolidatedBillLine = model.ConsolidatedBillLine
	InvoiceRecord        = model.InvoiceRecord
	ItemBreakdown        = model.ItemBreakdown
	TotalBreakdown       = model.TotalBreakdown
	LedgerEntry          = model.LedgerEntry
	RemarkSet            = model.RemarkSet
	SalesType            = model.SalesType
)

// Re-export sales-type tags
const (
	SalesVATable   = model.SalesVATable
	SalesZeroRated = model.SalesZeroRated
	SalesExempt    = model.SalesExempt
)

// Re-export bill type codes
const (
	BillTypeRental      = model.BillTypeRental
	BillTypeCUSA        = model.BillTypeCUSA
	BillTypeElectricity = model.BillTypeElectricity
	BillTypeWater       = model.BillTypeWater
	BillTypeLPG         = model.BillTypeLPG
	BillTypeParking     = model.BillTypeParking
	BillTypeAircon      = model.BillTypeAircon
	BillTypePenalty     = model.BillTypePenalty
)

// Re-export status flags
const (
	StatusPrinted   = model.StatusPrinted
	StatusReprinted = model.StatusReprinted
)

// Re-export error types
type (
	ClassificationError = model.ClassificationError
	LookupError         = model.LookupError
	RenderError         = model.RenderError
)
