package issuerlib

import (
	"time"

	"github.com/rezonia/invoice-issuer/internal/consolidate"
	"github.com/rezonia/invoice-issuer/internal/export"
	"github.com/rezonia/invoice-issuer/internal/refdata"
	"github.com/rezonia/invoice-issuer/internal/render"
)

// Company is a company reference row for invoice headers.
type Company = refdata.Company

// Project is a project reference row for invoice headers.
type Project = refdata.Project

// ConsolidationResult carries the finalized records plus any classification
// or lookup anomalies found along the way. Anomalies never abort the run.
type ConsolidationResult struct {
	Records  []InvoiceRecord
	Warnings []string
}

// Issuer is the consolidation and rendering facade. It is stateless between
// calls and safe to reuse across batches.
type Issuer struct {
	store *refdata.Store
}

// NewIssuer creates an issuer with the given reference data.
func NewIssuer(companies []Company, projects []Project) *Issuer {
	return &Issuer{store: refdata.NewStore(companies, projects)}
}

// Consolidate runs the merge and aggregation pipeline over one billing
// batch and stamps the records with the current run time.
func (is *Issuer) Consolidate(lines []RawBillingLine, invoiceDate int) ConsolidationResult {
	return is.ConsolidateAt(lines, invoiceDate, time.Now(), false)
}

// ConsolidateAt is Consolidate with an explicit run time and reprint flag.
func (is *Issuer) ConsolidateAt(lines []RawBillingLine, invoiceDate int, runAt time.Time, reprint bool) ConsolidationResult {
	merged, mergeWarns := consolidate.MergeBills(lines)
	records, aggWarns := consolidate.Aggregate(merged, is.store, invoiceDate)
	records = consolidate.Stamp(records, runAt, reprint)

	warnings := make([]string, 0, len(mergeWarns)+len(aggWarns))
	for _, w := range append(mergeWarns, aggWarns...) {
		warnings = append(warnings, w.Error())
	}
	return ConsolidationResult{Records: records, Warnings: warnings}
}

// RenderInvoice renders one finalized record as a PDF document.
func (is *Issuer) RenderInvoice(rec InvoiceRecord) ([]byte, error) {
	return render.NewInvoiceBuilder().Build(rec)
}

// RenderBatch renders every record and merges the documents page-wise in
// record order.
func (is *Issuer) RenderBatch(records []InvoiceRecord) ([]byte, error) {
	return render.BuildBatch(records)
}

// RenderSummary renders the issuance summary report.
func (is *Issuer) RenderSummary(records []InvoiceRecord, title string) ([]byte, error) {
	return render.NewSummaryBuilder(title).Build(records)
}

// SummaryWorkbook exports the summary rows as an XLSX workbook.
func (is *Issuer) SummaryWorkbook(records []InvoiceRecord) ([]byte, error) {
	return export.SummaryWorkbook(records)
}
