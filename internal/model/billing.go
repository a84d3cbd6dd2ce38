// Package model defines the billing domain types shared by the consolidation
// engine and the document renderer.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SalesType classifies a charge under Philippine sales-tax rules.
type SalesType string

const (
	// SalesVATable marks a regular VATable sale.
	SalesVATable SalesType = "VAT"
	// SalesZeroRated marks a zero-rated sale.
	SalesZeroRated SalesType = "ZERO"
	// SalesExempt marks a VAT-exempt sale.
	SalesExempt SalesType = "NVAT"
)

// Bill type codes. These are the mother bill types carried on every raw
// billing line; utility types additionally carry an OldBillType sub-code.
const (
	BillTypeRental      = 1
	BillTypeCUSA        = 2
	BillTypeElectricity = 3
	BillTypeWater       = 4
	BillTypeLPG         = 5
	BillTypeParking     = 6
	BillTypeAircon      = 7
	BillTypePenalty     = 8
)

// Invoice status flags stamped on submission.
const (
	StatusPrinted   = "P"
	StatusReprinted = "R"
)

// IsUtilityBillType reports whether a bill type is a metered utility, which
// follows the accumulating merge path and the old-bill-type classification
// table.
func IsUtilityBillType(billType int) bool {
	switch billType {
	case BillTypeElectricity, BillTypeWater, BillTypeLPG:
		return true
	}
	return false
}

// HasUniqueSalesType reports whether a bill type's net amount is bucketed by
// its sales-type tag (zero-rated or exempt) rather than always landing in
// VATable sales.
func HasUniqueSalesType(billType int) bool {
	switch billType {
	case BillTypeRental, BillTypeCUSA, BillTypeParking, BillTypeAircon:
		return true
	}
	return false
}

// RawBillingLine is one billed charge for a unit and period as delivered by
// the backend query. Immutable input to the consolidation engine.
type RawBillingLine struct {
	PBLKey      string `json:"pbl_key"`
	CompanyCode int    `json:"company_code"`
	Branch      string `json:"branch"`
	Department  string `json:"department"`
	ProjectCode string `json:"project_code"`
	ClientCode  string `json:"client_code"`
	ClientName  string `json:"client_name"`
	ClientTIN   string `json:"client_tin"`

	BillMonth  int `json:"bill_month"`  // YYYYMM
	PeriodFrom int `json:"period_from"` // YYYYMMDD
	PeriodTo   int `json:"period_to"`   // YYYYMMDD
	DueDate    int `json:"due_date"`    // YYYYMMDD

	BillType     int    `json:"bill_type"`
	OldBillType  int    `json:"old_bill_type,omitempty"`
	Description  string `json:"description"`
	DocumentType string `json:"document_type"`

	Amount     decimal.Decimal `json:"amount"` // gross billed
	Balance    decimal.Decimal `json:"balance"`
	AmountPaid decimal.Decimal `json:"amount_paid"`

	SalesType       SalesType       `json:"sales_type"`
	VATRate         decimal.Decimal `json:"vat_rate"`         // percent
	WithholdingRate decimal.Decimal `json:"withholding_rate"` // percent
}

// Period returns the display form of the billing period, e.g.
// "2025/11/24 - 2025/12/23".
func (l RawBillingLine) Period() string {
	return fmt.Sprintf("%s - %s", DisplayDate(l.PeriodFrom), DisplayDate(l.PeriodTo))
}

// ConsolidatedBillLine is one merged charge with its tax decomposition.
// Monetary invariant: TotalAmount = VATSales + VATExempt + ZeroRated +
// GovtTax + VAT - WithholdingTax, each field rounded to 2 places.
type ConsolidatedBillLine struct {
	PBLKey       string `json:"pbl_key"`
	CompanyCode  int    `json:"company_code"`
	Branch       string `json:"branch"`
	Department   string `json:"department"`
	ProjectCode  string `json:"project_code"`
	ClientCode   string `json:"client_code"`
	ClientName   string `json:"client_name"`
	ClientTIN    string `json:"client_tin"`
	BillMonth    int    `json:"bill_month"`
	PeriodFrom   int    `json:"period_from"`
	PeriodTo     int    `json:"period_to"`
	DueDate      int    `json:"due_date"`
	BillType     int    `json:"bill_type"`
	OldBillType  int    `json:"old_bill_type,omitempty"`
	Description  string `json:"description"`
	DocumentType string `json:"document_type"`

	UnitCost       decimal.Decimal `json:"unit_cost"` // net of VAT
	Amount         decimal.Decimal `json:"amount"`    // gross
	VATSales       decimal.Decimal `json:"vat_sales"`
	VATExempt      decimal.Decimal `json:"vat_exempt"`
	ZeroRated      decimal.Decimal `json:"zero_rated"`
	GovtTax        decimal.Decimal `json:"govt_tax"`
	VAT            decimal.Decimal `json:"vat"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
}

// Period returns the display form of the billing period.
func (l ConsolidatedBillLine) Period() string {
	return fmt.Sprintf("%s - %s", DisplayDate(l.PeriodFrom), DisplayDate(l.PeriodTo))
}

// ItemBreakdown is one printed invoice item row. Rows are never merged
// across bill types; ItemNo is assigned per invoice in final sort order.
type ItemBreakdown struct {
	ItemNo         int             `json:"item_no"`
	BillType       int             `json:"bill_type"`
	Description    string          `json:"description"`
	DueDate        int             `json:"due_date"`
	PeriodFrom     int             `json:"period_from"`
	PeriodTo       int             `json:"period_to"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	VATSales       decimal.Decimal `json:"vat_sales"`
	VATExempt      decimal.Decimal `json:"vat_exempt"`
	ZeroRated      decimal.Decimal `json:"zero_rated"`
	GovtTax        decimal.Decimal `json:"govt_tax"`
	VAT            decimal.Decimal `json:"vat"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`
	AmountDue      decimal.Decimal `json:"amount_due"`
}

// TotalBreakdown mirrors the item tax buckets as invoice-level running sums.
type TotalBreakdown struct {
	VATSales       decimal.Decimal `json:"vat_sales"`
	VATExempt      decimal.Decimal `json:"vat_exempt"`
	ZeroRated      decimal.Decimal `json:"zero_rated"`
	GovtTax        decimal.Decimal `json:"govt_tax"`
	VAT            decimal.Decimal `json:"vat"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`
	AmountDue      decimal.Decimal `json:"amount_due"`
}

// LedgerEntry is one cash/ledger posting row, one per distinct bill type in
// the invoice, updated additively as further lines of the same type arrive.
type LedgerEntry struct {
	BillType       int             `json:"bill_type"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	VAT            decimal.Decimal `json:"vat"`
	WithholdingTax decimal.Decimal `json:"withholding_tax"`
	Total          decimal.Decimal `json:"total"`
}

// RemarkSet is the four remark lines printed on the invoice.
type RemarkSet [4]string

// InvoiceRecord is the aggregation unit handed to the renderer and submitted
// back to the backend for persistence. Finalized records are read-only.
type InvoiceRecord struct {
	PBLKey       string `json:"pbl_key"`
	ClientCode   string `json:"client_code"`
	ClientName   string `json:"client_name"`
	ClientTIN    string `json:"client_tin"`
	DocumentType string `json:"document_type"`

	CompanyCode    int    `json:"company_code"`
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyTIN     string `json:"company_tin"`
	Branch         string `json:"branch"`
	Department     string `json:"department"`
	ProjectCode    string `json:"project_code"`
	ProjectName    string `json:"project_name"`

	InvoiceDate int `json:"invoice_date"` // YYYYMMDD

	Lines   []ConsolidatedBillLine `json:"lines"`
	Items   []ItemBreakdown        `json:"items"`
	Totals  TotalBreakdown         `json:"totals"`
	Ledger  []LedgerEntry          `json:"ledger"`
	Remarks RemarkSet              `json:"remarks"`

	RunDate    int    `json:"run_date"` // YYYYMMDD
	RunTime    int    `json:"run_time"` // HHMMSS
	Status     string `json:"status"`   // P or R
	PrintCount int    `json:"print_count"`
}

// GroupKey returns the summary-report grouping key,
// "<2-digit zero-padded company code>_<project code>".
func (r InvoiceRecord) GroupKey() string {
	return fmt.Sprintf("%02d_%s", r.CompanyCode, r.ProjectCode)
}
