package server

import (
	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/refdata"
)

// ConsolidateRequest is the request body for the consolidate endpoint. The
// raw lines come from the backend billing query; companies and projects are
// the reference rows resolved against invoice headers.
type ConsolidateRequest struct {
	InvoiceDate int                    `json:"invoice_date"` // YYYYMMDD
	Reprint     bool                   `json:"reprint"`
	Lines       []model.RawBillingLine `json:"lines"`
	Companies   []refdata.Company      `json:"companies,omitempty"`
	Projects    []refdata.Project      `json:"projects,omitempty"`
}

// ConsolidateResponse carries the finalized invoice records and any
// classification or lookup anomalies encountered.
type ConsolidateResponse struct {
	Records  []model.InvoiceRecord `json:"records"`
	Warnings []string              `json:"warnings,omitempty"`
}

// RenderBatchRequest is the request body for batch and summary rendering.
type RenderBatchRequest struct {
	Records []model.InvoiceRecord `json:"records"`
	Title   string                `json:"title,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
