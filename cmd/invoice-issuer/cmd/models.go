package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rezonia/invoice-issuer/internal/consolidate"
	"github.com/rezonia/invoice-issuer/internal/model"
	"github.com/rezonia/invoice-issuer/internal/refdata"
)

// BillingBatch is the input file shape: one backend billing query result
// plus the reference rows needed for invoice headers.
type BillingBatch struct {
	InvoiceDate int                    `json:"invoice_date"` // YYYYMMDD
	Lines       []model.RawBillingLine `json:"lines"`
	Companies   []refdata.Company      `json:"companies,omitempty"`
	Projects    []refdata.Project      `json:"projects,omitempty"`
}

// RefDataFile is the standalone reference data file shape, merged over a
// batch when --refdata points at one.
type RefDataFile struct {
	Companies []refdata.Company `json:"companies"`
	Projects  []refdata.Project `json:"projects"`
}

func loadBatch(path string) (*BillingBatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	var batch BillingBatch
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	if len(batch.Lines) == 0 {
		return nil, fmt.Errorf("batch file %s has no billing lines", path)
	}

	if refdataPath != "" {
		ref, err := loadRefData(refdataPath)
		if err != nil {
			return nil, err
		}
		batch.Companies = append(batch.Companies, ref.Companies...)
		batch.Projects = append(batch.Projects, ref.Projects...)
	}
	return &batch, nil
}

func loadRefData(path string) (*RefDataFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read reference data: %w", err)
	}
	var ref RefDataFile
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("failed to parse reference data %s: %w", path, err)
	}
	return &ref, nil
}

// consolidateBatch runs the full pipeline over one batch and stamps the
// resulting records with the current run time.
func consolidateBatch(batch *BillingBatch, reprint bool) ([]model.InvoiceRecord, []string) {
	store := refdata.NewStore(batch.Companies, batch.Projects)

	merged, mergeWarns := consolidate.MergeBills(batch.Lines)
	records, aggWarns := consolidate.Aggregate(merged, store, batch.InvoiceDate)
	records = consolidate.Stamp(records, time.Now(), reprint)

	warnings := make([]string, 0, len(mergeWarns)+len(aggWarns))
	for _, w := range append(mergeWarns, aggWarns...) {
		warnings = append(warnings, w.Error())
	}
	return records, warnings
}

func writeJSON(path string, v interface{}) error {
	w := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
