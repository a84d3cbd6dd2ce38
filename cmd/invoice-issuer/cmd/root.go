package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose     bool
	refdataPath string
)

var rootCmd = &cobra.Command{
	Use:   "invoice-issuer",
	Short: "Consolidate period billings and issue printable invoices",
	Long: `Invoice Issuer consolidates raw period billing records into finalized
invoice documents and renders them as paginated PDFs.

The pipeline:
  1. Merge duplicate/related billing lines per unit and period
  2. Decompose amounts into VAT / exempt / zero-rated / government-tax
     buckets and compute withholding tax
  3. Aggregate lines into invoice records with ledgers and remarks
  4. Render each invoice (and the batch summary) onto fixed-size pages

Examples:
  # Consolidate a billing batch and write the invoice records
  invoice-issuer issue billing.json -o invoices.json

  # Render every invoice into one merged PDF
  invoice-issuer issue billing.json --pdf batch.pdf

  # Render the batch summary report
  invoice-issuer summary billing.json -o summary.pdf

  # Start the HTTP API
  invoice-issuer serve`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&refdataPath, "refdata", "", "Company/project reference data file (env: ISSUER_REFDATA)")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if refdataPath == "" {
		refdataPath = os.Getenv("ISSUER_REFDATA")
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
