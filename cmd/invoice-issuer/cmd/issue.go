package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-issuer/internal/render"
)

var (
	issueOutput  string
	issuePDF     string
	issuePDFDir  string
	issueReprint bool
)

var issueCmd = &cobra.Command{
	Use:   "issue <billing.json>",
	Short: "Consolidate a billing batch into invoice records",
	Long: `Consolidate a billing batch into finalized invoice records.

The batch file carries the raw billing lines from the backend query plus
company/project reference rows. Output is the invoice record array in
issuance sort order (company, branch, department, project), stamped with
the run date/time and print status.

Examples:
  invoice-issuer issue billing.json
  invoice-issuer issue billing.json -o invoices.json
  invoice-issuer issue billing.json --pdf batch.pdf
  invoice-issuer issue billing.json --pdf-dir out/ --reprint`,
	Args: cobra.ExactArgs(1),
	RunE: runIssue,
}

func init() {
	rootCmd.AddCommand(issueCmd)

	issueCmd.Flags().StringVarP(&issueOutput, "output", "o", "", "Invoice records output file (default: stdout)")
	issueCmd.Flags().StringVar(&issuePDF, "pdf", "", "Render all invoices into one merged PDF")
	issueCmd.Flags().StringVar(&issuePDFDir, "pdf-dir", "", "Render one PDF per invoice into this directory")
	issueCmd.Flags().BoolVar(&issueReprint, "reprint", false, "Stamp records as reprinted (status R)")
}

func runIssue(cmd *cobra.Command, args []string) error {
	batch, err := loadBatch(args[0])
	if err != nil {
		return err
	}
	printVerbose("Loaded %d billing lines\n", len(batch.Lines))

	records, warnings := consolidateBatch(batch, issueReprint)
	printVerbose("Consolidated into %d invoices\n", len(records))
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if issuePDF != "" {
		doc, err := render.BuildBatch(records)
		if err != nil {
			return err
		}
		if err := os.WriteFile(issuePDF, doc, 0644); err != nil {
			return fmt.Errorf("failed to write merged PDF: %w", err)
		}
		printVerbose("Wrote %s (%d bytes)\n", issuePDF, len(doc))
	}

	if issuePDFDir != "" {
		if err := os.MkdirAll(issuePDFDir, 0755); err != nil {
			return fmt.Errorf("failed to create PDF directory: %w", err)
		}
		builder := render.NewInvoiceBuilder()
		for _, rec := range records {
			doc, err := builder.Build(rec)
			if err != nil {
				return err
			}
			name := strings.ReplaceAll(rec.PBLKey, "/", "-") + ".pdf"
			path := filepath.Join(issuePDFDir, name)
			if err := os.WriteFile(path, doc, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			printVerbose("Wrote %s\n", path)
		}
	}

	return writeJSON(issueOutput, records)
}
