package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-issuer/internal/export"
	"github.com/rezonia/invoice-issuer/internal/render"
)

var (
	summaryOutput string
	summaryFormat string
	summaryTitle  string
)

var summaryCmd = &cobra.Command{
	Use:   "summary <billing.json>",
	Short: "Render the batch summary report",
	Long: `Consolidate a billing batch and render the issuance summary report,
grouped by company and project with subtotals per group.

Formats:
  pdf   Legal-size landscape report (default)
  xlsx  Spreadsheet export of the same rows

Examples:
  invoice-issuer summary billing.json -o summary.pdf
  invoice-issuer summary billing.json -f xlsx -o summary.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "summary.pdf", "Output file")
	summaryCmd.Flags().StringVarP(&summaryFormat, "format", "f", "pdf", "Output format (pdf, xlsx)")
	summaryCmd.Flags().StringVar(&summaryTitle, "title", "", "Report title")
}

func runSummary(cmd *cobra.Command, args []string) error {
	batch, err := loadBatch(args[0])
	if err != nil {
		return err
	}

	records, warnings := consolidateBatch(batch, false)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	var doc []byte
	switch summaryFormat {
	case "pdf":
		doc, err = render.NewSummaryBuilder(summaryTitle).Build(records)
	case "xlsx":
		doc, err = export.SummaryWorkbook(records)
	default:
		return fmt.Errorf("unsupported output format: %s", summaryFormat)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(summaryOutput, doc, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", summaryOutput, err)
	}
	printVerbose("Wrote %s (%d bytes)\n", summaryOutput, len(doc))
	return nil
}
