package cmd

import (
	v1 "github.com/career-compass/projector/pkg/controllers/v1"
	"github.com/career-compass/projector/pkg/report"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	flagReportOut    string
	flagReportMonths string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Pair all participants with their military twin and export the comparison as JSON",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&flagReportOut, "out", "o", "-", "JSON file to write, - for standard output")
	reportCmd.Flags().StringVar(&flagReportMonths, "months", "", "Comma separated months to sample, overrides SAMPLE_MONTHS")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	options := cfg.Report()

	months, err := report.ParseMonths(flagReportMonths)
	if err != nil {
		return err
	}

	if months != nil {
		options.Months = months
	}

	if err := options.Validate(); err != nil {
		return err
	}

	projections, err := project(cmd.Context())
	if err != nil {
		return err
	}

	comparison, diags := report.PairAndSample(projections, options)

	w, closeOutput, err := output(cmd, flagReportOut)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(v1.ComparisonResponse{
		Data:        comparison,
		Diagnostics: diags,
	})
	if err != nil {
		closeOutput()
		return err
	}

	return closeOutput()
}
