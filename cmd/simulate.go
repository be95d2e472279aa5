package cmd

import (
	"github.com/career-compass/projector/pkg/projection"
	"github.com/spf13/cobra"
)

var flagSimulateOut string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project the net worth of all participants and export it as CSV",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&flagSimulateOut, "out", "o", "-", "CSV file to write, - for standard output")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	projections, err := project(cmd.Context())
	if err != nil {
		return err
	}

	w, closeOutput, err := output(cmd, flagSimulateOut)
	if err != nil {
		return err
	}

	if err := projection.WriteCSV(w, projections); err != nil {
		closeOutput()
		return err
	}

	return closeOutput()
}
