package cmd

import (
	"fmt"

	"github.com/career-compass/projector/pkg/importer"
	"github.com/career-compass/projector/pkg/models"
	"github.com/spf13/cobra"
)

var flagImportDir string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the reference tables with the CSV worksheets in a directory",
	Long: fmt.Sprintf(`Replace the reference tables with the CSV worksheets in a directory.

The directory must contain the worksheets
  %s
  %s
  %s
  %s`,
		importer.DefaultFiles[importer.TaxTable],
		importer.DefaultFiles[importer.CivilianTable],
		importer.DefaultFiles[importer.MilitaryTable],
		importer.DefaultFiles[importer.LifestyleTable],
	),
	Args: cobra.NoArgs,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&flagImportDir, "dir", "", "Directory with the worksheets, defaults to the data directory")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	dir := flagImportDir
	if dir == "" {
		dir = cfg.DataDir
	}

	counts, err := importer.ImportDir(models.DB, importer.NewCSVDir(dir))
	if err != nil {
		return err
	}

	for _, t := range importer.AllTables {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows\n", t, counts[t])
	}

	return nil
}
