// Package cmd implements the projector command line interface.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/career-compass/projector/pkg/config"
	"github.com/career-compass/projector/pkg/importer"
	"github.com/career-compass/projector/pkg/models"
	"github.com/career-compass/projector/pkg/projection"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDSN     string
	flagDataDir string
)

// cfg is the configuration loaded before every command runs.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "projector",
	Short: "Budgeting and net worth projection backend",
	Long: `projector runs the budgeting API, imports the reference worksheets and
projects the net worth of all participants over 25 years.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDSN, "dsn", "", "SQLite data source name, overrides DB_DSN")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory, overrides DATA_DIR")
}

// setup loads the configuration, configures logging and connects to
// the database.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}

	if flagDSN != "" {
		c.DSN = flagDSN
	}

	if flagDataDir != "" {
		c.DataDir = flagDataDir
	}

	c.SetupLogging(cmd.ErrOrStderr())

	if c.DSN == "" {
		if err := os.MkdirAll(c.DataDir, os.ModePerm); err != nil {
			return fmt.Errorf("could not create the data directory: %w", err)
		}
	}

	if err := models.Connect(c.DatabaseDSN()); err != nil {
		return err
	}

	cfg = c
	return nil
}

// teardown closes the database connection.
func teardown(_ *cobra.Command, _ []string) error {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// project simulates all participants stored in the database.
func project(ctx context.Context) ([]projection.Projection, error) {
	db := importer.Database{DB: models.DB}

	participants, err := db.Participants()
	if err != nil {
		return nil, err
	}

	civilian, err := db.Professions(models.Civilian)
	if err != nil {
		return nil, err
	}

	military, err := db.Professions(models.Military)
	if err != nil {
		return nil, err
	}

	projections, err := projection.SimulateAll(ctx, participants, projection.NewTables(civilian, military), cfg.SimulationWorkers)
	if err != nil {
		return nil, err
	}

	log.Info().Int("participants", len(participants)).Msg("Simulation finished")
	return projections, nil
}

// output returns the writer for an output path. An empty path or "-"
// writes to the output of the command.
func output(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}

	return f, f.Close, nil
}
