package cmd

import (
	"github.com/career-compass/projector/pkg/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "Address to listen on, defaults to :8080 or the PORT environment variable")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	url, err := cfg.URL()
	if err != nil {
		return err
	}

	r, unregister, err := router.Config(url, cfg)
	defer unregister()
	if err != nil {
		return err
	}

	if err := router.AttachRoutes(r.Group("/"), cfg); err != nil {
		return err
	}

	log.Info().Str("version", router.Version).Str("url", url.String()).Msg("Starting API")

	if flagListen != "" {
		return r.Run(flagListen)
	}
	return r.Run()
}
