// Package config reads the configuration from the environment.
//
// A .env file in the working directory is loaded first, variables
// that are already set in the environment take precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/career-compass/projector/pkg/budget"
	"github.com/career-compass/projector/pkg/report"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var ErrAPIURLNotSet = errors.New("environment variable API_URL must be set")

// Config is the configuration of the backend and the CLI.
type Config struct {
	APIURL            string   `env:"API_URL"`
	DataDir           string   `env:"DATA_DIR" envDefault:"data"`
	DSN               string   `env:"DB_DSN"`     // Defaults to projector.db in the data directory
	LogFormat         string   `env:"LOG_FORMAT"` // "human" for console output, JSON otherwise
	GinMode           string   `env:"GIN_MODE" envDefault:"release"`
	CORSAllowOrigins  []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`
	EnablePprof       bool     `env:"ENABLE_PPROF"`
	MilitaryPolicy    string   `env:"MILITARY_POLICY" envDefault:"benefits"`
	PolicyFile        string   `env:"POLICY_FILE"` // TOML policy, overrides MILITARY_POLICY
	TwinSuffix        string   `env:"TWIN_SUFFIX" envDefault:"-mil"`
	SimulationWorkers int      `env:"SIMULATION_WORKERS"` // 0 uses GOMAXPROCS
	SampleMonths      []int    `env:"SAMPLE_MONTHS" envDefault:"1,120,240" envSeparator:","`
}

// Load reads the configuration.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := c.Report().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid SAMPLE_MONTHS: %w", err)
	}

	return c, nil
}

// URL parses the public URL of the API.
func (c Config) URL() (*url.URL, error) {
	if c.APIURL == "" {
		return nil, ErrAPIURLNotSet
	}

	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}
	return u, nil
}

// DatabaseDSN returns the SQLite data source name.
func (c Config) DatabaseDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return filepath.Join(c.DataDir, "projector.db")
}

// Policy returns the military eligibility policy.
func (c Config) Policy() (budget.Policy, error) {
	if c.PolicyFile != "" {
		return budget.LoadPolicy(c.PolicyFile)
	}
	return budget.PolicyByName(c.MilitaryPolicy)
}

// Twin returns the military twin derivation.
func (c Config) Twin() budget.TwinConfig {
	t := budget.DefaultTwinConfig
	t.Suffix = c.TwinSuffix
	return t
}

// Report returns the pairing options.
func (c Config) Report() report.Options {
	o := report.DefaultOptions()
	o.Suffix = c.TwinSuffix
	if len(c.SampleMonths) > 0 {
		o.Months = c.SampleMonths
	}
	return o
}

// SetupLogging configures gin and the global logger.
//
// Output is human readable for LOG_FORMAT=human and in gin debug mode
// unless a format is set, JSON otherwise.
func (c Config) SetupLogging(out io.Writer) {
	gin.SetMode(c.GinMode)

	output := out
	if (c.LogFormat == "" && gin.IsDebugging()) || c.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}
