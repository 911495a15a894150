// Package config handles application configuration from the environment and
// command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
)

// Prefix namespaces environment variables, e.g. HOLIDAYS_LOG_LEVEL.
const Prefix = "HOLIDAYS"

// ErrHelpWanted is returned by Load when --help was requested.
var ErrHelpWanted = conf.ErrHelpWanted

// Config holds all application configuration.
// Every field can be set as a flag (--log-level) or environment variable
// (HOLIDAYS_LOG_LEVEL); flags win.
type Config struct {
	Env string `conf:"default:development"` // development, staging, production

	Log struct {
		Level  string `conf:"default:info"` // debug, info, warn, error
		Format string `conf:"default:text"` // json, text
	}

	// Calendar selection. Zero means "current".
	Year     int
	Month    int
	Weekends bool

	Output string `conf:"default:text"` // text, json
}

// Environment constants
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Load reads configuration from a .env file (if present), the environment
// and args, in increasing order of precedence.
func Load(args []string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := conf.Parse(args, Prefix, cfg); err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			return nil, ErrHelpWanted
		}
		return nil, fmt.Errorf("parse configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Usage returns the flag and environment variable help text.
func Usage() (string, error) {
	var cfg Config
	return conf.Usage(Prefix, &cfg)
}

// Summary renders the configuration for logging.
func (c *Config) Summary() string {
	out, err := conf.String(c)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return out
}

// Validate checks that all configuration values are in range.
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case EnvDevelopment, EnvStaging, EnvProduction:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("ENV must be one of: development, staging, production; got %q", c.Env))
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", c.Log.Level))
	}

	switch c.Log.Format {
	case "json", "text":
		// Valid
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be one of: json, text; got %q", c.Log.Format))
	}

	// Zero selects the current year/month
	if c.Year != 0 && (c.Year < 1583 || c.Year > 9999) {
		errs = append(errs, fmt.Errorf("YEAR must be between 1583 and 9999, got %d", c.Year))
	}
	if c.Month < 0 || c.Month > 12 {
		errs = append(errs, fmt.Errorf("MONTH must be between 1 and 12, got %d", c.Month))
	}

	switch c.Output {
	case OutputText, OutputJSON:
		// Valid
	default:
		errs = append(errs, fmt.Errorf("OUTPUT must be one of: text, json; got %q", c.Output))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}
