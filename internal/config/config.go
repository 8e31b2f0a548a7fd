// Package config loads runtime settings for the actas CLI. Sources are
// layered: built-in defaults, then environment variables, then
// command-line flags, later sources taking precedence.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the actas CLI.
//
// Fields:
//   - APIBaseURL: base URL of the external actas API.
//   - RegistrationKey: shared secret gating the registration form.
//   - TokenDBPath: path of the local SQLite file holding the session token.
//   - RequestTimeout: per-request timeout for API calls.
//   - LogLevel: debug, info, warn, or error.
type Config struct {
	APIBaseURL      string        `env:"ACTAS_API_URL"`
	RegistrationKey string        `env:"ACTAS_REGISTRATION_KEY"`
	TokenDBPath     string        `env:"ACTAS_TOKEN_DB"`
	RequestTimeout  time.Duration `env:"ACTAS_REQUEST_TIMEOUT"`
	LogLevel        string        `env:"ACTAS_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:4000/api"
	c.TokenDBPath = "actas.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// Load builds the Config from os.Args.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

// LoadArgs builds the Config, overlaying environment and the given
// flag arguments on top of the defaults.
func LoadArgs(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
