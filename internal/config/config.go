// Package config loads client configuration from the environment and
// initializes logging.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/hunterportola/mynotes/internal/session"
)

// Config holds application configuration. All fields come from
// MYNOTES_* environment variables; a .env file in the working
// directory is loaded first when present.
type Config struct {
	// APIURL is the base URL of the notes API.
	APIURL string `envconfig:"API_URL" default:"http://localhost:3000"`

	// StateDir overrides where the session file lives. Empty means
	// the user config directory.
	StateDir string `envconfig:"STATE_DIR"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("mynotes", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	return &cfg, nil
}

// SessionPath resolves the session file location from the config.
func (c *Config) SessionPath() (string, error) {
	if c.StateDir != "" {
		return filepath.Join(c.StateDir, "session.toml"), nil
	}
	return session.DefaultPath()
}

// Level parses the configured log level, defaulting to info on
// unrecognized values.
func (c *Config) Level() zerolog.Level {
	switch c.LogLevel {
	case "debug", "DEBUG":
		return zerolog.DebugLevel
	case "info", "INFO":
		return zerolog.InfoLevel
	case "warn", "WARN":
		return zerolog.WarnLevel
	case "error", "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
