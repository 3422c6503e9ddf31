// Package config loads runtime settings for the PromptVault CLI.
//
// Sources are layered, later ones winning: built-in defaults, a JSON file
// passed via -c/-config, environment variables (optionally read from a
// .env file), and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the PromptVault CLI.
//
// Fields:
//   - APIBaseURL: base endpoint of the backend, including any path prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabasePath: location of the local session mirror database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults. The database lives
// under the user's config directory, falling back to the working
// directory when that cannot be resolved.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://promptbackend-rw73.onrender.com/promptvault"
	c.RequestTimeout = 15 * time.Second

	if dir, err := os.UserConfigDir(); err == nil {
		c.DatabasePath = filepath.Join(dir, "promptvault", "session.db")
	} else {
		c.DatabasePath = "promptvault-session.db"
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
