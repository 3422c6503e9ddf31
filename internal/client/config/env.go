package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first when present; real environment variables win over it.
const (
	envAPIBaseURL     = "PROMPTVAULT_API_URL"
	envRequestTimeout = "PROMPTVAULT_TIMEOUT"
	envDatabasePath   = "PROMPTVAULT_DB_PATH"
)

// parseEnv overlays cfg with values from the environment. A missing .env
// file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
}
