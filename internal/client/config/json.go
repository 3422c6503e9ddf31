package config

import (
	"encoding/json"
	"os"

	"github.com/yashwakde/promptvault/internal/flagx"
	"github.com/yashwakde/promptvault/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so the file can specify the timeout either as a
// string like "15s" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   *string         `json:"database_path"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent flag means no JSON layer. Fields missing from
// the file keep their current values. Panics on read or unmarshal errors:
// a config file that exists but cannot be used is a startup failure.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
}
