package config

import (
	"encoding/json"
	"os"

	"github.com/gayya20/taskmanager-client/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	ServerBaseURL *string `json:"server_base_url"`
	StoreDSN      *string `json:"store_dsn"`
	LogLevel      *string `json:"log_level"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// When no file is named, nothing happens. Read or unmarshal errors panic;
// a broken explicit config is a startup fault, not a condition to limp past.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.StoreDSN != nil {
		cfg.StoreDSN = *jc.StoreDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
