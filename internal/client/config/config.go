// Package config holds runtime settings for the task-manager client.
//
// Values are resolved in layers, later sources winning: built-in defaults,
// then an optional .env file, then an optional JSON file, then command-line
// flags.
package config

type Config struct {
	// ServerBaseURL is the root of the remote service's API,
	// e.g. "http://localhost:5000/api".
	ServerBaseURL string

	// StoreDSN is the SQLite DSN of the durable session store.
	StoreDSN string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000/api"
	c.StoreDSN = "taskmanager.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (optionally seeded from a .env file), a JSON file
// and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
