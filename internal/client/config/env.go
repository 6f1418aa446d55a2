package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/gayya20/taskmanager-client/internal/flagx"
)

// parseEnv overlays Config with values from the process environment. When
// -e/-env names a file it is loaded first and must exist; otherwise a .env
// in the working directory is loaded when present.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v := os.Getenv("SERVER_BASE_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("STORE_DSN"); v != "" {
		cfg.StoreDSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
