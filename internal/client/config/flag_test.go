package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides provided fields only", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", "http://cli:8080/api", "-l", "debug"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://cli:8080/api", cfg.ServerBaseURL)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "taskmanager.db", cfg.StoreDSN)
	})

	t.Run("foreign flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "conf.json", "-d", "custom.db"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "custom.db", cfg.StoreDSN)
		assert.Equal(t, "http://localhost:5000/api", cfg.ServerBaseURL)
	})
}
