package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("reads process environment", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("SERVER_BASE_URL", "http://env:5000/api")
		t.Setenv("LOG_LEVEL", "warn")

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://env:5000/api", cfg.ServerBaseURL)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "taskmanager.db", cfg.StoreDSN)
	})

	t.Run("loads the env file named by flag", func(t *testing.T) {
		// godotenv never overrides variables already present in the
		// environment, so make sure these are unset.
		t.Setenv("STORE_DSN", "")
		os.Unsetenv("STORE_DSN")

		path := filepath.Join(t.TempDir(), "custom.env")
		require.NoError(t, os.WriteFile(path, []byte("STORE_DSN=file.db\n"), 0o600))
		os.Args = []string{"testbin", "-env", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "file.db", cfg.StoreDSN)
	})

	t.Run("missing explicit env file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", "/nope/absent.env"}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.Panics(t, func() { parseEnv(cfg) })
	})
}
