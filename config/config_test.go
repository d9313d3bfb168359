package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	// Unset values count as empty, so no override applies.
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DIRECTORY_DB_PATH", "")
	t.Setenv("DIRECTORY_LOG_LEVEL", "")
	chdir(t, t.TempDir())
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "staff-directory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
storage:
  driver: sqlite
  path: /tmp/dir.db
logging:
  level: debug
telegram:
  token: from-file
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverSqlite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/dir.db", cfg.Storage.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "from-file", cfg.Telegram.Token)
	assert.Equal(t, 32, cfg.Telegram.Queue)
}

func TestEnvOverridesYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "logging:\n  level: warn\ntelegram:\n  token: from-file\n")
	t.Setenv("TELEGRAM_TOKEN", "from-env")
	t.Setenv("DIRECTORY_DB_PATH", "env.db")
	t.Setenv("DIRECTORY_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Telegram.Token)
	assert.Equal(t, DriverSqlite, cfg.Storage.Driver)
	assert.Equal(t, "env.db", cfg.Storage.Path)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestDotEnvIsLoaded(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("TELEGRAM_TOKEN")
	require.NoError(t, os.WriteFile(".env", []byte("TELEGRAM_TOKEN=dotenv-token\n"), 0o644))

	cfg, err := Load(DefaultPath)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-token", cfg.Telegram.Token)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "postgres" }},
		{"sqlite without path", func(c *Config) { c.Storage.Driver = DriverSqlite }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
		{"negative queue", func(c *Config) { c.Telegram.Queue = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestRequireTelegramToken(t *testing.T) {
	cfg := Default()
	assert.ErrorIs(t, cfg.RequireTelegramToken(), ErrNoToken{})
	cfg.Telegram.Token = "x"
	assert.NoError(t, cfg.RequireTelegramToken())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	clearEnv(t)
	_, err := Load(writeConfig(t, "storage: [unterminated"))
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
