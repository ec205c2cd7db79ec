package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "APP_PORT: \"8080\"\nDB_DRIVER: postgres\nCOOKIE_SECURE: false\nRATE_LIMIT_MAX: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("COOKIE_SECURE", "true")

	cfg := LoadConfig(path)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, "yemek_session", cfg.SessionCookieName)

	assert.Equal(t, "8080", GetConfig("APP_PORT"))
	assert.Equal(t, "true", GetConfig("COOKIE_SECURE"))
	assert.Equal(t, "5", GetConfig("RATE_LIMIT_MAX"))
	assert.Equal(t, "", GetConfig("UNKNOWN_KEY"))
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "./images", cfg.ImagesDir)
	assert.False(t, cfg.MetricsEnabled)
}

func TestLoadConfig_IgnoresMalformedBool(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "sometimes")

	cfg := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.False(t, cfg.MetricsEnabled)
}
