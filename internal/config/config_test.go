package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `{"jwt": {"secret": "s3cret"}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.JWT.AccessExpiryMins)
	assert.Equal(t, 168, cfg.JWT.RefreshExpiryHours)
	assert.Equal(t, 30, cfg.Throttle.WindowDays)
	assert.Equal(t, 3, *cfg.Throttle.UnregisteredLimit)
	assert.Equal(t, 10, *cfg.Throttle.FreeLimit)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	path := writeConfig(t, `{"server": {"port": "9090"}}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt secret")
}

func TestLoadSecretFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	path := writeConfig(t, `{}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoadPreservesExplicitZeroLimit(t *testing.T) {
	path := writeConfig(t, `{
		"jwt": {"secret": "s3cret"},
		"throttle": {"unregistered_limit": 0, "free_limit": 0}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0, *cfg.Throttle.UnregisteredLimit)
	assert.Equal(t, 0, *cfg.Throttle.FreeLimit)
}
