package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/tmp/other.ini")
	t.Setenv("USER_AGENT", "custom-agent/2.0")
	t.Setenv("CHECK_TIMEOUT", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.ini", cfg.ConfigPath)
	assert.Equal(t, "custom-agent/2.0", cfg.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.CheckTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("CHECK_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
}
