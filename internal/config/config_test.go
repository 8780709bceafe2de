package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairakit/naira/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NAIRA_LOG_LEVEL", "")
	t.Setenv("NAIRA_LOG_FORMAT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("NAIRA_LOG_LEVEL", "debug")
	t.Setenv("NAIRA_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}
