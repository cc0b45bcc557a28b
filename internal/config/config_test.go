package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianapp/meridian/internal/errors"
)

// TestDefaultConfig verifies the built-in defaults validate cleanly.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, Validate(cfg))
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultCategories, cfg.Categories)
}

// TestValidate covers the rejection rules.
func TestValidate(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		assert.ErrorIs(t, Validate(nil), errors.ErrConfigNil)
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "loud"
		assert.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidLog)
	})

	t.Run("log level is case insensitive", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "DEBUG"
		assert.NoError(t, Validate(cfg))
	})

	t.Run("non positive rotation size", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.MaxSizeMB = 0
		assert.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidLog)
	})

	t.Run("blank category", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Categories = append(cfg.Categories, "  ")
		assert.ErrorIs(t, Validate(cfg), errors.ErrConfigInvalidData)
	})
}

// TestLoad_EnvOverride verifies environment variables take precedence over
// defaults.
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MERIDIAN_LOGGING_LEVEL", "debug")
	t.Setenv("MERIDIAN_HOME", t.TempDir())

	cfg, err := Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

// TestLoad_InvalidEnvRejected verifies a bad environment value fails
// validation rather than being silently accepted.
func TestLoad_InvalidEnvRejected(t *testing.T) {
	t.Setenv("MERIDIAN_LOGGING_LEVEL", "shout")

	_, err := Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigInvalidLog)
}

// TestConfig_Paths verifies directory helpers respect the home override.
func TestConfig_Paths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Home = "/tmp/meridian-test"

	dataDir, err := cfg.DataDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/meridian-test/data", dataDir)

	logsDir, err := cfg.LogsDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/meridian-test/logs", logsDir)
}
