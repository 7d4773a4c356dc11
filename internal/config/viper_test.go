package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Image.MaxWidth = 2000
	cfg.OCR.Language = "spa"
	cfg.CSV.Delimiter = ","
	cfg.Categorization.CategoriesFile = "categories.yaml"
	cfg.Categorization.MerchantsFile = "merchants.yaml"
	cfg.AI.Model = "gemini-1.5-flash"
	return cfg
}

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 2000, cfg.Image.MaxWidth)
	assert.Equal(t, "spa", cfg.OCR.Language)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.Equal(t, "categories.yaml", cfg.Categorization.CategoriesFile)
	assert.False(t, cfg.AI.Enabled)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("BOLETA_OCR_LANGUAGE", "spa+eng")
	t.Setenv("BOLETA_IMAGE_MAX_WIDTH", "1500")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "spa+eng", cfg.OCR.Language)
	assert.Equal(t, 1500, cfg.Image.MaxWidth)
}

func TestValidateConfig(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, validateConfig(defaultConfig()))
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Log.Level = "verbose"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("bad log format", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Log.Format = "xml"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("bad delimiter", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.CSV.Delimiter = ",,"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("max width too small", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Image.MaxWidth = 10
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("ai enabled without key", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.AI.Enabled = true
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("ai enabled with key", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.AI.Enabled = true
		cfg.AI.APIKey = "test-key"
		assert.NoError(t, validateConfig(cfg))
	})
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	cfg := defaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(cfg)

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("BOLETA_TEST_VAR", "value")

	assert.Equal(t, "value", GetEnv("BOLETA_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("BOLETA_TEST_MISSING", "fallback"))
}
