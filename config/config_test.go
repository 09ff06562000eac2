package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	viper.Reset()
	configContent := `
server:
  port: 9000
log:
  level: debug
cache:
  enabled: false
rate_limit:
  enabled: true
  requests_per_minute: 10
embeddings:
  model: text-embedding-3-large
  dimensions: 3072
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	// values from the file
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "text-embedding-3-large", cfg.Embeddings.Model)
	assert.Equal(t, 3072, cfg.Embeddings.Dimensions)

	// defaults fill the rest
	assert.Equal(t, "/api", cfg.Server.APIPrefix)
	assert.True(t, cfg.Auth.Required)
	assert.Equal(t, "localhost", cfg.Cache.Host)
	assert.Equal(t, 6379, cfg.Cache.Port)
	assert.Equal(t, 3600, cfg.Cache.TTLSeconds)
	assert.Equal(t, "openai", cfg.Embeddings.Service)
	assert.False(t, cfg.Analytics.Enabled)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	viper.Reset()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Cache.Enabled)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, "text-embedding-3-small", cfg.Embeddings.Model)
}

func TestLoadConfig_SecretsFromEnv(t *testing.T) {
	viper.Reset()

	t.Setenv("EMBEDVIZ_AUTH_SECRET", "env-secret")
	t.Setenv("EMBEDVIZ_OPENAI_API_KEY", "env-openai-key")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.Secret)
	assert.Equal(t, "env-openai-key", cfg.Embeddings.OpenAIAPIKey)
}
