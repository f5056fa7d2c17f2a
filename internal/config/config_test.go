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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "openai:\n  model: gpt-4o-mini\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, DriverNone, cfg.Store.Driver)
	assert.Equal(t, 1000, cfg.OpenAI.MaxTokens)
	assert.Equal(t, 60, cfg.OpenAI.TimeoutSeconds)
	assert.Equal(t, 10, cfg.RateLimit.Capacity)
}

func TestLoadKeepsExplicitOpenAILimits(t *testing.T) {
	cfg, err := Load(writeConfig(t, "openai:\n  maxTokens: 2000\n  timeoutSeconds: 30\n"))
	require.NoError(t, err)
	assert.Equal(t, 2000, cfg.OpenAI.MaxTokens)
	assert.Equal(t, 30, cfg.OpenAI.TimeoutSeconds)
}

func TestLoadEnvOverridesAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg, err := Load(writeConfig(t, "openai:\n  apiKey: sk-from-file\n"))
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.OpenAI.APIKey)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	_, err := Load(writeConfig(t, "store:\n  driver: redis\n"))
	assert.Error(t, err)
}

func TestDSNHelpers(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
store:
  driver: mysql
  database:
    host: db.local
    port: 3306
    user: radar
    password: secret
    name: profiles
`))
	require.NoError(t, err)

	assert.Equal(t,
		"radar:secret@tcp(db.local:3306)/profiles?parseTime=true&charset=utf8mb4&loc=UTC",
		cfg.MySQLDSN())
	assert.Equal(t,
		"host=db.local port=3306 user=radar password=secret dbname=profiles sslmode=disable",
		cfg.PostgresDSN())
}
