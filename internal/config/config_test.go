package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithSecretFromEnv(t *testing.T) {
	t.Setenv("VERIFIND_AUTH_SECRET", "dev-secret")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 12*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, 30*time.Second, cfg.DemoAlertInterval)
	assert.EqualValues(t, 1<<20, cfg.MaxBodyBytes)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	assert.False(t, cfg.IsProduction())
}

func TestLoadReadsFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("HTTP_ADDR: \":9000\"\nLOG_LEVEL: debug\nSESSION_IDLE_TTL: 5m\nCORS_ORIGINS: \"https://a.example, https://b.example\"\nAUTH_SECRET: from-file\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("VERIFIND_LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, "from-file", cfg.AuthSecret)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("VERIFIND_AUTH_SECRET", "")
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SECRET is required")
}

func TestReadSkipsValidation(t *testing.T) {
	t.Setenv("VERIFIND_AUTH_SECRET", "")
	t.Setenv("VERIFIND_PG_DSN", "postgres://localhost/verifind")
	cfg, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/verifind", cfg.PGDSN)
}

func TestValidateProductionSecretLength(t *testing.T) {
	t.Setenv("VERIFIND_ENV", "production")
	t.Setenv("VERIFIND_AUTH_SECRET", "short")
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 bytes")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("HTTP_ADDR: [unterminated\n"), 0o600))
	t.Setenv("VERIFIND_AUTH_SECRET", "x")
	_, err := Load(dir)
	assert.Error(t, err)
}
