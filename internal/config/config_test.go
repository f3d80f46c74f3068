package config_test

import (
	"os"
	"path/filepath"
	"seoguard/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, ":3000", cfg.HTTP.Addr)
	require.Equal(t, "http://localhost:8000/api/v1", cfg.Backend.URL)
	require.Equal(t, 10*time.Second, cfg.Backend.AnalyzeTimeout)
	require.Equal(t, "price_starter", cfg.Stripe.Prices.Starter)
	require.Equal(t, "price_pro", cfg.Stripe.Prices.Pro)
	require.Equal(t, "price_agency", cfg.Stripe.Prices.Agency)
	require.Equal(t, time.Hour, cfg.Auth.ResetTokenTTL)
	require.Equal(t, "memory", cfg.Storage.Driver)
	require.Empty(t, cfg.CORS.AllowedOrigins)
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := writeFile(t, "config.yaml", `
environment: production
backend:
  url: http://api.internal:9000/api/v1
  analyzeTimeout: 3s
stripe:
  prices:
    pro: price_yaml_pro
cors:
  allowedOrigins: ["http://localhost:3000"]
`)
	t.Setenv("STRIPE_PRICE_PRO", "price_env_pro")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "http://api.internal:9000/api/v1", cfg.Backend.URL)
	require.Equal(t, 3*time.Second, cfg.Backend.AnalyzeTimeout)
	require.Equal(t, "price_env_pro", cfg.Stripe.Prices.Pro)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_DotEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "SEOGUARD_TEST_ONLY=1\nAPP_URL=https://dash.example.com\n")

	orig := config.DotEnvFiles
	config.DotEnvFiles = []string{filepath.Join(t.TempDir(), "missing.env"), envFile}
	t.Cleanup(func() {
		config.DotEnvFiles = orig
		_ = os.Unsetenv("APP_URL")
		_ = os.Unsetenv("SEOGUARD_TEST_ONLY")
	})

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, "https://dash.example.com", cfg.App.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
