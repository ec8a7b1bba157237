package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "development")
	t.Setenv("APP_URL", "http://localhost:8090")
	t.Setenv("BASE_API_URL", "https://api.example.com/")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	require.NotNil(t, cfg)
	assert.Equal(t, "https://api.example.com", cfg.BaseAPIURL)
	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, time.Duration(0), cfg.UpstreamCacheTTL)
	assert.Equal(t, 10, cfg.ProxyRateLimit)
	assert.Nil(t, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("UPSTREAM_CACHE_TTL", "1m")
	t.Setenv("PROXY_RATE_LIMIT", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("S3_BUCKET", "uploads")
	t.Setenv("S3_REGION", "eu-west-1")

	cfg := Load()

	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, time.Minute, cfg.UpstreamCacheTTL)
	assert.Equal(t, 3, cfg.ProxyRateLimit)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.StorageEnabled())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("BAD_DURATION", "soon")
	t.Setenv("BAD_INT", "-4")
	t.Setenv("BAD_BOOL", "maybe")

	assert.Equal(t, time.Second, envDuration("BAD_DURATION", time.Second))
	assert.Equal(t, 7, envInt("BAD_INT", 7))
	assert.True(t, envBool("BAD_BOOL", true))
}

func TestSanitizedDropsSecrets(t *testing.T) {
	cfg := &Config{
		AppName:      "Pathway",
		ResendAPIKey: "re_secret",
		S3SecretKey:  "s3_secret",
		BaseAPIURL:   "https://internal.example",
	}

	safe := cfg.Sanitized()

	assert.Equal(t, "Pathway", safe.AppName)
	assert.Empty(t, safe.ResendAPIKey)
	assert.Empty(t, safe.S3SecretKey)
	assert.Empty(t, safe.BaseAPIURL)
}
