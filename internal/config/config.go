package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName       string
	AppEnv        string
	AppURL        string
	Port          string
	AppTagline    string
	SupportEmail  string
	ContentPath   string
	ContentReload bool // re-read legal markdown on every request

	// Upstream content API
	BaseAPIURL       string
	UpstreamTimeout  time.Duration
	UpstreamCacheTTL time.Duration // 0 disables the GET cache

	// Proxy endpoints
	ProxyRateLimit     int
	ProxyRateWindow    time.Duration
	CORSAllowedOrigins []string

	// Email
	EmailFrom              string
	ResendAPIKey           string
	ResendAudienceID       string
	ApplicationNotifyEmail string

	// Analytics (all optional, only rendered after cookie consent)
	GoogleAnalyticsID string
	PlausibleDomain   string
	PlausibleHost     string

	// Observability (optional)
	SentryDSN string

	// Storage for file fields (optional: file uploads are disabled without a bucket)
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3Endpoint      string
	S3PresignExpiry time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName:       envString("APP_NAME", "Pathway Education"),
		AppEnv:        envRequired("APP_ENV"), // Required: 'development' or 'production'
		AppURL:        envRequired("APP_URL"),
		Port:          envString("PORT", "8090"),
		AppTagline:    envString("APP_TAGLINE", "Your journey to studying abroad starts here"),
		SupportEmail:  envString("SUPPORT_EMAIL", "hello@example.com"),
		ContentPath:   envString("CONTENT_PATH", "content"),
		ContentReload: envBool("CONTENT_RELOAD", false),

		// Upstream
		BaseAPIURL:       strings.TrimSuffix(envRequired("BASE_API_URL"), "/"),
		UpstreamTimeout:  envDuration("UPSTREAM_TIMEOUT", 15*time.Second),
		UpstreamCacheTTL: envDuration("UPSTREAM_CACHE_TTL", 0),

		// Proxy
		ProxyRateLimit:     envInt("PROXY_RATE_LIMIT", 10),
		ProxyRateWindow:    envDuration("PROXY_RATE_WINDOW", time.Minute),
		CORSAllowedOrigins: envList("CORS_ALLOWED_ORIGINS", nil),

		// Email
		EmailFrom:              envString("EMAIL_FROM", "noreply@example.com"),
		ResendAPIKey:           envString("RESEND_API_KEY", ""),
		ResendAudienceID:       envString("RESEND_AUDIENCE_ID", ""),
		ApplicationNotifyEmail: envString("APPLICATION_NOTIFY_EMAIL", ""),

		// Analytics
		GoogleAnalyticsID: envString("GOOGLE_ANALYTICS_ID", ""),
		PlausibleDomain:   envString("PLAUSIBLE_DOMAIN", ""),
		PlausibleHost:     envString("PLAUSIBLE_HOST", "plausible.io"),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),

		// Storage
		S3Region:        envString("S3_REGION", ""),
		S3Bucket:        envString("S3_BUCKET", ""),
		S3AccessKey:     envString("S3_ACCESS_KEY", ""),
		S3SecretKey:     envString("S3_SECRET_KEY", ""),
		S3Endpoint:      envString("S3_ENDPOINT", ""),
		S3PresignExpiry: envDuration("S3_PRESIGN_EXPIRY", 168*time.Hour), // 7 days
	}

	if cfg.IsProduction() {
		validateProduction(cfg)
	}

	return cfg
}

// validateProduction ensures required services are configured for production deployments.
// Development logs newsletter sign-ups and notices instead of sending them.
func validateProduction(cfg *Config) {
	if cfg.ResendAPIKey == "" {
		slog.Error("production deployment requires RESEND_API_KEY",
			"hint", "set APP_ENV=development for local testing with email log mode")
		os.Exit(1)
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

// envList splits a comma separated value, dropping blanks.
func envList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func envRequired(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	slog.Error("config required env var missing", "key", key)
	os.Exit(1)
	return ""
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

// Sanitized returns a copy of the config with only public/safe fields.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:      c.AppName,
		AppEnv:       c.AppEnv,
		AppURL:       c.AppURL,
		Port:         c.Port,
		AppTagline:   c.AppTagline,
		SupportEmail: c.SupportEmail,

		GoogleAnalyticsID: c.GoogleAnalyticsID,
		PlausibleDomain:   c.PlausibleDomain,
		PlausibleHost:     c.PlausibleHost,

		S3Endpoint: c.S3Endpoint, // Needed for CSP policies
	}
}
