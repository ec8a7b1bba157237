package ctxkeys

import (
	"context"

	"github.com/pathway-edu/website/internal/config"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	URLPathKey   contextKey = "url_path"
	ReturnToKey  contextKey = "return_to"
	ConfigKey    contextKey = "config"
	CSRFTokenKey contextKey = "csrf_token"
	ConsentKey   contextKey = "cookie_consent"
)

// Cookie consent choices.
const (
	ConsentAccepted = "accepted"
	ConsentDeclined = "declined"
)

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

// ReturnTo is the path and query of the current page.
func ReturnTo(ctx context.Context) string {
	uri, _ := ctx.Value(ReturnToKey).(string)
	return uri
}

func WithReturnTo(ctx context.Context, uri string) context.Context {
	return context.WithValue(ctx, ReturnToKey, uri)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}

// Consent returns the visitor's cookie choice, or "" if they have not chosen.
func Consent(ctx context.Context) string {
	consent, _ := ctx.Value(ConsentKey).(string)
	return consent
}

func WithConsent(ctx context.Context, consent string) context.Context {
	return context.WithValue(ctx, ConsentKey, consent)
}
