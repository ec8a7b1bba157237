package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/pathway-edu/website/internal/ctxkeys"
)

// SecurityHeaders sets the CSP and the usual hardening headers. Analytics
// hosts are only allowed when they are configured.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", contentSecurityPolicy(r))
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")

		cfg := ctxkeys.Config(r.Context())
		if cfg != nil && cfg.IsProduction() {
			h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

func contentSecurityPolicy(r *http.Request) string {
	scriptSrc := []string{"'self'"}
	connectSrc := []string{"'self'"}
	imgSrc := []string{"'self'", "data:", "https:"}

	if nonce := GetNonce(r.Context()); nonce != "" {
		scriptSrc = append(scriptSrc, fmt.Sprintf("'nonce-%s'", nonce))
	}

	cfg := ctxkeys.Config(r.Context())
	if cfg != nil {
		if cfg.GoogleAnalyticsID != "" {
			scriptSrc = append(scriptSrc, "https://www.googletagmanager.com")
			connectSrc = append(connectSrc, "https://www.google-analytics.com")
		}
		if cfg.PlausibleDomain != "" {
			host := "https://" + cfg.PlausibleHost
			scriptSrc = append(scriptSrc, host)
			connectSrc = append(connectSrc, host)
		}
		if cfg.S3Endpoint != "" {
			imgSrc = append(imgSrc, cfg.S3Endpoint)
		}
	}

	directives := []string{
		"default-src 'self'",
		"script-src " + strings.Join(scriptSrc, " "),
		"style-src 'self' 'unsafe-inline'",
		"img-src " + strings.Join(imgSrc, " "),
		"connect-src " + strings.Join(connectSrc, " "),
		"font-src 'self'",
		"frame-ancestors 'none'",
		"base-uri 'self'",
		"form-action 'self'",
	}
	return strings.Join(directives, "; ")
}
