package middleware

import (
	"net/http"

	"github.com/pathway-edu/website/internal/config"
	"github.com/pathway-edu/website/internal/ctxkeys"
)

// Config puts the public part of the configuration in the request context,
// where pages read the site name, analytics ids and the support address.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	public := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), public)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
