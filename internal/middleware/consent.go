package middleware

import (
	"net/http"

	"github.com/pathway-edu/website/internal/ctxkeys"
)

const ConsentCookieName = "cookie_consent"

// CookieConsent copies the visitor's cookie choice into the context. Unknown
// values are treated as no choice so the banner is shown again.
func CookieConsent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(ConsentCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		switch cookie.Value {
		case ctxkeys.ConsentAccepted, ctxkeys.ConsentDeclined:
			ctx := ctxkeys.WithConsent(r.Context(), cookie.Value)
			next.ServeHTTP(w, r.WithContext(ctx))
		default:
			next.ServeHTTP(w, r)
		}
	})
}
