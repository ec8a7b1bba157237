package middleware

import (
	"net/http"
	"slices"
)

// Chain wraps h so the middlewares run in the order given: the first one
// sees the request first. The site's chain is
//
//	Chain(mux,
//	    Config(cfg),
//	    NonceMiddleware,
//	    SecurityHeaders,
//	    RequestLogging,
//	    CSRFProtection,
//	    CookieConsent,
//	    WithURLPath,
//	    Metrics(m), // must stay last to see the matched pattern
//	)
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for _, m := range slices.Backward(middlewares) {
		h = m(h)
	}
	return h
}
