package middleware

import (
	"net/http"
	"time"

	"github.com/pathway-edu/website/internal/metrics"
)

// Metrics records request counts and latency per mux pattern. It must be the
// innermost middleware so it sees the Pattern the mux sets on the request.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, rw.statusCode, time.Since(start))
		})
	}
}
