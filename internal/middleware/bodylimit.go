package middleware

import (
	"net/http"
)

// MaxFormBody caps page form posts at limit bytes, uploads included. It must
// run before CSRFProtection, which reads the form. The /api/ relays cap their
// own JSON bodies.
func MaxFormBody(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) || csrfExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if r.ContentLength > limit {
				http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
