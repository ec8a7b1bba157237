package middleware

import (
	"net/http"
	"path"

	"github.com/pathway-edu/website/internal/ctxkeys"
)

// WithURLPath stores the cleaned request path, used for active nav links, and
// the full request URI, used to return visitors to the same page after a form
// post such as the cookie banner.
func WithURLPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxkeys.WithURLPath(r.Context(), path.Clean("/"+r.URL.Path))
		ctx = ctxkeys.WithReturnTo(ctx, r.URL.RequestURI())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
