package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/pathway-edu/website/internal/ctxkeys"
	"github.com/pathway-edu/website/internal/middleware"
)

const consentMaxAge = 365 * 24 * time.Hour

type ConsentHandler struct {
	secure bool
}

// NewConsentHandler sets Secure cookies when the site is served over HTTPS.
func NewConsentHandler(secure bool) *ConsentHandler {
	return &ConsentHandler{
		secure: secure,
	}
}

// Save stores the visitor's cookie choice and sends them back where they were.
func (h *ConsentHandler) Save(w http.ResponseWriter, r *http.Request) {
	choice := r.PostFormValue("choice")
	if choice != ctxkeys.ConsentAccepted && choice != ctxkeys.ConsentDeclined {
		http.Error(w, "Invalid consent choice", http.StatusBadRequest)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.ConsentCookieName,
		Value:    choice,
		Path:     "/",
		MaxAge:   int(consentMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, localRedirect(r.PostFormValue("redirect")), http.StatusSeeOther)
}

// localRedirect only allows same-site paths, so the form cannot be used as
// an open redirect. Browsers drop tabs and newlines and treat a backslash
// as a slash, so targets holding either are refused before parsing.
func localRedirect(target string) string {
	if strings.ContainsRune(target, '\\') || strings.IndexFunc(target, unicode.IsControl) >= 0 {
		return "/"
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return "/"
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	return target
}
