package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pathway-edu/website/internal/app"
	"github.com/pathway-edu/website/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/blogs", "/api/programmes":
			_, _ = w.Write([]byte(`[]`))
		case "/api/eligibility-form":
			_, _ = w.Write([]byte(`{"form":{"sections":[{"id":"s1","title":"About You","fields":[{"id":"name","type":"text","label":"Name","required":true}]}]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(api.Close)

	cfg := &config.Config{
		AppName:         "Pathway",
		AppEnv:          "development",
		AppURL:          "http://localhost:8090",
		ContentPath:     "../../content",
		BaseAPIURL:      api.URL,
		UpstreamTimeout: time.Second,
		ProxyRateLimit:  10,
		ProxyRateWindow: time.Minute,
	}

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	return SetupRoutes(a)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestPagesAndHeaders(t *testing.T) {
	h := newTestServer(t)

	for _, path := range []string{"/", "/about", "/services", "/coverage", "/coverage/canada", "/blogs", "/programmes", "/apply-for-eligibility", "/privacy-policy", "/terms-of-use", "/cookie-policy"} {
		rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"), path)
		assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "nonce-", path)
	}

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/assets/images/favicon.svg", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFormPostsNeedCSRFToken(t *testing.T) {
	h := newTestServer(t)

	form := url.Values{"choice": {"accepted"}, "redirect": {"/about"}}
	req := httptest.NewRequest(http.MethodPost, "/cookie-consent", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := serve(h, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// A page view issues the token cookie.
	rec = serve(h, httptest.NewRequest(http.MethodGet, "/about", nil))
	var token *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "csrf_token" {
			token = c
		}
	}
	require.NotNil(t, token)
	assert.Contains(t, rec.Body.String(), `name="csrf_token" value="`+token.Value+`"`)

	form.Set("csrf_token", token.Value)
	req = httptest.NewRequest(http.MethodPost, "/cookie-consent", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(token)
	rec = serve(h, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))
}

func TestWizardPostBodyIsCapped(t *testing.T) {
	h := newTestServer(t)

	body := strings.NewReader(strings.Repeat("x", maxFormBodyBytes+1))
	req := httptest.NewRequest(http.MethodPost, "/apply-for-eligibility", body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	rec := serve(h, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestProxyRoutes(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/proxy-eligibility-form", nil)
	req.Header.Set("Origin", "http://localhost:8090")
	rec := serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:8090", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Body.String(), "About You")

	req = httptest.NewRequest(http.MethodOptions, "/api/proxy-application", nil)
	req.Header.Set("Origin", "http://localhost:8090")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)

	// Proxy posts are JSON and skip the CSRF check.
	req = httptest.NewRequest(http.MethodPost, "/api/proxy-application", strings.NewReader(`{"programmeId":"p1"}`))
	req.Header.Set("Content-Type", "application/json")
	rec = serve(h, req)
	assert.NotEqual(t, http.StatusForbidden, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestServer(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `route="GET /healthz"`)
}
