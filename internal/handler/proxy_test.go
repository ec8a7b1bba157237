package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pathway-edu/website/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyMux(baseURL string) *http.ServeMux {
	proxy := NewProxyHandler(upstream.New(baseURL, time.Second))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/proxy-blogs", proxy.Blogs)
	mux.HandleFunc("GET /api/proxy-blogs/{id}", proxy.Blog)
	mux.HandleFunc("GET /api/proxy-programme", proxy.Programmes)
	mux.HandleFunc("GET /api/proxy-programme/{id}", proxy.Programme)
	mux.HandleFunc("POST /api/proxy-application", proxy.Application)
	mux.HandleFunc("POST /api/proxy-eligibility-application", proxy.EligibilityApplication)
	mux.HandleFunc("GET /api/proxy-eligibility-form", proxy.EligibilityForm)
	return mux
}

type upstreamCall struct {
	method string
	path   string
	body   string
}

func TestProxyRelaysUpstream(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		target       string
		body         string
		upstreamPath string
		status       int
	}{
		{name: "blogs", method: http.MethodGet, target: "/api/proxy-blogs", upstreamPath: "/api/blogs", status: http.StatusOK},
		{name: "blog", method: http.MethodGet, target: "/api/proxy-blogs/b1", upstreamPath: "/api/blogs/b1", status: http.StatusOK},
		{name: "programmes", method: http.MethodGet, target: "/api/proxy-programme", upstreamPath: "/api/programmes", status: http.StatusOK},
		{name: "programme", method: http.MethodGet, target: "/api/proxy-programme/p9", upstreamPath: "/api/programmes/p9", status: http.StatusOK},
		{name: "eligibility form", method: http.MethodGet, target: "/api/proxy-eligibility-form", upstreamPath: "/api/eligibility-form", status: http.StatusOK},
		{name: "application", method: http.MethodPost, target: "/api/proxy-application", body: `{"programmeId":"p9","formData":{"Name":"Ada"}}`, upstreamPath: "/api/applications", status: http.StatusCreated},
		{name: "eligibility application", method: http.MethodPost, target: "/api/proxy-eligibility-application", body: `{"applicantName":"Ada"}`, upstreamPath: "/api/eligibility-applications", status: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := make(chan upstreamCall, 4)
			reply := `{"relayed":"` + tt.name + `"}`

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)
				calls <- upstreamCall{method: r.Method, path: r.URL.Path, body: string(body)}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(reply))
			}))
			defer srv.Close()

			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newProxyMux(srv.URL).ServeHTTP(rec, req)

			require.Len(t, calls, 1)
			call := <-calls
			assert.Equal(t, tt.method, call.method)
			assert.Equal(t, tt.upstreamPath, call.path)
			assert.Equal(t, tt.body, call.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, reply, rec.Body.String())
		})
	}
}

func TestProxyUpstreamUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	mux := newProxyMux(baseURL)
	targets := []struct {
		method string
		target string
		body   string
	}{
		{http.MethodGet, "/api/proxy-blogs", ""},
		{http.MethodGet, "/api/proxy-blogs/b1", ""},
		{http.MethodGet, "/api/proxy-programme", ""},
		{http.MethodGet, "/api/proxy-programme/p1", ""},
		{http.MethodGet, "/api/proxy-eligibility-form", ""},
		{http.MethodPost, "/api/proxy-application", `{}`},
		{http.MethodPost, "/api/proxy-eligibility-application", `{}`},
	}

	for _, tt := range targets {
		t.Run(tt.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
		})
	}
}

func TestProxyUpstreamErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Blog not found"}`))
	}))
	defer srv.Close()

	rec := httptest.NewRecorder()
	newProxyMux(srv.URL).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proxy-blogs/missing", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestProxyRejectsInvalidJSONBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/proxy-application", strings.NewReader("name=Ada"))
	newProxyMux(srv.URL).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int32(0), calls.Load())
}
