package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/pathway-edu/website/internal/upstream"
)

const maxProxyBodyBytes = 1 << 20

var errInvalidBody = errors.New("request body is not valid JSON")

// ProxyHandler relays /api/proxy-* calls to fixed upstream endpoints.
type ProxyHandler struct {
	client *upstream.Client
}

func NewProxyHandler(client *upstream.Client) *ProxyHandler {
	return &ProxyHandler{
		client: client,
	}
}

func (h *ProxyHandler) Blogs(w http.ResponseWriter, r *http.Request) {
	h.relayGet(w, r, upstream.PathBlogs)
}

func (h *ProxyHandler) Blog(w http.ResponseWriter, r *http.Request) {
	h.relayGet(w, r, upstream.BlogPath(r.PathValue("id")))
}

func (h *ProxyHandler) Programmes(w http.ResponseWriter, r *http.Request) {
	h.relayGet(w, r, upstream.PathProgrammes)
}

func (h *ProxyHandler) Programme(w http.ResponseWriter, r *http.Request) {
	h.relayGet(w, r, upstream.ProgrammePath(r.PathValue("id")))
}

func (h *ProxyHandler) EligibilityForm(w http.ResponseWriter, r *http.Request) {
	h.relayGet(w, r, upstream.PathEligibilityForm)
}

func (h *ProxyHandler) Application(w http.ResponseWriter, r *http.Request) {
	h.relayPost(w, r, upstream.PathApplications)
}

func (h *ProxyHandler) EligibilityApplication(w http.ResponseWriter, r *http.Request) {
	h.relayPost(w, r, upstream.PathEligibilityApplications)
}

func (h *ProxyHandler) relayGet(w http.ResponseWriter, r *http.Request, path string) {
	h.relay(w, r, path, func(ctx context.Context) (*upstream.Response, error) {
		return h.client.Get(ctx, path)
	})
}

func (h *ProxyHandler) relayPost(w http.ResponseWriter, r *http.Request, path string) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxProxyBodyBytes))
	if err == nil && !json.Valid(body) {
		err = errInvalidBody
	}
	if err != nil {
		slog.Error("proxy request rejected", "path", r.URL.Path, "error", err)
		replyInternalError(w)
		return
	}

	h.relay(w, r, path, func(ctx context.Context) (*upstream.Response, error) {
		return h.client.PostJSON(ctx, path, body)
	})
}

func (h *ProxyHandler) relay(w http.ResponseWriter, r *http.Request, path string, call func(context.Context) (*upstream.Response, error)) {
	resp, err := call(r.Context())
	if err != nil {
		slog.Error("proxy call failed",
			"method", r.Method,
			"path", r.URL.Path,
			"upstream_path", path,
			"error", err,
		)
		replyInternalError(w)
		return
	}

	replyRawJSON(w, resp.Status, resp.Body)
}
