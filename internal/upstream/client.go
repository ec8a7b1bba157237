package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pathway-edu/website/internal/cache"
	"github.com/pathway-edu/website/internal/metrics"
)

// Fixed upstream endpoints.
const (
	PathBlogs                   = "/api/blogs"
	PathProgrammes              = "/api/programmes"
	PathApplications            = "/api/applications"
	PathEligibilityApplications = "/api/eligibility-applications"
	PathEligibilityForm         = "/api/eligibility-form"
)

const maxBodyBytes = 10 << 20

var (
	ErrUpstreamStatus = errors.New("upstream returned non-2xx status")
	ErrInvalidJSON    = errors.New("upstream returned invalid JSON")
)

// StatusError is returned when the upstream answers outside 2xx.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, strings.TrimSpace(string(e.Body)))
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUpstreamStatus
}

// Response is a successful upstream reply, relayed unchanged.
type Response struct {
	Status int
	Body   []byte
}

// Client issues exactly one outbound call per method call against the
// upstream content API. GET responses may be served from a cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
	metrics    *metrics.Metrics
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCache caches successful GET responses for ttl. A zero ttl disables caching.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		if ttl > 0 {
			c.cache = store
			c.cacheTTL = ttl
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BlogPath returns the upstream path for one blog.
func BlogPath(id string) string {
	return PathBlogs + "/" + url.PathEscape(id)
}

// ProgrammePath returns the upstream path for one programme.
func ProgrammePath(id string) string {
	return PathProgrammes + "/" + url.PathEscape(id)
}

func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	if c.cache == nil {
		return c.do(ctx, http.MethodGet, path, nil)
	}

	if cached, ok := c.cache.Get(ctx, path); ok {
		if c.metrics != nil {
			c.metrics.CacheHit()
		}
		return cached.(*Response), nil
	}
	if c.metrics != nil {
		c.metrics.CacheMiss()
	}

	// The fetch is shared by every request waiting on path, so it must
	// outlive the one that started it. The client timeout still bounds it.
	shared := context.WithoutCancel(ctx)
	value, err := c.cache.GetOrSet(ctx, path, c.cacheTTL, func() (any, error) {
		return c.do(shared, http.MethodGet, path, nil)
	})
	if err != nil {
		return nil, err
	}
	return value.(*Response), nil
}

// PostJSON forwards body verbatim. body must already be valid JSON.
func (c *Client) PostJSON(ctx context.Context, path string, body []byte) (*Response, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("post %s: request body is not valid JSON", path)
	}
	return c.do(ctx, http.MethodPost, path, body)
}

// GetJSON fetches path and decodes the reply into out.
func (c *Client) GetJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	err = json.Unmarshal(resp.Body, out)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// PostValue encodes v as JSON and posts it to path.
func (c *Client) PostValue(ctx context.Context, path string, v any) (*Response, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, body)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	start := time.Now()
	resp, err := c.send(ctx, method, path, body)

	if c.metrics != nil {
		outcome := "ok"
		if errors.Is(err, ErrUpstreamStatus) {
			outcome = "status"
		} else if err != nil {
			outcome = "error"
		}
		c.metrics.ObserveUpstream(method, metricPath(path), outcome, time.Since(start))
	}

	if err != nil {
		slog.Error("upstream request failed",
			"method", method,
			"path", path,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return nil, err
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, method, path string, body []byte) (*Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = res.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{Status: res.StatusCode, Body: data}
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("%s %s: %w", method, path, ErrInvalidJSON)
	}

	return &Response{Status: res.StatusCode, Body: data}, nil
}

// metricPath collapses id segments so label cardinality stays bounded.
func metricPath(path string) string {
	for _, prefix := range []string{PathBlogs + "/", PathProgrammes + "/"} {
		if strings.HasPrefix(path, prefix) {
			return prefix + "{id}"
		}
	}
	return path
}
