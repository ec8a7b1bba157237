package upstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pathway-edu/website/internal/cache"
	"github.com/pathway-edu/website/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRelaysBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/blogs", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"_id":"b1"}]`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", time.Second)
	resp, err := c.Get(context.Background(), PathBlogs)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.JSONEq(t, `[{"_id":"b1"}]`, string(resp.Body))
}

func TestGetNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"missing"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Get(context.Background(), BlogPath("nope"))
	require.ErrorIs(t, err, ErrUpstreamStatus)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Status)
}

func TestGetInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.Get(context.Background(), PathProgrammes)
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestGetUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second)
	_, err := c.Get(context.Background(), PathProgrammes)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUpstreamStatus)
}

func TestPostJSONForwardsBody(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/applications", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	resp, err := c.PostJSON(context.Background(), PathApplications, []byte(`{"programmeId":"p1"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, `{"programmeId":"p1"}`, string(received))
}

func TestPostJSONRejectsInvalidBody(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.PostJSON(context.Background(), PathApplications, []byte(`{not json`))
	assert.Error(t, err)
	assert.Equal(t, int32(0), calls.Load())
}

func TestGetJSONDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":"Study in Canada"}`))
	}))
	defer srv.Close()

	var out struct {
		Title string `json:"title"`
	}
	c := New(srv.URL, time.Second)
	require.NoError(t, c.GetJSON(context.Background(), BlogPath("b1"), &out))
	assert.Equal(t, "Study in Canada", out.Title)
}

func TestGetServedFromCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store, err := cache.New(nil)
	require.NoError(t, err)
	defer store.Close()

	m := metrics.New()
	c := New(srv.URL, time.Second, WithCache(store, time.Minute), WithMetrics(m))

	for range 3 {
		_, err := c.Get(context.Background(), PathProgrammes)
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), calls.Load())
	series, err := testutil.GatherAndCount(m.Registry(), "website_upstream_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
}

func TestFailedGetIsNotCached(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store, err := cache.New(nil)
	require.NoError(t, err)
	defer store.Close()

	c := New(srv.URL, time.Second, WithCache(store, time.Minute))

	_, err = c.Get(context.Background(), PathBlogs)
	require.Error(t, err)

	_, err = c.Get(context.Background(), PathBlogs)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCachedGetSurvivesLeaderCancel(t *testing.T) {
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case arrived <- struct{}{}:
		default:
		}
		<-release
		_, _ = w.Write([]byte(`[{"id":"b1"}]`))
	}))
	defer srv.Close()
	var once sync.Once
	releaseAll := func() { once.Do(func() { close(release) }) }
	defer releaseAll()

	store, err := cache.New(nil)
	require.NoError(t, err)
	defer store.Close()

	c := New(srv.URL, 5*time.Second, WithCache(store, time.Minute))

	leaderCtx, cancelLeader := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.Get(leaderCtx, PathBlogs)
		leaderErr <- err
	}()
	<-arrived

	type result struct {
		resp *Response
		err  error
	}
	follower := make(chan result, 1)
	go func() {
		resp, err := c.Get(context.Background(), PathBlogs)
		follower <- result{resp, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelLeader()
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	releaseAll()
	res := <-follower
	require.NoError(t, res.err)
	assert.Equal(t, http.StatusOK, res.resp.Status)
	assert.JSONEq(t, `[{"id":"b1"}]`, string(res.resp.Body))
}

func TestBlogPathEscapesID(t *testing.T) {
	assert.Equal(t, "/api/blogs/a%2Fb", BlogPath("a/b"))
	assert.Equal(t, "/api/programmes/p%201", ProgrammePath("p 1"))
}

func TestMetricPathCollapsesIDs(t *testing.T) {
	assert.Equal(t, "/api/blogs/{id}", metricPath(BlogPath("b1")))
	assert.Equal(t, "/api/programmes/{id}", metricPath(ProgrammePath("p1")))
	assert.Equal(t, PathEligibilityForm, metricPath(PathEligibilityForm))
}
