package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pathway-edu/website/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUpstream(t *testing.T, routes map[string]string) *upstream.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return upstream.New(srv.URL, time.Second)
}

func TestBlogsNewestFirst(t *testing.T) {
	svc := NewContentService(newUpstream(t, map[string]string{
		"GET /api/blogs": `[
			{"_id":"old","title":"Old","createdAt":"2023-01-01T00:00:00Z"},
			{"_id":"new","title":"New","createdAt":"2024-06-01T00:00:00Z"},
			{"_id":"mid","title":"Mid","createdAt":"2023-09-01T00:00:00Z"}
		]`,
	}))

	blogs, err := svc.Blogs(context.Background())
	require.NoError(t, err)
	require.Len(t, blogs, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{blogs[0].ID, blogs[1].ID, blogs[2].ID})

	latest, err := svc.LatestBlogs(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, latest, 2)
}

func TestBlogRequiresTitleAndContent(t *testing.T) {
	svc := NewContentService(newUpstream(t, map[string]string{
		"GET /api/blogs/ok":       `{"_id":"ok","title":"Visa tips","content":[{"id":"1","type":"paragraph","content":"Apply early."}]}`,
		"GET /api/blogs/untitled": `{"_id":"untitled","content":[{"id":"1","type":"paragraph","content":"x"}]}`,
		"GET /api/blogs/empty":    `{"_id":"empty","title":"Empty","content":[]}`,
		"GET /api/blogs/null":     `null`,
	}))

	blog, err := svc.Blog(context.Background(), "ok")
	require.NoError(t, err)
	assert.Equal(t, "Visa tips", blog.Title)

	for _, id := range []string{"untitled", "empty", "null"} {
		_, err := svc.Blog(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidBlog, id)
	}

	_, err = svc.Blog(context.Background(), "missing")
	assert.ErrorIs(t, err, upstream.ErrUpstreamStatus)
}

func TestProgrammeFillsMissingID(t *testing.T) {
	svc := NewContentService(newUpstream(t, map[string]string{
		"GET /api/programmes/p1": `{"title":"Foundation Year","description":"Bridge"}`,
		"GET /api/programmes":    `[{"_id":"p1","title":"Foundation Year"}]`,
	}))

	p, err := svc.Programme(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.False(t, p.HasForm())

	list, err := svc.Programmes(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestEligibilityForm(t *testing.T) {
	svc := NewContentService(newUpstream(t, map[string]string{
		"GET /api/eligibility-form": `{"form":{"sections":[{"id":"s1","title":"About you","fields":[{"id":"name","type":"text","label":"Full Name","required":true}]}]}}`,
	}))

	f, err := svc.EligibilityForm(context.Background())
	require.NoError(t, err)
	require.Len(t, f.Sections, 1)
	assert.Equal(t, "Full Name", f.Sections[0].Fields[0].Label)
}
