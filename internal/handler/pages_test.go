package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/pathway-edu/website/internal/middleware"
	"github.com/pathway-edu/website/internal/model"
	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/storage"
	"github.com/pathway-edu/website/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eligibilityFormJSON = `{"form":{
	"sections":[
		{"id":"personal","title":"Personal Details","fields":[
			{"id":"name","type":"text","label":"Full Name","required":true},
			{"id":"email","type":"email","label":"Email Address","required":true,
			 "validation":{"pattern":"^[^@\\s]+@[^@\\s]+$","customError":"Enter a valid email"}}
		]},
		{"id":"study","title":"Study Plans","fields":[
			{"id":"country","type":"select","label":"Preferred Country","options":["Canada","Germany"],"required":true},
			{"id":"intakes","type":"checkbox","label":"Intakes","options":["January","September"]}
		]}
	],
	"settings":{"submitButtonText":"Send"}
}}`

// fakeAPI is a stand-in content API that records posted applications.
type fakeAPI struct {
	mu          sync.Mutex
	posts       map[string][]json.RawMessage
	failPosts   bool
	programmeJS string
	blogJS      string
	// blogsJS and programmesJS answer the list endpoints; empty means [].
	blogsJS      string
	programmesJS string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	api := &fakeAPI{posts: make(map[string][]json.RawMessage)}
	srv := httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(srv.Close)
	return api, srv
}

func (a *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if r.Method == http.MethodPost {
		if a.failPosts {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		body, _ := io.ReadAll(r.Body)
		a.posts[r.URL.Path] = append(a.posts[r.URL.Path], body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
		return
	}

	switch {
	case r.URL.Path == upstream.PathEligibilityForm:
		_, _ = w.Write([]byte(eligibilityFormJSON))
	case strings.HasPrefix(r.URL.Path, upstream.PathProgrammes+"/") && a.programmeJS != "":
		_, _ = w.Write([]byte(a.programmeJS))
	case strings.HasPrefix(r.URL.Path, upstream.PathBlogs+"/") && a.blogJS != "":
		_, _ = w.Write([]byte(a.blogJS))
	case r.URL.Path == upstream.PathBlogs:
		_, _ = w.Write([]byte(listOrEmpty(a.blogsJS)))
	case r.URL.Path == upstream.PathProgrammes:
		_, _ = w.Write([]byte(listOrEmpty(a.programmesJS)))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func listOrEmpty(js string) string {
	if js == "" {
		return `[]`
	}
	return js
}

func (a *fakeAPI) posted(path string) []json.RawMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.posts[path]
}

// memoryStorage keeps uploads in memory.
type memoryStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (m *memoryStorage) Save(_ context.Context, key string, r io.Reader, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, key)
	return nil
}

func (m *memoryStorage) URL(_ context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func newPagesMux(baseURL string, store storage.Storage) *http.ServeMux {
	client := upstream.New(baseURL, time.Second)
	content := service.NewContentService(client)
	applications := service.NewApplicationService(client, nil)
	files := service.NewFileService(store)
	markets := service.NewMarketService(model.Markets)

	home := NewHomeHandler(content, markets)
	blog := NewBlogHandler(content)
	coverage := NewCoverageHandler(markets)
	programme := NewProgrammeHandler(content, applications, files)
	eligibility := NewEligibilityHandler(content, applications, files)
	consent := NewConsentHandler(false)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", home.HomePage)
	mux.HandleFunc("GET /blogs/{id}", blog.ShowBlog)
	mux.HandleFunc("GET /coverage/{country}", coverage.CountryPage)
	mux.HandleFunc("GET /programmes/{id}/apply", programme.ApplyPage)
	mux.HandleFunc("POST /programmes/{id}/apply", programme.Apply)
	mux.HandleFunc("GET /apply-for-eligibility", eligibility.EligibilityPage)
	mux.HandleFunc("POST /apply-for-eligibility", eligibility.Submit)
	mux.HandleFunc("POST /cookie-consent", consent.Save)
	mux.HandleFunc("GET /healthz", Health)
	return mux
}

func postForm(mux http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestEligibilityWizardFlow(t *testing.T) {
	api, srv := newFakeAPI(t)
	mux := newPagesMux(srv.URL, storage.Disabled{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apply-for-eligibility", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Personal Details")
	assert.Contains(t, rec.Body.String(), "Step 1 of 2")

	// Missing name blocks the first section.
	rec = postForm(mux, "/apply-for-eligibility", url.Values{
		"_section":    {"0"},
		"_action":     {"next"},
		"field.email": {"not-an-email"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Full Name is required")
	assert.Contains(t, rec.Body.String(), "Enter a valid email")
	assert.Empty(t, api.posted(upstream.PathEligibilityApplications))

	rec = postForm(mux, "/apply-for-eligibility", url.Values{
		"_section":    {"0"},
		"_action":     {"next"},
		"field.name":  {"Ada Lovelace"},
		"field.email": {"ada@example.com"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Study Plans")
	assert.Contains(t, rec.Body.String(), `name="field.name" value="Ada Lovelace"`)
	assert.Empty(t, api.posted(upstream.PathEligibilityApplications))

	// Previous goes back without validating.
	rec = postForm(mux, "/apply-for-eligibility", url.Values{
		"_section":   {"1"},
		"_action":    {"prev"},
		"field.name": {"Ada Lovelace"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Personal Details")

	rec = postForm(mux, "/apply-for-eligibility", url.Values{
		"_section":      {"1"},
		"_action":       {"next"},
		"field.name":    {"Ada Lovelace"},
		"field.email":   {"ada@example.com"},
		"field.country": {"Canada"},
		"field.intakes": {"January", "September"},
		"field.unknown": {"dropped"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Eligibility Application Submitted Successfully!")

	posts := api.posted(upstream.PathEligibilityApplications)
	require.Len(t, posts, 1)
	assert.JSONEq(t, `{
		"applicantName": "Ada Lovelace",
		"formData": {
			"Full Name": "Ada Lovelace",
			"Email Address": "ada@example.com",
			"Preferred Country": "Canada",
			"Intakes": ["January", "September"]
		}
	}`, string(posts[0]))
}

func TestEligibilitySubmitFailureShowsRetry(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.failPosts = true
	mux := newPagesMux(srv.URL, storage.Disabled{})

	rec := postForm(mux, "/apply-for-eligibility", url.Values{
		"_section":      {"1"},
		"_action":       {"next"},
		"field.name":    {"Ada"},
		"field.email":   {"ada@example.com"},
		"field.country": {"Germany"},
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), service.FailureEligibilityApplication)
	assert.NotContains(t, rec.Body.String(), service.FailureProgrammeApplication)
	assert.Contains(t, rec.Body.String(), "Study Plans")
}

func TestEligibilityFormUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	rec := httptest.NewRecorder()
	newPagesMux(srv.URL, storage.Disabled{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/apply-for-eligibility", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load the eligibility form")
}

const programmeWithFormJSON = `{
	"_id":"p1","title":"Nursing Pathway","description":"Train in Canada",
	"form":{"sections":[{"id":"docs","title":"Documents","fields":[
		{"id":"name","type":"text","label":"Full Name","required":true},
		{"id":"passport","type":"file","label":"Passport","required":true}
	]}]}
}`

func multipartRequest(t *testing.T, target string, fields map[string]string, fileField, fileName string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestProgrammeApplicationWithUpload(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.programmeJS = programmeWithFormJSON
	store := &memoryStorage{files: make(map[string][]byte)}
	mux := newPagesMux(srv.URL, store)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programmes/p1/apply", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `enctype="multipart/form-data"`)

	req := multipartRequest(t, "/programmes/p1/apply",
		map[string]string{"_section": "0", "_action": "next", "field.name": "Kofi"},
		"file.passport", "passport.pdf", []byte("%PDF-1.4\n%test document\n"),
	)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Application Submitted Successfully!")
	require.Len(t, store.files, 1)

	posts := api.posted(upstream.PathApplications)
	require.Len(t, posts, 1)

	var payload struct {
		ProgrammeID string            `json:"programmeId"`
		FormData    map[string]string `json:"formData"`
	}
	require.NoError(t, json.Unmarshal(posts[0], &payload))
	assert.Equal(t, "p1", payload.ProgrammeID)
	assert.Equal(t, "Kofi", payload.FormData["Full Name"])
	assert.True(t, strings.HasPrefix(payload.FormData["Passport"], "https://files.example.com/applications/programme-p1/documents/"))
}

func TestProgrammeApplicationRejectsBadUpload(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.programmeJS = programmeWithFormJSON
	mux := newPagesMux(srv.URL, &memoryStorage{files: make(map[string][]byte)})

	req := multipartRequest(t, "/programmes/p1/apply",
		map[string]string{"_section": "0", "_action": "next", "field.name": "Kofi"},
		"file.passport", "passport.exe", []byte("MZ binary"),
	)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Passport could not be uploaded")
	assert.Empty(t, api.posted(upstream.PathApplications))
}

func TestProgrammeSubmitFailureShowsRetry(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.programmeJS = `{"_id":"p1","title":"Nursing Pathway","form":{"sections":[{"id":"s","title":"You","fields":[
		{"id":"name","type":"text","label":"Full Name","required":true}
	]}]}}`
	api.failPosts = true
	mux := newPagesMux(srv.URL, storage.Disabled{})

	rec := postForm(mux, "/programmes/p1/apply", url.Values{
		"_section":   {"0"},
		"_action":    {"next"},
		"field.name": {"Kofi"},
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), service.FailureProgrammeApplication)
}

func TestProgrammeWithoutFormHasNoApplyPage(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.programmeJS = `{"_id":"p2","title":"Open Day"}`

	rec := httptest.NewRecorder()
	newPagesMux(srv.URL, storage.Disabled{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/programmes/p2/apply", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBlogWithoutContentShowsFailure(t *testing.T) {
	api, srv := newFakeAPI(t)
	api.blogJS = `{"_id":"b1","title":"Draft","content":[]}`

	rec := httptest.NewRecorder()
	newPagesMux(srv.URL, storage.Disabled{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/b1", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load blog. Please try again later.")
}

func TestHomeRendersWithoutBlogs(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	rec := httptest.NewRecorder()
	newPagesMux(srv.URL, storage.Disabled{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load blogs")
	assert.Contains(t, rec.Body.String(), "Failed to load programmes")
	assert.Contains(t, rec.Body.String(), model.Testimonials[0].Author)
}

func TestHomeShowsLatestBlogsAndProgrammes(t *testing.T) {
	api, srv := newFakeAPI(t)
	var blogs, programmes []string
	for i := range 7 {
		blogs = append(blogs, fmt.Sprintf(`{"_id":"b%d","title":"Blog %d"}`, i, i))
		programmes = append(programmes, fmt.Sprintf(`{"_id":"p%d","title":"Programme %d"}`, i, i))
	}
	api.blogsJS = "[" + strings.Join(blogs, ",") + "]"
	api.programmesJS = "[" + strings.Join(programmes, ",") + "]"

	rec := httptest.NewRecorder()
	newPagesMux(srv.URL, storage.Disabled{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Equal(t, homeBlogCount, strings.Count(body, `href="/blogs/b`))
	assert.Equal(t, homeProgrammeCount, strings.Count(body, `href="/programmes/p`))
	assert.NotContains(t, body, "Failed to load")
}

func TestCountryPage(t *testing.T) {
	_, srv := newFakeAPI(t)
	mux := newPagesMux(srv.URL, storage.Disabled{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/coverage/"+model.Markets[0].Slug(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/coverage/atlantis", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConsentSetsCookieAndRedirects(t *testing.T) {
	_, srv := newFakeAPI(t)
	mux := newPagesMux(srv.URL, storage.Disabled{})

	rec := postForm(mux, "/cookie-consent", url.Values{"choice": {"accepted"}, "redirect": {"/blogs"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/blogs", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.ConsentCookieName, cookies[0].Name)
	assert.Equal(t, "accepted", cookies[0].Value)

	rec = postForm(mux, "/cookie-consent", url.Values{"choice": {"declined"}, "redirect": {"//evil.example.com"}})
	assert.Equal(t, "/", rec.Header().Get("Location"))

	rec = postForm(mux, "/cookie-consent", url.Values{"choice": {"maybe"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLocalRedirect(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"/blogs", "/blogs"},
		{"/blogs?page=2#top", "/blogs?page=2#top"},
		{"", "/"},
		{"blogs", "/"},
		{"//evil.example.com", "/"},
		{"/\\evil.example.com", "/"},
		{"/\t/evil.example.com", "/"},
		{"/\n/evil.example.com", "/"},
		{"https://evil.example.com/", "/"},
		{"javascript:alert(1)", "/"},
		{"/%2F/evil.example.com", "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, localRedirect(tt.target), "%q", tt.target)
	}
}

func TestHealth(t *testing.T) {
	_, srv := newFakeAPI(t)
	rec := httptest.NewRecorder()
	newPagesMux(srv.URL, storage.Disabled{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}

func TestNewsletterSubscribe(t *testing.T) {
	h := NewNewsletterHandler(service.NewEmailService("", "noreply@example.com", "", "", "http://localhost", "Pathway", true))

	rec := postForm(http.HandlerFunc(h.Subscribe), "/newsletter/subscribe", url.Values{"email": {"nope"}})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please provide a valid email address")

	rec = postForm(http.HandlerFunc(h.Subscribe), "/newsletter/subscribe", url.Values{"email": {"Student@Example.com"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Thanks for subscribing!")
}
