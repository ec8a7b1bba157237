package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eligibilityForm() *form.Form {
	return &form.Form{
		Sections: []form.Section{{
			ID: "about",
			Fields: []form.Field{
				{ID: "name", Type: form.FieldText, Label: "Full Name"},
				{ID: "email", Type: form.FieldEmail, Label: "Email"},
				{ID: "level", Type: form.FieldSelect, Label: "Study Level", Required: true},
			},
		}},
	}
}

type capturedPost struct {
	path string
	body string
}

func captureUpstream(t *testing.T, status int) (*upstream.Client, chan capturedPost) {
	t.Helper()
	posts := make(chan capturedPost, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		posts <- capturedPost{path: r.URL.Path, body: string(body)}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return upstream.New(srv.URL, time.Second), posts
}

func TestEligibilitySubmitterBody(t *testing.T) {
	client, posts := captureUpstream(t, http.StatusCreated)
	emails := NewEmailService("", "noreply@example.com", "", "team@example.com", "http://localhost", "Pathway", true)
	svc := NewApplicationService(client, emails)

	w := form.NewWizard(eligibilityForm())
	w.Set("name", "Ada Lovelace")
	w.Set("email", "ada@example.com")
	w.Set("level", "Masters")

	outcome, err := w.Next(context.Background(), svc.EligibilitySubmitter(w))
	require.NoError(t, err)
	assert.Equal(t, form.Submitted, outcome)

	post := <-posts
	assert.Equal(t, "/api/eligibility-applications", post.path)
	assert.JSONEq(t, `{"applicantName":"Ada Lovelace","formData":{"Full Name":"Ada Lovelace","Email":"ada@example.com","Study Level":"Masters"}}`, post.body)
}

func TestEligibilitySubmitterUnknownApplicant(t *testing.T) {
	client, posts := captureUpstream(t, http.StatusCreated)
	svc := NewApplicationService(client, nil)

	w := form.NewWizard(eligibilityForm())
	w.Set("level", "Bachelors")

	_, err := w.Next(context.Background(), svc.EligibilitySubmitter(w))
	require.NoError(t, err)

	post := <-posts
	assert.JSONEq(t, `{"applicantName":"Unknown","formData":{"Study Level":"Bachelors"}}`, post.body)
}

func TestProgrammeSubmitterBody(t *testing.T) {
	client, posts := captureUpstream(t, http.StatusCreated)
	svc := NewApplicationService(client, nil)

	w := form.NewWizard(eligibilityForm())
	w.Set("level", "Foundation")

	_, err := w.Next(context.Background(), svc.ProgrammeSubmitter("p42", w))
	require.NoError(t, err)

	post := <-posts
	assert.Equal(t, "/api/applications", post.path)
	assert.JSONEq(t, `{"programmeId":"p42","formData":{"Study Level":"Foundation"}}`, post.body)
}

func TestSubmitterReportsUpstreamFailure(t *testing.T) {
	client, _ := captureUpstream(t, http.StatusBadGateway)
	svc := NewApplicationService(client, nil)

	w := form.NewWizard(eligibilityForm())
	w.Set("level", "Masters")

	outcome, err := w.Next(context.Background(), svc.ProgrammeSubmitter("p1", w))
	assert.ErrorIs(t, err, upstream.ErrUpstreamStatus)
	assert.Equal(t, form.Failed, outcome)
}

func TestApplicantEmailSkipsInvalid(t *testing.T) {
	w := form.NewWizard(eligibilityForm())
	w.Set("email", "nope")
	assert.Equal(t, "", ApplicantEmail(w))

	w.Set("email", " ada@example.com ")
	assert.Equal(t, "ada@example.com", ApplicantEmail(w))
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, SuccessEligibilityApplication, SuccessMessage(nil, SuccessEligibilityApplication))
	assert.Equal(t, SuccessProgrammeApplication, SuccessMessage(&form.Form{}, SuccessProgrammeApplication))
	assert.Equal(t, "Thanks!", SuccessMessage(&form.Form{Settings: form.Settings{SuccessMessage: "Thanks!"}}, SuccessProgrammeApplication))
}
