package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailServiceDevModeLogsOnly(t *testing.T) {
	svc := NewEmailService("re_test", "noreply@example.com", "aud", "team@example.com", "http://localhost:8090", "Pathway", true)
	ctx := context.Background()

	assert.NoError(t, svc.SubscribeNewsletter(ctx, "ada@example.com"))
	assert.NoError(t, svc.SendApplicationNotice(ctx, ApplicationNotice{Kind: "eligibility", ApplicantName: "Ada"}))
	assert.NoError(t, svc.SendApplicantConfirmation(ctx, "ada@example.com", "Ada"))
}

func TestEmailServiceWithoutKey(t *testing.T) {
	svc := NewEmailService("", "noreply@example.com", "", "team@example.com", "https://example.com", "Pathway", false)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SubscribeNewsletter(ctx, "ada@example.com"), ErrEmailNotConfigured)
	assert.ErrorIs(t, svc.SendApplicantConfirmation(ctx, "ada@example.com", "Ada"), ErrEmailNotConfigured)
}

func TestApplicationNoticeSkippedWithoutInbox(t *testing.T) {
	svc := NewEmailService("", "noreply@example.com", "", "", "https://example.com", "Pathway", false)
	assert.NoError(t, svc.SendApplicationNotice(context.Background(), ApplicationNotice{Kind: "programme"}))
}

func TestApplicationNoticeTemplate(t *testing.T) {
	subject, body := applicationNoticeTemplate(ApplicationNotice{
		Kind:          "programme",
		ApplicantName: "Ada",
		ProgrammeID:   "p1",
		FormData: map[string]any{
			"Intakes":   []string{"January", "September"},
			"Full Name": "Ada",
		},
	}, "https://example.com", "Pathway")

	assert.Equal(t, "New programme application from Ada", subject)
	assert.Contains(t, body, "Programme: https://example.com/programmes/p1")
	assert.Contains(t, body, "Full Name: Ada\nIntakes: January, September\n")
}
