package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

var ErrEmailNotConfigured = errors.New("email service not configured (missing RESEND_API_KEY)")

type EmailService struct {
	client      *resend.Client
	fromEmail   string
	audienceID  string
	notifyEmail string
	isDev       bool
	appURL      string
	appName     string
}

func NewEmailService(apiKey, fromEmail, audienceID, notifyEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:      client,
		fromEmail:   fromEmail,
		audienceID:  audienceID,
		notifyEmail: notifyEmail,
		isDev:       isDev,
		appURL:      appURL,
		appName:     appName,
	}
}

func (s *EmailService) SubscribeNewsletter(ctx context.Context, email string) error {
	if s.isDev {
		slog.Info("newsletter subscription (dev mode)", "email", email)
		return nil
	}

	if s.client == nil {
		return ErrEmailNotConfigured
	}

	if s.audienceID == "" {
		slog.Warn("newsletter subscription requested but no audience configured", "email", email)
		return nil
	}

	params := &resend.CreateContactRequest{
		Email:      email,
		AudienceId: s.audienceID,
	}

	_, err := s.client.Contacts.CreateWithContext(ctx, params)
	if err != nil {
		// Duplicates and invalid addresses are not reported back to the visitor
		slog.Warn("newsletter subscription failed", "error", err, "email", email)
		return nil
	}

	slog.Info("newsletter subscription successful", "email", email)
	return nil
}

// ApplicationNotice describes a submitted application for the admissions team.
type ApplicationNotice struct {
	Kind          string // "programme" or "eligibility"
	ApplicantName string
	ProgrammeID   string
	FormData      map[string]any
}

// SendApplicationNotice emails the admissions inbox. It is a no-op when no
// inbox is configured.
func (s *EmailService) SendApplicationNotice(ctx context.Context, notice ApplicationNotice) error {
	if s.notifyEmail == "" {
		return nil
	}

	subject, body := applicationNoticeTemplate(notice, s.appURL, s.appName)
	return s.send(ctx, "application_notice", s.notifyEmail, subject, body)
}

// SendApplicantConfirmation acknowledges a submission to the applicant.
func (s *EmailService) SendApplicantConfirmation(ctx context.Context, email, name string) error {
	subject, body := applicantConfirmationTemplate(name, s.appURL, s.appName)
	return s.send(ctx, "applicant_confirmation", email, subject, body)
}

func (s *EmailService) send(ctx context.Context, kind, to, subject, body string) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", kind, "to", to, "subject", subject)
		return nil
	}

	if s.client == nil {
		return ErrEmailNotConfigured
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send %s email: %w", kind, err)
	}

	slog.Info("email sent", "type", kind, "to", to)
	return nil
}
