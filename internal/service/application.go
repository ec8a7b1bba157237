package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/upstream"
	"github.com/pathway-edu/website/internal/validation"
)

const (
	SuccessProgrammeApplication   = "Application Submitted Successfully!"
	SuccessEligibilityApplication = "Eligibility Application Submitted Successfully!"
	FailureProgrammeApplication   = "Failed to submit application. Please try again."
	FailureEligibilityApplication = "Failed to submit eligibility application. Please try again."
)

type programmeApplication struct {
	ProgrammeID string         `json:"programmeId"`
	FormData    map[string]any `json:"formData"`
}

type eligibilityApplication struct {
	ApplicantName string         `json:"applicantName"`
	FormData      map[string]any `json:"formData"`
}

// ApplicationService posts completed wizards to the content API and sends
// the follow up emails.
type ApplicationService struct {
	client       *upstream.Client
	emailService *EmailService
}

func NewApplicationService(client *upstream.Client, emailService *EmailService) *ApplicationService {
	return &ApplicationService{
		client:       client,
		emailService: emailService,
	}
}

// ProgrammeSubmitter returns the wizard submit step for a programme form.
func (s *ApplicationService) ProgrammeSubmitter(programmeID string, w *form.Wizard) form.SubmitFunc {
	return func(ctx context.Context, payload map[string]any) error {
		_, err := s.client.PostValue(ctx, upstream.PathApplications, programmeApplication{
			ProgrammeID: programmeID,
			FormData:    payload,
		})
		if err != nil {
			return fmt.Errorf("submit programme application: %w", err)
		}

		s.notify(ctx, w, ApplicationNotice{
			Kind:          "programme",
			ApplicantName: ApplicantName(w),
			ProgrammeID:   programmeID,
			FormData:      payload,
		})
		return nil
	}
}

// EligibilitySubmitter returns the wizard submit step for the eligibility form.
func (s *ApplicationService) EligibilitySubmitter(w *form.Wizard) form.SubmitFunc {
	return func(ctx context.Context, payload map[string]any) error {
		name := ApplicantName(w)
		_, err := s.client.PostValue(ctx, upstream.PathEligibilityApplications, eligibilityApplication{
			ApplicantName: name,
			FormData:      payload,
		})
		if err != nil {
			return fmt.Errorf("submit eligibility application: %w", err)
		}

		s.notify(ctx, w, ApplicationNotice{
			Kind:          "eligibility",
			ApplicantName: name,
			FormData:      payload,
		})
		return nil
	}
}

// notify never fails the submission; the application is already stored.
func (s *ApplicationService) notify(ctx context.Context, w *form.Wizard, notice ApplicationNotice) {
	if s.emailService == nil {
		return
	}

	err := s.emailService.SendApplicationNotice(ctx, notice)
	if err != nil {
		slog.Warn("application notice failed", "kind", notice.Kind, "error", err)
	}

	email := ApplicantEmail(w)
	if email == "" {
		return
	}
	err = s.emailService.SendApplicantConfirmation(ctx, email, notice.ApplicantName)
	if err != nil {
		slog.Warn("applicant confirmation failed", "kind", notice.Kind, "error", err)
	}
}

// ApplicantName is the value of the "name" field, or "Unknown".
func ApplicantName(w *form.Wizard) string {
	name := strings.TrimSpace(w.FirstValue("name"))
	if name == "" {
		return "Unknown"
	}
	return name
}

// ApplicantEmail returns the first valid value of an email field, if any.
func ApplicantEmail(w *form.Wizard) string {
	for _, section := range w.Form().Sections {
		for _, field := range section.Fields {
			if field.Type != form.FieldEmail {
				continue
			}
			email := strings.TrimSpace(w.FirstValue(field.ID))
			if validation.ValidateEmail(email) == nil {
				return email
			}
		}
	}
	return ""
}

// SuccessMessage prefers the form's own message over the default.
func SuccessMessage(f *form.Form, fallback string) string {
	if f != nil && f.Settings.SuccessMessage != "" {
		return f.Settings.SuccessMessage
	}
	return fallback
}
