package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/pages"
)

type EligibilityHandler struct {
	contentService     *service.ContentService
	applicationService *service.ApplicationService
	wizard             wizardFlow
}

func NewEligibilityHandler(contentService *service.ContentService, applicationService *service.ApplicationService, fileService *service.FileService) *EligibilityHandler {
	return &EligibilityHandler{
		contentService:     contentService,
		applicationService: applicationService,
		wizard:             wizardFlow{fileService: fileService},
	}
}

func (h *EligibilityHandler) step() wizardStep {
	return wizardStep{
		formKey:   "eligibility",
		action:    "/apply-for-eligibility",
		page:      pages.Eligibility,
		submitter: h.applicationService.EligibilitySubmitter,
		done: func(w *form.Wizard) templ.Component {
			return pages.ApplicationSubmitted("Apply for Eligibility", service.SuccessMessage(w.Form(), service.SuccessEligibilityApplication))
		},
		failure: service.FailureEligibilityApplication,
	}
}

// loadForm fetches the current eligibility form, rendering the failure page
// itself when it cannot.
func (h *EligibilityHandler) loadForm(w http.ResponseWriter, r *http.Request) (*form.Form, bool) {
	f, err := h.contentService.EligibilityForm(r.Context())
	if err != nil {
		slog.Error("failed to load eligibility form", "error", err)
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.EligibilityUnavailable())
		return nil, false
	}
	return f, true
}

func (h *EligibilityHandler) EligibilityPage(w http.ResponseWriter, r *http.Request) {
	f, ok := h.loadForm(w, r)
	if !ok {
		return
	}
	h.wizard.start(w, r, f, h.step())
}

func (h *EligibilityHandler) Submit(w http.ResponseWriter, r *http.Request) {
	f, ok := h.loadForm(w, r)
	if !ok {
		return
	}
	h.wizard.post(w, r, f, h.step())
}
