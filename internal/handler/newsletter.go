package handler

import (
	"log/slog"
	"net/http"

	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/pages"
	"github.com/pathway-edu/website/internal/validation"
)

type NewsletterHandler struct {
	emailService *service.EmailService
}

func NewNewsletterHandler(emailService *service.EmailService) *NewsletterHandler {
	return &NewsletterHandler{
		emailService: emailService,
	}
}

func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	email := validation.NormalizeEmail(r.FormValue("email"))

	err := validation.ValidateEmail(email)
	if err != nil {
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity, pages.NewsletterResult("Please provide a valid email address"))
		return
	}

	err = h.emailService.SubscribeNewsletter(r.Context(), email)
	if err != nil {
		// Success is shown whatever the outcome.
		slog.Warn("newsletter subscription error", "error", err, "email", email)
	}

	ui.Render(w, r, pages.NewsletterResult(""))
}
