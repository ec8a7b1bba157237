package handler

import (
	"log/slog"
	"net/http"

	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/pages"
)

type LegalHandler struct {
	legalService *service.LegalService
}

func NewLegalHandler(legalService *service.LegalService) *LegalHandler {
	handler := &LegalHandler{
		legalService: legalService,
	}

	// Missing files only 404 their own page.
	err := handler.legalService.LoadPages()
	if err != nil {
		slog.Warn("failed to load legal pages", "error", err)
	}

	return handler
}

// Page serves the policy stored under slug, e.g. "privacy-policy".
func (h *LegalHandler) Page(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.legalService.Page(slug)
		if err != nil {
			ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
			return
		}

		ui.Render(w, r, pages.Legal(page))
	}
}
