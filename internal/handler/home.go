package handler

import (
	"log/slog"
	"net/http"

	"github.com/pathway-edu/website/internal/model"
	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/pages"
)

const (
	homeBlogCount      = 5
	homeProgrammeCount = 3
)

type HomeHandler struct {
	contentService *service.ContentService
	marketService  *service.MarketService
}

func NewHomeHandler(contentService *service.ContentService, marketService *service.MarketService) *HomeHandler {
	return &HomeHandler{
		contentService: contentService,
		marketService:  marketService,
	}
}

// HomePage still renders when the blog or programme teasers cannot be loaded.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		Markets:      h.marketService.All(),
		Testimonials: model.Testimonials,
	}

	blogs, err := h.contentService.LatestBlogs(r.Context(), homeBlogCount)
	if err != nil {
		slog.Warn("home page blogs unavailable", "error", err)
		data.BlogsFailed = true
	}
	data.LatestBlogs = blogs

	programmes, err := h.contentService.Programmes(r.Context())
	if err != nil {
		slog.Warn("home page programmes unavailable", "error", err)
		data.ProgrammesFailed = true
	}
	if len(programmes) > homeProgrammeCount {
		programmes = programmes[:homeProgrammeCount]
	}
	data.Programmes = programmes

	ui.Render(w, r, pages.Home(data))
}

func (h *HomeHandler) AboutPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.About())
}

func (h *HomeHandler) ServicesPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Services())
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
}
