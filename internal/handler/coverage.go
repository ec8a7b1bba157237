package handler

import (
	"net/http"

	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/pages"
)

type CoverageHandler struct {
	marketService *service.MarketService
}

func NewCoverageHandler(marketService *service.MarketService) *CoverageHandler {
	return &CoverageHandler{
		marketService: marketService,
	}
}

func (h *CoverageHandler) CoveragePage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Coverage(h.marketService.All()))
}

func (h *CoverageHandler) CountryPage(w http.ResponseWriter, r *http.Request) {
	market, ok := h.marketService.BySlug(r.PathValue("country"))
	if !ok {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return
	}

	ui.Render(w, r, pages.CountryDetail(market))
}
