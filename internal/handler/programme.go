package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/model"
	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/blocks"
	"github.com/pathway-edu/website/internal/ui/pages"
)

type ProgrammeHandler struct {
	contentService     *service.ContentService
	applicationService *service.ApplicationService
	wizard             wizardFlow
}

func NewProgrammeHandler(contentService *service.ContentService, applicationService *service.ApplicationService, fileService *service.FileService) *ProgrammeHandler {
	return &ProgrammeHandler{
		contentService:     contentService,
		applicationService: applicationService,
		wizard:             wizardFlow{fileService: fileService},
	}
}

func (h *ProgrammeHandler) ListProgrammes(w http.ResponseWriter, r *http.Request) {
	programmes, err := h.contentService.Programmes(r.Context())
	if err != nil {
		slog.Error("failed to load programmes", "error", err)
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.ProgrammeList(nil, true))
		return
	}

	ui.Render(w, r, pages.ProgrammeList(programmes, false))
}

func (h *ProgrammeHandler) ShowProgramme(w http.ResponseWriter, r *http.Request) {
	p, ok := h.load(w, r)
	if !ok {
		return
	}
	ui.Render(w, r, pages.ProgrammeDetail(p))
}

func (h *ProgrammeHandler) ApplyPage(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadWithForm(w, r)
	if !ok {
		return
	}
	h.wizard.start(w, r, p.Form, h.step(p))
}

func (h *ProgrammeHandler) Apply(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadWithForm(w, r)
	if !ok {
		return
	}
	h.wizard.post(w, r, p.Form, h.step(p))
}

func (h *ProgrammeHandler) step(p *model.Programme) wizardStep {
	return wizardStep{
		formKey: "programme-" + p.ID,
		action:  pages.ProgrammeHref(p) + "/apply",
		page: func(props blocks.WizardProps) templ.Component {
			return pages.ProgrammeApply(p, props)
		},
		submitter: func(w *form.Wizard) form.SubmitFunc {
			return h.applicationService.ProgrammeSubmitter(p.ID, w)
		},
		done: func(w *form.Wizard) templ.Component {
			return pages.ApplicationSubmitted(p.Title, service.SuccessMessage(w.Form(), service.SuccessProgrammeApplication))
		},
		failure: service.FailureProgrammeApplication,
	}
}

// load fetches the programme named in the path. Upstream failures and
// invalid programmes both render the generic failure page.
func (h *ProgrammeHandler) load(w http.ResponseWriter, r *http.Request) (*model.Programme, bool) {
	id := r.PathValue("id")
	p, err := h.contentService.Programme(r.Context(), id)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidProgramme) {
			slog.Error("failed to load programme", "id", id, "error", err)
		}
		ui.RenderStatus(w, r, http.StatusInternalServerError, pages.LoadFailed("Programme", pages.MsgProgrammeFailed))
		return nil, false
	}
	return p, true
}

func (h *ProgrammeHandler) loadWithForm(w http.ResponseWriter, r *http.Request) (*model.Programme, bool) {
	p, ok := h.load(w, r)
	if !ok {
		return nil, false
	}
	if !p.HasForm() {
		ui.RenderStatus(w, r, http.StatusNotFound, pages.NotFound())
		return nil, false
	}
	return p, true
}
