package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/service"
	"github.com/pathway-edu/website/internal/storage"
	"github.com/pathway-edu/website/internal/ui"
	"github.com/pathway-edu/website/internal/ui/blocks"
)

const maxUploadMemory = 16 << 20

// wizardStep describes one wizard-backed page: where it posts, how it draws
// itself, and what happens once the last section validates.
type wizardStep struct {
	formKey   string
	action    string
	page      func(props blocks.WizardProps) templ.Component
	submitter func(w *form.Wizard) form.SubmitFunc
	done      func(w *form.Wizard) templ.Component
	// failure is shown above the form when the upstream rejects the submission.
	failure string
}

// wizardFlow drives the post-back loop shared by the programme application
// and the eligibility form.
type wizardFlow struct {
	fileService *service.FileService
}

func (f wizardFlow) uploadsEnabled() bool {
	return f.fileService != nil && f.fileService.Enabled()
}

func (f wizardFlow) start(w http.ResponseWriter, r *http.Request, def *form.Form, step wizardStep) {
	ui.Render(w, r, step.page(blocks.WizardProps{
		Action:         step.action,
		Wizard:         form.NewWizard(def),
		UploadsEnabled: f.uploadsEnabled(),
	}))
}

func (f wizardFlow) post(w http.ResponseWriter, r *http.Request, def *form.Form, step wizardStep) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		slog.Warn("wizard form parse failed", "form", step.formKey, "error", err)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	wiz := restoreWizard(r, def)
	props := blocks.WizardProps{
		Action:         step.action,
		Wizard:         wiz,
		UploadsEnabled: f.uploadsEnabled(),
	}

	if r.PostFormValue(blocks.ActionInput) == blocks.ActionPrevious {
		wiz.Previous()
		ui.Render(w, r, step.page(props))
		return
	}

	if !f.attachUploads(r, wiz, step.formKey) {
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity, step.page(props))
		return
	}

	outcome, err := wiz.Next(r.Context(), step.submitter(wiz))
	switch outcome {
	case form.Blocked:
		ui.RenderStatus(w, r, http.StatusUnprocessableEntity, step.page(props))
	case form.Advanced:
		ui.Render(w, r, step.page(props))
	case form.Failed:
		slog.Error("application submission failed", "form", step.formKey, "error", err)
		props.Failure = step.failure
		ui.RenderStatus(w, r, http.StatusBadGateway, step.page(props))
	case form.Submitted:
		slog.Info("application submitted", "form", step.formKey)
		ui.Render(w, r, step.done(wiz))
	}
}

// restoreWizard rebuilds the wizard from the posted section index and the
// field.<id> inputs.
func restoreWizard(r *http.Request, def *form.Form) *form.Wizard {
	index, _ := strconv.Atoi(r.PostFormValue(blocks.SectionInput))

	values := make(map[string][]string)
	for key, v := range r.PostForm {
		id, ok := strings.CutPrefix(key, blocks.FieldInputPrefix)
		if !ok {
			continue
		}
		values[id] = v
	}

	return form.Restore(def, index, values)
}

// attachUploads stores files chosen for the current section and records
// their links as the field values. It reports false if any upload failed.
func (f wizardFlow) attachUploads(r *http.Request, wiz *form.Wizard, formKey string) bool {
	if r.MultipartForm == nil {
		return true
	}

	ok := true
	for _, field := range wiz.Section().Fields {
		if field.Type != form.FieldFile {
			continue
		}
		headers := r.MultipartForm.File[blocks.FileInputPrefix+field.ID]
		if len(headers) == 0 || headers[0].Size == 0 {
			continue
		}

		if f.fileService == nil {
			wiz.Fail(field.ID, uploadErrorMessage(field, storage.ErrNotConfigured))
			ok = false
			continue
		}

		upload, err := f.fileService.Upload(r.Context(), formKey, field.ID, headers[0])
		if err != nil {
			slog.Warn("wizard upload rejected", "form", formKey, "field", field.ID, "error", err)
			wiz.Fail(field.ID, uploadErrorMessage(field, err))
			ok = false
			continue
		}
		wiz.Set(field.ID, upload.URL)
	}
	return ok
}

func uploadErrorMessage(field form.Field, err error) string {
	if errors.Is(err, storage.ErrNotConfigured) {
		return "File uploads are currently unavailable."
	}
	return fmt.Sprintf("%s could not be uploaded. Use a PDF up to 10 MB or an image up to 5 MB.", field.Label)
}
