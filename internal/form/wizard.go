package form

import (
	"context"
	"errors"
)

var (
	ErrEmptyForm        = errors.New("form has no sections")
	ErrValidation       = errors.New("section has invalid fields")
	ErrAlreadySubmitted = errors.New("form already submitted")
)

type Outcome int

const (
	// Blocked means the current section failed validation.
	Blocked Outcome = iota
	Advanced
	Submitted
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case Advanced:
		return "advanced"
	case Submitted:
		return "submitted"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// SubmitFunc receives the label keyed payload once the last section validates.
type SubmitFunc func(ctx context.Context, payload map[string]any) error

// Wizard walks a form section by section. Only the current section is
// validated on Next, and the submitter runs only from the last section.
type Wizard struct {
	form      *Form
	index     int
	values    map[string][]string
	errors    map[string]string
	submitted bool
}

func NewWizard(f *Form) *Wizard {
	return &Wizard{
		form:   f,
		values: make(map[string][]string),
		errors: make(map[string]string),
	}
}

// Restore rebuilds a wizard from state posted back by the browser. The index
// is clamped to the form and values for unknown field ids are dropped.
func Restore(f *Form, index int, values map[string][]string) *Wizard {
	w := NewWizard(f)
	w.index = max(0, min(index, len(f.Sections)-1))
	for id, v := range values {
		if _, ok := f.Field(id); ok {
			w.values[id] = v
		}
	}
	return w
}

func (w *Wizard) Form() *Form {
	return w.form
}

func (w *Wizard) Index() int {
	return w.index
}

func (w *Wizard) Section() Section {
	return w.form.Sections[w.index]
}

func (w *Wizard) IsFirst() bool {
	return w.index == 0
}

func (w *Wizard) IsLast() bool {
	return w.index == len(w.form.Sections)-1
}

func (w *Wizard) Submitted() bool {
	return w.submitted
}

func (w *Wizard) Values() map[string][]string {
	return w.values
}

func (w *Wizard) Value(id string) []string {
	return w.values[id]
}

// FirstValue returns the first entered value for id, or "".
func (w *Wizard) FirstValue(id string) string {
	if v := w.values[id]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func (w *Wizard) Errors() map[string]string {
	return w.errors
}

// Set replaces the values of a field and clears its error.
func (w *Wizard) Set(id string, values ...string) {
	if _, ok := w.form.Field(id); !ok {
		return
	}
	w.values[id] = values
	delete(w.errors, id)
}

// Fail records an error found outside the field rules, e.g. a rejected upload.
func (w *Wizard) Fail(id, message string) {
	w.errors[id] = message
}

// Previous moves back one section without validating.
func (w *Wizard) Previous() {
	if w.index > 0 {
		w.index--
	}
	w.errors = make(map[string]string)
}

// Next validates the current section. On success it advances, or on the
// last section calls submit with the payload. A failed submit leaves the
// wizard on the last section so the applicant can retry.
func (w *Wizard) Next(ctx context.Context, submit SubmitFunc) (Outcome, error) {
	if w.submitted {
		return Submitted, ErrAlreadySubmitted
	}

	w.errors = ValidateSection(w.Section(), w.values)
	if len(w.errors) > 0 {
		return Blocked, ErrValidation
	}

	if !w.IsLast() {
		w.index++
		return Advanced, nil
	}

	err := submit(ctx, w.Payload())
	if err != nil {
		return Failed, err
	}

	w.submitted = true
	return Submitted, nil
}

// Payload maps field labels to entered values. Single value fields map to a
// string and checkbox groups to a list. Empty fields are omitted.
func (w *Wizard) Payload() map[string]any {
	payload := make(map[string]any)
	for _, section := range w.form.Sections {
		for _, field := range section.Fields {
			values := nonEmpty(w.values[field.ID])
			if len(values) == 0 {
				continue
			}
			if field.MultiValue() {
				payload[field.Label] = values
			} else {
				payload[field.Label] = values[0]
			}
		}
	}
	return payload
}
