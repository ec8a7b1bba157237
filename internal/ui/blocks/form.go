package blocks

import (
	"fmt"
	"strconv"

	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/ui"
)

// Input names shared with the wizard handlers. Field values are posted as
// field.<id>, new uploads as file.<id>.
const (
	FieldInputPrefix = "field."
	FileInputPrefix  = "file."
	SectionInput     = "_section"
	ActionInput      = "_action"
	ActionNext       = "next"
	ActionPrevious   = "prev"
)

type WizardProps struct {
	Action         string
	Wizard         *form.Wizard
	UploadsEnabled bool
	// Failure is shown above the form after a rejected submission.
	Failure string
}

// hiddenValue is one value of a section other than the current one.
type hiddenValue struct {
	Name  string
	Value string
}

// carriedValues lists the values of every other section so the server keeps
// no session between steps.
func carriedValues(w *form.Wizard) []hiddenValue {
	var hidden []hiddenValue
	for i, section := range w.Form().Sections {
		if i == w.Index() {
			continue
		}
		for _, field := range section.Fields {
			for _, v := range w.Value(field.ID) {
				hidden = append(hidden, hiddenValue{Name: FieldInputPrefix + field.ID, Value: v})
			}
		}
	}
	return hidden
}

func stepLabel(index, total int) string {
	return fmt.Sprintf("Step %d of %d", index+1, total)
}

func progressStyle(index, total int) string {
	return fmt.Sprintf("width: %d%%", (index+1)*100/total)
}

func nextLabel(w *form.Wizard) string {
	if !w.IsLast() {
		return "Next"
	}
	if text := w.Form().Settings.SubmitButtonText; text != "" {
		return text
	}
	return "Submit"
}

func inputID(field form.Field) string {
	return "f-" + field.ID
}

func inputName(field form.Field) string {
	return FieldInputPrefix + field.ID
}

func choiceID(field form.Field, i int) string {
	return fmt.Sprintf("%s-%d", inputID(field), i)
}

func controlClass(invalid bool) string {
	base := "w-full rounded-md border border-gray-300 px-3 py-2 text-sm"
	if invalid {
		return ui.Class(base, "border-red-500")
	}
	return base
}

// maxLength is the maxlength attribute value, empty when unlimited.
func maxLength(field form.Field) string {
	if v := field.Validation; v != nil && v.MaxLength > 0 {
		return strconv.Itoa(v.MaxLength)
	}
	return ""
}

// labelledByGroup reports fields whose control is a group of inputs, which
// get a plain heading instead of a <label>.
func labelledByGroup(field form.Field) bool {
	return field.Type == form.FieldRadio || field.MultiValue()
}

func selectPrompt(field form.Field) string {
	if field.Placeholder != "" {
		return field.Placeholder
	}
	return "Select an option"
}

func inputType(t form.FieldType) string {
	switch t {
	case form.FieldEmail, form.FieldNumber, form.FieldTel, form.FieldDate:
		return string(t)
	default:
		return "text"
	}
}

func firstValue(values []string) string {
	if len(values) > 0 {
		return values[0]
	}
	return ""
}
