package form

import (
	"encoding/json"
	"fmt"
)

type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
	FieldTel      FieldType = "tel"
	FieldDate     FieldType = "date"
	FieldFile     FieldType = "file"
	FieldTextarea FieldType = "textarea"
	FieldRadio    FieldType = "radio"
)

type Validation struct {
	MinLength   int    `json:"minLength,omitempty"`
	MaxLength   int    `json:"maxLength,omitempty"`
	Pattern     string `json:"pattern,omitempty"`
	CustomError string `json:"customError,omitempty"`
}

type Field struct {
	ID          string      `json:"id"`
	Type        FieldType   `json:"type"`
	Label       string      `json:"label"`
	Placeholder string      `json:"placeholder,omitempty"`
	HelpText    string      `json:"helpText,omitempty"`
	Options     []string    `json:"options,omitempty"`
	Required    bool        `json:"required"`
	Validation  *Validation `json:"validation,omitempty"`
}

// MultiValue reports whether the field collects a list of values.
func (f Field) MultiValue() bool {
	return f.Type == FieldCheckbox && len(f.Options) > 0
}

type Section struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Fields      []Field `json:"fields"`
}

type Settings struct {
	SubmitButtonText string `json:"submitButtonText,omitempty"`
	SuccessMessage   string `json:"successMessage,omitempty"`
}

type Form struct {
	Sections []Section `json:"sections"`
	Settings Settings  `json:"settings"`
}

// Field looks up a field by id across all sections.
func (f *Form) Field(id string) (Field, bool) {
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			if field.ID == id {
				return field, true
			}
		}
	}
	return Field{}, false
}

func (f *Form) HasFileFields() bool {
	for _, section := range f.Sections {
		for _, field := range section.Fields {
			if field.Type == FieldFile {
				return true
			}
		}
	}
	return false
}

// Decode accepts either a bare form or one wrapped as {"form": {...}}.
func Decode(data []byte) (*Form, error) {
	var wrapped struct {
		Form *Form `json:"form"`
	}
	err := json.Unmarshal(data, &wrapped)
	if err != nil {
		return nil, fmt.Errorf("decode form: %w", err)
	}
	if wrapped.Form != nil && len(wrapped.Form.Sections) > 0 {
		return wrapped.Form, nil
	}

	var bare Form
	err = json.Unmarshal(data, &bare)
	if err != nil {
		return nil, fmt.Errorf("decode form: %w", err)
	}
	if len(bare.Sections) == 0 {
		return nil, ErrEmptyForm
	}
	return &bare, nil
}
