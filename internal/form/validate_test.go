package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name   string
		field  Field
		values []string
		want   string
	}{
		{
			name:  "required empty",
			field: Field{ID: "name", Label: "Full Name", Required: true},
			want:  "Full Name is required",
		},
		{
			name:   "required whitespace only",
			field:  Field{ID: "name", Label: "Full Name", Required: true},
			values: []string{"   "},
			want:   "Full Name is required",
		},
		{
			name:  "optional empty skips rules",
			field: Field{ID: "phone", Label: "Phone", Validation: &Validation{MinLength: 7, Pattern: `^\d+$`}},
			want:  "",
		},
		{
			name:   "too short",
			field:  Field{ID: "name", Label: "Full Name", Validation: &Validation{MinLength: 3}},
			values: []string{"Al"},
			want:   "Full Name must be at least 3 characters",
		},
		{
			name:   "length counts runes",
			field:  Field{ID: "name", Label: "Full Name", Validation: &Validation{MinLength: 3}},
			values: []string{"Zoë"},
			want:   "",
		},
		{
			name:   "too long",
			field:  Field{ID: "bio", Label: "Bio", Validation: &Validation{MaxLength: 5}},
			values: []string{"abcdef"},
			want:   "Bio must not exceed 5 characters",
		},
		{
			name:   "pattern mismatch with custom error",
			field:  Field{ID: "phone", Label: "Phone", Validation: &Validation{Pattern: `^\+?\d{7,15}$`, CustomError: "Enter a valid phone number"}},
			values: []string{"call me"},
			want:   "Enter a valid phone number",
		},
		{
			name:   "pattern mismatch default message",
			field:  Field{ID: "phone", Label: "Phone", Validation: &Validation{Pattern: `^\d+$`}},
			values: []string{"12a"},
			want:   "Phone is invalid",
		},
		{
			name:   "pattern unanchored match",
			field:  Field{ID: "email", Label: "Email", Validation: &Validation{Pattern: `@`}},
			values: []string{"ada@example.com"},
			want:   "",
		},
		{
			name:   "invalid pattern never matches",
			field:  Field{ID: "code", Label: "Code", Validation: &Validation{Pattern: `(`}},
			values: []string{"anything"},
			want:   "Code is invalid",
		},
		{
			name:   "checkbox group counts selections",
			field:  Field{ID: "intakes", Type: FieldCheckbox, Label: "Intakes", Options: []string{"Jan", "May", "Sep"}, Validation: &Validation{MinLength: 2}},
			values: []string{"Jan"},
			want:   "Intakes must be at least 2 characters",
		},
		{
			name:   "checkbox group pattern checks each value",
			field:  Field{ID: "intakes", Type: FieldCheckbox, Label: "Intakes", Options: []string{"Jan", "May"}, Validation: &Validation{Pattern: `^[A-Z][a-z]{2}$`}},
			values: []string{"Jan", "may"},
			want:   "Intakes is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateField(tt.field, tt.values))
		})
	}
}

func TestValidateSectionOnlyReportsFailures(t *testing.T) {
	section := Section{
		ID: "personal",
		Fields: []Field{
			{ID: "name", Label: "Full Name", Required: true},
			{ID: "email", Label: "Email", Required: true, Validation: &Validation{Pattern: `^[^@\s]+@[^@\s]+$`}},
			{ID: "notes", Label: "Notes"},
		},
	}

	errs := ValidateSection(section, map[string][]string{
		"name":  {"Ada Lovelace"},
		"email": {"not-an-email"},
	})

	assert.Equal(t, map[string]string{"email": "Email is invalid"}, errs)
}
