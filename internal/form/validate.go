package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidateField checks values against the field's rules and returns the
// first failing message, or "" when the field is valid. Checkbox groups
// measure length as the number of selected options.
func ValidateField(field Field, values []string) string {
	values = nonEmpty(values)

	if len(values) == 0 {
		if field.Required {
			return fmt.Sprintf("%s is required", field.Label)
		}
		return ""
	}

	rules := field.Validation
	if rules == nil {
		return ""
	}

	length := len(values)
	if !field.MultiValue() {
		length = utf8.RuneCountInString(values[0])
	}

	if rules.MinLength > 0 && length < rules.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", field.Label, rules.MinLength)
	}

	if rules.MaxLength > 0 && length > rules.MaxLength {
		return fmt.Sprintf("%s must not exceed %d characters", field.Label, rules.MaxLength)
	}

	if rules.Pattern != "" && !matchesAll(rules.Pattern, values) {
		if rules.CustomError != "" {
			return rules.CustomError
		}
		return fmt.Sprintf("%s is invalid", field.Label)
	}

	return ""
}

// ValidateSection validates every field of the section and returns messages
// keyed by field id. An empty map means the section is valid.
func ValidateSection(section Section, values map[string][]string) map[string]string {
	errs := make(map[string]string)
	for _, field := range section.Fields {
		msg := ValidateField(field, values[field.ID])
		if msg != "" {
			errs[field.ID] = msg
		}
	}
	return errs
}

// matchesAll reports whether every value matches pattern. A pattern that
// does not compile never matches.
func matchesAll(pattern string, values []string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	for _, value := range values {
		if !re.MatchString(value) {
			return false
		}
	}
	return true
}

func nonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
