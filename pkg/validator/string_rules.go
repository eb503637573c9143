package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        field + " is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenString counts runes, so multi-byte names are measured the way users see them.
func MinLenString(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be at least %d characters", field, min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func MaxLenString(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s cannot exceed %d characters", field, max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// MatchesPattern validates a string against re. message is the user-facing failure text.
func MatchesPattern(field, value string, re *regexp.Regexp, message string) Rule {
	return newRule(field, "validation.pattern", message, func() bool {
		return re.MatchString(value)
	})
}

// ValidateRequired fails on nil, "" and whitespace-only strings.
// fieldName is used in the message when supplied.
func ValidateRequired(value any, fieldName string) Result {
	if !isBlank(value) {
		return OK()
	}
	if fieldName == "" {
		return Fail("This field is required")
	}
	return Fail(fieldName + " is required")
}

// Required binds ValidateRequired to a field label.
func Required(fieldName string) FieldValidator {
	return func(value any) Result {
		return ValidateRequired(value, fieldName)
	}
}
