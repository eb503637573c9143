package validator

import (
	"fmt"
	"slices"
	"strings"
)

func InList[T comparable](field string, value T, allowedValues []T) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be one of: %v", field, allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

func InListString(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			return slices.Contains(allowedValues, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

// InListCaseInsensitive compares value and allowedValues ignoring case and surrounding spaces.
func InListCaseInsensitive(field, value string, allowedValues []string) Rule {
	return Rule{
		Check: func() bool {
			v := strings.TrimSpace(value)
			return slices.ContainsFunc(allowedValues, func(allowed string) bool {
				return strings.EqualFold(v, strings.TrimSpace(allowed))
			})
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be one of (case-insensitive): %s", field, strings.Join(allowedValues, ", ")),
			TranslationKey: "validation.in_list_case_insensitive",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

func ValidEnum(field, value string, enumValues []string) Rule {
	return InListString(field, value, enumValues)
}

func ValidEnumCaseInsensitive(field, value string, enumValues []string) Rule {
	return InListCaseInsensitive(field, value, enumValues)
}

// ValidMIMEType matches a MIME type against an allow-list, ignoring case and parameters such as charset.
func ValidMIMEType(field, mimeType string, allowedTypes []string) Rule {
	base, _, _ := strings.Cut(mimeType, ";")
	rule := InListCaseInsensitive(field, base, allowedTypes)
	rule.Error.Message = fmt.Sprintf("File type %s is not allowed", orUnknown(strings.ToLower(strings.TrimSpace(base))))
	rule.Error.TranslationKey = "validation.mime_type"
	return rule
}
