package validator

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// FieldsResult aggregates the outcome of validating several fields.
type FieldsResult struct {
	Valid  bool
	Errors map[string]string
}

// Err returns the failures as ValidationErrors ordered by field name, or nil when valid.
func (r FieldsResult) Err() error {
	if r.Valid {
		return nil
	}
	var errs ValidationErrors
	for _, field := range slices.Sorted(maps.Keys(r.Errors)) {
		errs.Add(ValidationError{
			Field:          field,
			Message:        r.Errors[field],
			TranslationKey: "validation.field",
			TranslationValues: map[string]any{
				"field": field,
			},
		})
	}
	return errs
}

// FormResult is FieldsResult plus the sanitized values that were validated.
type FormResult struct {
	FieldsResult
	SanitizedData map[string]any
}

// ValidateFields runs every validator against the field of the same name and
// collects all failures. A field missing from fields is validated as nil.
// A nil validator panics: it is a wiring bug, not user input.
func ValidateFields(fields map[string]any, validators map[string]FieldValidator) FieldsResult {
	result := FieldsResult{Valid: true, Errors: make(map[string]string)}

	for _, name := range slices.Sorted(maps.Keys(validators)) {
		validate := validators[name]
		if validate == nil {
			panic(fmt.Errorf("%w: field %q", ErrNilValidator, name))
		}
		if res := validate(fields[name]); !res.Valid {
			result.Valid = false
			result.Errors[name] = Fail(res.Error).Error
		}
	}

	return result
}

// ValidateAndSanitizeForm sanitizes string fields that have a sanitizer, then
// validates the sanitized values. Fields without a sanitizer pass through unchanged.
func ValidateAndSanitizeForm(
	formData map[string]any,
	validators map[string]FieldValidator,
	sanitizers map[string]sanitizer.Func,
) FormResult {
	sanitized := sanitizer.SanitizeFields(formData, sanitizers)

	return FormResult{
		FieldsResult:  ValidateFields(sanitized, validators),
		SanitizedData: sanitized,
	}
}
