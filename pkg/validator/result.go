package validator

// Result is the outcome of a single field validation.
// Error is empty if and only if Valid is true.
type Result struct {
	Valid bool
	Error string
}

// FieldValidator checks one field value. Implementations must be pure and must
// accept the zero value of a field (nil or "") without panicking.
type FieldValidator func(value any) Result

// OK returns a passing result.
func OK() Result {
	return Result{Valid: true}
}

// Fail returns a failing result carrying msg.
func Fail(msg string) Result {
	if msg == "" {
		msg = "invalid value"
	}
	return Result{Valid: false, Error: msg}
}

// Err converts a failed result into ValidationErrors for the given field.
// Returns nil for a passing result.
func (r Result) Err(field string) error {
	if r.Valid {
		return nil
	}
	return ValidationErrors{{Field: field, Message: r.Error}}
}

// Check evaluates rules in order and reports the first one that fails.
func Check(rules ...Rule) Result {
	for _, rule := range rules {
		if !rule.Check() {
			return Fail(rule.Error.Message)
		}
	}
	return OK()
}

func newRule(field, key, message string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
