package validator

import (
	"fmt"
	"math"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be at least %v", field, min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s must be at most %v", field, max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// WholeNumber validates that a float carries no fractional part.
func WholeNumber(field string, value float64) Rule {
	return newRule(field, "validation.integer", field+" must be a whole number", func() bool {
		return value == math.Trunc(value)
	})
}

type numberOptions struct {
	min     *float64
	max     *float64
	integer bool
}

// NumberOption configures ValidateNumber.
type NumberOption func(*numberOptions)

func NumberMin(min float64) NumberOption {
	return func(o *numberOptions) { o.min = &min }
}

func NumberMax(max float64) NumberOption {
	return func(o *numberOptions) { o.max = &max }
}

// NumberInteger rejects values with a fractional part.
func NumberInteger() NumberOption {
	return func(o *numberOptions) { o.integer = true }
}

// ValidateNumber parses value as a number and applies the integer and range options.
func ValidateNumber(value any, opts ...NumberOption) Result {
	var o numberOptions
	for _, opt := range opts {
		opt(&o)
	}

	n, ok := toFloat(value)
	if !ok {
		return Fail("Please enter a valid number")
	}

	var rules []Rule
	if o.integer {
		rules = append(rules, WholeNumber("Value", n))
	}
	if o.min != nil {
		rules = append(rules, MinNum("Value", n, *o.min))
	}
	if o.max != nil {
		rules = append(rules, MaxNum("Value", n, *o.max))
	}
	return Check(rules...)
}

// Number binds ValidateNumber to opts.
func Number(opts ...NumberOption) FieldValidator {
	return func(value any) Result {
		return ValidateNumber(value, opts...)
	}
}
