package validator

import (
	"fmt"
	"time"
)

const dateFormat = "2006-01-02"

func PastDate(field string, value time.Time) Rule {
	return newRule(field, "validation.date_past", "Date must be in the past", func() bool {
		return value.Before(time.Now())
	})
}

func FutureDate(field string, value time.Time) Rule {
	return newRule(field, "validation.date_future", "Date must be in the future", func() bool {
		return value.After(time.Now())
	})
}

// DateNotBefore validates value >= min.
func DateNotBefore(field string, value, min time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.Before(min)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Date must be on or after %s", min.Format(dateFormat)),
			TranslationKey: "validation.date_min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min.Format(dateFormat),
			},
		},
	}
}

// DateNotAfter validates value <= max.
func DateNotAfter(field string, value, max time.Time) Rule {
	return Rule{
		Check: func() bool {
			return !value.After(max)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Date must be on or before %s", max.Format(dateFormat)),
			TranslationKey: "validation.date_max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max.Format(dateFormat),
			},
		},
	}
}

type dateOptions struct {
	min        *time.Time
	max        *time.Time
	futureOnly bool
	pastOnly   bool
}

// DateOption configures ValidateDate.
type DateOption func(*dateOptions)

func DateMin(min time.Time) DateOption {
	return func(o *dateOptions) { o.min = &min }
}

func DateMax(max time.Time) DateOption {
	return func(o *dateOptions) { o.max = &max }
}

// DateFutureOnly rejects dates at or before the moment of validation.
func DateFutureOnly() DateOption {
	return func(o *dateOptions) { o.futureOnly = true }
}

// DatePastOnly rejects dates at or after the moment of validation.
func DatePastOnly() DateOption {
	return func(o *dateOptions) { o.pastOnly = true }
}

func ValidateDate(value any, opts ...DateOption) Result {
	var o dateOptions
	for _, opt := range opts {
		opt(&o)
	}

	t, ok := toTime(value)
	if !ok {
		return Fail("Please enter a valid date")
	}

	var rules []Rule
	if o.futureOnly {
		rules = append(rules, FutureDate("Date", t))
	}
	if o.pastOnly {
		rules = append(rules, PastDate("Date", t))
	}
	if o.min != nil {
		rules = append(rules, DateNotBefore("Date", t, *o.min))
	}
	if o.max != nil {
		rules = append(rules, DateNotAfter("Date", t, *o.max))
	}
	return Check(rules...)
}

// Date binds ValidateDate to opts.
func Date(opts ...DateOption) FieldValidator {
	return func(value any) Result {
		return ValidateDate(value, opts...)
	}
}
