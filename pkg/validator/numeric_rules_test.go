package validator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestMinMaxNum(t *testing.T) {
	t.Run("min passes at bound", func(t *testing.T) {
		rule := validator.MinNum("Age", 18, 18)
		assert.True(t, rule.Check())
		assert.Equal(t, "Age must be at least 18", rule.Error.Message)
		assert.Equal(t, "validation.min", rule.Error.TranslationKey)
	})

	t.Run("max fails above bound", func(t *testing.T) {
		rule := validator.MaxNum("Overs", 21.5, 20.0)
		assert.False(t, rule.Check())
		assert.Equal(t, "Overs must be at most 20", rule.Error.Message)
	})
}

func TestValidateNumber(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		opts    []validator.NumberOption
		valid   bool
		message string
	}{
		{name: "above max", value: 25, opts: []validator.NumberOption{validator.NumberMax(20)}, message: "Value must be at most 20"},
		{name: "within range", value: 10, opts: []validator.NumberOption{validator.NumberMin(5), validator.NumberMax(20)}, valid: true},
		{name: "below min", value: 3, opts: []validator.NumberOption{validator.NumberMin(5)}, message: "Value must be at least 5"},
		{name: "numeric string", value: " 12.5 ", valid: true},
		{name: "not numeric", value: "abc", message: "Please enter a valid number"},
		{name: "empty", value: "", message: "Please enter a valid number"},
		{name: "nil", value: nil, message: "Please enter a valid number"},
		{name: "nan", value: math.NaN(), message: "Please enter a valid number"},
		{name: "fraction rejected for integer", value: 2.5, opts: []validator.NumberOption{validator.NumberInteger()}, message: "Value must be a whole number"},
		{name: "whole float accepted for integer", value: 2.0, opts: []validator.NumberOption{validator.NumberInteger()}, valid: true},
		{name: "negative with zero min", value: "-1", opts: []validator.NumberOption{validator.NumberMin(0)}, message: "Value must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.ValidateNumber(tt.value, tt.opts...)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.message, res.Error)
		})
	}

	t.Run("factory binds options", func(t *testing.T) {
		validate := validator.Number(validator.NumberMin(0), validator.NumberMax(6))
		assert.True(t, validate("4").Valid)
		assert.False(t, validate(7).Valid)
	})
}
