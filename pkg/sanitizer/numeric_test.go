package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestSanitizeNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		cfg      sanitizer.NumberConfig
		expected string
	}{
		{
			name:     "extracts digits from currency",
			input:    "$1,234.50",
			cfg:      sanitizer.NumberConfig{AllowDecimal: true},
			expected: "1234.50",
		},
		{
			name:     "drops decimal point when not allowed",
			input:    "12.5",
			cfg:      sanitizer.NumberConfig{},
			expected: "125",
		},
		{
			name:     "keeps only first decimal point",
			input:    "1.2.3",
			cfg:      sanitizer.NumberConfig{AllowDecimal: true},
			expected: "1.23",
		},
		{
			name:     "keeps leading minus when allowed",
			input:    "-42",
			cfg:      sanitizer.NumberConfig{AllowNegative: true},
			expected: "-42",
		},
		{
			name:     "drops minus when not allowed",
			input:    "-42",
			cfg:      sanitizer.NumberConfig{},
			expected: "42",
		},
		{
			name:     "prefixes bare fraction with zero",
			input:    ".5",
			cfg:      sanitizer.NumberConfig{AllowDecimal: true},
			expected: "0.5",
		},
		{
			name:     "returns default for no digits",
			input:    "abc",
			cfg:      sanitizer.NumberConfig{Default: "0"},
			expected: "0",
		},
		{
			name:     "returns default for lone minus",
			input:    "-",
			cfg:      sanitizer.NumberConfig{AllowNegative: true, Default: "0"},
			expected: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeNumber(tt.input, tt.cfg))
		})
	}
}

func TestSanitizeInteger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		cfg      sanitizer.NumberConfig
		expected string
	}{
		{name: "truncates fraction", input: "12.7", expected: "12"},
		{name: "ignores AllowDecimal", input: "3.9", cfg: sanitizer.NumberConfig{AllowDecimal: true}, expected: "3"},
		{name: "keeps sign when allowed", input: " -7 runs", cfg: sanitizer.NumberConfig{AllowNegative: true}, expected: "-7"},
		{name: "returns default", input: ".5", cfg: sanitizer.NumberConfig{Default: "0"}, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.SanitizeInteger(tt.input, tt.cfg))
		})
	}

	t.Run("factory binds config", func(t *testing.T) {
		t.Parallel()
		clean := sanitizer.Integer(sanitizer.NumberConfig{Default: "0"})
		assert.Equal(t, "150", clean("150 runs"))
		assert.Equal(t, "0", clean("none"))
	})
}
