package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestInList(t *testing.T) {
	t.Run("values in list", func(t *testing.T) {
		for _, v := range []int{1, 3, 5} {
			assert.NoError(t, validator.Apply(validator.InList("wickets", v, []int{1, 2, 3, 4, 5})))
		}
	})

	t.Run("values not in list", func(t *testing.T) {
		err := validator.Apply(validator.InList("wickets", 11, []int{1, 2, 3}))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.Equal(t, "validation.in_list", errs[0].TranslationKey)
	})
}

func TestValidEnum(t *testing.T) {
	sports := validator.Sports()

	assert.NoError(t, validator.Apply(validator.ValidEnum("sport", "cricket", sports)))
	assert.Error(t, validator.Apply(validator.ValidEnum("sport", "Cricket", sports)))
	assert.NoError(t, validator.Apply(validator.ValidEnumCaseInsensitive("sport", " Cricket ", sports)))
	assert.Error(t, validator.Apply(validator.ValidEnumCaseInsensitive("sport", "hockey", sports)))
}

func TestValidMIMEType(t *testing.T) {
	tests := []struct {
		name    string
		mime    string
		allowed []string
		valid   bool
	}{
		{name: "exact match", mime: "image/png", allowed: []string{"image/png"}, valid: true},
		{name: "upper case allow-list", mime: "image/png", allowed: []string{"image/PNG"}, valid: true},
		{name: "upper case file type", mime: "IMAGE/PNG", allowed: []string{"image/png"}, valid: true},
		{name: "parameters ignored", mime: "text/plain; charset=utf-8", allowed: []string{"text/plain"}, valid: true},
		{name: "not allowed", mime: "image/svg+xml", allowed: []string{"image/png"}},
		{name: "missing type", mime: "", allowed: []string{"image/png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Apply(validator.ValidMIMEType("File", tt.mime, tt.allowed))
			assert.Equal(t, tt.valid, err == nil, err)
		})
	}

	t.Run("message names the normalised type", func(t *testing.T) {
		res := validator.Check(validator.ValidMIMEType("File", " Image/SVG+XML ", []string{"image/png"}))
		assert.Equal(t, "File type image/svg+xml is not allowed", res.Error)

		res = validator.Check(validator.ValidMIMEType("File", "", []string{"image/png"}))
		assert.Equal(t, "File type unknown is not allowed", res.Error)
	})
}
