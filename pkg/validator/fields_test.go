package validator_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

func signupValidators() map[string]validator.FieldValidator {
	return map[string]validator.FieldValidator{
		"username": validator.ValidateUsername,
		"email":    validator.ValidateEmail,
	}
}

func TestValidateFields(t *testing.T) {
	t.Run("collects every failure", func(t *testing.T) {
		res := validator.ValidateFields(map[string]any{
			"username": "ab",
			"email":    "x",
		}, signupValidators())

		assert.False(t, res.Valid)
		want := map[string]string{
			"username": "Username must be at least 3 characters",
			"email":    "Please enter a valid email address",
		}
		if diff := cmp.Diff(want, res.Errors); diff != "" {
			t.Errorf("errors mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("valid form has no errors", func(t *testing.T) {
		res := validator.ValidateFields(map[string]any{
			"username": "john_doe",
			"email":    "john@example.com",
		}, signupValidators())

		assert.True(t, res.Valid)
		assert.Empty(t, res.Errors)
		assert.NoError(t, res.Err())
	})

	t.Run("missing field validates as nil", func(t *testing.T) {
		res := validator.ValidateFields(map[string]any{"username": "john_doe"}, signupValidators())
		assert.False(t, res.Valid)
		assert.Equal(t, "Email is required", res.Errors["email"])
	})

	t.Run("fields without validators are ignored", func(t *testing.T) {
		res := validator.ValidateFields(map[string]any{"nickname": ""}, nil)
		assert.True(t, res.Valid)
	})

	t.Run("err converts to validation errors sorted by field", func(t *testing.T) {
		res := validator.ValidateFields(map[string]any{"username": "ab", "email": "x"}, signupValidators())
		err := res.Err()
		require.Error(t, err)
		assert.True(t, errors.Is(err, validator.ErrValidationFailed))

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"email", "username"}, verrs.Fields())
	})

	t.Run("nil validator panics", func(t *testing.T) {
		assert.PanicsWithError(t, `validator: nil field validator: field "email"`, func() {
			validator.ValidateFields(map[string]any{}, map[string]validator.FieldValidator{"email": nil})
		})
	})
}

func TestValidateAndSanitizeForm(t *testing.T) {
	res := validator.ValidateAndSanitizeForm(
		map[string]any{
			"email":    "  John@Example.COM ",
			"username": "John Doe!",
			"overs":    "19.5",
			"wickets":  4,
		},
		map[string]validator.FieldValidator{
			"email":    validator.ValidateEmail,
			"username": validator.ValidateUsername,
			"overs":    validator.Overs(20),
			"wickets":  validator.ValidateWickets,
		},
		map[string]sanitizer.Func{
			"email":    sanitizer.SanitizeEmail,
			"username": sanitizer.SanitizeUsername,
			"wickets":  sanitizer.Trim,
		},
	)

	assert.True(t, res.Valid, res.Errors)
	want := map[string]any{
		"email":    "john@example.com",
		"username": "johndoe",
		"overs":    "19.5",
		"wickets":  4,
	}
	if diff := cmp.Diff(want, res.SanitizedData); diff != "" {
		t.Errorf("sanitized data mismatch (-want +got):\n%s", diff)
	}
}
