package validator

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var (
	// local@domain.tld, no whitespace, at least one dot after the @.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

const (
	phoneMinDigits = 10
	phoneMaxDigits = 15

	usernameMinLength = 3
	usernameMaxLength = 30
)

// ValidEmail validates the simple local@domain.tld shape used by sign-up forms.
func ValidEmail(field, value string) Rule {
	return newRule(field, "validation.email", "Please enter a valid email address", func() bool {
		return emailRegex.MatchString(value)
	})
}

// ValidURL validates that a string parses as an absolute URL with scheme and host.
func ValidURL(field, value string) Rule {
	return newRule(field, "validation.url", "Please enter a valid URL", func() bool {
		u, err := url.ParseRequestURI(value)
		if err != nil {
			return false
		}
		return u.Scheme != "" && u.Host != ""
	})
}

// PhoneDigits validates the number of digits in a phone number, ignoring formatting.
func PhoneDigits(field, value string, min, max int) Rule {
	digits := countDigits(value)
	return Rule{
		Check: func() bool {
			return digits >= min && digits <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Phone number must have between %d and %d digits", min, max),
			TranslationKey: "validation.phone_digits",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

func ValidateEmail(value any) Result {
	email := strings.TrimSpace(toString(value))
	return Check(
		RequiredString("Email", email),
		ValidEmail("Email", email),
	)
}

// ValidatePhone accepts +, spaces, parentheses and hyphens; only digits are counted.
func ValidatePhone(value any) Result {
	phone := strings.TrimSpace(toString(value))
	return Check(
		RequiredString("Phone number", phone),
		PhoneDigits("Phone number", phone, phoneMinDigits, phoneMaxDigits),
	)
}

func ValidateUsername(value any) Result {
	username := strings.TrimSpace(toString(value))
	return Check(
		RequiredString("Username", username),
		MinLenString("Username", username, usernameMinLength),
		MaxLenString("Username", username, usernameMaxLength),
		MatchesPattern("Username", username, usernameRegex,
			"Username can only contain letters, numbers, underscores and hyphens"),
	)
}

func ValidateURL(value any) Result {
	raw := strings.TrimSpace(toString(value))
	return Check(
		RequiredString("URL", raw),
		ValidURL("URL", raw),
	)
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
