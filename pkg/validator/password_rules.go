package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	// Frequently compromised passwords, compared case-insensitively.
	commonPasswords = map[string]bool{
		"password":    true,
		"123456":      true,
		"12345678":    true,
		"123456789":   true,
		"password1":   true,
		"password123": true,
		"qwerty":      true,
		"qwerty123":   true,
		"abc123":      true,
		"letmein":     true,
		"welcome":     true,
		"welcome1":    true,
		"admin":       true,
		"admin123":    true,
		"iloveyou":    true,
		"monkey":      true,
		"dragon":      true,
		"sunshine":    true,
		"football":    true,
		"football1":   true,
		"cricket":     true,
		"cricket123":  true,
		"baseball":    true,
		"soccer":      true,
		"trustno1":    true,
		"1q2w3e4r":    true,
		"zaq12wsx":    true,
	}
)

const defaultPasswordMinLength = 8

// PasswordOptions controls ValidatePassword. Start from DefaultPasswordOptions;
// a non-positive MinLength falls back to 8.
type PasswordOptions struct {
	MinLength          int
	RequireUppercase   bool
	RequireLowercase   bool
	RequireNumber      bool
	RequireSpecialChar bool
	RejectCommon       bool
}

// DefaultPasswordOptions: at least 8 characters with upper, lower and a digit.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		MinLength:        defaultPasswordMinLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumber:    true,
	}
}

func PasswordMinLength(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return len([]rune(value)) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("Password must be at least %d characters", min),
			TranslationKey: "validation.password_min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

func PasswordUppercase(field, value string) Rule {
	return newRule(field, "validation.password_uppercase",
		"Password must contain at least one uppercase letter", func() bool {
			return uppercaseRegex.MatchString(value)
		})
}

func PasswordLowercase(field, value string) Rule {
	return newRule(field, "validation.password_lowercase",
		"Password must contain at least one lowercase letter", func() bool {
			return lowercaseRegex.MatchString(value)
		})
}

func PasswordDigit(field, value string) Rule {
	return newRule(field, "validation.password_digit",
		"Password must contain at least one number", func() bool {
			return digitRegex.MatchString(value)
		})
}

func PasswordSpecialChar(field, value string) Rule {
	return newRule(field, "validation.password_special",
		"Password must contain at least one special character", func() bool {
			return specialCharRegex.MatchString(value)
		})
}

func NotCommonPassword(field, value string) Rule {
	return newRule(field, "validation.password_common",
		"Password is too common, please choose a different one", func() bool {
			return !commonPasswords[strings.ToLower(value)]
		})
}

// ValidatePassword reports the first unmet requirement in this order:
// required, length, uppercase, lowercase, number, special character, common password.
func ValidatePassword(value any, opts PasswordOptions) Result {
	password := toString(value)
	minLength := opts.MinLength
	if minLength <= 0 {
		minLength = defaultPasswordMinLength
	}

	rules := []Rule{
		RequiredString("Password", password),
		PasswordMinLength("Password", password, minLength),
	}
	if opts.RequireUppercase {
		rules = append(rules, PasswordUppercase("Password", password))
	}
	if opts.RequireLowercase {
		rules = append(rules, PasswordLowercase("Password", password))
	}
	if opts.RequireNumber {
		rules = append(rules, PasswordDigit("Password", password))
	}
	if opts.RequireSpecialChar {
		rules = append(rules, PasswordSpecialChar("Password", password))
	}
	if opts.RejectCommon {
		rules = append(rules, NotCommonPassword("Password", password))
	}

	return Check(rules...)
}

// Password binds ValidatePassword to opts.
func Password(opts PasswordOptions) FieldValidator {
	return func(value any) Result {
		return ValidatePassword(value, opts)
	}
}

// ValidateConfirmPassword compares the confirmation with the original password verbatim.
func ValidateConfirmPassword(password, confirm any) Result {
	c := toString(confirm)
	if isBlank(confirm) {
		return Fail("Please confirm your password")
	}
	if toString(password) != c {
		return Fail("Passwords do not match")
	}
	return OK()
}

// ConfirmPassword returns a validator that reads the current password through get,
// so the confirmation field tracks edits to the password field.
func ConfirmPassword(get func() string) FieldValidator {
	return func(value any) Result {
		return ValidateConfirmPassword(get(), value)
	}
}
