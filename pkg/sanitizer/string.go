package sanitizer

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// NormalizeWhitespace prevents layout issues from multiple spaces, tabs, and newlines.
func NormalizeWhitespace(s string) string {
	normalized := whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(normalized)
}

// LimitLength truncates input to maxLength runes.
func LimitLength(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}

	return string(runes[:maxLength])
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// keepOnly returns s with every rune rejected by allow removed.
func keepOnly(s string, allow func(r rune) bool) string {
	return strings.Map(func(r rune) rune {
		if allow(r) {
			return r
		}
		return -1
	}, s)
}
