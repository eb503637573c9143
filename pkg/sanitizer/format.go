package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// MaxUsernameLength matches the username validator's upper bound.
	MaxUsernameLength = 30
	// MaxFilenameLength is the common filesystem limit.
	MaxFilenameLength = 255
	// MaxSearchQueryLength caps search input sent to the API.
	MaxSearchQueryLength = 200
)

// SanitizeEmail lowercases an address and keeps only characters valid in a plain address.
func SanitizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	return keepOnly(email, func(r rune) bool {
		return isLowerAlnum(r) || strings.ContainsRune("@._%+-", r)
	})
}

// SanitizeUsername lowercases, keeps [a-z0-9_-] and caps the length. Idempotent.
func SanitizeUsername(username string) string {
	username = strings.ToLower(strings.TrimSpace(username))
	username = keepOnly(username, func(r rune) bool {
		return isLowerAlnum(r) || r == '_' || r == '-'
	})
	return LimitLength(username, MaxUsernameLength)
}

// SanitizePhone keeps digits and a single leading plus sign.
func SanitizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	digits := KeepDigits(phone)
	if strings.HasPrefix(phone, "+") {
		return "+" + digits
	}
	return digits
}

// SanitizeFileName strips path components so the result is safe as a single
// file name: separators and reserved characters become "_", every ".." is
// removed, and leading dots are dropped.
func SanitizeFileName(filename string) string {
	safe := RemoveNullBytes(strings.TrimSpace(filename))
	safe = unsafeFilenameRegex.ReplaceAllString(safe, "_")

	for strings.Contains(safe, "..") {
		safe = strings.ReplaceAll(safe, "..", "")
	}

	safe = strings.TrimLeft(safe, "._ ")
	safe = LimitLength(safe, MaxFilenameLength)
	safe = strings.TrimRight(safe, " .")

	if safe == "" {
		safe = "file"
	}

	return safe
}

var searchQuery = Compose(
	Trim,
	RemoveNullBytes,
	RemoveControlSequences,
	norm.NFC.String,
	func(s string) string { return searchSpecialRegex.ReplaceAllString(s, "") },
	NormalizeWhitespace,
	func(s string) string { return LimitLength(s, MaxSearchQueryLength) },
	Trim,
)

// SanitizeSearchQuery removes characters with meaning to query parsers,
// collapses whitespace and caps the result at MaxSearchQueryLength runes.
func SanitizeSearchQuery(query string) string {
	return searchQuery(query)
}

func isLowerAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
