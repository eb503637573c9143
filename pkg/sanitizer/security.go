package sanitizer

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/unicode/norm"
)

var (
	htmlPolicyOnce sync.Once
	htmlPolicy     *bluemonday.Policy
)

// EscapeHTML escapes HTML special characters to prevent XSS attacks.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripScriptTags removes all <script> tags and their content.
func StripScriptTags(s string) string {
	return scriptTagRegex.ReplaceAllString(s, "")
}

// RemoveJavaScriptEvents removes on* event handler attributes and javascript: protocols.
func RemoveJavaScriptEvents(s string) string {
	result := eventHandlerRegex.ReplaceAllString(s, "")
	return jsProtocolRegex.ReplaceAllString(result, "")
}

// RemoveNullBytes removes null bytes that could cause issues in C-based systems.
func RemoveNullBytes(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// RemoveControlSequences removes ANSI escape sequences and other control characters.
func RemoveControlSequences(s string) string {
	result := ansiEscapeRegex.ReplaceAllString(s, "")

	// Keep common whitespace controls
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, result)
}

// SanitizeText prepares free text for display: trims it, drops control
// characters, normalizes to NFC and escapes HTML entities.
func SanitizeText(s string) string {
	return Apply(s,
		Trim,
		RemoveNullBytes,
		RemoveControlSequences,
		norm.NFC.String,
		EscapeHTML,
	)
}

// SanitizeHTML keeps safe formatting markup and removes scripts, event
// handlers and javascript: links.
func SanitizeHTML(s string) string {
	s = StripScriptTags(s)
	s = RemoveJavaScriptEvents(s)
	return strings.TrimSpace(htmlSanitizer().Sanitize(s))
}

func htmlSanitizer() *bluemonday.Policy {
	htmlPolicyOnce.Do(func() {
		htmlPolicy = bluemonday.UGCPolicy()
	})
	return htmlPolicy
}

// SanitizeURL removes dangerous elements from URLs while preserving valid structure.
// URLs with an executable or local scheme are rejected entirely.
func SanitizeURL(url string) string {
	result := strings.TrimSpace(url)

	dangerous := []string{
		"javascript:", "data:", "vbscript:", "file:",
	}

	lower := strings.ToLower(strings.Join(strings.Fields(result), ""))
	for _, protocol := range dangerous {
		if strings.HasPrefix(lower, protocol) {
			return ""
		}
	}

	result = RemoveJavaScriptEvents(result)
	result = strings.ReplaceAll(result, "<", "")
	result = strings.ReplaceAll(result, ">", "")

	return strings.TrimSpace(result)
}
