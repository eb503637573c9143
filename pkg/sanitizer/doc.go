// Package sanitizer provides the input cleaners that run before form values
// are validated or sent to the API.
//
// The functions are grouped conceptually into several areas:
//
//   - Strings: trimming, case folding, whitespace normalisation and length
//     limits.
//
//   - Format: account and search fields: e-mail addresses, usernames, phone
//     numbers, file names and search queries.
//
//   - Numeric: extraction of numeric strings from formatted input with
//     optional sign and decimal handling.
//
//   - Security: HTML escaping for plain text, policy-based cleaning of rich
//     text (bluemonday UGC policy) and rejection of executable URL schemes.
//
//   - Collections: SanitizeObject applies per-key cleaners to a whole form
//     payload.
//
// Every cleaner has the Func shape, func(string) string, or a factory that
// returns one. Apply and Compose build pipelines; Chain joins Func values:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// # Usage
//
//	import "github.com/dmitrymomot/formkit/pkg/sanitizer"
//
//	email := sanitizer.SanitizeEmail(" Test@Example.COM ") // "test@example.com"
//	name := sanitizer.SanitizeFileName("../../etc/passwd")  // "etc_passwd"
//
// # Error handling
//
// None of the helpers returns an error; they always fall back to a safe result
// (usually an empty string or a configured default) when input cannot be cleaned.
//
// The package holds no mutable state apart from a lazily built HTML policy
// and is safe for concurrent use.
package sanitizer
