package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Security
	scriptTagRegex     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	eventHandlerRegex  = regexp.MustCompile(`(?i)\s*on\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]+)`)
	jsProtocolRegex    = regexp.MustCompile(`(?i)javascript\s*:`)
	ansiEscapeRegex    = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	searchSpecialRegex = regexp.MustCompile(`[<>"'%;()&+\\]`)

	// Filename sanitization
	unsafeFilenameRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)
