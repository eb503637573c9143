package sanitizer

import "strings"

// NumberConfig controls numeric extraction.
// Default is returned when the input holds no digits.
type NumberConfig struct {
	AllowNegative bool
	AllowDecimal  bool
	Default       string
}

// SanitizeNumber extracts a numeric string from formatted input such as
// "$1,234.50". A leading minus survives only when AllowNegative is set and
// only the first decimal point survives when AllowDecimal is set.
func SanitizeNumber(raw string, cfg NumberConfig) string {
	s := strings.TrimSpace(raw)
	negative := cfg.AllowNegative && strings.HasPrefix(s, "-")

	var b strings.Builder
	seenDot := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' && cfg.AllowDecimal && !seenDot:
			seenDot = true
			b.WriteRune(r)
		}
	}

	out := strings.TrimSuffix(b.String(), ".")
	if out == "" {
		return cfg.Default
	}
	if strings.HasPrefix(out, ".") {
		out = "0" + out
	}
	if negative {
		out = "-" + out
	}
	return out
}

// SanitizeInteger is SanitizeNumber that truncates at the first decimal point.
func SanitizeInteger(raw string, cfg NumberConfig) string {
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	cfg.AllowDecimal = false
	return SanitizeNumber(raw, cfg)
}

// Number binds SanitizeNumber to cfg.
func Number(cfg NumberConfig) Func {
	return func(s string) string { return SanitizeNumber(s, cfg) }
}

// Integer binds SanitizeInteger to cfg.
func Integer(cfg NumberConfig) Func {
	return func(s string) string { return SanitizeInteger(s, cfg) }
}
