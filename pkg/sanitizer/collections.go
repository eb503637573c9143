package sanitizer

// SanitizeObject cleans every string value of obj with the sanitizer registered
// for its key, falling back to SanitizeText. Non-string values pass through.
// A nil map yields an empty map; the input is never modified.
func SanitizeObject(obj map[string]any, sanitizers map[string]Func) map[string]any {
	result := make(map[string]any, len(obj))

	for key, value := range obj {
		s, ok := value.(string)
		if !ok {
			result[key] = value
			continue
		}
		if clean := sanitizers[key]; clean != nil {
			result[key] = clean(s)
			continue
		}
		result[key] = SanitizeText(s)
	}

	return result
}

// SanitizeFields cleans string values that have a registered sanitizer.
// Unlike SanitizeObject there is no fallback: other values pass through unchanged.
func SanitizeFields(fields map[string]any, sanitizers map[string]Func) map[string]any {
	result := make(map[string]any, len(fields))

	for key, value := range fields {
		clean := sanitizers[key]
		if s, ok := value.(string); ok && clean != nil {
			result[key] = clean(s)
			continue
		}
		result[key] = value
	}

	return result
}
