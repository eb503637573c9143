package sanitizer

// Func is a string cleaner. Field sanitizers in form definitions use this shape.
type Func func(string) string

// Apply runs value through transforms in order. Nil transforms are skipped.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		if transform != nil {
			value = transform(value)
		}
	}
	return value
}

// Compose binds transforms into one reusable cleaner.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}

// Chain composes field sanitizers, e.g. a form definition listing
// "trim,email" for one field. Nil entries are skipped; an empty chain
// returns its input unchanged.
func Chain(fns ...Func) Func {
	transforms := make([]func(string) string, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			transforms = append(transforms, fn)
		}
	}
	return Compose(transforms...)
}
