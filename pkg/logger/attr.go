package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// FormID records the form identifier under the key "form_id".
// If id is empty, it returns an empty Attr.
func FormID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("form_id", id)
}

// Field records a form field name under the key "field".
// If name is empty, it returns an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// FieldCount records how many fields an operation touched under the key "field_count".
func FieldCount(n int) slog.Attr {
	return slog.Int("field_count", n)
}

// Store records the error repository backend under the key "store".
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
