package validator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// toString renders a field value as text. nil and nil pointers become "".
func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// isBlank reports nil, empty and whitespace-only strings. Non-string values are never blank.
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case *string:
		return v == nil || strings.TrimSpace(*v) == ""
	case []byte:
		return strings.TrimSpace(string(v)) == ""
	default:
		return false
	}
}

// toFloat parses numeric input. Strings are trimmed; NaN and infinities are rejected.
func toFloat(value any) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	default:
		s := strings.TrimSpace(toString(value))
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// toTime parses date input. Numbers are Unix milliseconds; JSON and YAML
// decoders hand them over as float64.
func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case int:
		return time.UnixMilli(int64(v)), true
	case int8:
		return time.UnixMilli(int64(v)), true
	case int16:
		return time.UnixMilli(int64(v)), true
	case int32:
		return time.UnixMilli(int64(v)), true
	case int64:
		return time.UnixMilli(v), true
	case uint:
		return unixMilliUint(uint64(v))
	case uint8:
		return time.UnixMilli(int64(v)), true
	case uint16:
		return time.UnixMilli(int64(v)), true
	case uint32:
		return time.UnixMilli(int64(v)), true
	case uint64:
		return unixMilliUint(v)
	case float32:
		return unixMilliFloat(float64(v))
	case float64:
		return unixMilliFloat(v)
	}

	s := strings.TrimSpace(toString(value))
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func unixMilliUint(v uint64) (time.Time, bool) {
	if v > math.MaxInt64 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(v)), true
}

func unixMilliFloat(v float64) (time.Time, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return time.Time{}, false
	}
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(v)), true
}
