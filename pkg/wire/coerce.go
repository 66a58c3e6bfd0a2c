package wire

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// String coerces v into a string. Numbers and booleans are formatted, maps
// and lists are JSON-encoded, nil is undefined.
func String(v any) (string, bool) {
	switch t := Decode(v).(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), true
	case int:
		return strconv.Itoa(t), true
	case int32:
		return strconv.FormatInt(int64(t), 10), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case json.Number:
		return t.String(), true
	default:
		data, err := json.Marshal(DecodeDeep(t))
		if err != nil {
			return "", false
		}
		return string(data), true
	}
}

// Number coerces v into a float64. NaN and infinities never escape.
func Number(v any) (float64, bool) {
	var f float64
	switch t := Decode(v).(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Bool coerces v into a bool. Only native booleans and the strings "true" and
// "false" (any case, surrounding space ignored) are recognized.
func Bool(v any) (bool, bool) {
	switch t := Decode(v).(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// Strings coerces v into an ordered list of non-empty strings. A string
// holding a JSON array is parsed, a comma or semicolon delimited string is
// split, any other non-empty string becomes a single element.
func Strings(v any) ([]string, bool) {
	return strs(Decode(v), 0)
}

func strs(v any, depth int) ([]string, bool) {
	if depth > 1 {
		return nil, false
	}
	var out []string
	switch t := v.(type) {
	case nil:
		return nil, false
	case []string:
		for _, s := range t {
			if s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range t {
			if s, ok := String(item); ok && s != "" {
				out = append(out, s)
			}
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return nil, false
		}
		if strings.HasPrefix(s, "[") {
			var parsed []any
			if err := json.Unmarshal([]byte(s), &parsed); err == nil {
				return strs(parsed, depth+1)
			}
			return []string{s}, true
		}
		if strings.ContainsAny(s, ",;") {
			for _, part := range strings.FieldsFunc(s, isDelimiter) {
				if part = strings.TrimSpace(part); part != "" {
					out = append(out, part)
				}
			}
			break
		}
		return []string{s}, true
	default:
		if s, ok := String(t); ok && s != "" {
			return []string{s}, true
		}
		return nil, false
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func isDelimiter(r rune) bool {
	return r == ',' || r == ';'
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time coerces v into a UTC time. Strings are tried against the layouts the
// producer has used; numbers are epoch seconds, or milliseconds when large.
func Time(v any) (time.Time, bool) {
	switch t := Decode(v).(type) {
	case time.Time:
		return t.UTC(), !t.IsZero()
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.UTC(), true
			}
		}
		if n, ok := Number(s); ok {
			return epoch(n)
		}
		return time.Time{}, false
	default:
		if n, ok := Number(t); ok {
			return epoch(n)
		}
	}
	return time.Time{}, false
}

func epoch(n float64) (time.Time, bool) {
	if n <= 0 {
		return time.Time{}, false
	}
	// 1e11 seconds is the year 5138; anything above is milliseconds.
	if n > 1e11 {
		return time.UnixMilli(int64(n)).UTC(), true
	}
	return time.Unix(int64(n), 0).UTC(), true
}

// Object returns v as a fully decoded map or list. A string holding JSON is
// parsed first. Anything else is undefined.
func Object(v any) (any, bool) {
	switch t := Decode(v).(type) {
	case map[string]any, []any:
		return DecodeDeep(t), true
	case string:
		s := strings.TrimSpace(t)
		if !strings.HasPrefix(s, "{") && !strings.HasPrefix(s, "[") {
			return nil, false
		}
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err != nil {
			return nil, false
		}
		return DecodeDeep(parsed), true
	}
	return nil, false
}

// Map is Object restricted to maps.
func Map(v any) (map[string]any, bool) {
	obj, ok := Object(v)
	if !ok {
		return nil, false
	}
	m, ok := obj.(map[string]any)
	return m, ok
}

// StringPtr returns nil when v is undefined.
func StringPtr(v any) *string {
	s, ok := String(v)
	if !ok {
		return nil
	}
	return &s
}

// NumberPtr returns nil when v is undefined.
func NumberPtr(v any) *float64 {
	f, ok := Number(v)
	if !ok {
		return nil
	}
	return &f
}

// IntPtr truncates the coerced number towards zero.
func IntPtr(v any) *int64 {
	f, ok := Number(v)
	if !ok {
		return nil
	}
	i := int64(f)
	return &i
}

// BoolPtr returns nil when v is undefined.
func BoolPtr(v any) *bool {
	b, ok := Bool(v)
	if !ok {
		return nil
	}
	return &b
}

// StringsOrNil returns nil when v is undefined.
func StringsOrNil(v any) []string {
	out, _ := Strings(v)
	return out
}

// TimePtr returns nil when v is undefined.
func TimePtr(v any) *time.Time {
	t, ok := Time(v)
	if !ok {
		return nil
	}
	return &t
}
