// Package wire unwraps the document store's tagged-union value encoding and
// coerces loosely typed values into Go scalars.
package wire

import (
	"strconv"
	"strings"
)

// Record is a raw record as received from the store: field name to a value
// that may or may not be tagged.
type Record = map[string]any

// MaxDepth bounds recursion through nested maps and lists.
const MaxDepth = 64

// Wire tags used by the document store to encode a value's type.
const (
	TagString    = "S"
	TagNumber    = "N"
	TagBool      = "BOOL"
	TagNull      = "NULL"
	TagMap       = "M"
	TagList      = "L"
	TagStringSet = "SS"
	TagNumberSet = "NS"
)

// Decode unwraps a single tagged wrapper such as {"N": "3.5"} into its native
// value. Maps and lists inside M and L wrappers are decoded recursively.
// Anything that is not a recognizable wrapper is returned unchanged.
//
// Decode is idempotent for scalar wrappers. It is not for an M payload whose
// only attribute carries a tag name: {"M": {"S": {"S": "x"}}} decodes to
// {"S": "x"}, which a second Decode reads as a wrapper and turns into "x".
// Decode once per stored value.
func Decode(v any) any {
	return decode(v, 0)
}

// DecodeDeep decodes v and every value nested inside it, for records whose
// degree of wrapping is unknown.
func DecodeDeep(v any) any {
	return decodeDeep(v, 0)
}

func decode(v any, depth int) any {
	if depth > MaxDepth {
		return v
	}
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return v
	}
	for tag, payload := range m {
		if out, ok := unwrap(tag, payload, depth); ok {
			return out
		}
	}
	return v
}

// IsWrapped reports whether v is a tagged wrapper Decode would unwrap.
func IsWrapped(v any) bool {
	m, ok := v.(map[string]any)
	if !ok || len(m) != 1 {
		return false
	}
	for tag, payload := range m {
		if _, ok := unwrap(tag, payload, 0); ok {
			return true
		}
	}
	return false
}

func unwrap(tag string, payload any, depth int) (any, bool) {
	switch tag {
	case TagString:
		s, ok := payload.(string)
		return s, ok
	case TagNumber:
		return unwrapNumber(payload)
	case TagBool:
		switch b := payload.(type) {
		case bool:
			return b, true
		case string:
			parsed, err := strconv.ParseBool(strings.TrimSpace(b))
			if err != nil {
				return nil, false
			}
			return parsed, true
		}
		return nil, false
	case TagNull:
		if b, ok := payload.(bool); ok && b {
			return nil, true
		}
		return nil, false
	case TagMap:
		inner, ok := payload.(map[string]any)
		if !ok {
			return nil, false
		}
		out := make(map[string]any, len(inner))
		for k, item := range inner {
			out[k] = decode(item, depth+1)
		}
		return out, true
	case TagList:
		inner, ok := payload.([]any)
		if !ok {
			return nil, false
		}
		out := make([]any, len(inner))
		for i, item := range inner {
			out[i] = decode(item, depth+1)
		}
		return out, true
	case TagStringSet:
		inner, ok := payload.([]any)
		if !ok {
			return nil, false
		}
		out := make([]any, 0, len(inner))
		for _, item := range inner {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	case TagNumberSet:
		inner, ok := payload.([]any)
		if !ok {
			return nil, false
		}
		out := make([]any, 0, len(inner))
		for _, item := range inner {
			n, ok := unwrapNumber(item)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	}
	return nil, false
}

// unwrapNumber accepts the string payload the store uses for numbers, and a
// native number for producers that skipped the string step. An unparsable
// string is kept as-is so the numeric coercer can reject it later.
func unwrapNumber(payload any) (any, bool) {
	switch n := payload.(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return n, true
		}
		return f, true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return nil, false
}

func decodeDeep(v any, depth int) any {
	if depth > MaxDepth {
		return v
	}
	v = decode(v, depth)
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = decodeDeep(item, depth+1)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = decodeDeep(item, depth+1)
		}
		return out
	}
	return v
}
