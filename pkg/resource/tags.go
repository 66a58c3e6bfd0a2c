package resource

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/yairfalse/onevision/pkg/wire"
)

// Tag is a single key/value pair. A resource's tag list keeps store order
// and may repeat keys.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

var (
	tagKeyFields   = []string{"Key", "key", "KEY", "Name", "name"}
	tagValueFields = []string{"Value", "value", "VALUE"}
)

// NormalizeTags accepts a list of key/value objects, a plain object, or a
// JSON string holding either, and returns the tags in canonical form.
// A string that does not parse as JSON means no tags.
func NormalizeTags(v any) []Tag {
	return normalizeTags(v, false)
}

func normalizeTags(v any, parsed bool) []Tag {
	switch t := wire.DecodeDeep(v).(type) {
	case []any:
		return tagsFromList(t)
	case map[string]any:
		if isTagPair(t) {
			return tagsFromList([]any{t})
		}
		return tagsFromObject(t)
	case string:
		if parsed {
			return nil
		}
		s := strings.TrimSpace(t)
		if s == "" {
			return nil
		}
		var decoded any
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil
		}
		return normalizeTags(decoded, true)
	}
	return nil
}

func tagsFromList(items []any) []Tag {
	var tags []Tag
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		key, ok := firstString(obj, tagKeyFields)
		if !ok || key == "" {
			continue
		}
		value, _ := firstString(obj, tagValueFields)
		tags = append(tags, Tag{Key: key, Value: value})
	}
	return tags
}

// tagsFromObject sorts keys since map iteration order is random.
func tagsFromObject(obj map[string]any) []Tag {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var tags []Tag
	for _, k := range keys {
		value, _ := wire.String(obj[k])
		tags = append(tags, Tag{Key: k, Value: value})
	}
	return tags
}

// isTagPair reports whether obj is a lone {Key, Value} object rather than a
// key-to-value mapping.
func isTagPair(obj map[string]any) bool {
	if len(obj) != 2 {
		return false
	}
	_, hasKey := firstString(obj, tagKeyFields[:3])
	_, hasValue := firstString(obj, tagValueFields)
	return hasKey && hasValue
}

func firstString(obj map[string]any, fields []string) (string, bool) {
	for _, f := range fields {
		if raw, ok := obj[f]; ok {
			if s, ok := wire.String(raw); ok {
				return s, true
			}
		}
	}
	return "", false
}

// NameTag returns the value of the first tag named "name", ignoring case.
func NameTag(tags []Tag) (string, bool) {
	for _, t := range tags {
		if strings.EqualFold(t.Key, "name") {
			return t.Value, true
		}
	}
	return "", false
}

// TagValue returns the value of the first tag whose key equals key exactly.
func TagValue(tags []Tag, key string) (string, bool) {
	for _, t := range tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}
