package export

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Rows resolves cols against each record. Records are anything that
// marshals to a JSON object, normally resource.Resource or metric.Metric
// values, so cells come out as canonical JSON types: string, float64,
// bool, []any, map[string]any, or nil when the key does not resolve.
func Rows[T any](records []T, cols []Column) ([][]any, error) {
	rows := make([][]any, 0, len(records))
	for i, rec := range records {
		doc, err := document(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		row := make([]any, len(cols))
		for j, col := range cols {
			v := Resolve(doc, col.Key)
			if col.Transform != nil && v != nil {
				v = col.Transform(v)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func document(rec any) (map[string]any, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("record is not an object: %w", err)
	}
	return doc, nil
}

// Resolve walks a dotted key through doc. A segment applied to a tag list
// selects the value of the tag with that key.
func Resolve(doc map[string]any, key string) any {
	var cur any = doc
	for _, seg := range strings.Split(key, ".") {
		switch v := cur.(type) {
		case map[string]any:
			next, ok := v[seg]
			if !ok {
				return nil
			}
			cur = next
		case []any:
			cur = tagValue(v, seg)
			if cur == nil {
				return nil
			}
		default:
			return nil
		}
	}
	return cur
}

func tagValue(items []any, key string) any {
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil
		}
		if k, _ := m["Key"].(string); k == key {
			return m["Value"]
		}
	}
	return nil
}
