// Package export resolves column specifications against normalized
// records, producing the cell values a tabular writer needs.
package export

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Column is one output column. Key may be dotted to reach nested values.
type Column struct {
	Key       string
	Label     string
	Transform func(any) any
}

type columnSpec struct {
	Key       string `yaml:"key"`
	Label     string `yaml:"label"`
	Transform string `yaml:"transform"`
}

type columnFile struct {
	Columns []columnSpec `yaml:"columns"`
}

var transforms = map[string]func(any) any{
	"upper": upper,
	"lower": lower,
	"join":  join,
	"bytes": humanBytes,
}

// DefaultColumns is used when no column file is given.
func DefaultColumns() []Column {
	return []Column{
		{Key: "id", Label: "ID"},
		{Key: "resourceType", Label: "Type"},
		{Key: "name", Label: "Name"},
		{Key: "accountId", Label: "Account"},
		{Key: "region", Label: "Region"},
		{Key: "tags", Label: "Tags", Transform: join},
	}
}

// LoadColumns reads a YAML column file.
func LoadColumns(path string) ([]Column, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is intentional user input
	if err != nil {
		return nil, fmt.Errorf("read column file: %w", err)
	}
	return ParseColumns(data)
}

// ParseColumns parses a YAML column document:
//
//	columns:
//	  - key: tags.env
//	    label: Environment
//	    transform: upper
func ParseColumns(data []byte) ([]Column, error) {
	var f columnFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse column file: %w", err)
	}
	if len(f.Columns) == 0 {
		return nil, fmt.Errorf("column file defines no columns")
	}

	cols := make([]Column, 0, len(f.Columns))
	for i, spec := range f.Columns {
		if spec.Key == "" {
			return nil, fmt.Errorf("column %d: key is required", i+1)
		}
		col := Column{Key: spec.Key, Label: spec.Label}
		if col.Label == "" {
			col.Label = spec.Key
		}
		if spec.Transform != "" {
			fn, ok := transforms[strings.ToLower(spec.Transform)]
			if !ok {
				return nil, fmt.Errorf("column %q: unknown transform %q", spec.Key, spec.Transform)
			}
			col.Transform = fn
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// Header returns the column labels.
func Header(cols []Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Label
	}
	return out
}

func upper(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToUpper(s)
	}
	return v
}

func lower(v any) any {
	if s, ok := v.(string); ok {
		return strings.ToLower(s)
	}
	return v
}

// join flattens a list into one comma separated string. Tag objects
// render as key=value.
func join(v any) any {
	items, ok := v.([]any)
	if !ok {
		return v
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			if k, ok := m["Key"].(string); ok {
				parts = append(parts, fmt.Sprintf("%s=%v", k, m["Value"]))
				continue
			}
		}
		parts = append(parts, fmt.Sprint(item))
	}
	return strings.Join(parts, ", ")
}

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// humanBytes renders a byte count as "59.28 TB". Strings pass through,
// since the collector sometimes stores sizes already formatted.
func humanBytes(v any) any {
	n, ok := v.(float64)
	if !ok {
		return v
	}
	i := 0
	for n >= 1024 && i < len(byteUnits)-1 {
		n /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", n, byteUnits[i])
	}
	return fmt.Sprintf("%.2f %s", n, byteUnits[i])
}
