package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/yairfalse/onevision/pkg/resource"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResources(w io.Writer, rs []resource.Resource) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "TYPE\tID\tNAME\tACCOUNT\tREGION")
	for _, r := range rs {
		b := r.Common()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.Type, b.ID, dash(b.Name), dash(b.AccountID), dash(b.Region))
	}
	return tw.Flush()
}

// formatCell renders an export cell for a text table.
func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	case []any:
		parts := make([]string, len(c))
		for i, item := range c {
			parts[i] = formatCell(item)
		}
		return strings.Join(parts, ", ")
	default:
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Sprint(c)
		}
		return string(data)
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func sortedCounts(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
