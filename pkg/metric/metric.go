// Package metric reconstructs flattened aggregate-statistics records into
// metrics whose catalogue values are always numbers.
package metric

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/yairfalse/onevision/pkg/wire"
)

// Payload fields that may hold the embedded JSON statistics, in order.
var payloadFields = []string{"metricData", "payload", "data"}

// Metric is a normalized statistics record.
type Metric struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"metricType"`
	AccountID   string    `json:"accountId"`
	AccountName string    `json:"accountName,omitempty"`
	Region      string    `json:"region"`
	MetricDate  string    `json:"metricDate,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	UpdatedAt   time.Time `json:"updatedAt,omitzero"`
	LastUpdated time.Time `json:"lastUpdated,omitzero"`

	// Values maps flat metric names to numbers. Every name in
	// Catalogue(Kind) is present.
	Values map[string]float64 `json:"-"`

	// TotalResources is totalResources, or resourcesProcessed when the
	// former is absent or zero.
	TotalResources float64 `json:"resolvedTotalResources"`

	AccountDistribution any `json:"accountDistribution,omitempty"`
	RegionDistribution  any `json:"regionDistribution,omitempty"`
	RecentResources     any `json:"recentResources,omitempty"`
}

// Value returns the named value, zero when absent.
func (m Metric) Value(name string) float64 {
	return m.Values[name]
}

// Names returns the populated value names, sorted.
func (m Metric) Names() []string {
	names := make([]string, 0, len(m.Values))
	for n := range m.Values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// MarshalJSON writes Values as top-level fields next to the identity
// fields, the flat shape the collector stores. Identity fields win on
// conflicting names.
func (m Metric) MarshalJSON() ([]byte, error) {
	type plain Metric
	base, err := json.Marshal(plain(m))
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, err
	}
	out := make(map[string]any, len(fields)+len(m.Values))
	for k, v := range m.Values {
		out[k] = v
	}
	for k, v := range fields {
		out[k] = v
	}
	return json.Marshal(out)
}

// IsMetricRecord reports whether raw is a statistics record rather than a
// resource. The collector marks them with isMetric, a METRIC resource type
// or a METRICS- id.
func IsMetricRecord(raw wire.Record) bool {
	if b, ok := wire.Bool(raw["isMetric"]); ok && b {
		return true
	}
	if t, ok := wire.String(raw["resourceType"]); ok && strings.HasPrefix(t, "METRIC") {
		return true
	}
	if id, ok := wire.String(raw["id"]); ok && strings.HasPrefix(id, "METRICS-") {
		return true
	}
	return false
}

// Discriminant returns the metric kind: metricType, else resourceType with
// the legacy METRIC_ prefix removed. Hyphens become underscores.
func Discriminant(raw wire.Record) Kind {
	if s, ok := wire.String(raw["metricType"]); ok && strings.TrimSpace(s) != "" {
		return canonicalKind(s)
	}
	if s, ok := wire.String(raw["resourceType"]); ok && strings.TrimSpace(s) != "" {
		return canonicalKind(s)
	}
	return ""
}

func canonicalKind(s string) Kind {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "_")
	switch {
	case s == "METRIC_SUMMARY":
		return KindGlobalSummary
	case strings.HasPrefix(s, "METRIC_"):
		return Kind(strings.TrimPrefix(s, "METRIC_"))
	}
	return Kind(s)
}
