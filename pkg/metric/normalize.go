package metric

import (
	"sort"
	"time"

	"github.com/yairfalse/onevision/pkg/wire"
)

// Normalize shapes a raw statistics record. Sources are consulted in a
// fixed order and the first to populate a name wins:
//
//  1. flat fields on the record itself (dotted keys read as underscores)
//  2. flat fields of the embedded payload, then its resourceCounts object
//  3. legacy nested blocks on the record, then on the payload
//
// Catalogue names still unset after that default to 0.
func Normalize(raw wire.Record) Metric {
	if raw == nil {
		raw = wire.Record{}
	}
	kind := Discriminant(raw)
	m := Metric{
		ID:          str(raw["id"]),
		Kind:        kind,
		AccountID:   str(raw["accountId"]),
		AccountName: str(raw["accountName"]),
		Region:      str(raw["region"]),
		MetricDate:  str(raw["metricDate"]),
		CreatedAt:   when(raw["createdAt"]),
		UpdatedAt:   when(raw["updatedAt"]),
		LastUpdated: when(raw["lastUpdated"]),
		Values:      make(map[string]float64),
	}

	payload := embeddedPayload(raw)

	m.hydrateFlat(raw)
	if payload != nil {
		m.hydrateFlat(payload)
		m.hydrateResourceCounts(payload["resourceCounts"])
	}

	m.liftBlocks(raw)
	if payload != nil {
		m.liftBlocks(payload)
	}

	for _, name := range Catalogue(kind) {
		if _, ok := m.Values[name]; !ok {
			m.Values[name] = 0
		}
	}

	m.TotalResources = m.Values["totalResources"]
	if m.TotalResources == 0 {
		m.TotalResources = m.Values["resourcesProcessed"]
	}

	m.AccountDistribution = breakdown(raw, payload, "accountDistribution")
	m.RegionDistribution = breakdown(raw, payload, "regionDistribution")
	m.RecentResources = breakdown(raw, payload, "recentResources")
	return m
}

// NormalizeAll normalizes raws in order.
func NormalizeAll(raws []wire.Record) []Metric {
	out := make([]Metric, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// set stores v under name unless name is already populated.
func (m *Metric) set(name string, v any) {
	if _, ok := m.Values[name]; ok {
		return
	}
	if n, ok := wire.Number(v); ok {
		m.Values[name] = n
	}
}

// hydrateFlat reads underscore keys before dotted ones so that a record
// carrying both spellings resolves the same way every time.
func (m *Metric) hydrateFlat(src map[string]any) {
	var dotted []string
	for key, v := range src {
		name := flatten(key)
		if !IsNumericName(name) {
			continue
		}
		if name != key {
			dotted = append(dotted, key)
			continue
		}
		m.set(name, v)
	}
	sort.Strings(dotted)
	for _, key := range dotted {
		m.set(flatten(key), src[key])
	}
}

func (m *Metric) hydrateResourceCounts(v any) {
	counts, ok := wire.Map(v)
	if !ok {
		return
	}
	for kind, n := range counts {
		m.set(ResourceCountName(kind), n)
	}
}

func (m *Metric) liftBlocks(src map[string]any) {
	for _, block := range legacyBlocks {
		sub, ok := wire.Map(src[block.field])
		if !ok {
			continue
		}
		for key, v := range sub {
			m.set(FlatName(block.prefix, key), v)
		}
	}
}

// embeddedPayload parses the first payload field holding a JSON object.
func embeddedPayload(raw wire.Record) map[string]any {
	for _, f := range payloadFields {
		if p, ok := wire.Map(raw[f]); ok {
			return p
		}
	}
	return nil
}

// breakdown reads a JSON breakdown from the record, then the payload. A
// string that does not parse is kept as it is.
func breakdown(raw wire.Record, payload map[string]any, field string) any {
	for _, src := range []map[string]any{raw, payload} {
		v, ok := src[field]
		if !ok || v == nil {
			continue
		}
		if obj, ok := wire.Object(v); ok {
			return obj
		}
		return wire.DecodeDeep(v)
	}
	return nil
}

func str(v any) string {
	s, _ := wire.String(v)
	return s
}

func when(v any) time.Time {
	t, _ := wire.Time(v)
	return t
}
