package resource

import (
	"strconv"
	"strings"
	"time"

	"github.com/yairfalse/onevision/pkg/wire"
)

// Discriminant field names, primary first.
var discriminantFields = []string{"resourceType", "__typename", "type"}

// baseFields are consumed by Base and never copied into Generic.Fields.
var baseFields = map[string]bool{
	"id": true, "resourceType": true, "__typename": true, "accountId": true,
	"accountName": true, "region": true, "resourceTypeRegionId": true,
	"createdAt": true, "updatedAt": true, "lastUpdated": true, "tags": true,
	"metrics": true, "availabilityZones": true, "availabilityZone": true,
}

type shaper func(b Base, f fields) Resource

var shapers = map[Kind]shaper{}

func register(k Kind, s shaper) {
	shapers[k] = s
}

// Normalize shapes a raw store record into its canonical variant. Unknown
// discriminants produce a Generic that keeps every field. Normalize never
// fails: a field that cannot be coerced is left unset.
func Normalize(raw wire.Record) Resource {
	f := newFields(raw)
	kind := Discriminant(raw)
	b := newBase(kind, f)

	var r Resource
	if s, ok := shapers[kind]; ok {
		r = s(b, f)
	} else {
		r = newGeneric(b, f)
	}

	if c := r.Common(); c.Name == "" {
		if name, ok := NameTag(c.Tags); ok {
			c.Name = name
		}
	}
	return r
}

// NormalizeAll normalizes raws in order.
func NormalizeAll(raws []wire.Record) []Resource {
	out := make([]Resource, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw))
	}
	return out
}

// Discriminant returns the record's kind, reading the legacy field names
// when the primary one is absent.
func Discriminant(raw wire.Record) Kind {
	for _, field := range discriminantFields {
		if s, ok := wire.String(raw[field]); ok && strings.TrimSpace(s) != "" {
			return Kind(strings.TrimSpace(s))
		}
	}
	return ""
}

func newBase(kind Kind, f fields) Base {
	b := Base{
		ID:          f.plain("id"),
		Type:        kind,
		AccountID:   f.plain("accountId"),
		AccountName: f.plain("accountName"),
		Region:      f.plain("region"),
		CreatedAt:   f.when("createdAt"),
		UpdatedAt:   f.when("updatedAt"),
		LastUpdated: f.when("lastUpdated"),
		Tags:        NormalizeTags(f.raw["tags"]),
	}
	if m, ok := wire.Map(f.raw["metrics"]); ok && len(m) > 0 {
		b.Metrics = m
	}
	b.AvailabilityZones = f.list("availabilityZones", "availabilityZone")
	if kind != "" && b.Region != "" {
		b.ResourceTypeRegionID = string(kind) + ":" + b.Region
	}
	return b
}

func newGeneric(b Base, f fields) *Generic {
	g := &Generic{Base: b}
	for k, v := range f.raw {
		if baseFields[k] || isIndexedOf(k, "availabilityZones") {
			continue
		}
		if g.Fields == nil {
			g.Fields = make(map[string]any)
		}
		g.Fields[k] = wire.DecodeDeep(v)
	}
	return g
}

// fields reads a raw record with name fallbacks: every accessor takes the
// candidate names in priority order and returns the first that coerces.
type fields struct {
	raw wire.Record
}

func newFields(raw wire.Record) fields {
	if raw == nil {
		raw = wire.Record{}
	}
	return fields{raw: raw}
}

func (f fields) str(keys ...string) *string {
	for _, k := range keys {
		if s := wire.StringPtr(f.raw[k]); s != nil {
			return s
		}
	}
	return nil
}

func (f fields) plain(keys ...string) string {
	if s := f.str(keys...); s != nil {
		return *s
	}
	return ""
}

func (f fields) num(keys ...string) *float64 {
	for _, k := range keys {
		if n := wire.NumberPtr(f.raw[k]); n != nil {
			return n
		}
	}
	return nil
}

func (f fields) count(keys ...string) *int64 {
	for _, k := range keys {
		if n := wire.IntPtr(f.raw[k]); n != nil {
			return n
		}
	}
	return nil
}

func (f fields) boolean(keys ...string) *bool {
	for _, k := range keys {
		if b := wire.BoolPtr(f.raw[k]); b != nil {
			return b
		}
	}
	return nil
}

// list also rebuilds lists the collector flattened into indexed keys
// (AvailabilityZones_0, AvailabilityZones_1, ...), under the key itself or
// its capitalized form.
func (f fields) list(keys ...string) []string {
	for _, k := range keys {
		if l := wire.StringsOrNil(f.raw[k]); l != nil {
			return l
		}
		if l := f.indexed(k); l != nil {
			return l
		}
	}
	return nil
}

func (f fields) indexed(key string) []string {
	for _, prefix := range indexPrefixes(key) {
		var out []string
		for i := 0; ; i++ {
			v, ok := f.raw[prefix+strconv.Itoa(i)]
			if !ok {
				break
			}
			if s, ok := wire.String(v); ok && s != "" {
				out = append(out, s)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

func indexPrefixes(key string) []string {
	if key == "" {
		return nil
	}
	upper := strings.ToUpper(key[:1]) + key[1:]
	if upper == key {
		return []string{key + "_"}
	}
	return []string{key + "_", upper + "_"}
}

// isIndexedOf reports whether field is an indexed element of one of keys.
func isIndexedOf(field string, keys ...string) bool {
	for _, k := range keys {
		for _, prefix := range indexPrefixes(k) {
			rest, ok := strings.CutPrefix(field, prefix)
			if !ok || rest == "" {
				continue
			}
			if _, err := strconv.Atoi(rest); err == nil {
				return true
			}
		}
	}
	return false
}

func (f fields) when(keys ...string) time.Time {
	for _, k := range keys {
		if t, ok := wire.Time(f.raw[k]); ok {
			return t
		}
	}
	return time.Time{}
}

func (f fields) timePtr(keys ...string) *time.Time {
	for _, k := range keys {
		if t := wire.TimePtr(f.raw[k]); t != nil {
			return t
		}
	}
	return nil
}

func (f fields) object(keys ...string) any {
	for _, k := range keys {
		if o, ok := wire.Object(f.raw[k]); ok {
			return o
		}
	}
	return nil
}

// measure splits a size field whose producer wrote either a number or a
// human readable string such as "59.28 TB".
func (f fields) measure(key string) (*float64, *string) {
	if n := wire.NumberPtr(f.raw[key]); n != nil {
		return n, nil
	}
	return nil, f.str(key)
}

// nameFrom sets b.Name from the first populated name field. The collector
// writes "N/A" when a resource has no name.
func (b *Base) nameFrom(f fields, keys ...string) {
	if s := f.str(keys...); s != nil && *s != "" && *s != "N/A" {
		b.Name = *s
	}
}
