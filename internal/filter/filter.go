// Package filter provides tag and kind filtering for inventory views.
package filter

import (
	"github.com/yairfalse/onevision/pkg/resource"
)

// Filter controls which resource kinds and tagged resources a view shows.
type Filter struct {
	excludeKinds map[resource.Kind]bool
	includeTags  map[string]string
	excludeTags  map[string]string
}

// New creates a new Filter from the provided configuration.
func New(excludeKinds []string, includeTags, excludeTags map[string]string) *Filter {
	excludeMap := make(map[resource.Kind]bool)
	for _, k := range excludeKinds {
		excludeMap[resource.Kind(k)] = true
	}

	return &Filter{
		excludeKinds: excludeMap,
		includeTags:  includeTags,
		excludeTags:  excludeTags,
	}
}

// ShouldShowKind returns true if resources of kind k are visible.
func (f *Filter) ShouldShowKind(k resource.Kind) bool {
	return !f.excludeKinds[k]
}

// ShouldInclude returns true if the resource passes kind and tag filters.
func (f *Filter) ShouldInclude(r resource.Resource) bool {
	if !f.ShouldShowKind(r.Kind()) {
		return false
	}
	tags := r.Common().Tags

	// Include tags: ALL must match
	for k, v := range f.includeTags {
		if got, ok := resource.TagValue(tags, k); !ok || got != v {
			return false
		}
	}

	// Exclude tags: ANY match excludes
	for k, v := range f.excludeTags {
		if got, ok := resource.TagValue(tags, k); ok && got == v {
			return false
		}
	}

	return true
}

// Apply returns only resources that pass the filter.
func (f *Filter) Apply(resources []resource.Resource) []resource.Resource {
	if f == nil || f.IsEmpty() {
		return resources
	}

	filtered := make([]resource.Resource, 0, len(resources))
	for _, r := range resources {
		if f.ShouldInclude(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// IsEmpty returns true if no filters are configured.
func (f *Filter) IsEmpty() bool {
	return len(f.excludeKinds) == 0 && len(f.includeTags) == 0 && len(f.excludeTags) == 0
}
