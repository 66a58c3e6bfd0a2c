package resource

import (
	"strings"
	"time"
)

// DiffType represents the type of change detected between two listings.
type DiffType string

const (
	// DiffAdded indicates a resource appeared since the previous listing.
	DiffAdded DiffType = "added"
	// DiffDeleted indicates a resource is no longer listed.
	DiffDeleted DiffType = "deleted"
	// DiffModified indicates a resource's shared fields changed.
	DiffModified DiffType = "modified"
)

// Change represents a single field change.
// The field name is the map key in ResourceDiff.Changes.
type Change struct {
	Previous string
	Current  string
}

// ResourceDiff represents a detected change in a resource.
type ResourceDiff struct {
	Type     DiffType
	Resource Resource
	Previous Resource          // nil for added resources
	Changes  map[string]Change // field name → change details
}

// ResourceKey returns a unique key for identifying a resource across refreshes.
func ResourceKey(r Resource) string {
	b := r.Common()
	return string(b.Type) + "|" + b.AccountID + "|" + b.Region + "|" + b.ID
}

// Diff compares two listings. Added and modified entries follow curr's
// order; deleted entries follow prev's order and come last.
func Diff(prev, curr []Resource) []ResourceDiff {
	before := make(map[string]Resource, len(prev))
	for _, r := range prev {
		before[ResourceKey(r)] = r
	}

	var diffs []ResourceDiff
	seen := make(map[string]bool, len(curr))
	for _, r := range curr {
		key := ResourceKey(r)
		seen[key] = true
		old, ok := before[key]
		if !ok {
			diffs = append(diffs, ResourceDiff{Type: DiffAdded, Resource: r})
			continue
		}
		if changes := compareBase(old.Common(), r.Common()); len(changes) > 0 {
			diffs = append(diffs, ResourceDiff{Type: DiffModified, Resource: r, Previous: old, Changes: changes})
		}
	}
	for _, r := range prev {
		if !seen[ResourceKey(r)] {
			diffs = append(diffs, ResourceDiff{Type: DiffDeleted, Resource: r, Previous: r})
		}
	}
	return diffs
}

func compareBase(old, cur *Base) map[string]Change {
	changes := make(map[string]Change)
	if old.Name != cur.Name {
		changes["name"] = Change{Previous: old.Name, Current: cur.Name}
	}
	if !old.LastUpdated.Equal(cur.LastUpdated) {
		changes["lastUpdated"] = Change{Previous: formatTime(old.LastUpdated), Current: formatTime(cur.LastUpdated)}
	}
	if a, b := joinTags(old.Tags), joinTags(cur.Tags); a != b {
		changes["tags"] = Change{Previous: a, Current: b}
	}
	return changes
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func joinTags(tags []Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = t.Key + "=" + t.Value
	}
	return strings.Join(parts, ",")
}
