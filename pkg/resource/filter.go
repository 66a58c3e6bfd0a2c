package resource

// Filter narrows a resource listing. Empty fields match everything.
type Filter struct {
	Kind      Kind
	Region    string
	AccountID string
}

// IsZero reports whether f matches every resource.
func (f Filter) IsZero() bool {
	return f.Kind == "" && f.Region == "" && f.AccountID == ""
}

// Matches reports whether r satisfies every populated field of f.
func Matches(r Resource, f Filter) bool {
	b := r.Common()
	if f.Kind != "" && b.Type != f.Kind {
		return false
	}
	if f.Region != "" && b.Region != f.Region {
		return false
	}
	if f.AccountID != "" && b.AccountID != f.AccountID {
		return false
	}
	return true
}

// Select returns the resources in rs that match f, keeping order.
func Select(rs []Resource, f Filter) []Resource {
	if f.IsZero() {
		return rs
	}
	out := make([]Resource, 0, len(rs))
	for _, r := range rs {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}
