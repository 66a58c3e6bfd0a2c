package inventory

import (
	"context"
	"sort"
	"time"

	"github.com/yairfalse/onevision/pkg/resource"
)

// Summary counts the cached inventory by kind, region and account.
type Summary struct {
	Total     int                   `json:"total"`
	ByKind    map[resource.Kind]int `json:"byKind"`
	ByRegion  map[string]int        `json:"byRegion"`
	ByAccount map[string]int        `json:"byAccount"`
	FetchedAt time.Time             `json:"fetchedAt"`
	Partial   bool                  `json:"partial"`
}

// Summary builds a Summary from the full resource view.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	e, err := s.Resources(ctx)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		Total:     len(e.Resources),
		ByKind:    make(map[resource.Kind]int),
		ByRegion:  make(map[string]int),
		ByAccount: make(map[string]int),
		FetchedAt: e.FetchedAt,
		Partial:   e.Partial,
	}
	for _, r := range e.Resources {
		b := r.Common()
		sum.ByKind[b.Type]++
		if b.Region != "" {
			sum.ByRegion[b.Region]++
		}
		if b.AccountID != "" {
			sum.ByAccount[b.AccountID]++
		}
	}
	return sum, nil
}

// Kinds returns the summary's kinds, most numerous first and then by name.
func (s Summary) Kinds() []resource.Kind {
	kinds := make([]resource.Kind, 0, len(s.ByKind))
	for k := range s.ByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if s.ByKind[kinds[i]] != s.ByKind[kinds[j]] {
			return s.ByKind[kinds[i]] > s.ByKind[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	return kinds
}
