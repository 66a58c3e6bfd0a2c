// Package inventory serves cached, normalized views of the inventory
// store.
package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/internal/cache"
	"github.com/yairfalse/onevision/internal/fetch"
	"github.com/yairfalse/onevision/internal/filter"
	"github.com/yairfalse/onevision/internal/store"
	"github.com/yairfalse/onevision/internal/telemetry"
	"github.com/yairfalse/onevision/pkg/metric"
	"github.com/yairfalse/onevision/pkg/resource"
)

// Field names used for server-side filtering.
const (
	fieldResourceType = "resourceType"
	fieldRegion       = "region"
	fieldAccountID    = "accountId"

	metricPrefix = "METRIC"
)

// Options configures a Service. Zero values are usable.
type Options struct {
	// MetricsStore holds metric records when they live apart from the
	// resource table. When nil, metrics are read from the resource store.
	MetricsStore store.Store

	ResourceTable string
	MetricsTable  string
	PageSize      int32
	Filter        *filter.Filter
	RecentTTL     time.Duration
	Now           func() time.Time
	Logger        zerolog.Logger
	Recorder      telemetry.Recorder
}

// Service answers resource and metric queries through a result cache.
type Service struct {
	resources       *fetch.Fetcher
	metrics         *fetch.Fetcher
	separateMetrics bool

	cache  *cache.Cache
	recent *cache.RecentCache[[]metric.Metric]
	filter *filter.Filter
	now    func() time.Time
	log    zerolog.Logger
}

// New creates a Service over the resource store.
func New(resources store.Store, opts Options) *Service {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Recorder == nil {
		opts.Recorder = telemetry.Nop{}
	}
	if opts.ResourceTable == "" {
		opts.ResourceTable = "inventory"
	}

	s := &Service{
		cache:  cache.New(opts.Logger, opts.Recorder),
		recent: cache.NewRecent[[]metric.Metric](opts.RecentTTL, opts.Now),
		filter: opts.Filter,
		now:    opts.Now,
		log:    opts.Logger,
	}
	s.resources = fetch.New(resources,
		fetch.WithName(opts.ResourceTable),
		fetch.WithPageSize(opts.PageSize),
		fetch.WithLogger(opts.Logger),
		fetch.WithRecorder(opts.Recorder),
	)

	s.metrics = s.resources
	if opts.MetricsStore != nil {
		name := opts.MetricsTable
		if name == "" {
			name = "metrics"
		}
		s.separateMetrics = true
		s.metrics = fetch.New(opts.MetricsStore,
			fetch.WithName(name),
			fetch.WithPageSize(opts.PageSize),
			fetch.WithLogger(opts.Logger),
			fetch.WithRecorder(opts.Recorder),
		)
	}
	return s
}

// Resources returns every resource record.
func (s *Service) Resources(ctx context.Context) (cache.Entry, error) {
	return s.view(ctx, cache.KeyAll, resource.Filter{})
}

// ByType returns resources of kind k.
func (s *Service) ByType(ctx context.Context, k resource.Kind) (cache.Entry, error) {
	return s.view(ctx, cache.TypeKey(k), resource.Filter{Kind: k})
}

// ByRegion returns resources in region.
func (s *Service) ByRegion(ctx context.Context, region string) (cache.Entry, error) {
	return s.view(ctx, cache.RegionKey(region), resource.Filter{Region: region})
}

// ByAccount returns resources in account id.
func (s *Service) ByAccount(ctx context.Context, id string) (cache.Entry, error) {
	return s.view(ctx, cache.AccountKey(id), resource.Filter{AccountID: id})
}

// Find serves f through the most specific cached view and narrows the
// rest client-side.
func (s *Service) Find(ctx context.Context, f resource.Filter) (cache.Entry, error) {
	var (
		e   cache.Entry
		err error
	)
	switch {
	case f.Kind != "":
		e, err = s.ByType(ctx, f.Kind)
	case f.Region != "":
		e, err = s.ByRegion(ctx, f.Region)
	case f.AccountID != "":
		e, err = s.ByAccount(ctx, f.AccountID)
	default:
		return s.Resources(ctx)
	}
	if err != nil {
		return cache.Entry{}, err
	}
	e.Resources = resource.Select(e.Resources, f)
	return e, nil
}

// Metrics returns every metric record.
func (s *Service) Metrics(ctx context.Context) (cache.Entry, error) {
	return s.cache.Load(ctx, cache.KeyMetrics, func(ctx context.Context) (cache.Entry, error) {
		ms, partial, err := s.fetchMetrics(ctx)
		if err != nil {
			return cache.Entry{}, err
		}
		return cache.Entry{Metrics: ms, FetchedAt: s.now(), Partial: partial}, nil
	})
}

// DashboardMetrics returns metrics no older than the recent window,
// fetching directly from the store when the window has lapsed.
func (s *Service) DashboardMetrics(ctx context.Context) ([]metric.Metric, error) {
	if ms, ok := s.recent.Get(); ok {
		return ms, nil
	}
	ms, partial, err := s.fetchMetrics(ctx)
	if err != nil {
		return nil, err
	}
	if !partial {
		s.recent.Set(ms)
	}
	return ms, nil
}

// Invalidate drops every cached view.
func (s *Service) Invalidate() {
	s.cache.InvalidateAll()
	s.recent.Invalidate()
}

// Refresh invalidates the cache, reloads every resource and reports what
// changed relative to the previously cached listing. With nothing cached
// before, every resource is reported as added.
func (s *Service) Refresh(ctx context.Context) ([]resource.ResourceDiff, error) {
	prev, _ := s.cache.Get(cache.KeyAll)
	s.Invalidate()

	curr, err := s.Resources(ctx)
	if err != nil {
		return nil, err
	}
	diffs := resource.Diff(prev.Resources, curr.Resources)

	var added, modified, deleted int
	for _, d := range diffs {
		switch d.Type {
		case resource.DiffAdded:
			added++
		case resource.DiffModified:
			modified++
		case resource.DiffDeleted:
			deleted++
		}
	}
	s.log.Info().
		Int("resources", len(curr.Resources)).
		Int("added", added).
		Int("modified", modified).
		Int("deleted", deleted).
		Bool("partial", curr.Partial).
		Msg("inventory refreshed")
	return diffs, nil
}

func (s *Service) view(ctx context.Context, key cache.Key, f resource.Filter) (cache.Entry, error) {
	return s.cache.Load(ctx, key, func(ctx context.Context) (cache.Entry, error) {
		if !f.IsZero() {
			if all, ok := s.cache.Get(cache.KeyAll); ok {
				return cache.Entry{
					Resources: resource.Select(all.Resources, f),
					FetchedAt: all.FetchedAt,
					Partial:   all.Partial,
				}, nil
			}
		}

		res := s.resources.FetchAll(ctx, store.Query{Filters: resourceConditions(f)})
		if isContextErr(res.Err) {
			return cache.Entry{}, res.Err
		}

		rs := make([]resource.Resource, 0, len(res.Items))
		for _, raw := range res.Items {
			if metric.IsMetricRecord(raw) {
				continue
			}
			rs = append(rs, resource.Normalize(raw))
		}
		rs = resource.Select(rs, f)
		rs = s.filter.Apply(rs)

		return cache.Entry{Resources: rs, FetchedAt: s.now(), Partial: res.Partial}, nil
	})
}

func (s *Service) fetchMetrics(ctx context.Context) ([]metric.Metric, bool, error) {
	var q store.Query
	if !s.separateMetrics {
		q.Filters = []store.Condition{store.BeginsWith(fieldResourceType, metricPrefix)}
	}
	res := s.metrics.FetchAll(ctx, q)
	if isContextErr(res.Err) {
		return nil, false, res.Err
	}

	raws := res.Items
	if !s.separateMetrics {
		raws = make([]store.RawRecord, 0, len(res.Items))
		for _, raw := range res.Items {
			if metric.IsMetricRecord(raw) {
				raws = append(raws, raw)
			}
		}
	}
	return metric.NormalizeAll(raws), res.Partial, nil
}

// resourceConditions pushes f down to the store. Metric records are
// always excluded; callers re-filter on the client.
func resourceConditions(f resource.Filter) []store.Condition {
	conds := []store.Condition{store.BeginsWith(fieldResourceType, metricPrefix).Negate()}
	if f.Kind != "" {
		conds = append(conds, store.Equals(fieldResourceType, string(f.Kind)))
	}
	if f.Region != "" {
		conds = append(conds, store.Equals(fieldRegion, f.Region))
	}
	if f.AccountID != "" {
		conds = append(conds, store.Equals(fieldAccountID, f.AccountID))
	}
	return conds
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
