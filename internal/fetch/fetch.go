// Package fetch drives a store's cursor pagination to exhaustion.
package fetch

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/internal/store"
	"github.com/yairfalse/onevision/internal/telemetry"
)

// ErrRepeatedCursor is reported when a store hands back a cursor it has
// already returned during the same fetch.
var ErrRepeatedCursor = errors.New("store returned a repeated cursor")

const defaultPageSize = 100

// Result is the outcome of FetchAll. Items preserve page order. Partial is
// set when the loop stopped before the store reported exhaustion; Err then
// holds the reason.
type Result struct {
	Items   []store.RawRecord
	Pages   int
	Partial bool
	Err     error
}

// Fetcher lists every page of a query.
type Fetcher struct {
	store    store.Store
	name     string
	pageSize int32
	log      zerolog.Logger
	tel      telemetry.Recorder
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPageSize sets the Limit sent with each page request.
func WithPageSize(n int32) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.pageSize = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Fetcher) { f.log = log }
}

// WithRecorder sets the telemetry recorder.
func WithRecorder(r telemetry.Recorder) Option {
	return func(f *Fetcher) {
		if r != nil {
			f.tel = r
		}
	}
}

// WithName labels log lines and metrics, usually with the table name.
func WithName(name string) Option {
	return func(f *Fetcher) { f.name = name }
}

// New creates a Fetcher over s.
func New(s store.Store, opts ...Option) *Fetcher {
	f := &Fetcher{
		store:    s,
		name:     "inventory",
		pageSize: defaultPageSize,
		log:      zerolog.Nop(),
		tel:      telemetry.Nop{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchAll requests pages sequentially, carrying the cursor, until the
// store returns an empty one. A store error or a cancelled context stops
// the loop; the records gathered so far are returned with Partial set.
// FetchAll never fails outright.
func (f *Fetcher) FetchAll(ctx context.Context, q store.Query) Result {
	var res Result
	if q.Limit <= 0 {
		q.Limit = f.pageSize
	}
	seen := make(map[store.Cursor]bool)

	for {
		if err := ctx.Err(); err != nil {
			f.log.Warn().Err(err).
				Str("table", f.name).
				Int("pages", res.Pages).
				Int("records", len(res.Items)).
				Msg("fetch cancelled, returning partial results")
			return res.stop(err)
		}

		start := time.Now()
		page, err := f.store.List(ctx, q)
		if err != nil {
			f.tel.RecordFetchError(ctx, f.name)
			f.log.Error().Err(err).
				Str("table", f.name).
				Int("page", res.Pages+1).
				Int("records", len(res.Items)).
				Msg("page fetch failed, returning partial results")
			return res.stop(err)
		}

		res.Pages++
		res.Items = append(res.Items, page.Items...)
		f.tel.RecordPage(ctx, f.name, len(page.Items), time.Since(start))
		f.log.Debug().
			Str("table", f.name).
			Int("page", res.Pages).
			Int("records", len(page.Items)).
			Bool("more", !page.Done()).
			Msg("page fetched")

		if page.Done() {
			return res
		}
		if seen[page.Next] || page.Next == q.Cursor {
			f.log.Error().
				Str("table", f.name).
				Str("cursor", string(page.Next)).
				Msg("store repeated a cursor, stopping")
			return res.stop(ErrRepeatedCursor)
		}
		seen[page.Next] = true
		q.Cursor = page.Next
	}
}

func (r Result) stop(err error) Result {
	r.Partial = true
	r.Err = err
	return r
}
