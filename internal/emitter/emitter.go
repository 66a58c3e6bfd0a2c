// Package emitter publishes inventory snapshots after every refresh.
package emitter

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/internal/inventory"
	"github.com/yairfalse/onevision/pkg/metric"
	"github.com/yairfalse/onevision/pkg/resource"
)

// Snapshot is the inventory state published after a refresh.
type Snapshot struct {
	Summary inventory.Summary
	Metrics []metric.Metric
	Changes []resource.ResourceDiff
}

// Emitter outputs snapshots to a backend.
type Emitter interface {
	// Emit sends the snapshot to the backend.
	Emit(ctx context.Context, snap Snapshot) error

	// Close cleans up resources.
	Close() error
}

// MultiEmitter fans out to multiple emitters.
type MultiEmitter struct {
	emitters []Emitter
}

// NewMultiEmitter creates an emitter that sends to multiple backends.
func NewMultiEmitter(emitters ...Emitter) *MultiEmitter {
	return &MultiEmitter{emitters: emitters}
}

// Emit sends to all emitters, returns first error.
func (m *MultiEmitter) Emit(ctx context.Context, snap Snapshot) error {
	for _, e := range m.emitters {
		if err := e.Emit(ctx, snap); err != nil {
			return err
		}
	}
	return nil
}

// Close closes all emitters.
func (m *MultiEmitter) Close() error {
	for _, e := range m.emitters {
		if err := e.Close(); err != nil {
			return err
		}
	}
	return nil
}

// Source is the inventory a Refresher reloads and reads back.
type Source interface {
	Refresh(ctx context.Context) ([]resource.ResourceDiff, error)
	Summary(ctx context.Context) (inventory.Summary, error)
	DashboardMetrics(ctx context.Context) ([]metric.Metric, error)
}

// Refresher refreshes a Source and emits the resulting snapshot.
type Refresher struct {
	src Source
	em  Emitter
	log zerolog.Logger
}

// NewRefresher wraps src so every Refresh ends with an Emit to em.
func NewRefresher(src Source, em Emitter, log zerolog.Logger) *Refresher {
	return &Refresher{src: src, em: em, log: log}
}

// Refresh reloads the inventory and emits it. Dashboard metrics are
// optional: a failure to load them is logged and the snapshot is emitted
// without them.
func (r *Refresher) Refresh(ctx context.Context) ([]resource.ResourceDiff, error) {
	diffs, err := r.src.Refresh(ctx)
	if err != nil {
		return diffs, err
	}

	sum, err := r.src.Summary(ctx)
	if err != nil {
		return diffs, fmt.Errorf("summarize inventory: %w", err)
	}

	ms, err := r.src.DashboardMetrics(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("dashboard metrics unavailable")
		ms = nil
	}

	if err := r.em.Emit(ctx, Snapshot{Summary: sum, Metrics: ms, Changes: diffs}); err != nil {
		return diffs, fmt.Errorf("emit snapshot: %w", err)
	}
	return diffs, nil
}
