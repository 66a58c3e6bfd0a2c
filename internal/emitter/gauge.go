package emitter

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/yairfalse/onevision/internal/inventory"
	pmetric "github.com/yairfalse/onevision/pkg/metric"
)

// GaugeEmitter exposes the latest snapshot as observable OTEL gauges.
type GaugeEmitter struct {
	byKind    metric.Int64ObservableGauge
	byRegion  metric.Int64ObservableGauge
	byAccount metric.Int64ObservableGauge
	partial   metric.Int64ObservableGauge
	dashboard metric.Float64ObservableGauge
	reg       metric.Registration

	mu      sync.RWMutex
	summary inventory.Summary
	metrics []pmetric.Metric
	emitted bool
}

// NewGaugeEmitter registers the inventory gauges on meter.
func NewGaugeEmitter(meter metric.Meter) (*GaugeEmitter, error) {
	e := &GaugeEmitter{}
	var err error

	e.byKind, err = meter.Int64ObservableGauge(
		"onevision.inventory.resources",
		metric.WithDescription("Cached resources per kind"),
		metric.WithUnit("{resource}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create resources gauge: %w", err)
	}

	e.byRegion, err = meter.Int64ObservableGauge(
		"onevision.inventory.region.resources",
		metric.WithDescription("Cached resources per region"),
		metric.WithUnit("{resource}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create region gauge: %w", err)
	}

	e.byAccount, err = meter.Int64ObservableGauge(
		"onevision.inventory.account.resources",
		metric.WithDescription("Cached resources per account"),
		metric.WithUnit("{resource}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create account gauge: %w", err)
	}

	e.partial, err = meter.Int64ObservableGauge(
		"onevision.inventory.partial",
		metric.WithDescription("1 when the last listing stopped early"),
	)
	if err != nil {
		return nil, fmt.Errorf("create partial gauge: %w", err)
	}

	e.dashboard, err = meter.Float64ObservableGauge(
		"onevision.dashboard.value",
		metric.WithDescription("Dashboard statistics from the latest metrics record of each kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("create dashboard gauge: %w", err)
	}

	e.reg, err = meter.RegisterCallback(e.observe, e.byKind, e.byRegion, e.byAccount, e.partial, e.dashboard)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}
	return e, nil
}

// Emit replaces the observed snapshot.
func (e *GaugeEmitter) Emit(_ context.Context, snap Snapshot) error {
	e.mu.Lock()
	e.summary = snap.Summary
	e.metrics = snap.Metrics
	e.emitted = true
	e.mu.Unlock()
	return nil
}

func (e *GaugeEmitter) observe(_ context.Context, o metric.Observer) error {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if !e.emitted {
		return nil
	}

	for kind, n := range e.summary.ByKind {
		o.ObserveInt64(e.byKind, int64(n), metric.WithAttributes(attribute.String("resource.type", string(kind))))
	}
	for region, n := range e.summary.ByRegion {
		o.ObserveInt64(e.byRegion, int64(n), metric.WithAttributes(attribute.String("cloud.region", region)))
	}
	for account, n := range e.summary.ByAccount {
		o.ObserveInt64(e.byAccount, int64(n), metric.WithAttributes(attribute.String("cloud.account.id", account)))
	}

	var partial int64
	if e.summary.Partial {
		partial = 1
	}
	o.ObserveInt64(e.partial, partial)

	for _, m := range e.metrics {
		for _, name := range m.Names() {
			o.ObserveFloat64(e.dashboard, m.Value(name), metric.WithAttributes(
				attribute.String("metric.type", string(m.Kind)),
				attribute.String("metric.name", name),
				attribute.String("cloud.account.id", m.AccountID),
				attribute.String("cloud.region", m.Region),
			))
		}
	}
	return nil
}

// Close unregisters the gauge callback.
func (e *GaugeEmitter) Close() error {
	return e.reg.Unregister()
}
