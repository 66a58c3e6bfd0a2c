package daemon

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DaemonMetrics holds operational metrics using OTEL semantic conventions
type DaemonMetrics struct {
	refreshes       metric.Int64Counter
	refreshDuration metric.Float64Histogram
	changeEvents    metric.Int64Counter
}

// NewDaemonMetrics creates daemon metrics on meter.
func NewDaemonMetrics(meter metric.Meter) (*DaemonMetrics, error) {
	refreshes, err := meter.Int64Counter(
		"onevision.daemon.refreshes",
		metric.WithDescription("Number of inventory refresh runs"),
		metric.WithUnit("{refresh}"),
	)
	if err != nil {
		return nil, err
	}

	refreshDuration, err := meter.Float64Histogram(
		"onevision.daemon.refresh.duration",
		metric.WithDescription("Duration of inventory refreshes"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	changeEvents, err := meter.Int64Counter(
		"onevision.change_events",
		metric.WithDescription("Number of inventory changes seen between refreshes"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	return &DaemonMetrics{
		refreshes:       refreshes,
		refreshDuration: refreshDuration,
		changeEvents:    changeEvents,
	}, nil
}

// RecordRefresh records one refresh run
func (m *DaemonMetrics) RecordRefresh(ctx context.Context, status string, d time.Duration) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	m.refreshes.Add(ctx, 1, attrs)
	m.refreshDuration.Record(ctx, d.Seconds(), attrs)
}

// RecordChangeEvent records a change event
func (m *DaemonMetrics) RecordChangeEvent(ctx context.Context, changeType string, resourceType string, region string) {
	m.changeEvents.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("change.type", changeType),
			attribute.String("resource.type", resourceType),
			attribute.String("cloud.region", region),
		),
	)
}
