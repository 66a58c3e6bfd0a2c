// Package daemon keeps the inventory cache warm and serves it over HTTP.
package daemon

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/pkg/resource"
)

// Refresher reloads the inventory and reports what changed.
type Refresher interface {
	Refresh(ctx context.Context) ([]resource.ResourceDiff, error)
}

// Config holds daemon configuration
type Config struct {
	Interval time.Duration
	Metrics  *DaemonMetrics
	Logger   zerolog.Logger
}

// Daemon refreshes the inventory on a fixed interval.
type Daemon struct {
	refresher    Refresher
	interval     time.Duration
	metrics      *DaemonMetrics
	log          zerolog.Logger
	startTime    time.Time
	refreshCount atomic.Int64

	mu          sync.RWMutex
	lastRefresh time.Time
	lastErr     error
}

// NewDaemon creates a new daemon instance
func NewDaemon(r Refresher, config Config) (*Daemon, error) {
	if r == nil {
		return nil, errors.New("daemon: refresher required")
	}
	if config.Interval <= 0 {
		return nil, errors.New("daemon: interval must be positive")
	}
	return &Daemon{
		refresher: r,
		interval:  config.Interval,
		metrics:   config.Metrics,
		log:       config.Logger,
		startTime: time.Now(),
	}, nil
}

// Start refreshes once, then on every tick until ctx is done.
func (d *Daemon) Start(ctx context.Context) error {
	d.runRefresh(ctx)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			d.runRefresh(ctx)
		}
	}
}

func (d *Daemon) runRefresh(ctx context.Context) {
	start := time.Now()
	diffs, err := d.refresher.Refresh(ctx)
	elapsed := time.Since(start)
	d.refreshCount.Add(1)

	d.mu.Lock()
	d.lastErr = err
	if err == nil {
		d.lastRefresh = time.Now()
	}
	d.mu.Unlock()

	status := "success"
	if err != nil {
		status = "error"
		d.log.Error().Err(err).Dur("duration", elapsed).Msg("refresh failed")
	}
	if d.metrics != nil {
		d.metrics.RecordRefresh(ctx, status, elapsed)
		for _, diff := range diffs {
			b := diff.Resource.Common()
			d.metrics.RecordChangeEvent(ctx, string(diff.Type), string(b.Type), b.Region)
		}
	}
}

// Health returns daemon health status
func (d *Daemon) Health() HealthStatus {
	d.mu.RLock()
	defer d.mu.RUnlock()

	h := HealthStatus{
		Status:      "healthy",
		Uptime:      int64(time.Since(d.startTime).Seconds()),
		Refreshes:   d.refreshCount.Load(),
		LastRefresh: d.lastRefresh,
	}
	if d.lastErr != nil {
		h.Status = "degraded"
		h.LastError = d.lastErr.Error()
	}
	return h
}

// Ready reports whether at least one refresh has succeeded.
func (d *Daemon) Ready() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return !d.lastRefresh.IsZero()
}

// HealthStatus represents daemon health
type HealthStatus struct {
	Status      string    `json:"status"`
	Uptime      int64     `json:"uptimeSeconds"`
	Refreshes   int64     `json:"refreshes"`
	LastRefresh time.Time `json:"lastRefresh,omitzero"`
	LastError   string    `json:"lastError,omitempty"`
}

// RefreshCount returns total refreshes run
func (d *Daemon) RefreshCount() int64 {
	return d.refreshCount.Load()
}
