package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/spf13/cobra"

	"github.com/yairfalse/onevision/internal/daemon"
	"github.com/yairfalse/onevision/internal/emitter"
)

var (
	serveAddr     string
	serveInterval time.Duration
)

// serveCmd runs the refresh daemon and HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the inventory over HTTP and keep it fresh",
	Long: `Run onevision as a service:
- GET /api/resources?type=&region=&account= for resource views
- GET /api/metrics and /api/summary for dashboard data
- GET /metrics for Prometheus, /healthz and /readyz for probes

The cache is reloaded on every refresh interval.`,
	Example: `  onevision serve --config onevision.toml
  onevision serve --addr :8080 --interval 5m`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: [server] metrics_addr)")
	serveCmd.Flags().DurationVar(&serveInterval, "interval", 0, "Refresh interval (default: [cache] refresh_interval)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	addr := serveAddr
	if addr == "" {
		addr = rt.cfg.Server.MetricsAddr
	}
	interval := serveInterval
	if interval <= 0 {
		interval = rt.cfg.Cache.RefreshInterval
	}

	svc, err := rt.Service(ctx)
	if err != nil {
		return err
	}
	dm, err := daemon.NewDaemonMetrics(rt.tel.Meter())
	if err != nil {
		return err
	}
	gauges, err := emitter.NewGaugeEmitter(rt.tel.Meter())
	if err != nil {
		return err
	}
	em := emitter.NewMultiEmitter(gauges, emitter.NewLogEmitter(rt.log))
	defer em.Close()

	refresher := emitter.NewRefresher(svc, em, rt.log)
	d, err := daemon.NewDaemon(refresher, daemon.Config{Interval: interval, Metrics: dm, Logger: rt.log})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           daemon.NewHandler(d, svc, rt.tel.Handler(), rt.log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var g run.Group
	g.Add(func() error {
		rt.log.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}, func(error) {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	})

	refreshCtx, cancel := context.WithCancel(ctx)
	g.Add(func() error {
		rt.log.Info().Dur("interval", interval).Msg("refresh loop started")
		return d.Start(refreshCtx)
	}, func(error) {
		cancel()
	})

	g.Add(run.SignalHandler(ctx, os.Interrupt, syscall.SIGTERM))

	err = g.Run()
	var sig run.SignalError
	if errors.As(err, &sig) {
		rt.log.Info().Str("signal", sig.Signal.String()).Msg("shutting down")
		return nil
	}
	return err
}
