package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/internal/config"
	"github.com/yairfalse/onevision/internal/filter"
	"github.com/yairfalse/onevision/internal/inventory"
	"github.com/yairfalse/onevision/internal/store"
	"github.com/yairfalse/onevision/internal/telemetry"
)

// app holds what every command shares. Stores and the service are opened
// on first use so commands that never read the inventory skip them.
type app struct {
	cfg *config.Config
	log zerolog.Logger
	tel *telemetry.Provider

	awsCfg    *aws.Config
	resources store.Store
	metrics   store.Store
	svc       *inventory.Service
	closers   []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDebug {
		cfg.Log.Level = "debug"
	}

	log := telemetry.NewLogger(cfg.OTEL.ServiceName, cfg.Log.Level, cfg.Log.Console || flagConsole)

	tel, err := telemetry.NewProvider(ctx, cfg.OTEL)
	if err != nil {
		return nil, fmt.Errorf("init telemetry: %w", err)
	}

	return &app{cfg: cfg, log: log, tel: tel}, nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// AWS loads the SDK configuration once.
func (a *app) AWS(ctx context.Context) (aws.Config, error) {
	if a.awsCfg != nil {
		return *a.awsCfg, nil
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(a.cfg.AWS.Region),
	}
	if a.cfg.AWS.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(a.cfg.AWS.Profile))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	a.awsCfg = &awsCfg
	return awsCfg, nil
}

// Stores opens the resource store and, when metrics live in their own
// table, the metrics store. metrics is nil otherwise.
func (a *app) Stores(ctx context.Context) (resources, metrics store.Store, err error) {
	if a.resources != nil {
		return a.resources, a.metrics, nil
	}

	switch {
	case flagFixture != "":
		m, err := store.LoadFixture(flagFixture)
		if err != nil {
			return nil, nil, err
		}
		a.resources = m

	case a.cfg.Store.Backend == config.BackendSnapshot:
		snap, err := store.OpenSnapshot(a.cfg.Store.SnapshotPath)
		if err != nil {
			return nil, nil, err
		}
		a.closers = append(a.closers, snap.Close)
		a.resources = snap

	default:
		client, err := a.dynamoClient(ctx)
		if err != nil {
			return nil, nil, err
		}
		res, err := store.NewDynamoStore(client, a.cfg.Store.ResourceTable)
		if err != nil {
			return nil, nil, err
		}
		a.resources = res
		if a.cfg.Store.MetricsTable != "" {
			met, err := store.NewDynamoStore(client, a.cfg.Store.MetricsTable)
			if err != nil {
				return nil, nil, err
			}
			a.metrics = met
		}
	}
	return a.resources, a.metrics, nil
}

func (a *app) dynamoClient(ctx context.Context) (*dynamodb.Client, error) {
	awsCfg, err := a.AWS(ctx)
	if err != nil {
		return nil, err
	}
	endpoint := a.cfg.AWS.Endpoint
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

// Service builds the inventory service over the configured stores.
func (a *app) Service(ctx context.Context) (*inventory.Service, error) {
	if a.svc != nil {
		return a.svc, nil
	}
	resources, metrics, err := a.Stores(ctx)
	if err != nil {
		return nil, err
	}

	f := a.cfg.Filter
	a.svc = inventory.New(resources, inventory.Options{
		MetricsStore:  metrics,
		ResourceTable: a.cfg.Store.ResourceTable,
		MetricsTable:  a.cfg.Store.MetricsTable,
		PageSize:      a.cfg.Store.PageSize,
		Filter:        filter.New(f.ExcludeKinds, f.IncludeTags, f.ExcludeTags),
		RecentTTL:     a.cfg.Cache.RecentTTL,
		Logger:        a.log,
		Recorder:      a.tel,
	})
	return a.svc, nil
}

// Close releases stores and flushes telemetry.
func (a *app) Close(ctx context.Context) error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := a.tel.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
