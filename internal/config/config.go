// Package config handles TOML configuration for onevision.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Store backends.
const (
	BackendDynamoDB = "dynamodb"
	BackendSnapshot = "snapshot"
)

// Config is the root configuration structure.
type Config struct {
	AWS     AWSConfig     `toml:"aws"`
	Store   StoreConfig   `toml:"store"`
	Cache   CacheConfig   `toml:"cache"`
	Filter  FilterConfig  `toml:"filter"`
	Trigger TriggerConfig `toml:"trigger"`
	Server  ServerConfig  `toml:"server"`
	OTEL    OTELConfig    `toml:"otel"`
	Log     LogConfig     `toml:"log"`
}

// AWSConfig holds AWS SDK settings.
type AWSConfig struct {
	Region   string `toml:"region"`
	Profile  string `toml:"profile"`
	Endpoint string `toml:"endpoint"`
}

// StoreConfig selects and configures the record store.
type StoreConfig struct {
	Backend       string `toml:"backend"`
	ResourceTable string `toml:"resource_table"`
	MetricsTable  string `toml:"metrics_table"`
	SnapshotPath  string `toml:"snapshot_path"`
	PageSize      int32  `toml:"page_size"`
}

// CacheConfig holds cache settings.
type CacheConfig struct {
	RecentTTLStr       string `toml:"recent_ttl"`
	RecentTTL          time.Duration
	RefreshIntervalStr string `toml:"refresh_interval"`
	RefreshInterval    time.Duration
}

// FilterConfig hides resource kinds and tagged resources from views.
type FilterConfig struct {
	ExcludeKinds []string          `toml:"exclude_kinds"`
	IncludeTags  map[string]string `toml:"include_tags"`
	ExcludeTags  map[string]string `toml:"exclude_tags"`
}

// TriggerConfig names the collector function to invoke.
type TriggerConfig struct {
	FunctionName string `toml:"function_name"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	MetricsAddr string `toml:"metrics_addr"`
}

// OTELConfig holds OpenTelemetry settings.
type OTELConfig struct {
	Endpoint    string        `toml:"endpoint"`
	Insecure    bool          `toml:"insecure"`
	ServiceName string        `toml:"service_name"`
	Traces      TracesConfig  `toml:"traces"`
	Metrics     MetricsConfig `toml:"metrics"`
}

// TracesConfig holds tracing settings.
type TracesConfig struct {
	Enabled    bool    `toml:"enabled"`
	SampleRate float64 `toml:"sample_rate"`
}

// MetricsConfig holds metrics settings.
type MetricsConfig struct {
	Enabled bool `toml:"enabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `toml:"level"`
	Console bool   `toml:"console"`
}

// Load reads and parses a TOML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)

	if err := parseDurations(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	// defaults always parse
	_ = parseDurations(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.AWS.Region == "" {
		cfg.AWS.Region = "us-east-1"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = BackendDynamoDB
	}
	if cfg.Store.ResourceTable == "" {
		cfg.Store.ResourceTable = "onevision-inventory"
	}
	if cfg.Store.SnapshotPath == "" {
		cfg.Store.SnapshotPath = "onevision.db"
	}
	if cfg.Store.PageSize == 0 {
		cfg.Store.PageSize = 100
	}
	if cfg.Cache.RecentTTLStr == "" {
		cfg.Cache.RecentTTLStr = "5m"
	}
	if cfg.Cache.RefreshIntervalStr == "" {
		cfg.Cache.RefreshIntervalStr = "15m"
	}
	if cfg.Server.MetricsAddr == "" {
		cfg.Server.MetricsAddr = ":9090"
	}
	if cfg.OTEL.ServiceName == "" {
		cfg.OTEL.ServiceName = "onevision"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func parseDurations(cfg *Config) error {
	d, err := time.ParseDuration(cfg.Cache.RecentTTLStr)
	if err != nil {
		return fmt.Errorf("parse recent_ttl %q: %w", cfg.Cache.RecentTTLStr, err)
	}
	cfg.Cache.RecentTTL = d

	d, err = time.ParseDuration(cfg.Cache.RefreshIntervalStr)
	if err != nil {
		return fmt.Errorf("parse refresh_interval %q: %w", cfg.Cache.RefreshIntervalStr, err)
	}
	cfg.Cache.RefreshInterval = d
	return nil
}

// Validate checks the configuration is valid.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendDynamoDB:
		if c.Store.ResourceTable == "" {
			return fmt.Errorf("store: resource_table required for the dynamodb backend")
		}
	case BackendSnapshot:
		if c.Store.SnapshotPath == "" {
			return fmt.Errorf("store: snapshot_path required for the snapshot backend")
		}
	default:
		return fmt.Errorf("store: unknown backend %q", c.Store.Backend)
	}
	if c.Store.PageSize < 1 {
		return fmt.Errorf("store: page_size must be positive (got %d)", c.Store.PageSize)
	}
	if c.Cache.RecentTTL < 0 {
		return fmt.Errorf("cache: recent_ttl must not be negative")
	}
	if c.OTEL.Traces.SampleRate < 0.0 || c.OTEL.Traces.SampleRate > 1.0 {
		return fmt.Errorf("otel: traces.sample_rate must be between 0.0 and 1.0 (got %v)", c.OTEL.Traces.SampleRate)
	}
	return nil
}
