// Package config defines service configuration structures and loading
// hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and env vars.
// - External errors are wrapped via this package's sentinel errors.
package config

import "runtime"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Field template defaults, in diagram units. The editor may override
	// these per request since they vary per diagram template.
	FieldCenterX         float64 `koanf:"field_center_x"`
	FieldLineOfScrimmage float64 `koanf:"field_line_of_scrimmage"`
	FieldCenterBand      float64 `koanf:"field_center_band"`

	// Route distance bands, in diagram units.
	RouteShortMax float64 `koanf:"route_short_max"`
	RouteDeepMin  float64 `koanf:"route_deep_min"`

	// BreakAngle is the consecutive-segment angle delta (degrees) that
	// counts as a sharp cut.
	BreakAngle float64 `koanf:"break_angle"`

	// InsideTolerance bounds horizontal drift that still counts as
	// inside for players aligned in the center band.
	InsideTolerance float64 `koanf:"inside_tolerance"`

	// QueueSize bounds the in-memory bulk reclassification queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of classification workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the job idempotency cache.
	DedupeSize int `koanf:"dedupe_size"`

	// StoreShardCount configures the outcome store's shard count.
	StoreShardCount int `koanf:"store_shard_count"`
}

// New creates a Config with defaults. The field template defaults match
// the standard half-field diagram the editor ships with.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":9080",
		FieldCenterX:         600,
		FieldLineOfScrimmage: 400,
		FieldCenterBand:      50,
		RouteShortMax:        80,
		RouteDeepMin:         150,
		BreakAngle:           30,
		InsideTolerance:      20,
		QueueSize:            10_000,
		WorkerCount:          runtime.NumCPU() * 2,
		DedupeSize:           50_000,
		StoreShardCount:      8,
	}
}
