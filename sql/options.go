package sql

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/origin-labs/queryorigin-go/origin"
)

// config holds the configuration for the annotating driver.
type config struct {
	// Name distinguishes driver registrations that share a driver name.
	// It becomes part of the registered driver name, so two pools wrapping
	// the same driver with different options can coexist.
	Name string

	// Annotator runs the annotation pipeline. When nil, Open and
	// WrapDriver construct one from the collected origin options.
	Annotator *origin.Annotator

	// originOpts are forwarded to origin.New when Annotator is nil.
	originOpts []origin.Option
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Annotator == nil {
		cfg.Annotator = origin.New(cfg.originOpts...)
	}

	return cfg
}

// Option configures the annotating driver.
type Option func(*config)

// WithName sets an identifier for this registration. Use it when wrapping
// the same underlying driver with different options in one process.
//
// Example:
//
//	writer, _ := originsql.Open("postgres", primaryDSN, originsql.WithName("primary"))
//	reader, _ := originsql.Open("postgres", replicaDSN, originsql.WithName("replica"))
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.Name = name
	}
}

// WithAnnotator supplies a pre-built annotator, sharing its source-map cache
// with other pools.
func WithAnnotator(a *origin.Annotator) Option {
	return func(cfg *config) {
		cfg.Annotator = a
	}
}

// WithLogger sets the logger used for degraded-path diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.originOpts = append(cfg.originOpts, origin.WithLogger(logger))
	}
}

// WithMeterProvider sets a custom meter provider for annotation metrics.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *config) {
		cfg.originOpts = append(cfg.originOpts, origin.WithMeterProvider(mp))
	}
}

// WithSkipPackages excludes additional packages from caller capture.
// See origin.WithSkipPackages for prefix semantics.
func WithSkipPackages(prefixes ...string) Option {
	return func(cfg *config) {
		cfg.originOpts = append(cfg.originOpts, origin.WithSkipPackages(prefixes...))
	}
}

// WithMapLoadTimeout bounds the wait for a source-map sidecar load.
func WithMapLoadTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.originOpts = append(cfg.originOpts, origin.WithMapLoadTimeout(d))
	}
}
