package sqlx

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/metric"

	"github.com/origin-labs/queryorigin-go/origin"
)

// config holds the configuration for the annotating wrapper.
type config struct {
	// Annotator runs the annotation pipeline. When nil, one is built from
	// the collected origin options.
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

// Option configures the annotating wrapper.
type Option func(*config)

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
