package origin

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// scope is the instrumentation scope name for OpenTelemetry.
	scope = "github.com/origin-labs/queryorigin-go/origin"
)

// config holds the configuration for an Annotator.
type config struct {
	// Logger receives debug-level records for every degraded path (missing
	// or unparsable maps, unmapped positions, load timeouts). Defaults to a
	// no-op logger; degradation is never surfaced as an error.
	Logger zerolog.Logger

	// MeterProvider is the meter provider to use.
	// If not set, uses the global provider via otel.GetMeterProvider().
	// When no global provider is configured, a no-op meter is used.
	MeterProvider metric.MeterProvider

	// Meter is the meter instance created from MeterProvider.
	Meter metric.Meter

	// Metrics holds the metric instruments.
	Metrics *metrics

	// SkipPackages are additional function-name prefixes excluded from
	// caller capture, on top of this library, the standard library, and
	// third-party dependency code.
	SkipPackages []string

	// MapLoadTimeout bounds the wait for a source-map sidecar load.
	// Zero means wait for the load to finish. On timeout the invocation
	// falls back to the compiled position; the load continues in the
	// background and populates the cache for later invocations.
	MapLoadTimeout time.Duration
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{
		Logger:        zerolog.Nop(),
		MeterProvider: otel.GetMeterProvider(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	cfg.Meter = cfg.MeterProvider.Meter(scope)

	// Initialize metrics (ignore errors, will just be nil if fails)
	cfg.Metrics, _ = newMetrics(cfg.Meter)

	return cfg
}

// Option configures an Annotator.
type Option func(*config)

// WithLogger sets the logger used for degraded-path diagnostics.
// All records are emitted at debug level.
//
// Example:
//
//	annotator := origin.New(
//	    origin.WithLogger(log.With().Str("component", "queryorigin").Logger()),
//	)
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger
	}
}

// WithMeterProvider sets a custom meter provider.
// If not called, the global provider from otel.GetMeterProvider() is used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *config) {
		cfg.MeterProvider = mp
	}
}

// WithSkipPackages excludes additional packages from caller capture.
// Prefixes are matched against the fully qualified function name, so pass
// import paths with a trailing dot to avoid matching sibling packages.
//
// Use this when queries are issued through an in-house data-access layer
// whose call sites are not the interesting origin:
//
//	annotator := origin.New(
//	    origin.WithSkipPackages("github.com/acme/app/internal/store."),
//	)
func WithSkipPackages(prefixes ...string) Option {
	return func(cfg *config) {
		cfg.SkipPackages = append(cfg.SkipPackages, prefixes...)
	}
}

// WithMapLoadTimeout bounds the wait for a source-map sidecar load.
// Sidecars are read from the local filesystem, so most deployments do not
// need this; set it when compiled files may live on slow network mounts.
func WithMapLoadTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.MapLoadTimeout = d
	}
}
