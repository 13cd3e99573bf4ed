package origin

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Source-map load outcomes recorded on the load counter.
const (
	loadParsed  = "parsed"
	loadAbsent  = "absent"
	loadInvalid = "invalid"
)

// metrics holds the metric instruments for the annotation pipeline.
type metrics struct {
	// Annotation pipeline latency histogram
	annotationDuration metric.Float64Histogram

	// Source-map cache lookups, split by hit/miss
	cacheLookups metric.Int64Counter

	// Source-map sidecar loads, split by outcome
	mapLoads metric.Int64Counter
}

// newMetrics creates and registers metric instruments.
func newMetrics(meter metric.Meter) (*metrics, error) {
	m := &metrics{}
	var err error

	m.annotationDuration, err = meter.Float64Histogram(
		"db.client.annotation.duration",
		metric.WithDescription("Duration of the query annotation pipeline in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1,
		),
	)
	if err != nil {
		return nil, err
	}

	m.cacheLookups, err = meter.Int64Counter(
		"db.client.sourcemap.cache.lookups",
		metric.WithDescription("Source-map cache lookups"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, err
	}

	m.mapLoads, err = meter.Int64Counter(
		"db.client.sourcemap.loads",
		metric.WithDescription("Source-map sidecar load attempts"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// recordAnnotation records one pass through the annotation pipeline.
func (m *metrics) recordAnnotation(ctx context.Context, duration time.Duration, resolved bool) {
	if m == nil || m.annotationDuration == nil {
		return
	}

	m.annotationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.Bool("resolved", resolved),
	))
}

// recordCacheLookup records one source-map cache lookup.
func (m *metrics) recordCacheLookup(ctx context.Context, hit bool) {
	if m == nil || m.cacheLookups == nil {
		return
	}

	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("hit", hit),
	))
}

// recordMapLoad records the outcome of one sidecar load attempt.
func (m *metrics) recordMapLoad(ctx context.Context, outcome string) {
	if m == nil || m.mapLoads == nil {
		return
	}

	m.mapLoads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
