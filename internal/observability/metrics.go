package observability

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	instrumentsOnce    sync.Once
	parseCounter       metric.Int64Counter
	cacheLookupCounter metric.Int64Counter
)

// instruments lazily creates the counters against the global MeterProvider.
// Lazy so that a provider installed during application startup is picked up
// even when this package is initialized earlier.
func instruments() (metric.Int64Counter, metric.Int64Counter) {
	instrumentsOnce.Do(func() {
		meter := otel.Meter(ScopeName)
		parseCounter, _ = meter.Int64Counter("filterexpr.parse.count",
			metric.WithDescription("Number of filter expressions parsed"))
		cacheLookupCounter, _ = meter.Int64Counter("filterexpr.cache.lookups",
			metric.WithDescription("Number of parse cache lookups"))
	})
	return parseCounter, cacheLookupCounter
}

// RecordParse counts one parse, tagged with its outcome.
func RecordParse(ctx context.Context, err error) {
	parses, _ := instruments()
	if parses == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	parses.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordCacheLookup counts one parse cache lookup as a hit or a miss.
func RecordCacheLookup(ctx context.Context, hit bool) {
	_, lookups := instruments()
	if lookups == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
