// Package metrics holds the OpenTelemetry instruments recorded by the proxy
// and billing layers. The instruments are exported through the Prometheus
// exporter configured by the API server.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

const meterName = "seoguard"

// Metrics records proxy and webhook measurements. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
	webhooks metric.Int64Counter
}

func New(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("proxy.requests",
		metric.WithDescription("Requests served by the /api surface."))
	if err != nil {
		return nil, fmt.Errorf("could not create proxy.requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("proxy.request.duration",
		metric.WithDescription("Latency of requests served by the /api surface."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create proxy.request.duration histogram: %w", err)
	}

	webhooks, err := meter.Int64Counter("billing.webhook.events",
		metric.WithDescription("Verified billing webhook events by type."))
	if err != nil {
		return nil, fmt.Errorf("could not create billing.webhook.events counter: %w", err)
	}

	return &Metrics{
		requests: requests,
		duration: duration,
		webhooks: webhooks,
	}, nil
}

// RecordRequest records one finished /api request.
func (m *Metrics) RecordRequest(ctx context.Context, route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("http.route", route),
		attribute.String("http.method", method),
		attribute.String("http.status_code", strconv.Itoa(status)),
	)
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordWebhook records one verified webhook event.
func (m *Metrics) RecordWebhook(ctx context.Context, eventType string, handled bool) {
	if m == nil {
		return
	}

	m.webhooks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event.type", eventType),
		attribute.Bool("handled", handled),
	))
}
