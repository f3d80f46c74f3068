package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"seoguard/pkg/controller"
	"seoguard/pkg/metrics"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestWithMetrics_RecordsRoutePattern(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	m, err := metrics.New(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(controller.WithMetrics(m))
	r.Get("/api/sites/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sites/42", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, mt := range sm.Metrics {
			if mt.Name != "proxy.requests" {
				continue
			}
			sum, ok := mt.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			require.Len(t, sum.DataPoints, 1)
			route, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
			status, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.status_code"))
			require.Equal(t, "/api/sites/{id}", route.AsString())
			require.Equal(t, "202", status.AsString())
			found = true
		}
	}
	require.True(t, found)
}
