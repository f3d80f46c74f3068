package controller

import (
	"net/http"
	"seoguard/pkg/metrics"
	"time"

	"github.com/go-chi/chi/v5"
)

// WithMetrics records request count and latency per chi route pattern. It
// must run inside a chi router so the pattern is resolved by the time the
// handler returns.
func WithMetrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			m.RecordRequest(r.Context(), route, r.Method, rec.status, time.Since(start))
		})
	}
}
