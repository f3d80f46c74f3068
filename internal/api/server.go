// Package api configures and exposes the HTTP server: the /api proxy surface,
// the dashboard pages, metrics, docs and related middleware.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"seoguard/internal/api/handler/apihandler"
	"seoguard/internal/config"
	"seoguard/internal/dashboard"
	"seoguard/pkg/controller"
	"seoguard/pkg/metrics"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI document of the /api surface.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"error":"Request timed out","code":"TIMEOUT"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// APIOptions configures the /api handlers.
	APIOptions apihandler.Options
	// DashboardOptions configures the dashboard pages.
	DashboardOptions dashboard.Options

	// Addr is the TCP address the server listens on, e.g. ":3000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins lists the origins allowed to call /api from a browser.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		APIOptions:       apihandler.NewOptions(cfg),
		DashboardOptions: dashboard.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
	}
}

type Deps struct {
	API       apihandler.Deps
	Dashboard dashboard.Deps
	// Metrics records /api traffic; nil disables recording.
	Metrics *metrics.Metrics
	// Gatherer backs the metrics endpoint; prometheus.DefaultGatherer when nil.
	Gatherer prometheus.Gatherer
}

// NewMetrics creates the service instruments on an OpenTelemetry meter
// provider exported to registerer.
func NewMetrics(registerer prometheus.Registerer) (*metrics.Metrics, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))

	m, err := metrics.New(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create metrics: %w", err)
	}

	return m, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI document and Swagger UI
// - the /api proxy surface and the dashboard pages
// - pprof endpoints for profiling and a health check
// Requests pass through panic recovery, CORS, access logging and a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

// NewHandler returns the root handler served by NewServer.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	pages, err := dashboard.New(deps.Dashboard, opts.DashboardOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create dashboard: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(controller.WithCORS(opts.AllowedOrigins))
	r.Use(controller.WithLogger)

	// prometheus metrics server
	r.Method(http.MethodGet, opts.MetricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// api specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// api swagger playground
	r.Handle("/docs/*", v5emb.New(
		"SEOGuard API",
		"/specs/v1.yaml",
		"/docs/",
	))

	// pprof
	r.Handle(controller.PprofPrefix+"*", controller.PprofMux())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// proxied api and dashboard pages share the request timeout
	r.Group(func(r chi.Router) {
		if opts.RequestTimeout > 0 {
			r.Use(func(next http.Handler) http.Handler {
				return http.TimeoutHandler(next, opts.RequestTimeout, timeoutBody)
			})
		}

		r.Route("/api", func(r chi.Router) {
			r.Use(controller.WithMetrics(deps.Metrics))
			r.Mount("/", apihandler.New(deps.API, opts.APIOptions).Routes())
		})
		r.Mount("/", pages.Routes())
	})

	return r, nil
}
