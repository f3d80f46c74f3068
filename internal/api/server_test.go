package api_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"seoguard/internal/account"
	"seoguard/internal/api"
	"seoguard/internal/api/handler/apihandler"
	"seoguard/internal/billing"
	"seoguard/internal/dashboard"
	"seoguard/pkg/backend"
	"seoguard/pkg/logger"
	mockpayments "seoguard/pkg/payments/mock"
	"seoguard/pkg/storage/memory"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, ""); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func newHandler(t *testing.T, backendHandler http.HandlerFunc, opts api.Options) http.Handler {
	t.Helper()

	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	client, err := backend.New(&http.Client{}, srv.URL+"/api/v1")
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	m, err := api.NewMetrics(registry)
	require.NoError(t, err)

	store := memory.New()
	svc := billing.New(mockpayments.NewMockProvider(gomock.NewController(t)), store, m, billing.Options{})

	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}
	h, err := api.NewHandler(api.Deps{
		API: apihandler.Deps{
			Backend: client,
			Account: account.New(store, client, account.Options{AppURL: "http://localhost:3000", ResetTokenTTL: time.Hour}),
			Billing: svc,
		},
		Dashboard: dashboard.Deps{Backend: client, Billing: svc},
		Metrics:   m,
		Gatherer:  registry,
	}, opts)
	require.NoError(t, err)

	return h
}

func serve(h http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func okBackend(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`[]`))
}

func TestServer_Operational(t *testing.T) {
	h := newHandler(t, okBackend, api.Options{})

	rec := serve(h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/specs/v1.yaml", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.True(t, strings.HasPrefix(rec.Body.String(), "openapi: 3.0.3"))

	rec = serve(h, http.MethodGet, "/docs/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/debug/pprof/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_API(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sites", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		okBackend(w, r)
	}, api.Options{})

	rec := serve(h, http.MethodGet, "/api/sites", http.Header{"Origin": {"https://app.example.com"}})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = serve(h, http.MethodGet, "/api/sites", http.Header{
		"Authorization": {"Bearer tok"},
		"X-Request-Id":  {"req-1"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "req-1", rec.Header().Get("X-Request-Id"))
	require.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(h, http.MethodOptions, "/api/sites", http.Header{
		"Origin":                        {"https://app.example.com"},
		"Access-Control-Request-Method": {"POST"},
	})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "proxy_requests")
}

func TestServer_Dashboard(t *testing.T) {
	h := newHandler(t, okBackend, api.Options{})

	rec := serve(h, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Sign in required")

	rec = serve(h, http.MethodGet, "/sites", http.Header{"Cookie": {dashboard.AuthCookie + "=tok"}})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No sites yet.")
}

func TestServer_RequestTimeout(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}, api.Options{RequestTimeout: 50 * time.Millisecond})

	rec := serve(h, http.MethodGet, "/api/sites", http.Header{"Authorization": {"Bearer tok"}})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"error":"Request timed out","code":"TIMEOUT"}`, rec.Body.String())
}
