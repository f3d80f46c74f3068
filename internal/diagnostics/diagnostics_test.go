package diagnostics_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"seoguard/internal/diagnostics"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newBackend(t *testing.T, meStatus int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(meStatus)
		_, _ = w.Write([]byte(`{"detail":"Not authenticated"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func run(t *testing.T, backendURL string) []diagnostics.Result {
	t.Helper()

	p, err := diagnostics.New(&http.Client{}, diagnostics.Options{BackendURL: backendURL, Timeout: time.Second})
	require.NoError(t, err)

	return p.Run(context.Background())
}

func TestRun_AllPass(t *testing.T) {
	srv := newBackend(t, http.StatusUnauthorized)

	results := run(t, srv.URL+"/api/v1")
	require.Len(t, results, 3)
	require.True(t, diagnostics.AllPassed(results), "%+v", results)

	require.Equal(t, diagnostics.CheckTCP, results[0].Check)
	require.Equal(t, strings.TrimPrefix(srv.URL, "http://"), results[0].Target)
	require.Equal(t, diagnostics.CheckHealth, results[1].Check)
	require.Equal(t, srv.URL+"/health", results[1].Target)
	require.Equal(t, diagnostics.CheckAuth, results[2].Check)
	require.Equal(t, srv.URL+"/api/v1/auth/me", results[2].Target)
}

func TestRun_AuthNotEnforced(t *testing.T) {
	srv := newBackend(t, http.StatusOK)

	results := run(t, srv.URL+"/api/v1")
	require.False(t, diagnostics.AllPassed(results))
	require.True(t, results[0].Passed)
	require.True(t, results[1].Passed)
	require.False(t, results[2].Passed)
	require.Equal(t, "expected 401, got 200", results[2].Detail)
}

func TestRun_Offline(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	results := run(t, srv.URL+"/api/v1")
	require.Len(t, results, 3)
	for _, r := range results {
		require.False(t, r.Passed, r.Check)
		require.NotEmpty(t, r.Detail, r.Check)
	}
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := diagnostics.New(&http.Client{}, diagnostics.Options{BackendURL: "not a url"})
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	results := []diagnostics.Result{
		{Check: diagnostics.CheckTCP, Target: "localhost:8000", Passed: true, Detail: "connected", Duration: 2 * time.Millisecond},
		{Check: diagnostics.CheckAuth, Target: "http://localhost:8000/api/v1/auth/me", Detail: "expected 401, got 200"},
	}

	var table bytes.Buffer
	require.NoError(t, diagnostics.Write(&table, diagnostics.FormatTable, results))
	require.Contains(t, table.String(), "localhost:8000")
	require.Contains(t, table.String(), "PASS")
	require.Contains(t, table.String(), "FAIL")

	var out bytes.Buffer
	require.NoError(t, diagnostics.Write(&out, diagnostics.FormatYAML, results))
	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "tcp", decoded[0]["check"])
	require.Equal(t, true, decoded[0]["passed"])
	require.Equal(t, "2ms", decoded[0]["duration"])

	require.Error(t, diagnostics.Write(&out, "xml", results))
}
