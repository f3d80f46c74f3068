package backend_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"seoguard/pkg/backend"
	"seoguard/pkg/serrors"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *backend.HTTPClient {
	t.Helper()

	c, err := backend.New(&http.Client{Transport: fn}, "http://backend.test/api/v1/")
	require.NoError(t, err)

	return c
}

func respond(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNew_rejectsRelativeURL(t *testing.T) {
	_, err := backend.New(http.DefaultClient, "/api/v1")
	require.Error(t, err)
}

func TestHTTPClient_URL(t *testing.T) {
	c := newTestClient(t, nil)

	require.Equal(t, "http://backend.test/api/v1", c.BaseURL())
	require.Equal(t, "http://backend.test/api/v1/sites/42", c.URL("/sites/42", ""))
	require.Equal(t, "http://backend.test/api/v1/sites?page=2", c.URL("sites", "page=2"))
	require.Equal(t, "http://backend.test/api/v1/sites/my%20site/pages", c.URL("/sites/my%20site/pages", ""))
	require.Equal(t, "http://backend.test/api/v1/sites/a%2Fb", c.URL("/sites/a%2Fb", ""))
	require.Equal(t, "http://backend.test/api/v1/sites/100%25", c.URL("/sites/100%", ""))
}

func TestHTTPClient_Do_forwardsRequest(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/sites", r.URL.Path)
		require.Equal(t, "limit=5", r.URL.RawQuery)
		require.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"url":"https://example.com"}`, string(b))

		return respond(http.StatusCreated, `{"id":7}`), nil
	})

	res, err := c.Do(context.Background(), backend.Request{
		Method:        http.MethodPost,
		Path:          "/sites",
		RawQuery:      "limit=5",
		Authorization: "Bearer abc",
		RequestID:     "req-1",
		Body:          []byte(`{"url":"https://example.com"}`),
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.True(t, res.OK())
	require.True(t, res.IsJSON)
	require.JSONEq(t, `{"id":7}`, string(res.Body))
}

func TestHTTPClient_Do_noBodyNoContentType(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Empty(t, r.Header.Get("Content-Type"))
		require.Empty(t, r.Header.Get("Authorization"))

		return respond(http.StatusNoContent, ""), nil
	})

	res, err := c.Do(context.Background(), backend.Request{Method: http.MethodDelete, Path: "/sites/1"})
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.False(t, res.IsJSON)
	require.Empty(t, res.MIMEType)
}

func TestHTTPClient_Do_nonJSONBody(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusInternalServerError, "<html><body>Internal Server Error</body></html>"), nil
	})

	res, err := c.Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/auth/me"})
	require.NoError(t, err)
	require.False(t, res.OK())
	require.False(t, res.IsJSON)
	require.Contains(t, res.MIMEType, "text/html")
}

func TestHTTPClient_Do_relaysErrorStatus(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return respond(http.StatusUnprocessableEntity, `{"detail":"invalid"}`), nil
	})

	res, err := c.Do(context.Background(), backend.Request{Method: http.MethodPost, Path: "/auth/login"})
	require.NoError(t, err)
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	require.True(t, res.IsJSON)
}

func TestHTTPClient_Do_timeout(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		<-r.Context().Done()

		return nil, r.Context().Err()
	})

	_, err := c.Do(context.Background(), backend.Request{
		Method:  http.MethodPost,
		Path:    "/pages/1/analyze",
		Timeout: 20 * time.Millisecond,
	})
	require.ErrorIs(t, err, backend.ErrProxy)
	require.Equal(t, backend.TimeoutMessage, serrors.MessageOf(err, ""))
	require.Equal(t, http.StatusBadGateway, serrors.HTTPStatus(err))
}

func TestHTTPClient_Do_connectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	c, err := backend.New(&http.Client{}, baseURL)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/health"})
	require.ErrorIs(t, err, backend.ErrOffline)
	require.Equal(t, "BACKEND_OFFLINE", serrors.Code(err))
	require.Equal(t, backend.OfflineMessage, serrors.MessageOf(err, ""))
}

func TestHTTPClient_Do_connectionDropped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	}))
	defer srv.Close()

	c, err := backend.New(srv.Client(), srv.URL)
	require.NoError(t, err)

	_, err = c.Do(context.Background(), backend.Request{Method: http.MethodGet, Path: "/team"})
	require.ErrorIs(t, err, backend.ErrConnReset)
}

func TestClassify(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
	reset := &net.OpError{Op: "read", Net: "tcp", Err: os.NewSyscallError("read", syscall.ECONNRESET)}

	tests := []struct {
		name string
		err  error
		kind serrors.Kind
	}{
		{"refused", refused, backend.ErrOffline},
		{"dns", &net.DNSError{Err: "no such host", Name: "backend.invalid", IsNotFound: true}, backend.ErrOffline},
		{"reset", reset, backend.ErrConnReset},
		{"eof", io.EOF, backend.ErrConnReset},
		{"unexpected eof", io.ErrUnexpectedEOF, backend.ErrConnReset},
		{"deadline", context.DeadlineExceeded, backend.ErrProxy},
		{"other", errors.New("tls: handshake failure"), backend.ErrProxy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := backend.Classify(tt.err)
			require.ErrorIs(t, err, tt.kind)
			require.ErrorIs(t, err, tt.err)
		})
	}

	require.NoError(t, backend.Classify(nil))

	already := serrors.With(backend.ErrOffline, "custom")
	require.Same(t, already, backend.Classify(already))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", backend.Truncate([]byte("  short \n"), 200))

	long := strings.Repeat("é", 250)
	got := backend.Truncate([]byte(long), 200)
	require.Equal(t, strings.Repeat("é", 200)+"...", got)
}
