package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"seoguard/pkg/controller"
	"seoguard/pkg/logger"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP_XForwardedFor(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	if ip := controller.GetClientIP(req); ip != "1.2.3.4" {
		t.Fatalf("expected 1.2.3.4, got %q", ip)
	}
}

func TestGetClientIP_XRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "9.8.7.6")
	if ip := controller.GetClientIP(req); ip != "9.8.7.6" {
		t.Fatalf("expected 9.8.7.6, got %q", ip)
	}
}

func TestGetClientIP_RemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	if ip := controller.GetClientIP(req); ip != "10.0.0.1" {
		t.Fatalf("expected 10.0.0.1, got %q", ip)
	}
}

func TestGetClientIP_InvalidRemoteAddr(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "not-an-addr"
	if ip := controller.GetClientIP(req); ip != "not-an-addr" {
		t.Fatalf("expected passthrough of invalid RemoteAddr, got %q", ip)
	}
}

func TestBearerToken(t *testing.T) {
	tok, ok := controller.BearerToken("Bearer abc.def")
	require.True(t, ok)
	require.Equal(t, "abc.def", tok)

	tok, ok = controller.BearerToken("bearer   xyz ")
	require.True(t, ok)
	require.Equal(t, "xyz", tok)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic dXNlcjpwYXNz", "abc"} {
		_, ok := controller.BearerToken(h)
		require.False(t, ok, "header %q", h)
	}
}

func TestTokenSubject(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-42"}).
		SignedString([]byte("not-the-backend-key"))
	require.NoError(t, err)

	require.Equal(t, "user-42", controller.TokenSubject("Bearer "+token))
	require.Empty(t, controller.TokenSubject("Bearer opaque-token"))
	require.Empty(t, controller.TokenSubject(""))
}

func TestWithLogger_SetsRequestIDAndPassesStatus(t *testing.T) {
	// Handler echoes request ID from context into a header so we can assert it.
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s := controller.RequestID(r.Context()); s != "" {
			w.Header().Set("X-Echo-Request-Id", s)
		}
		w.WriteHeader(http.StatusCreated)
	})

	// Case 1: request provides X-Request-Id header
	req1 := httptest.NewRequest(http.MethodGet, "/", nil)
	req1.Header.Set("X-Request-Id", "abc-123")
	rec1 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec1, req1)
	res1 := rec1.Result()
	require.Equal(t, http.StatusCreated, res1.StatusCode)
	require.Equal(t, "abc-123", res1.Header.Get("X-Echo-Request-Id"))
	require.Equal(t, "abc-123", res1.Header.Get("X-Request-Id"))

	// Case 2: request without header should still receive a generated ID
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	rec2 := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec2, req2)
	res2 := rec2.Result()
	require.Equal(t, http.StatusCreated, res2.StatusCode)
	require.NotEmpty(t, res2.Header.Get("X-Echo-Request-Id"))
}

func TestWithLogger_LogsSubject(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "user-7"}).
		SignedString([]byte("k"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/sites", nil).WithContext(ctx)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	controller.WithLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})).ServeHTTP(rec, req)

	entries := logs.FilterMessage("Access log").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "user-7", fields["subject"])
	require.EqualValues(t, http.StatusNoContent, fields["status_code"])
	require.Equal(t, "GET", fields["method"])
}
