// Package backend talks to the external SEO-governance REST backend. It sends
// a single request per call, never retries, and folds transport failures
// into three coarse kinds the proxy surface reports to browsers.
package backend

import (
	"context"
	"net/http"
	"seoguard/pkg/serrors"
	"time"
)

// Failure kinds, all answered with 502. Their names double as the `code`
// field of proxy error bodies.
var (
	// ErrOffline means the backend refused the connection or could not be resolved.
	ErrOffline = serrors.NewKindStatus("BACKEND_OFFLINE", http.StatusBadGateway)
	// ErrConnReset means the connection broke before a full response arrived.
	ErrConnReset = serrors.NewKindStatus("CONN_RESET", http.StatusBadGateway)
	// ErrProxy covers every other failure, timeouts included.
	ErrProxy = serrors.NewKindStatus("PROXY_ERROR", http.StatusBadGateway)
)

// Request describes one call to the backend.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodPost.
	Method string
	// Path is relative to the configured base URL, e.g. "/sites/42/pages".
	Path string
	// RawQuery is forwarded verbatim.
	RawQuery string
	// Authorization is forwarded verbatim when non-empty.
	Authorization string
	// ContentType defaults to application/json when Body is non-empty.
	ContentType string
	// RequestID is forwarded as X-Request-Id when non-empty.
	RequestID string
	// Body is sent as-is.
	Body []byte
	// Timeout aborts the call when positive.
	Timeout time.Duration
}

// Response is a fully read backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// IsJSON reports whether Body is a single valid JSON value.
	IsJSON bool
	// MIMEType is the sniffed type of a non-JSON body.
	MIMEType string
}

// OK reports whether the backend answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Client sends requests to the backend.
//
//go:generate mockgen -package mockbackend -source=interface.go -destination=mock/mockbackend.go *
type Client interface {
	// Do performs req. Transport failures come back as errors of kind
	// ErrOffline, ErrConnReset or ErrProxy; any HTTP status is a Response.
	Do(ctx context.Context, req Request) (*Response, error)
}
