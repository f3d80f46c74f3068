package backend

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"seoguard/pkg/serrors"
	"strings"
	"syscall"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Public messages for each failure kind. They are shown to end users as-is.
const (
	OfflineMessage   = "Backend server is not reachable. Please make sure the API is running."
	ConnResetMessage = "Connection to the backend was reset. Please try again."
	ProxyMessage     = "Failed to reach the backend service."
	TimeoutMessage   = "The backend did not respond in time."
)

// DefaultMaxResponseBytes caps how much of a backend response is buffered.
const DefaultMaxResponseBytes = 10 << 20

// HTTPClient implements Client over net/http. It is safe for concurrent use.
type HTTPClient struct {
	httpClient *http.Client
	baseURL    *url.URL
	maxBytes   int64
}

var _ Client = (*HTTPClient)(nil)

// New returns an HTTPClient sending requests under baseURL.
func New(httpClient *http.Client, baseURL string) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse backend base url")
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, errors.Errorf("backend base url %q must be absolute", baseURL)
	}

	return &HTTPClient{
		httpClient: httpClient,
		baseURL:    u,
		maxBytes:   DefaultMaxResponseBytes,
	}, nil
}

// BaseURL returns the configured backend base URL.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

// URL resolves path and rawQuery against the base URL. path is in escaped
// form and is kept as given, so "%2F" stays a single segment.
func (c *HTTPClient) URL(path, rawQuery string) string {
	u := *c.baseURL
	escaped := u.EscapedPath() + "/" + strings.TrimLeft(path, "/")
	if unescaped, err := url.PathUnescape(escaped); err == nil {
		u.Path = unescaped
		u.RawPath = escaped
	} else {
		u.Path = u.Path + "/" + strings.TrimLeft(path, "/")
		u.RawPath = ""
	}
	u.RawQuery = rawQuery

	return u.String()
}

// Do performs req against the backend.
func (c *HTTPClient) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.URL(req.Path, req.RawQuery), body)
	if err != nil {
		return nil, serrors.Wrap(ErrProxy, errors.Wrap(err, "build backend request"), ProxyMessage)
	}
	httpReq.Header.Set("Accept", "application/json")
	if len(req.Body) > 0 {
		contentType := req.ContentType
		if contentType == "" {
			contentType = "application/json"
		}
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.Authorization != "" {
		httpReq.Header.Set("Authorization", req.Authorization)
	}
	if req.RequestID != "" {
		httpReq.Header.Set("X-Request-Id", req.RequestID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, Classify(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, Classify(err)
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       b,
	}
	if len(bytes.TrimSpace(b)) > 0 {
		out.IsJSON = jx.Valid(b)
		if !out.IsJSON {
			out.MIMEType = mimetype.Detect(b).String()
		}
	}

	return out, nil
}

// Classify maps a transport error onto ErrOffline, ErrConnReset or ErrProxy.
// Errors already carrying one of those kinds are returned unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrOffline) || errors.Is(err, ErrConnReset) || errors.Is(err, ErrProxy) {
		return err
	}

	var dnsErr *net.DNSError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.Wrap(ErrProxy, err, TimeoutMessage)
	case errors.Is(err, syscall.ECONNREFUSED), errors.As(err, &dnsErr):
		return serrors.Wrap(ErrOffline, err, OfflineMessage)
	case errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return serrors.Wrap(ErrConnReset, err, ConnResetMessage)
	default:
		return serrors.Wrap(ErrProxy, err, ProxyMessage)
	}
}

// Truncate returns at most limit runes of body, marking a cut with an ellipsis.
func Truncate(body []byte, limit int) string {
	s := strings.TrimSpace(string(body))
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
