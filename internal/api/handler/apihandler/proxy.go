package apihandler

import (
	"context"
	"net/http"
	"seoguard/pkg/backend"
	"seoguard/pkg/controller"
	"strings"
	"time"
)

const (
	nonJSONMessage = "Backend returned non-JSON response"
	nonJSONCode    = "INVALID_RESPONSE"
	excerptLimit   = 200
)

// forward describes how one /api route maps onto the backend.
type forward struct {
	// path is the backend path; {name} segments are filled from chi URL params.
	path string
	// public routes do not require an Authorization header.
	public bool
	// body returns a fresh DTO the request body must satisfy, if any.
	body func() any
	// timeout aborts the backend call when positive.
	timeout time.Duration
}

// backendPath fills the {name} placeholders of tmpl with escaped URL params of
// r. The result is an escaped path.
func backendPath(r *http.Request, tmpl string) string {
	segments := strings.Split(tmpl, "/")
	for i, s := range segments {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segments[i] = controller.PathParam(r, s[1:len(s)-1])
		}
	}

	return strings.Join(segments, "/")
}

// proxy returns a handler forwarding the request as described by f.
func (h *Handler) proxy(f forward) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		auth := r.Header.Get("Authorization")
		if !f.public {
			var err error
			if auth, err = requireAuth(r); err != nil {
				writeError(ctx, w, err)

				return
			}
		}

		body, err := h.readBody(w, r)
		if err != nil {
			writeError(ctx, w, err)

			return
		}
		var dto any
		if f.body != nil {
			dto = f.body()
		}
		if err := h.bind(body, dto); err != nil {
			writeError(ctx, w, err)

			return
		}

		res, err := h.do(ctx, r, backendPath(r, f.path), auth, body, f.timeout)
		if err != nil {
			writeError(ctx, w, err)

			return
		}
		relay(w, res)
	}
}

func (h *Handler) do(ctx context.Context,
	r *http.Request,
	path, auth string,
	body []byte,
	timeout time.Duration) (*backend.Response, error) {
	return h.deps.Backend.Do(ctx, backend.Request{
		Method:        r.Method,
		Path:          path,
		RawQuery:      r.URL.RawQuery,
		Authorization: auth,
		ContentType:   r.Header.Get("Content-Type"),
		RequestID:     controller.RequestID(ctx),
		Body:          body,
		Timeout:       timeout,
	})
}

// relay copies a backend response to w. JSON bodies pass through unchanged;
// anything else becomes an error body carrying an excerpt under the backend's status.
func relay(w http.ResponseWriter, res *backend.Response) {
	switch {
	case len(res.Body) == 0 || res.StatusCode == http.StatusNoContent:
		w.WriteHeader(res.StatusCode)
	case res.IsJSON:
		writeJSON(w, res.StatusCode, res.Body)
	default:
		writeJSON(w, res.StatusCode, errorBody(nonJSONMessage, nonJSONCode, backend.Truncate(res.Body, excerptLimit)))
	}
}
