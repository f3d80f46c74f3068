package controller

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// PathParam returns the chi URL parameter name in escaped form, ready to be
// placed into an outgoing request path. chi routes on r.URL.RawPath when the
// request path carries escapes that Path cannot represent (such as %2F); the
// parameter is then already escaped as the client sent it.
func PathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if r.URL.RawPath != "" {
		return v
	}

	return url.PathEscape(v)
}
