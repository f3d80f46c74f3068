package apihandler

import (
	"net/http"
	"seoguard/pkg/serrors"

	"github.com/go-chi/chi/v5"
)

// Routes returns the /api router. Paths are relative to the mount point.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(r.Context(), w, serrors.With(serrors.ErrNotFound, "Not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("Method not allowed", "METHOD_NOT_ALLOWED", ""))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.proxy(forward{path: "/auth/login", public: true,
			body: func() any { return &LoginRequest{} }}))
		r.Post("/register", h.proxy(forward{path: "/auth/register", public: true,
			body: func() any { return &RegisterRequest{} }}))
		r.Post("/logout", h.proxy(forward{path: "/auth/logout"}))
		r.Get("/me", h.proxy(forward{path: "/auth/me"}))
		r.Post("/forgot-password", h.ForgotPassword)
		r.Post("/reset-password", h.ResetPassword)
	})

	r.Route("/sites", func(r chi.Router) {
		r.Get("/", h.proxy(forward{path: "/sites"}))
		r.Post("/", h.proxy(forward{path: "/sites", body: func() any { return &CreateSiteRequest{} }}))
		r.Route("/{siteId}", func(r chi.Router) {
			r.Get("/", h.proxy(forward{path: "/sites/{siteId}"}))
			r.Put("/", h.proxy(forward{path: "/sites/{siteId}"}))
			r.Patch("/", h.proxy(forward{path: "/sites/{siteId}"}))
			r.Delete("/", h.proxy(forward{path: "/sites/{siteId}"}))
			r.Get("/pages", h.proxy(forward{path: "/sites/{siteId}/pages"}))
			r.Get("/scans", h.proxy(forward{path: "/sites/{siteId}/scans"}))
			r.Post("/scans", h.proxy(forward{path: "/sites/{siteId}/scans"}))
		})
	})

	r.Route("/pages/{pageId}", func(r chi.Router) {
		r.Get("/", h.proxy(forward{path: "/pages/{pageId}"}))
		r.Post("/analyze", h.proxy(forward{path: "/pages/{pageId}/analyze", timeout: h.opts.AnalyzeTimeout}))
		r.Post("/apply", h.proxy(forward{path: "/pages/{pageId}/apply"}))
	})

	r.Route("/scans/{scanId}", func(r chi.Router) {
		r.Get("/", h.proxy(forward{path: "/scans/{scanId}"}))
		r.Get("/report", h.proxy(forward{path: "/scans/{scanId}/report"}))
	})

	r.Route("/api-keys", func(r chi.Router) {
		r.Get("/", h.proxy(forward{path: "/api-keys"}))
		r.Post("/", h.proxy(forward{path: "/api-keys", body: func() any { return &CreateAPIKeyRequest{} }}))
		r.Delete("/{keyId}", h.proxy(forward{path: "/api-keys/{keyId}"}))
	})

	r.Route("/team", func(r chi.Router) {
		r.Get("/", h.proxy(forward{path: "/team"}))
		r.Post("/invite", h.InviteMember)
		r.Delete("/{memberId}", h.proxy(forward{path: "/team/{memberId}"}))
	})

	r.Route("/content-jobs", func(r chi.Router) {
		r.Get("/", h.proxy(forward{path: "/content-jobs"}))
		r.Get("/{jobId}", h.proxy(forward{path: "/content-jobs/{jobId}"}))
	})

	r.Route("/approvals", func(r chi.Router) {
		r.Get("/", h.proxy(forward{path: "/approvals"}))
		r.Post("/{approvalId}/approve", h.proxy(forward{path: "/approvals/{approvalId}/approve"}))
		r.Post("/{approvalId}/reject", h.proxy(forward{path: "/approvals/{approvalId}/reject"}))
	})

	r.Route("/billing", func(r chi.Router) {
		r.Post("/checkout", h.Checkout)
		r.Post("/portal", h.Portal)
		r.Get("/subscription", h.Subscription)
		r.Post("/webhook", h.Webhook)
	})

	return r
}
