// Package dashboard renders the server-side dashboard pages. Every page reads
// its data from the backend with the visitor's auth_token cookie; billing data
// comes from the local billing service.
package dashboard

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"seoguard/internal/billing"
	"seoguard/internal/config"
	"seoguard/pkg/backend"
	"seoguard/pkg/logger"
	"seoguard/pkg/serrors"
	"seoguard/pkg/ui"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthCookie carries the backend access token of a signed-in visitor.
const AuthCookie = "auth_token"

const themeCookieMaxAge = 365 * 24 * 60 * 60

//go:embed templates/*.html
var templatesFS embed.FS

// pages lists the page templates; each is parsed on top of the shared layout.
var pages = []string{"overview", "sites", "content_jobs", "approvals", "billing", "settings"} //nolint: gochecknoglobals

type Deps struct {
	Backend backend.Client
	Billing *billing.Service
}

type Options struct {
	// SecureCookies marks cookies set by the dashboard as HTTPS-only.
	SecureCookies bool
}

func NewOptions(cfg *config.Config) Options {
	return Options{SecureCookies: cfg.Environment == logger.ProductionEnvironment}
}

type Handler struct {
	deps Deps
	opts Options

	templates map[string]*template.Template
	now       func() time.Time
}

func New(deps Deps, opts Options) (*Handler, error) {
	h := &Handler{
		deps: deps,
		opts: opts,
		now:  time.Now,
	}

	base, err := template.New("layout").Funcs(h.funcs()).
		ParseFS(templatesFS, "templates/layout.html", "templates/states.html")
	if err != nil {
		return nil, fmt.Errorf("could not parse layout: %w", err)
	}

	h.templates = make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("could not clone layout: %w", err)
		}
		if _, err := t.ParseFS(templatesFS, "templates/"+page+".html"); err != nil {
			return nil, fmt.Errorf("could not parse %s page: %w", page, err)
		}
		h.templates[page] = t
	}

	return h, nil
}

func (h *Handler) funcs() template.FuncMap {
	return template.FuncMap{
		"cn":                ui.CN,
		"classIf":           ui.If,
		"siteBadge":         ui.SiteStatusBadge,
		"scanBadge":         ui.ScanStatusBadge,
		"jobBadge":          ui.JobStatusBadge,
		"approvalBadge":     ui.ApprovalStatusBadge,
		"subscriptionBadge": ui.SubscriptionStatusBadge,
		"scoreColor":        ui.HealthScoreColor,
		"scoreLabel":        ui.HealthScoreLabel,
		"ago": func(value string) string {
			return ui.RelativeTime(value, h.now())
		},
	}
}

// Routes returns the dashboard router, meant to be mounted at the site root.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Overview)
	r.Get("/sites", h.Sites)
	r.Get("/content-jobs", h.ContentJobs)
	r.Get("/approvals", h.Approvals)
	r.Post("/approvals/{approvalId}/{action}", h.DecideApproval)
	r.Get("/billing", h.Billing)
	r.Post("/billing/checkout", h.StartCheckout)
	r.Post("/billing/portal", h.OpenPortal)
	r.Get("/settings", h.Settings)
	r.Post("/theme", h.SetTheme)

	return r
}

type state string

const (
	stateEmpty  state = "empty"
	stateSignIn state = "signin"
	stateError  state = "error"
)

type navItem struct {
	Path   string
	Label  string
	Active bool
}

var navigation = []navItem{ //nolint: gochecknoglobals
	{Path: "/", Label: "Overview"},
	{Path: "/sites", Label: "Sites"},
	{Path: "/content-jobs", Label: "Content jobs"},
	{Path: "/approvals", Label: "Approvals"},
	{Path: "/billing", Label: "Billing"},
	{Path: "/settings", Label: "Settings"},
}

// view is the data every page template receives.
type view struct {
	Title string
	Path  string
	Nav   []navItem

	Theme      string
	ThemeClass string
	Dark       bool

	State   state
	Message string
	Notice  string

	Data any

	status int
}

func (h *Handler) newView(r *http.Request, path, title string) *view {
	theme := ui.DefaultTheme
	if c, err := r.Cookie(ui.ThemeCookie); err == nil {
		theme = ui.ParseTheme(c.Value)
	}

	nav := make([]navItem, len(navigation))
	for i, item := range navigation {
		item.Active = item.Path == path
		nav[i] = item
	}

	return &view{
		Title:      title,
		Path:       path,
		Nav:        nav,
		Theme:      theme.String(),
		ThemeClass: theme.HTMLClass(),
		Dark:       theme == ui.ThemeDark,
		status:     http.StatusOK,
	}
}

// empty switches v to the empty state when n is zero.
func (v *view) empty(n int, message string) {
	if n == 0 {
		v.State = stateEmpty
		v.Message = message
	}
}

// fail switches v to the sign-in or error state for err.
func (h *Handler) fail(r *http.Request, v *view, err error) {
	if errors.Is(err, serrors.ErrUnauthorized) {
		v.State = stateSignIn
		v.status = http.StatusUnauthorized

		return
	}

	v.State = stateError
	v.status = serrors.HTTPStatus(err)
	v.Message = serrors.MessageOf(err, "Something went wrong")
	if v.status == http.StatusInternalServerError {
		logger.Error(r.Context(), "Dashboard page failed", zap.String("path", v.Path), zap.Error(err))
		v.Message = "Something went wrong"

		return
	}
	logger.Warn(r.Context(), "Dashboard page degraded", zap.String("path", v.Path), zap.Error(err))
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, v *view) {
	var buf bytes.Buffer
	if err := h.templates[page].ExecuteTemplate(&buf, "layout", v); err != nil {
		logger.Error(r.Context(), "Could not render dashboard page", zap.String("page", page), zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(v.status)
	_, _ = w.Write(buf.Bytes())
}

// redirectTarget returns the local path named by the "redirect" form value,
// or fallback. Absolute and protocol-relative URLs are ignored.
func redirectTarget(r *http.Request, fallback string) string {
	target := r.PostFormValue("redirect")
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}

	return target
}

// SetTheme stores the theme preference and sends the browser back. Without a
// "theme" value the current theme is toggled.
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	current := ui.DefaultTheme
	if c, err := r.Cookie(ui.ThemeCookie); err == nil {
		current = ui.ParseTheme(c.Value)
	}

	next := current.Toggle()
	if v := r.PostFormValue("theme"); v != "" {
		next = ui.ParseTheme(v)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     ui.ThemeCookie,
		Value:    next.String(),
		Path:     "/",
		MaxAge:   themeCookieMaxAge,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, redirectTarget(r, "/"), http.StatusSeeOther)
}
