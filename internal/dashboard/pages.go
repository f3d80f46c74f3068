package dashboard

import (
	"errors"
	"math"
	"net/http"
	"seoguard/pkg/controller"
	"seoguard/pkg/domain"
	"seoguard/pkg/logger"
	"seoguard/pkg/serrors"
	"seoguard/pkg/ui"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const recentJobs = 5

type overview struct {
	SiteCount        int
	AverageScore     int
	HasScore         bool
	PendingApprovals int
	ActiveJobs       int
	RecentJobs       []ContentJob
}

func summarize(sites []Site, jobs []ContentJob, approvals []Approval) overview {
	o := overview{
		SiteCount:        len(sites),
		PendingApprovals: lo.CountBy(approvals, Approval.Pending),
		ActiveJobs: lo.CountBy(jobs, func(j ContentJob) bool {
			return lo.Contains([]string{"pending", "queued", "processing"}, j.Status)
		}),
		RecentJobs: lo.Subset(jobs, 0, recentJobs),
	}

	scored := lo.Filter(sites, func(s Site, _ int) bool { return s.HasScore() })
	if len(scored) > 0 {
		total := lo.SumBy(scored, func(s Site) float64 { return *s.HealthScore })
		o.AverageScore = int(math.Round(total / float64(len(scored))))
		o.HasScore = true
	}

	return o
}

// Overview summarizes sites, content jobs and approvals. The three lists are
// fetched concurrently.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	v := h.newView(r, "/", "Overview")
	tok := token(r)

	var (
		sites     list[Site]
		jobs      list[ContentJob]
		approvals list[Approval]
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error { return h.get(ctx, "/sites", tok, &sites) })
	g.Go(func() error { return h.get(ctx, "/content-jobs", tok, &jobs) })
	g.Go(func() error { return h.get(ctx, "/approvals", tok, &approvals) })
	if err := g.Wait(); err != nil {
		h.fail(r, v, err)
	} else {
		v.Data = summarize(sites, jobs, approvals)
	}

	h.render(w, r, "overview", v)
}

func (h *Handler) Sites(w http.ResponseWriter, r *http.Request) {
	v := h.newView(r, "/sites", "Sites")

	var sites list[Site]
	if err := h.get(r.Context(), "/sites", token(r), &sites); err != nil {
		h.fail(r, v, err)
	} else {
		v.Data = []Site(sites)
		v.empty(len(sites), "No sites yet. Add a site to start monitoring its SEO health.")
	}

	h.render(w, r, "sites", v)
}

func (h *Handler) ContentJobs(w http.ResponseWriter, r *http.Request) {
	v := h.newView(r, "/content-jobs", "Content jobs")

	var jobs list[ContentJob]
	if err := h.get(r.Context(), "/content-jobs", token(r), &jobs); err != nil {
		h.fail(r, v, err)
	} else {
		v.Data = []ContentJob(jobs)
		v.empty(len(jobs), "No content jobs have run yet.")
	}

	h.render(w, r, "content_jobs", v)
}

var approvalNotices = map[string]string{ //nolint: gochecknoglobals
	"approved": "Change approved.",
	"rejected": "Change rejected.",
	"failed":   "The decision could not be saved. Try again.",
}

func (h *Handler) Approvals(w http.ResponseWriter, r *http.Request) {
	v := h.newView(r, "/approvals", "Approvals")
	v.Notice = approvalNotices[r.URL.Query().Get("result")]

	var approvals list[Approval]
	if err := h.get(r.Context(), "/approvals", token(r), &approvals); err != nil {
		h.fail(r, v, err)
	} else {
		v.Data = []Approval(approvals)
		v.empty(len(approvals), "Nothing is waiting for approval.")
	}

	h.render(w, r, "approvals", v)
}

var approvalResults = map[string]string{"approve": "approved", "reject": "rejected"} //nolint: gochecknoglobals

// DecideApproval approves or rejects a pending change and returns to the list.
func (h *Handler) DecideApproval(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	result, ok := approvalResults[action]
	if !ok {
		http.NotFound(w, r)

		return
	}

	path := "/approvals/" + controller.PathParam(r, "approvalId") + "/" + action
	if _, err := h.call(r.Context(), http.MethodPost, path, token(r)); err != nil {
		if errors.Is(err, serrors.ErrUnauthorized) {
			http.Redirect(w, r, "/approvals", http.StatusSeeOther)

			return
		}
		logger.Warn(r.Context(), "Could not record approval decision",
			zap.String("action", action), zap.Error(err))
		http.Redirect(w, r, "/approvals?result=failed", http.StatusSeeOther)

		return
	}

	http.Redirect(w, r, "/approvals?result="+result, http.StatusSeeOther)
}

type billingPage struct {
	Account  Account
	Customer *domain.BillingCustomer
	Plans    []domain.Plan
	Success  bool
	Canceled bool
}

// account loads the signed-in account, which carries the billed project.
func (h *Handler) account(r *http.Request) (Account, error) {
	var a Account
	if err := h.get(r.Context(), "/auth/me", token(r), &a); err != nil {
		return Account{}, err
	}
	if a.ProjectID == "" {
		return Account{}, serrors.With(serrors.ErrBadRequest, "Your account is not linked to a project yet")
	}

	return a, nil
}

func (h *Handler) Billing(w http.ResponseWriter, r *http.Request) {
	v := h.newView(r, "/billing", "Billing")

	page, err := h.billingPage(r)
	if err != nil {
		h.fail(r, v, err)
	} else {
		v.Data = page
	}

	h.render(w, r, "billing", v)
}

func (h *Handler) billingPage(r *http.Request) (*billingPage, error) {
	a, err := h.account(r)
	if err != nil {
		return nil, err
	}

	page := &billingPage{
		Account:  a,
		Plans:    h.deps.Billing.Plans(),
		Success:  r.URL.Query().Get("success") == "true",
		Canceled: r.URL.Query().Get("canceled") == "true",
	}
	c, err := h.deps.Billing.Customer(r.Context(), string(a.ProjectID))
	switch {
	case errors.Is(err, serrors.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		page.Customer = c
	}

	return page, nil
}

// StartCheckout sends the browser to a hosted checkout page for the chosen plan.
func (h *Handler) StartCheckout(w http.ResponseWriter, r *http.Request) {
	a, err := h.account(r)
	if err == nil {
		plan := domain.Plan(r.PostFormValue("plan"))
		s, cerr := h.deps.Billing.Checkout(r.Context(), plan, string(a.ProjectID), a.Email)
		if cerr == nil {
			http.Redirect(w, r, s.URL, http.StatusSeeOther)

			return
		}
		err = cerr
	}

	v := h.newView(r, "/billing", "Billing")
	h.fail(r, v, err)
	h.render(w, r, "billing", v)
}

// OpenPortal sends the browser to the billing portal of the visitor's project.
func (h *Handler) OpenPortal(w http.ResponseWriter, r *http.Request) {
	a, err := h.account(r)
	if err == nil {
		s, perr := h.deps.Billing.Portal(r.Context(), string(a.ProjectID))
		if perr == nil {
			http.Redirect(w, r, s.URL, http.StatusSeeOther)

			return
		}
		err = perr
	}

	v := h.newView(r, "/billing", "Billing")
	h.fail(r, v, err)
	h.render(w, r, "billing", v)
}

type themeOption struct {
	Value    string
	Label    string
	Selected bool
}

type settingsPage struct {
	Account Account
	Themes  []themeOption
}

func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	v := h.newView(r, "/settings", "Settings")

	var a Account
	if err := h.get(r.Context(), "/auth/me", token(r), &a); err != nil {
		h.fail(r, v, err)
	} else {
		v.Data = settingsPage{
			Account: a,
			Themes: lo.Map([]ui.Theme{ui.ThemeLight, ui.ThemeDark}, func(t ui.Theme, _ int) themeOption {
				return themeOption{Value: t.String(), Label: themeLabels[t], Selected: t.String() == v.Theme}
			}),
		}
	}

	h.render(w, r, "settings", v)
}

var themeLabels = map[ui.Theme]string{ui.ThemeLight: "Light", ui.ThemeDark: "Dark"} //nolint: gochecknoglobals
