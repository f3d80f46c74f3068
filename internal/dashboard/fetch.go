package dashboard

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"seoguard/pkg/backend"
	"seoguard/pkg/controller"
	"seoguard/pkg/serrors"
)

// id accepts both numeric and string identifiers.
type id string

func (i *id) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*i = id(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*i = id(n.String())

	return nil
}

type Site struct {
	ID          id       `json:"id"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Status      string   `json:"status"`
	HealthScore *float64 `json:"health_score"`
	LastScanAt  string   `json:"last_scan_at"`
}

func (s Site) HasScore() bool { return s.HealthScore != nil }

// Score is the health score rounded to an integer.
func (s Site) Score() int {
	if s.HealthScore == nil {
		return 0
	}

	return int(math.Round(*s.HealthScore))
}

// DisplayName falls back to the URL for unnamed sites.
func (s Site) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}

	return s.URL
}

type ContentJob struct {
	ID        id     `json:"id"`
	Title     string `json:"title"`
	JobType   string `json:"job_type"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type Approval struct {
	ID        id     `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// Pending reports whether the approval still awaits a decision.
func (a Approval) Pending() bool { return a.Status == "" || a.Status == "pending" }

type Account struct {
	ID        id     `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	ProjectID id     `json:"project_id"`
}

func signInError() error {
	return serrors.With(serrors.ErrUnauthorized, "Sign in to continue")
}

// token returns the visitor's backend access token.
func token(r *http.Request) string {
	c, err := r.Cookie(AuthCookie)
	if err != nil {
		return ""
	}

	return c.Value
}

// call sends an authenticated request to the backend. 401 and 403 answers
// become serrors.ErrUnauthorized.
func (h *Handler) call(ctx context.Context, method, path, token string) (*backend.Response, error) {
	if token == "" {
		return nil, signInError()
	}

	res, err := h.deps.Backend.Do(ctx, backend.Request{
		Method:        method,
		Path:          path,
		Authorization: "Bearer " + token,
		RequestID:     controller.RequestID(ctx),
	})
	if err != nil {
		return nil, err
	}

	switch {
	case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
		return nil, signInError()
	case !res.OK():
		return nil, serrors.With(backend.ErrProxy, "The backend answered with status %d", res.StatusCode)
	}

	return res, nil
}

// get fetches path and decodes its JSON body into dst.
func (h *Handler) get(ctx context.Context, path, token string, dst any) error {
	res, err := h.call(ctx, http.MethodGet, path, token)
	if err != nil {
		return err
	}
	if !res.IsJSON {
		return serrors.With(backend.ErrProxy, "The backend returned an unexpected response")
	}
	if err := json.Unmarshal(res.Body, dst); err != nil {
		return serrors.Wrap(backend.ErrProxy, err, "The backend returned an unexpected response")
	}

	return nil
}

// list accepts a bare JSON array or an {"items": [...]} / {"data": [...]} envelope.
type list[T any] []T

func (l *list[T]) UnmarshalJSON(b []byte) error {
	var items []T
	if err := json.Unmarshal(b, &items); err == nil {
		*l = items

		return nil
	}

	var envelope struct {
		Items []T `json:"items"`
		Data  []T `json:"data"`
	}
	if err := json.Unmarshal(b, &envelope); err != nil {
		return err
	}
	if envelope.Items != nil {
		*l = envelope.Items
	} else {
		*l = envelope.Data
	}

	return nil
}
