// Package diagnostics checks that the backend is reachable from this host:
// a TCP dial, the health endpoint, and an unauthenticated call that must be
// rejected with 401.
package diagnostics

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"seoguard/internal/config"
	"seoguard/pkg/backend"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	CheckTCP    = "tcp"
	CheckHealth = "health"
	CheckAuth   = "auth"

	// DefaultTimeout bounds each check when Options.Timeout is unset.
	DefaultTimeout = 5 * time.Second
)

type Options struct {
	// BackendURL is the backend base URL including its version prefix.
	BackendURL string
	// Timeout bounds each check.
	Timeout time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		BackendURL: cfg.Backend.URL,
		Timeout:    cfg.Backend.DialTimeout,
	}
}

// Result is the outcome of one check.
type Result struct {
	Check    string        `yaml:"check"`
	Target   string        `yaml:"target"`
	Passed   bool          `yaml:"passed"`
	Detail   string        `yaml:"detail"`
	Duration time.Duration `yaml:"duration"`
}

type Checker struct {
	httpClient *http.Client
	backend    *backend.HTTPClient
	base       *url.URL
	opts       Options
}

func New(httpClient *http.Client, opts Options) (*Checker, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	base, err := url.Parse(opts.BackendURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", opts.BackendURL)
	}
	client, err := backend.New(httpClient, opts.BackendURL)
	if err != nil {
		return nil, fmt.Errorf("could not create backend client: %w", err)
	}

	return &Checker{
		httpClient: httpClient,
		backend:    client,
		base:       base,
		opts:       opts,
	}, nil
}

// Run executes all checks concurrently and returns their results in a fixed
// order. A failing check does not stop the others.
func (p *Checker) Run(ctx context.Context) []Result {
	checks := []func(context.Context) Result{p.dial, p.health, p.auth}
	results := make([]Result, len(checks))

	g, ctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			ctx, cancel := context.WithTimeout(ctx, p.opts.Timeout)
			defer cancel()

			start := time.Now()
			results[i] = check(ctx)
			results[i].Duration = time.Since(start).Round(time.Millisecond)

			return nil
		})
	}
	_ = g.Wait()

	return results
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	return lo.EveryBy(results, func(r Result) bool { return r.Passed })
}

// hostPort returns the dial address of the backend, filling in the scheme's default port.
func (p *Checker) hostPort() string {
	if port := p.base.Port(); port != "" {
		return p.base.Host
	}
	if p.base.Scheme == "https" {
		return net.JoinHostPort(p.base.Hostname(), "443")
	}

	return net.JoinHostPort(p.base.Hostname(), "80")
}

func (p *Checker) dial(ctx context.Context) Result {
	r := Result{Check: CheckTCP, Target: p.hostPort()}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", r.Target)
	if err != nil {
		r.Detail = err.Error()

		return r
	}
	_ = conn.Close()
	r.Passed = true
	r.Detail = "connected"

	return r
}

// health calls /health on the backend origin.
func (p *Checker) health(ctx context.Context) Result {
	target := (&url.URL{Scheme: p.base.Scheme, Host: p.base.Host, Path: "/health"}).String()
	r := Result{Check: CheckHealth, Target: target}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		r.Detail = err.Error()

		return r
	}
	res, err := p.httpClient.Do(req)
	if err != nil {
		r.Detail = backend.Classify(err).Error()

		return r
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	r.Detail = res.Status
	r.Passed = res.StatusCode == http.StatusOK

	return r
}

// auth calls /auth/me without credentials; a healthy backend rejects it.
func (p *Checker) auth(ctx context.Context) Result {
	r := Result{Check: CheckAuth, Target: p.backend.URL("/auth/me", "")}

	res, err := p.backend.Do(ctx, backend.Request{Method: http.MethodGet, Path: "/auth/me"})
	if err != nil {
		r.Detail = err.Error()

		return r
	}

	if res.StatusCode != http.StatusUnauthorized {
		r.Detail = fmt.Sprintf("expected 401, got %d", res.StatusCode)

		return r
	}
	r.Passed = true
	r.Detail = "401 as expected"

	return r
}
