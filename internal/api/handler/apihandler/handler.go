// Package apihandler serves the /api surface: thin forwarding handlers for the
// backend resources plus the locally implemented password-reset and billing
// endpoints.
package apihandler

import (
	"reflect"
	"seoguard/internal/account"
	"seoguard/internal/billing"
	"seoguard/internal/config"
	"seoguard/pkg/backend"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DefaultMaxBodyBytes caps request bodies when Options.MaxBodyBytes is unset.
const DefaultMaxBodyBytes = 1 << 20

type Deps struct {
	Backend backend.Client
	Account *account.Service
	Billing *billing.Service
}

type Options struct {
	// AnalyzeTimeout aborts page analysis calls; zero disables the timeout.
	AnalyzeTimeout time.Duration
	// MaxBodyBytes caps accepted request bodies.
	MaxBodyBytes int64
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		AnalyzeTimeout: cfg.Backend.AnalyzeTimeout,
		MaxBodyBytes:   cfg.HTTP.MaxBodyBytes,
	}
}

type Handler struct {
	deps     Deps
	opts     Options
	validate *validator.Validate
}

func New(deps Deps, opts Options) *Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Handler{
		deps:     deps,
		opts:     opts,
		validate: v,
	}
}
