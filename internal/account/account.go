// Package account implements the password-reset flow. Reset tokens are held
// locally; the new password is handed to the backend, which owns accounts.
package account

import (
	"context"
	"net/http"
	"net/url"
	"seoguard/internal/config"
	"seoguard/pkg/backend"
	"seoguard/pkg/controller"
	"seoguard/pkg/domain"
	"seoguard/pkg/logger"
	"seoguard/pkg/serrors"
	"seoguard/pkg/storage"
	"strings"
	"time"

	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvalidTokenMessage is returned for unknown and expired reset tokens alike.
const InvalidTokenMessage = "Invalid or expired reset token"

type Options struct {
	// AppURL is the public dashboard URL reset links point to.
	AppURL string
	// ResetTokenTTL is how long a reset token stays valid.
	ResetTokenTTL time.Duration
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		AppURL:        cfg.App.URL,
		ResetTokenTTL: cfg.Auth.ResetTokenTTL,
	}
}

type Service struct {
	storage storage.ResetTokenStorage
	backend backend.Client
	opts    Options

	now      func() time.Time
	newToken func() string
}

func New(storage storage.ResetTokenStorage, backend backend.Client, opts Options) *Service {
	return &Service{
		storage:  storage,
		backend:  backend,
		opts:     opts,
		now:      time.Now,
		newToken: uuid.NewString,
	}
}

// ResetLink returns the dashboard URL that redeems token.
func (s *Service) ResetLink(token string) string {
	return strings.TrimRight(s.opts.AppURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
}

// ForgotPassword issues a reset token for email. It succeeds whether or not
// the email belongs to an account; the backend is not consulted.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	now := s.now().UTC()
	token := domain.ResetToken{
		Token:     s.newToken(),
		Email:     email,
		ExpiresAt: now.Add(s.opts.ResetTokenTTL),
		CreatedAt: now,
	}
	if err := s.storage.StoreResetToken(ctx, token); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not store reset token")
	}

	logger.Info(ctx, "Password reset requested",
		zap.String("email", email),
		zap.Time("expires_at", token.ExpiresAt))
	// no mailer is wired; the link redeems the token, so it only reaches
	// debug-level output
	logger.Debug(ctx, "Password reset link issued",
		zap.String("email", email),
		zap.String("reset_link", s.ResetLink(token.Token)))

	return nil
}

// ResetPassword redeems token and asks the backend to set password for the
// token's email. The backend response is returned as-is; the token is only
// consumed when the backend accepts the change.
func (s *Service) ResetPassword(ctx context.Context, token, password string) (*backend.Response, error) {
	rt, err := s.storage.ResetToken(ctx, token)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not load reset token")
	}
	if rt == nil {
		return nil, serrors.With(serrors.ErrBadRequest, InvalidTokenMessage)
	}
	if rt.Expired(s.now()) {
		if err := s.storage.DeleteResetToken(ctx, token); err != nil {
			logger.Warn(ctx, "could not delete expired reset token", zap.Error(err))
		}

		return nil, serrors.With(serrors.ErrBadRequest, InvalidTokenMessage)
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("email", func(e *jx.Encoder) { e.Str(rt.Email) })
		e.Field("password", func(e *jx.Encoder) { e.Str(password) })
	})

	res, err := s.backend.Do(ctx, backend.Request{
		Method:    http.MethodPost,
		Path:      "/auth/reset-password",
		RequestID: controller.RequestID(ctx),
		Body:      e.Bytes(),
	})
	if err != nil {
		return nil, err
	}

	if res.OK() {
		if err := s.storage.DeleteResetToken(ctx, token); err != nil {
			logger.Warn(ctx, "could not delete redeemed reset token", zap.Error(err))
		}
	}

	return res, nil
}
