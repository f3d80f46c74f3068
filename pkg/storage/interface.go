// Package storage defines the persistence interfaces for the little state this
// service owns. The in-memory implementation stands in for development and
// tests; the postgres implementation is used in deployments.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"seoguard/pkg/domain"
	"time"
)

// CustomerStorage keeps the project -> billing customer binding and the
// subscription state learned from webhooks.
type CustomerStorage interface {
	// UpsertCustomer binds projectID to customerID, replacing any earlier binding
	// for the project, and returns the stored record.
	UpsertCustomer(ctx context.Context, projectID, customerID string) (*domain.BillingCustomer, error)
	// CustomerByProject returns the customer bound to projectID, or nil when none is.
	CustomerByProject(ctx context.Context, projectID string) (*domain.BillingCustomer, error)
	// CustomerByID returns the record holding customerID, or nil when none does.
	CustomerByID(ctx context.Context, customerID string) (*domain.BillingCustomer, error)
	// UpdateSubscription applies update to the record holding customerID and
	// returns it, or nil when no record holds that customer.
	UpdateSubscription(ctx context.Context,
		customerID string,
		update domain.SubscriptionUpdate) (*domain.BillingCustomer, error)
}

// ResetTokenStorage keeps outstanding password-reset tokens.
type ResetTokenStorage interface {
	// StoreResetToken saves token, replacing one with the same value.
	StoreResetToken(ctx context.Context, token domain.ResetToken) error
	// ResetToken returns the token with the given value, or nil when absent.
	// Expired tokens are returned as-is; callers decide what expiry means.
	ResetToken(ctx context.Context, token string) (*domain.ResetToken, error)
	// DeleteResetToken removes the token. Removing an absent token is not an error.
	DeleteResetToken(ctx context.Context, token string) error
	// DeleteExpiredResetTokens removes every token expired at now and returns how many were removed.
	DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error)
}

// Storage is the full storage handle used by the application.
type Storage interface {
	CustomerStorage
	ResetTokenStorage

	// Close releases resources held by the implementation.
	Close() error
}
