// Package memory provides a process-local storage.Storage. State is lost on
// restart, which is acceptable for development and single-instance setups.
package memory

import (
	"context"
	"seoguard/pkg/domain"
	"seoguard/pkg/storage"
	"sync"
	"time"
)

// Memory implements storage.Storage with mutex-guarded maps. It is safe for
// concurrent use.
type Memory struct {
	mu sync.RWMutex
	// customers is keyed by project id.
	customers map[string]domain.BillingCustomer
	// resetTokens is keyed by token value.
	resetTokens map[string]domain.ResetToken

	now func() time.Time
}

var _ storage.Storage = (*Memory)(nil)

// New returns an empty Memory storage.
func New() *Memory {
	return &Memory{
		customers:   make(map[string]domain.BillingCustomer),
		resetTokens: make(map[string]domain.ResetToken),
		now:         time.Now,
	}
}

// UpsertCustomer binds projectID to customerID.
func (m *Memory) UpsertCustomer(_ context.Context, projectID, customerID string) (*domain.BillingCustomer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	c, ok := m.customers[projectID]
	if !ok {
		c = domain.BillingCustomer{ProjectID: projectID, CreatedAt: now}
	}
	if c.CustomerID != customerID {
		// a new customer does not inherit the previous customer's subscription
		c.SubscriptionID = ""
		c.SubscriptionStatus = domain.SubscriptionStatusNone
		c.PriceID = ""
		c.CurrentPeriodEnd = time.Time{}
	}
	c.CustomerID = customerID
	c.UpdatedAt = now
	m.customers[projectID] = c

	return &c, nil
}

// CustomerByProject returns the customer bound to projectID.
func (m *Memory) CustomerByProject(_ context.Context, projectID string) (*domain.BillingCustomer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c, ok := m.customers[projectID]
	if !ok {
		return nil, nil
	}

	return &c, nil
}

// CustomerByID scans the bindings for customerID.
func (m *Memory) CustomerByID(_ context.Context, customerID string) (*domain.BillingCustomer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.customers {
		if c.CustomerID == customerID {
			return &c, nil
		}
	}

	return nil, nil
}

// UpdateSubscription applies update to every project billed to customerID and
// returns the last updated record.
func (m *Memory) UpdateSubscription(_ context.Context,
	customerID string,
	update domain.SubscriptionUpdate) (*domain.BillingCustomer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var updated *domain.BillingCustomer
	for projectID, c := range m.customers {
		if c.CustomerID != customerID {
			continue
		}
		applySubscriptionUpdate(&c, update)
		c.UpdatedAt = m.now().UTC()
		m.customers[projectID] = c
		updated = &c
	}

	return updated, nil
}

func applySubscriptionUpdate(c *domain.BillingCustomer, update domain.SubscriptionUpdate) {
	if update.SubscriptionID != "" {
		c.SubscriptionID = update.SubscriptionID
	}
	if update.Status != domain.SubscriptionStatusNone {
		c.SubscriptionStatus = update.Status
	}
	if update.PriceID != "" {
		c.PriceID = update.PriceID
	}
	if !update.CurrentPeriodEnd.IsZero() {
		c.CurrentPeriodEnd = update.CurrentPeriodEnd.UTC()
	}
}

// StoreResetToken saves token.
func (m *Memory) StoreResetToken(_ context.Context, token domain.ResetToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if token.CreatedAt.IsZero() {
		token.CreatedAt = m.now().UTC()
	}
	m.resetTokens[token.Token] = token

	return nil
}

// ResetToken returns the token with the given value.
func (m *Memory) ResetToken(_ context.Context, token string) (*domain.ResetToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.resetTokens[token]
	if !ok {
		return nil, nil
	}

	return &t, nil
}

// DeleteResetToken removes the token.
func (m *Memory) DeleteResetToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.resetTokens, token)

	return nil
}

// DeleteExpiredResetTokens removes tokens expired at now.
func (m *Memory) DeleteExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for k, t := range m.resetTokens {
		if t.Expired(now) {
			delete(m.resetTokens, k)
			removed++
		}
	}

	return removed, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
