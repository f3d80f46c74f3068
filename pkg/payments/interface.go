// Package payments abstracts the payment processor behind checkout, billing
// portal and webhook verification. The stripepay subpackage implements it.
package payments

import (
	"context"
	"errors"
	"seoguard/pkg/domain"
	"time"
)

// ErrSignature is in the chain of ParseWebhook errors caused by a delivery
// that could not be authenticated. Other ParseWebhook errors concern a
// verified payload that could not be decoded.
var ErrSignature = errors.New("webhook signature verification failed")

// Webhook event types the billing service reacts to.
const (
	EventCheckoutCompleted     = "checkout.session.completed"
	EventSubscriptionCreated   = "customer.subscription.created"
	EventSubscriptionUpdated   = "customer.subscription.updated"
	EventSubscriptionDeleted   = "customer.subscription.deleted"
	EventInvoicePaymentSucceed = "invoice.payment_succeeded"
	EventInvoicePaymentFailed  = "invoice.payment_failed"
)

// CheckoutParams describes a subscription checkout session.
type CheckoutParams struct {
	PriceID   string
	ProjectID string
	// CustomerID reuses an existing customer when set.
	CustomerID string
	// CustomerEmail pre-fills the checkout form when CustomerID is empty.
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Session is a hosted page the browser is redirected to.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Event is the subset of a verified webhook event the billing service needs.
type Event struct {
	ID   string
	Type string

	CustomerID     string
	SubscriptionID string
	// ProjectID is the project the checkout was started for, when known.
	ProjectID string
	Status    domain.SubscriptionStatus
	PriceID   string
	PeriodEnd time.Time
}

// Provider is a payment processor.
//
//go:generate mockgen -package mockpayments -source=interface.go -destination=mock/mockpayments.go *
type Provider interface {
	// CreateCheckoutSession starts a subscription checkout.
	CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*Session, error)
	// CreatePortalSession opens the hosted billing portal for customerID.
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (*Session, error)
	// ParseWebhook verifies signature over payload and decodes the event.
	// Verification failures are of kind serrors.ErrBadRequest.
	ParseWebhook(payload []byte, signature string) (*Event, error)
}
