// Package stripepay implements payments.Provider on top of stripe-go.
package stripepay

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"seoguard/pkg/domain"
	"seoguard/pkg/payments"
	"seoguard/pkg/serrors"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"
)

// ProjectMetadataKey is the metadata key carrying the project id on checkout
// sessions and the subscriptions they create.
const ProjectMetadataKey = "projectId"

type Options struct {
	// SecretKey is the Stripe API secret key.
	SecretKey string
	// WebhookSecret is the signing secret of the webhook endpoint.
	WebhookSecret string
	// Backends overrides the Stripe API backends. Nil uses the defaults.
	Backends *stripe.Backends
}

// Provider talks to Stripe.
type Provider struct {
	api           *client.API
	webhookSecret string
}

var _ payments.Provider = (*Provider)(nil)

func New(opts Options) *Provider {
	return &Provider{
		api:           client.New(opts.SecretKey, opts.Backends),
		webhookSecret: opts.WebhookSecret,
	}
}

// CreateCheckoutSession starts a subscription checkout for a single seat of params.PriceID.
func (p *Provider) CreateCheckoutSession(ctx context.Context,
	params payments.CheckoutParams) (*payments.Session, error) {
	sp := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(params.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(params.SuccessURL),
		CancelURL:         stripe.String(params.CancelURL),
		ClientReferenceID: stripe.String(params.ProjectID),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{ProjectMetadataKey: params.ProjectID},
		},
	}
	sp.Context = ctx
	sp.AddMetadata(ProjectMetadataKey, params.ProjectID)
	switch {
	case params.CustomerID != "":
		sp.Customer = stripe.String(params.CustomerID)
	case params.CustomerEmail != "":
		sp.CustomerEmail = stripe.String(params.CustomerEmail)
	}

	s, err := p.api.CheckoutSessions.New(sp)
	if err != nil {
		return nil, classify(err, "could not create checkout session")
	}

	return &payments.Session{ID: s.ID, URL: s.URL}, nil
}

// CreatePortalSession opens the billing portal for customerID.
func (p *Provider) CreatePortalSession(ctx context.Context, customerID, returnURL string) (*payments.Session, error) {
	sp := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(returnURL),
	}
	sp.Context = ctx

	s, err := p.api.BillingPortalSessions.New(sp)
	if err != nil {
		return nil, classify(err, "could not create billing portal session")
	}

	return &payments.Session{ID: s.ID, URL: s.URL}, nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes the fields of
// the event object relevant to its type. Other event types come back with
// only ID and Type set.
func (p *Provider) ParseWebhook(payload []byte, signature string) (*payments.Event, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, fmt.Errorf("%w: %w", payments.ErrSignature, err),
			"webhook signature verification failed")
	}

	out := &payments.Event{ID: ev.ID, Type: string(ev.Type)}
	if ev.Data == nil {
		return out, nil
	}

	switch out.Type {
	case payments.EventCheckoutCompleted:
		var s stripe.CheckoutSession
		if err := json.Unmarshal(ev.Data.Raw, &s); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid checkout session payload")
		}
		out.ProjectID = s.ClientReferenceID
		if out.ProjectID == "" {
			out.ProjectID = s.Metadata[ProjectMetadataKey]
		}
		if s.Customer != nil {
			out.CustomerID = s.Customer.ID
		}
		if s.Subscription != nil {
			out.SubscriptionID = s.Subscription.ID
		}
	case payments.EventSubscriptionCreated, payments.EventSubscriptionUpdated, payments.EventSubscriptionDeleted:
		var sub stripe.Subscription
		if err := json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid subscription payload")
		}
		out.SubscriptionID = sub.ID
		out.ProjectID = sub.Metadata[ProjectMetadataKey]
		out.Status = domain.SubscriptionStatus(sub.Status)
		if sub.Customer != nil {
			out.CustomerID = sub.Customer.ID
		}
		if sub.CurrentPeriodEnd > 0 {
			out.PeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
		}
		if sub.Items != nil && len(sub.Items.Data) > 0 && sub.Items.Data[0].Price != nil {
			out.PriceID = sub.Items.Data[0].Price.ID
		}
	case payments.EventInvoicePaymentSucceed, payments.EventInvoicePaymentFailed:
		var inv stripe.Invoice
		if err := json.Unmarshal(ev.Data.Raw, &inv); err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid invoice payload")
		}
		if inv.Customer != nil {
			out.CustomerID = inv.Customer.ID
		}
		if inv.Subscription != nil {
			out.SubscriptionID = inv.Subscription.ID
		}
	}

	return out, nil
}

func classify(err error, msg string) error {
	var se *stripe.Error
	if errors.As(err, &se) {
		if se.Type == stripe.ErrorTypeInvalidRequest {
			return serrors.Wrap(serrors.ErrBadRequest, err, "%s: %s", msg, se.Msg)
		}

		return serrors.Wrap(serrors.ErrUnavailable, err, "%s", msg)
	}

	return serrors.Wrap(serrors.ErrUnavailable, fmt.Errorf("stripe: %w", err), "%s", msg)
}
