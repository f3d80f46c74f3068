// Package billing implements subscription checkout, billing-portal access and
// webhook-driven reconciliation of the local subscription state.
package billing

import (
	"context"
	"seoguard/internal/config"
	"seoguard/pkg/domain"
	"seoguard/pkg/logger"
	"seoguard/pkg/metrics"
	"seoguard/pkg/payments"
	"seoguard/pkg/serrors"
	"seoguard/pkg/storage"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// NoCustomerMessage is returned by Portal for projects that never checked out.
const NoCustomerMessage = "No billing account found for this project"

type Options struct {
	// Prices maps each plan to its payment-processor price id.
	Prices map[domain.Plan]string
	// SuccessURL and CancelURL are where checkout sends the browser back to.
	SuccessURL string
	CancelURL  string
	// PortalReturnURL is where the billing portal sends the browser back to.
	PortalReturnURL string
}

func NewOptions(cfg *config.Config) Options {
	appURL := strings.TrimRight(cfg.App.URL, "/")

	return Options{
		Prices: map[domain.Plan]string{
			domain.PlanStarter: cfg.Stripe.Prices.Starter,
			domain.PlanPro:     cfg.Stripe.Prices.Pro,
			domain.PlanAgency:  cfg.Stripe.Prices.Agency,
		},
		SuccessURL:      appURL + "/billing?success=true",
		CancelURL:       appURL + "/billing?canceled=true",
		PortalReturnURL: appURL + "/billing",
	}
}

type eventHandler func(ctx context.Context, ev *payments.Event) error

type Service struct {
	provider payments.Provider
	storage  storage.CustomerStorage
	metrics  *metrics.Metrics
	opts     Options

	handlers map[string]eventHandler
}

func New(provider payments.Provider,
	storage storage.CustomerStorage,
	metrics *metrics.Metrics,
	opts Options) *Service {
	s := &Service{
		provider: provider,
		storage:  storage,
		metrics:  metrics,
		opts:     opts,
	}
	s.handlers = map[string]eventHandler{
		payments.EventCheckoutCompleted:     s.onCheckoutCompleted,
		payments.EventSubscriptionCreated:   s.onSubscriptionChanged,
		payments.EventSubscriptionUpdated:   s.onSubscriptionChanged,
		payments.EventSubscriptionDeleted:   s.onSubscriptionDeleted,
		payments.EventInvoicePaymentSucceed: s.onInvoice(domain.SubscriptionStatusActive),
		payments.EventInvoicePaymentFailed:  s.onInvoice(domain.SubscriptionStatusPastDue),
	}

	return s
}

// Plans returns the purchasable plans in a stable order.
func (s *Service) Plans() []domain.Plan {
	return lo.Filter([]domain.Plan{domain.PlanStarter, domain.PlanPro, domain.PlanAgency},
		func(p domain.Plan, _ int) bool { return s.opts.Prices[p] != "" })
}

// HandledEvents lists the webhook event types that change local state.
func (s *Service) HandledEvents() []string {
	return lo.Keys(s.handlers)
}

// Checkout starts a subscription checkout for projectID. A project that
// already has a customer reuses it.
func (s *Service) Checkout(ctx context.Context,
	plan domain.Plan,
	projectID, email string) (*payments.Session, error) {
	price := s.opts.Prices[plan]
	if price == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "Unknown plan %q", plan)
	}

	existing, err := s.storage.CustomerByProject(ctx, projectID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not load billing customer")
	}

	params := payments.CheckoutParams{
		PriceID:       price,
		ProjectID:     projectID,
		CustomerEmail: email,
		SuccessURL:    s.opts.SuccessURL,
		CancelURL:     s.opts.CancelURL,
	}
	if existing != nil {
		params.CustomerID = existing.CustomerID
	}

	session, err := s.provider.CreateCheckoutSession(ctx, params)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "Checkout session created",
		zap.String("project_id", projectID),
		zap.String("plan", string(plan)),
		zap.String("session_id", session.ID))

	return session, nil
}

// Portal opens the billing portal for the customer bound to projectID.
func (s *Service) Portal(ctx context.Context, projectID string) (*payments.Session, error) {
	c, err := s.Customer(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return s.provider.CreatePortalSession(ctx, c.CustomerID, s.opts.PortalReturnURL)
}

// Customer returns the billing record of projectID.
func (s *Service) Customer(ctx context.Context, projectID string) (*domain.BillingCustomer, error) {
	c, err := s.storage.CustomerByProject(ctx, projectID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not load billing customer")
	}
	if c == nil {
		return nil, serrors.With(serrors.ErrNotFound, NoCustomerMessage)
	}

	return c, nil
}

// HandleWebhook verifies and applies a webhook delivery. Unknown event types
// are acknowledged without changes. An error of kind serrors.ErrBadRequest
// means the delivery could not be authenticated; other errors ask the
// processor to redeliver.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		logger.Warn(ctx, "Rejected webhook delivery", zap.Error(err))

		return err
	}
	ctx = logger.WithFields(ctx, zap.String("event_id", ev.ID), zap.String("event_type", ev.Type))

	handler, ok := s.handlers[ev.Type]
	if !ok {
		logger.Info(ctx, "Unhandled webhook event")
		s.metrics.RecordWebhook(ctx, ev.Type, false)

		return nil
	}

	if err := handler(ctx, ev); err != nil {
		logger.Error(ctx, "Could not apply webhook event", zap.Error(err))

		return err
	}
	s.metrics.RecordWebhook(ctx, ev.Type, true)

	return nil
}

func (s *Service) onCheckoutCompleted(ctx context.Context, ev *payments.Event) error {
	if ev.ProjectID == "" || ev.CustomerID == "" {
		logger.Warn(ctx, "Checkout completed without project or customer",
			zap.String("project_id", ev.ProjectID),
			zap.String("customer_id", ev.CustomerID))

		return nil
	}

	if _, err := s.storage.UpsertCustomer(ctx, ev.ProjectID, ev.CustomerID); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not bind billing customer")
	}
	if ev.SubscriptionID != "" {
		update := domain.SubscriptionUpdate{SubscriptionID: ev.SubscriptionID}
		if _, err := s.storage.UpdateSubscription(ctx, ev.CustomerID, update); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not store subscription")
		}
	}
	logger.Info(ctx, "Checkout completed",
		zap.String("project_id", ev.ProjectID),
		zap.String("customer_id", ev.CustomerID))

	return nil
}

func (s *Service) onSubscriptionChanged(ctx context.Context, ev *payments.Event) error {
	return s.applySubscription(ctx, ev, domain.SubscriptionUpdate{
		SubscriptionID:   ev.SubscriptionID,
		Status:           ev.Status,
		PriceID:          ev.PriceID,
		CurrentPeriodEnd: ev.PeriodEnd,
	})
}

func (s *Service) onSubscriptionDeleted(ctx context.Context, ev *payments.Event) error {
	return s.applySubscription(ctx, ev, domain.SubscriptionUpdate{
		SubscriptionID:   ev.SubscriptionID,
		Status:           domain.SubscriptionStatusCanceled,
		CurrentPeriodEnd: ev.PeriodEnd,
	})
}

func (s *Service) onInvoice(status domain.SubscriptionStatus) eventHandler {
	return func(ctx context.Context, ev *payments.Event) error {
		return s.applySubscription(ctx, ev, domain.SubscriptionUpdate{
			SubscriptionID: ev.SubscriptionID,
			Status:         status,
		})
	}
}

// applySubscription writes update to the record of ev's customer. A
// subscription event can arrive before checkout.session.completed; the
// project id carried in the subscription metadata then creates the binding.
func (s *Service) applySubscription(ctx context.Context, ev *payments.Event, update domain.SubscriptionUpdate) error {
	if ev.CustomerID == "" {
		logger.Warn(ctx, "Webhook event without customer")

		return nil
	}

	c, err := s.storage.UpdateSubscription(ctx, ev.CustomerID, update)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not update subscription")
	}
	if c == nil && ev.ProjectID != "" {
		if _, err := s.storage.UpsertCustomer(ctx, ev.ProjectID, ev.CustomerID); err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not bind billing customer")
		}
		c, err = s.storage.UpdateSubscription(ctx, ev.CustomerID, update)
		if err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not update subscription")
		}
	}
	if c == nil {
		logger.Warn(ctx, "No project is billed to customer", zap.String("customer_id", ev.CustomerID))

		return nil
	}

	logger.Info(ctx, "Subscription updated",
		zap.String("project_id", c.ProjectID),
		zap.String("customer_id", c.CustomerID),
		zap.String("status", string(c.SubscriptionStatus)))

	return nil
}
