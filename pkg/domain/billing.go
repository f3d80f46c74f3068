package domain

import "time"

// Plan is a purchasable subscription tier.
type Plan string

const (
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
	PlanAgency  Plan = "agency"
)

// SubscriptionStatus mirrors the payment processor's subscription lifecycle.
type SubscriptionStatus string

const (
	SubscriptionStatusNone       SubscriptionStatus = ""
	SubscriptionStatusIncomplete SubscriptionStatus = "incomplete"
	SubscriptionStatusTrialing   SubscriptionStatus = "trialing"
	SubscriptionStatusActive     SubscriptionStatus = "active"
	SubscriptionStatusPastDue    SubscriptionStatus = "past_due"
	SubscriptionStatusUnpaid     SubscriptionStatus = "unpaid"
	SubscriptionStatusCanceled   SubscriptionStatus = "canceled"
)

// BillingCustomer binds a project to its payment-processor customer and keeps
// the last subscription state reported by webhooks.
type BillingCustomer struct {
	// ProjectID is the backend project the subscription pays for.
	ProjectID string `json:"projectId"`
	// CustomerID is the payment-processor customer id (cus_...).
	CustomerID string `json:"customerId"`

	SubscriptionID     string             `json:"subscriptionId,omitempty"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus,omitempty"`
	PriceID            string             `json:"priceId,omitempty"`
	// CurrentPeriodEnd is zero when unknown.
	CurrentPeriodEnd time.Time `json:"currentPeriodEnd,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubscriptionUpdate is the subset of subscription fields a webhook event can
// change. Empty strings and zero times leave the stored value untouched.
type SubscriptionUpdate struct {
	SubscriptionID   string
	Status           SubscriptionStatus
	PriceID          string
	CurrentPeriodEnd time.Time
}
