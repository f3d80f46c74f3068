package postgres

import (
	"database/sql"
	"seoguard/pkg/domain"
	"time"
)

type PgCustomer struct {
	ProjectID  string `db:"project_id"`
	CustomerID string `db:"customer_id"`

	SubscriptionID     sql.NullString `db:"subscription_id"     goqu:"skipinsert"`
	SubscriptionStatus sql.NullString `db:"subscription_status" goqu:"skipinsert"`
	PriceID            sql.NullString `db:"price_id"            goqu:"skipinsert"`
	CurrentPeriodEnd   sql.NullTime   `db:"current_period_end"  goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgCustomer) ToDomain() *domain.BillingCustomer {
	var periodEnd time.Time
	if p.CurrentPeriodEnd.Valid {
		periodEnd = p.CurrentPeriodEnd.Time.UTC()
	}

	return &domain.BillingCustomer{
		ProjectID:          p.ProjectID,
		CustomerID:         p.CustomerID,
		SubscriptionID:     p.SubscriptionID.String,
		SubscriptionStatus: domain.SubscriptionStatus(p.SubscriptionStatus.String),
		PriceID:            p.PriceID.String,
		CurrentPeriodEnd:   periodEnd,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

type PgResetToken struct {
	Token     string    `db:"token"`
	Email     string    `db:"email"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgResetToken) ToDomain() *domain.ResetToken {
	return &domain.ResetToken{
		Token:     p.Token,
		Email:     p.Email,
		ExpiresAt: p.ExpiresAt,
		CreatedAt: p.CreatedAt,
	}
}
