package postgres

import (
	"context"
	"fmt"
	"seoguard/pkg/domain"

	"github.com/doug-martin/goqu/v9"
)

const (
	customersTable = "billing_customers"
)

// keepIfSameCustomer keeps a subscription column only when the upsert does not
// change the customer bound to the project.
func keepIfSameCustomer(column string) goqu.Expression {
	return goqu.L(fmt.Sprintf(
		"CASE WHEN %s.customer_id = EXCLUDED.customer_id THEN %s.%s END",
		customersTable, customersTable, column))
}

// UpsertCustomer binds projectID to customerID. Rebinding a project to another
// customer clears the subscription fields.
func (p *PgSQL) UpsertCustomer(ctx context.Context, projectID, customerID string) (*domain.BillingCustomer, error) {
	var row PgCustomer
	_, err := p.Builder.Insert(customersTable).
		Rows(goqu.Record{
			"project_id":  projectID,
			"customer_id": customerID,
		}).
		OnConflict(goqu.DoUpdate("project_id", goqu.Record{
			"customer_id":         goqu.L("EXCLUDED.customer_id"),
			"subscription_id":     keepIfSameCustomer("subscription_id"),
			"subscription_status": keepIfSameCustomer("subscription_status"),
			"price_id":            keepIfSameCustomer("price_id"),
			"current_period_end":  keepIfSameCustomer("current_period_end"),
			"updated_at":          goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgCustomer{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not upsert billing customer in pg: %w", err)
	}

	return row.ToDomain(), nil
}

// CustomerByProject returns the customer bound to projectID, or nil.
func (p *PgSQL) CustomerByProject(ctx context.Context, projectID string) (*domain.BillingCustomer, error) {
	var row PgCustomer
	found, err := p.Builder.From(customersTable).
		Where(goqu.I("project_id").Eq(projectID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch billing customer by project: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// CustomerByID returns the most recently updated record holding customerID, or nil.
func (p *PgSQL) CustomerByID(ctx context.Context, customerID string) (*domain.BillingCustomer, error) {
	var row PgCustomer
	found, err := p.Builder.From(customersTable).
		Where(goqu.I("customer_id").Eq(customerID)).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch billing customer by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateSubscription applies update to every project billed to customerID.
// Only non-empty fields are written; updated_at is set automatically.
func (p *PgSQL) UpdateSubscription(ctx context.Context,
	customerID string,
	update domain.SubscriptionUpdate) (*domain.BillingCustomer, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if update.SubscriptionID != "" {
		rec["subscription_id"] = update.SubscriptionID
	}
	if update.Status != domain.SubscriptionStatusNone {
		rec["subscription_status"] = string(update.Status)
	}
	if update.PriceID != "" {
		rec["price_id"] = update.PriceID
	}
	if !update.CurrentPeriodEnd.IsZero() {
		rec["current_period_end"] = update.CurrentPeriodEnd.UTC()
	}

	var rows []PgCustomer
	err := p.Builder.Update(customersTable).
		Set(rec).
		Where(goqu.I("customer_id").Eq(customerID)).
		Returning(&PgCustomer{}).
		Executor().ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("could not update subscription in pg: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return rows[len(rows)-1].ToDomain(), nil
}
