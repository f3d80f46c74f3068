package postgres

import (
	"context"
	"fmt"
	"seoguard/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	resetTokensTable = "password_reset_tokens"
)

// StoreResetToken inserts token, overwriting a row with the same token value.
func (p *PgSQL) StoreResetToken(ctx context.Context, token domain.ResetToken) error {
	_, err := p.Builder.Insert(resetTokensTable).
		Rows(PgResetToken{
			Token:     token.Token,
			Email:     token.Email,
			ExpiresAt: token.ExpiresAt.UTC(),
		}).
		OnConflict(goqu.DoUpdate("token", goqu.Record{
			"email":      goqu.L("EXCLUDED.email"),
			"expires_at": goqu.L("EXCLUDED.expires_at"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store reset token in pg: %w", err)
	}

	return nil
}

// ResetToken returns the token row, or nil when absent.
func (p *PgSQL) ResetToken(ctx context.Context, token string) (*domain.ResetToken, error) {
	var row PgResetToken
	found, err := p.Builder.From(resetTokensTable).
		Where(goqu.I("token").Eq(token)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch reset token: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteResetToken removes the token row if present.
func (p *PgSQL) DeleteResetToken(ctx context.Context, token string) error {
	_, err := p.Builder.Delete(resetTokensTable).
		Where(goqu.I("token").Eq(token)).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete reset token: %w", err)
	}

	return nil
}

// DeleteExpiredResetTokens removes rows whose expiry is at or before now.
func (p *PgSQL) DeleteExpiredResetTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := p.Builder.Delete(resetTokensTable).
		Where(goqu.I("expires_at").Lte(now.UTC())).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not delete expired reset tokens: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count deleted reset tokens: %w", err)
	}

	return n, nil
}
