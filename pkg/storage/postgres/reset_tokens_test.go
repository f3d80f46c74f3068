package postgres_test

import (
	"context"
	"seoguard/pkg/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_ResetTokens(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, pg.StoreResetToken(ctx, domain.ResetToken{
		Token: "live", Email: "owner@example.com", ExpiresAt: now.Add(time.Hour),
	}))
	require.NoError(t, pg.StoreResetToken(ctx, domain.ResetToken{
		Token: "stale", Email: "old@example.com", ExpiresAt: now.Add(-time.Minute),
	}))

	tok, err := pg.ResetToken(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, tok)
	require.Equal(t, "owner@example.com", tok.Email)
	require.True(t, tok.ExpiresAt.Equal(now.Add(time.Hour)))

	// storing the same token again overwrites it
	require.NoError(t, pg.StoreResetToken(ctx, domain.ResetToken{
		Token: "live", Email: "new@example.com", ExpiresAt: now.Add(2 * time.Hour),
	}))
	tok, err = pg.ResetToken(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, "new@example.com", tok.Email)

	removed, err := pg.DeleteExpiredResetTokens(ctx, now)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	stale, err := pg.ResetToken(ctx, "stale")
	require.NoError(t, err)
	require.Nil(t, stale)

	require.NoError(t, pg.DeleteResetToken(ctx, "live"))
	require.NoError(t, pg.DeleteResetToken(ctx, "live"))
	gone, err := pg.ResetToken(ctx, "live")
	require.NoError(t, err)
	require.Nil(t, gone)
}
