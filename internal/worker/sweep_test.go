package worker_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"seoguard/internal/worker"
	"seoguard/pkg/domain"
	"seoguard/pkg/logger"
	mockstorage "seoguard/pkg/storage/mock"
	"seoguard/pkg/storage/memory"
)

func TestMain(m *testing.M) {
	if err := logger.Setup(logger.DevelopmentEnvironment, ""); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}

func makeJob(id int64) *river.Job[worker.ResetTokenSweepArgs] {
	return &river.Job[worker.ResetTokenSweepArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   worker.ResetTokenSweepArgs{},
	}
}

func TestResetTokenSweepArgs(t *testing.T) {
	require.Equal(t, "reset_token_sweep", worker.ResetTokenSweepArgs{}.Kind())
	require.Equal(t, 3, worker.ResetTokenSweepArgs{}.InsertOpts().MaxAttempts)
}

func TestResetTokenSweepWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mockstorage.NewMockResetTokenStorage(ctrl)
	w := worker.NewResetTokenSweepWorker(tokens)

	before := time.Now()
	tokens.EXPECT().DeleteExpiredResetTokens(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, now time.Time) (int64, error) {
			require.False(t, now.Before(before))

			return 2, nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(1)))
	require.Equal(t, time.Minute, w.Timeout(makeJob(1)))
}

func TestResetTokenSweepWorker_WorkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mockstorage.NewMockResetTokenStorage(ctrl)
	w := worker.NewResetTokenSweepWorker(tokens)

	boom := errors.New("connection lost")
	tokens.EXPECT().DeleteExpiredResetTokens(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	err := w.Work(context.Background(), makeJob(2))
	require.ErrorIs(t, err, boom)
}

func TestStartLocal(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.StoreResetToken(ctx, domain.ResetToken{
		Token: "old", Email: "a@example.com", ExpiresAt: time.Now().Add(-time.Minute),
	}))
	require.NoError(t, store.StoreResetToken(ctx, domain.ResetToken{
		Token: "fresh", Email: "b@example.com", ExpiresAt: time.Now().Add(time.Hour),
	}))

	stop := worker.StartLocal(ctx, store, worker.Options{SweepInterval: 10 * time.Millisecond})
	require.Eventually(t, func() bool {
		tok, err := store.ResetToken(ctx, "old")

		return err == nil && tok == nil
	}, time.Second, 10*time.Millisecond)
	stop()

	tok, err := store.ResetToken(ctx, "fresh")
	require.NoError(t, err)
	require.NotNil(t, tok)
}
