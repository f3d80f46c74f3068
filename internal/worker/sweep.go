package worker

import (
	"context"
	"fmt"
	"seoguard/pkg/logger"
	"seoguard/pkg/storage"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const sweepTimeout = time.Minute

// ResetTokenSweepArgs identifies the periodic reset token cleanup job.
type ResetTokenSweepArgs struct{}

func (ResetTokenSweepArgs) Kind() string { return "reset_token_sweep" }

func (ResetTokenSweepArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 3}
}

// ResetTokenSweepWorker deletes password reset tokens that can no longer be
// redeemed.
type ResetTokenSweepWorker struct {
	river.WorkerDefaults[ResetTokenSweepArgs]

	tokens storage.ResetTokenStorage
	now    func() time.Time
}

func NewResetTokenSweepWorker(tokens storage.ResetTokenStorage) *ResetTokenSweepWorker {
	return &ResetTokenSweepWorker{
		tokens: tokens,
		now:    time.Now,
	}
}

func (w *ResetTokenSweepWorker) Timeout(*river.Job[ResetTokenSweepArgs]) time.Duration {
	return sweepTimeout
}

func (w *ResetTokenSweepWorker) Work(ctx context.Context, job *river.Job[ResetTokenSweepArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	return w.Sweep(ctx)
}

// Sweep deletes the tokens expired at the current time.
func (w *ResetTokenSweepWorker) Sweep(ctx context.Context) error {
	n, err := w.tokens.DeleteExpiredResetTokens(ctx, w.now())
	if err != nil {
		logger.Error(ctx, "could not sweep reset tokens", zap.Error(err))

		return fmt.Errorf("could not delete expired reset tokens: %w", err)
	}
	if n > 0 {
		logger.Info(ctx, "expired reset tokens deleted", zap.Int64("count", n))
	}

	return nil
}
