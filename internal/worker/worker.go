// Package worker runs background maintenance jobs. With the postgres storage
// driver the jobs are scheduled by River; the memory driver uses an in-process
// ticker instead.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"seoguard/internal/config"
	"seoguard/pkg/logger"
	"seoguard/pkg/storage"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap/exp/zapslog"
)

// DefaultSweepInterval applies when Options.SweepInterval is not positive.
const DefaultSweepInterval = 15 * time.Minute

type Options struct {
	// SweepInterval is how often expired reset tokens are deleted.
	SweepInterval time.Duration
	// MaxWorkers limits concurrently running jobs.
	MaxWorkers int
}

func NewOptions(cfg *config.Config) Options {
	return Options{
		SweepInterval: cfg.Worker.SweepInterval,
		MaxWorkers:    cfg.Worker.MaxWorkers,
	}
}

// Start creates and starts a River client running the periodic jobs.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	tokens storage.ResetTokenStorage,
	opts Options) (*river.Client[pgx.Tx], error) {
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewResetTokenSweepWorker(tokens))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: max(opts.MaxWorkers, 1)},
		},
		PeriodicJobs: []*river.PeriodicJob{
			river.NewPeriodicJob(
				river.PeriodicInterval(opts.SweepInterval),
				func() (river.JobArgs, *river.InsertOpts) {
					return ResetTokenSweepArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		},
		Workers: workers,
		Logger:  slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

// StartLocal runs the reset token sweep every opts.SweepInterval until ctx is
// done or the returned stop function is called. stop waits for the loop to exit.
func StartLocal(ctx context.Context, tokens storage.ResetTokenStorage, opts Options) (stop func()) {
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = DefaultSweepInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	sweeper := NewResetTokenSweepWorker(tokens)

	go func() {
		defer close(done)

		ticker := time.NewTicker(opts.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_ = sweeper.Sweep(ctx)
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
