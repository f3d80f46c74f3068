package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"seoguard/internal/account"
	"seoguard/internal/api"
	"seoguard/internal/api/handler/apihandler"
	"seoguard/internal/billing"
	"seoguard/internal/config"
	"seoguard/internal/dashboard"
	"seoguard/internal/worker"
	"seoguard/pkg/backend"
	"seoguard/pkg/logger"
	"seoguard/pkg/payments/stripepay"
	"seoguard/pkg/storage"
	"seoguard/pkg/storage/postgres"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// backendHTTPClient returns the client used to reach the backend. Only the dial
// is bounded here; per-route deadlines come from the request context.
func backendHTTPClient(cfg *config.Config) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: cfg.Backend.DialTimeout}).DialContext

	return &http.Client{Transport: transport}
}

func setupServer(ctx context.Context, cfg *config.Config, strg storage.Storage) func(ctx context.Context) {
	client, err := backend.New(backendHTTPClient(cfg), cfg.Backend.URL)
	if err != nil {
		logger.Fatal(ctx, "could not create backend client", zap.Error(err))
	}

	m, err := api.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create metrics", zap.Error(err))
	}

	provider := stripepay.New(stripepay.Options{
		SecretKey:     cfg.Stripe.SecretKey,
		WebhookSecret: cfg.Stripe.WebhookSecret,
	})
	billingSvc := billing.New(provider, strg, m, billing.NewOptions(cfg))
	accountSvc := account.New(strg, client, account.NewOptions(cfg))

	server, err := api.NewServer(api.Deps{
		API: apihandler.Deps{
			Backend: client,
			Account: accountSvc,
			Billing: billingSvc,
		},
		Dashboard: dashboard.Deps{
			Backend: client,
			Billing: billingSvc,
		},
		Metrics: m,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...",
			zap.String("addr", cfg.HTTP.Addr), zap.String("backend", client.BaseURL()))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupWorker starts the reset token sweep. With postgres storage the sweep runs
// as a River periodic job, otherwise as an in-process ticker.
func setupWorker(ctx context.Context,
	cfg *config.Config,
	strg storage.Storage,
	pgsql *postgres.PgSQL) func(ctx context.Context) {
	opts := worker.NewOptions(cfg)

	if pgsql == nil {
		logger.Info(ctx, "starting local reset token sweeper...")
		stop := worker.StartLocal(ctx, strg, opts)

		return func(ctx context.Context) {
			logger.Info(ctx, "stopping local reset token sweeper...")
			stop()
		}
	}

	logger.Info(ctx, "starting river queue client...")
	riverClient, err := worker.Start(ctx, pgsql.Pool, strg, opts)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping river queue client...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop river queue client", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the dashboard, the API proxy and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, pgsql, closeStrg := getStorage(ctx, cfg)
			defer closeStrg()

			stopWorker := setupWorker(ctx, cfg, strg, pgsql)
			stopWebserver := setupServer(ctx, cfg, strg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}
