// Package main provides the CLI entrypoint for the SEOGuard dashboard backend.
// It wires subcommands (serve, migrate, check), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"seoguard/internal/config"
	"seoguard/pkg/logger"
	"seoguard/pkg/storage"
	"seoguard/pkg/storage/memory"
	"seoguard/pkg/storage/postgres"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getStorage builds the configured storage driver. The returned *postgres.PgSQL
// is nil unless the postgres driver is selected.
func getStorage(ctx context.Context, cfg *config.Config) (storage.Storage, *postgres.PgSQL, func()) {
	switch cfg.Storage.Driver {
	case storage.DriverMemory:
		logger.Warn(ctx, "using in-memory storage, billing customers and reset tokens are lost on restart")

		return memory.New(), nil, func() {}
	case storage.DriverPostgres:
		pgsql, closeFn := getPostgres(ctx, cfg)

		return pgsql, pgsql, closeFn
	default:
		logger.Fatal(ctx, "could not create storage",
			zap.String("driver", cfg.Storage.Driver), zap.Error(storage.ErrUnknownDriver))

		return nil, nil, nil
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "seoguard",
		SilenceUsage: true,
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config File Path")

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("c", "", "The config file path, the environment is used when empty")
	_ = fs.Parse(configArgs(os.Args[1:]))

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err = logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		checkCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs picks the -c/--config flag out of args so subcommand flags do not
// trip the standard flag parser.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		case strings.HasPrefix(arg, "-c="):
			return []string{arg}
		case strings.HasPrefix(arg, "--config="):
			return []string{"-c=" + strings.TrimPrefix(arg, "--config=")}
		}
	}

	return nil
}
