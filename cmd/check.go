package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"seoguard/internal/config"
	"seoguard/internal/diagnostics"
	"seoguard/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errCheckFailed = errors.New("one or more checks failed")

// checkCommand constructs the 'check' subcommand that checks the configured
// backend is reachable and enforces authentication.
func checkCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Checks connectivity to the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			output, _ := cmd.Flags().GetString("output")

			opts := diagnostics.NewOptions(cfg)
			if url, _ := cmd.Flags().GetString("url"); url != "" {
				opts.BackendURL = url
			}
			if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
				opts.Timeout = timeout
			}

			checker, err := diagnostics.New(&http.Client{}, opts)
			if err != nil {
				return err
			}

			results := checker.Run(ctx)
			if err = diagnostics.Write(os.Stdout, output, results); err != nil {
				return err
			}

			if !diagnostics.AllPassed(results) {
				logger.Warn(ctx, "backend check failed", zap.String("backend", opts.BackendURL))

				return errCheckFailed
			}

			return nil
		},
	}

	cmd.Flags().StringP("output", "o", diagnostics.FormatTable, "Output format (table, yaml)")
	cmd.Flags().String("url", "", "Backend base URL, defaults to the configured one")
	cmd.Flags().Duration("timeout", 0, "Per check timeout (e.g., 2s), defaults to the backend dial timeout")

	return cmd
}
