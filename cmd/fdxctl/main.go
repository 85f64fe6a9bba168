package main

import (
	"context"
	"fmt"
	"os"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	feedonomics "github.com/feedonomics/feedonomics-go/pkg/client"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fdxctl",
		Short:         "Feedonomics API command line client",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("api-token", "", "Feedonomics API token. ($FDX_API_TOKEN)")
	cmd.PersistentFlags().String("base-url", feedonomics.DefaultBaseURL, "API base endpoint. ($FDX_BASE_URL)")
	cmd.PersistentFlags().Duration("timeout", feedonomics.DefaultTimeout, "Per-request timeout. ($FDX_TIMEOUT)")
	cmd.PersistentFlags().String("db", "", "Active database identifier. ($FDX_DB)")
	cmd.PersistentFlags().Bool("verbose", false, "Enable per-request diagnostics. ($FDX_VERBOSE)")

	cmd.AddCommand(
		newAccountsCmd(),
		newImportsCmd(),
		newSetupCmd(),
	)

	return cmd
}

// newClient builds the client from the resolved configuration and a context
// carrying the logger.
func newClient(cmd *cobra.Command) (context.Context, *feedonomics.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating logger: %w", err)
	}
	ctx := ctxzap.ToContext(context.Background(), logger)

	client, err := feedonomics.New(feedonomics.Config{
		APIToken: cfg.APIToken,
		BaseURL:  cfg.BaseURL,
		Timeout:  cfg.Timeout,
		DbID:     cfg.Db,
		Verbose:  cfg.Verbose,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error creating client: %w", err)
	}

	return ctx, client, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
