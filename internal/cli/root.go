package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forknet/internal/app"
	"github.com/trebuchet-org/forknet/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command. Run without a subcommand it launches a fork.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "forknet --network <name> [--blocktime <seconds>]",
		Short: "Launch a local chain simulator forked from a known network",
		Long: `forknet starts ganache-cli (or anvil) as a local fork of one of the
supported BSC, Ethereum and Optimism networks, with the chain ID of the
forked network, and streams its output until it exits.`,
		Example: `  forknet -n bsc-local-testnet
  forknet -n eth-local-mainnet -b 5
  forknet networks --check`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			workDir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			if err := config.LoadEnvFiles(workDir); err != nil {
				return err
			}

			configFile, _ := cmd.Flags().GetString("config")
			v, err := config.SetupViper(workDir, configFile, cmd)
			if err != nil {
				return err
			}

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(context.WithValue(ctx, appKey, appInstance))

			return nil
		},
		RunE: runLaunch,
	}

	// Launch flags
	rootCmd.Flags().StringP("network", "n", "", "Network to fork (see 'forknet networks')")
	rootCmd.Flags().Float64P("blocktime", "b", 0, "Seconds between mined blocks (instant mining when omitted)")
	rootCmd.Flags().IntP("port", "p", 0, "RPC port of the simulator (simulator default when omitted)")
	rootCmd.Flags().Bool("dry-run", false, "Print the simulator command line without running it")
	rootCmd.Flags().Bool("show-secrets", false, "Print the Infura key unmasked with --dry-run")

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./forknet.{toml,yaml,json})")
	rootCmd.PersistentFlags().String("flavor", "", "Simulator flavor: ganache or anvil")
	rootCmd.PersistentFlags().Bool("no-probe", false, "Do not wait for the simulator RPC to report readiness")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	statusCmd := NewStatusCmd()
	statusCmd.GroupID = "management"
	rootCmd.AddCommand(statusCmd)

	toolchainCmd := NewToolchainCmd()
	toolchainCmd.GroupID = "management"
	rootCmd.AddCommand(toolchainCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
