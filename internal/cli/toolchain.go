package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forknet/internal/cli/render"
	"github.com/trebuchet-org/forknet/internal/domain/config"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// NewToolchainCmd creates the toolchain command
func NewToolchainCmd() *cobra.Command {
	var (
		format      string
		showSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "toolchain [default|optimistic]",
		Short: "Show the deployment toolchain configuration",
		Long: `Show the compiler and deployment network configuration used to build and
deploy contracts against the forks. Mnemonics and API keys are redacted
unless --show-secrets is given.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(config.ToolchainDefault), string(config.ToolchainOptimistic)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !lo.Contains(render.Formats, format) {
				return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(render.Formats, ", "))
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowToolchainParams{ShowSecrets: showSecrets}
			if len(args) == 1 {
				params.Name = config.ToolchainName(args[0])
			}

			result, err := app.ShowToolchain.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			return render.NewToolchainRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), format).Render(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", render.FormatTable, "Output format: table, toml, yaml or json")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print mnemonics and API keys unredacted")

	return cmd
}
