package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forknet/internal/cli/render"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var (
		check   bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List the networks forknet can fork",
		Long: `List every supported network with its chain ID and fork endpoint.

With --check each fork endpoint is queried for its chain ID and compared
against the expected one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{
				Check:   check,
				Timeout: timeout,
			})
			if err != nil {
				return err
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), app.Config.Credentials.InfuraKey)
			return renderer.Render(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Query each fork endpoint for its chain ID")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout per endpoint when checking")

	return cmd
}
