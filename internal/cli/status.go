package cli

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forknet/internal/cli/render"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	var (
		port    int
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a local simulator is running and what it forked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			status, err := app.SimulatorStatus.Run(cmd.Context(), usecase.SimulatorStatusParams{
				Port:    port,
				Timeout: timeout,
			})
			if err != nil {
				return err
			}

			return render.NewStatusRenderer(cmd.OutOrStdout()).Render(status)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "RPC port of the simulator (default 8545)")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "Timeout for the RPC queries")

	return cmd
}
