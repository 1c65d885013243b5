package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/forknet/internal/cli/render"
	"github.com/trebuchet-org/forknet/internal/domain"
)

func runLaunch(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	network, _ := cmd.Flags().GetString("network")
	port, _ := cmd.Flags().GetInt("port")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	showSecrets, _ := cmd.Flags().GetBool("show-secrets")

	if network == "" && !app.Config.NonInteractive && isTerminal(os.Stdin) {
		network, err = app.Selector.SelectNetwork(cmd.Context(), app.Catalog.Profiles())
		if err != nil {
			return err
		}
	}

	req := domain.LaunchRequest{Network: network, Port: port}
	if cmd.Flags().Changed("blocktime") {
		blockTime, _ := cmd.Flags().GetFloat64("blocktime")
		req = req.WithBlockTime(blockTime)
	}

	renderer := render.NewLaunchRenderer(cmd.OutOrStdout())
	if dryRun {
		plan, err := app.LaunchSimulator.Plan(req)
		if err != nil {
			return err
		}
		return renderer.RenderPlan(plan, showSecrets)
	}

	// Signals sent to forknet alone are relayed to the simulator, which
	// decides how to exit. They are caught, not ignored, since ignored
	// dispositions survive exec.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	result, err := app.LaunchSimulator.RunForwarding(cmd.Context(), req, signals)
	if err != nil {
		return err
	}
	return renderer.Render(result)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
