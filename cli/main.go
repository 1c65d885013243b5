package main

import (
	"os"

	"github.com/trebuchet-org/forknet/internal/cli"
	"github.com/trebuchet-org/forknet/internal/cli/render"
	"github.com/trebuchet-org/forknet/internal/domain"
)

func main() {
	if err := cli.Execute(); err != nil {
		render.NewLaunchRenderer(os.Stderr).RenderError(err)
		os.Exit(domain.ExitCode(err))
	}
}
