package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// LaunchRenderer renders the outcome of a simulator launch
type LaunchRenderer struct {
	out io.Writer
}

// NewLaunchRenderer creates a new launch renderer
func NewLaunchRenderer(out io.Writer) *LaunchRenderer {
	return &LaunchRenderer{out: out}
}

// Render reports a clean simulator exit
func (r *LaunchRenderer) Render(result *usecase.LaunchResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s fork of %s exited cleanly", result.Plan.Argv[0], result.Plan.Profile.Name)))
	return nil
}

// RenderError explains a launch failure, with a hint where one helps
func (r *LaunchRenderer) RenderError(err error) {
	fmt.Fprintln(r.out, FormatError(err.Error()))

	var unsupported *domain.UnsupportedNetworkError
	var spawn *domain.ProcessSpawnError
	switch {
	case errors.As(err, &unsupported):
		fmt.Fprintf(r.out, "   Run %s to see the available networks\n", nameStyle.Sprint("forknet networks"))
	case errors.As(err, &spawn):
		fmt.Fprintf(r.out, "   Is %s installed and on your PATH?\n", nameStyle.Sprint(spawn.Command))
	}
}

// RenderPlan prints the command line a launch would run, credentials masked
// unless showSecrets is set
func (r *LaunchRenderer) RenderPlan(plan *usecase.LaunchPlan, showSecrets bool) error {
	argv := plan.Display
	if showSecrets || len(argv) == 0 {
		argv = plan.Argv
	}
	fmt.Fprintln(r.out, strings.Join(argv, " "))
	return nil
}

var _ Renderer[*usecase.LaunchResult] = (*LaunchRenderer)(nil)
