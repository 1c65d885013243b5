package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/forknet/internal/domain"
)

// StatusRenderer renders the state of a local simulator
type StatusRenderer struct {
	out io.Writer
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer) *StatusRenderer {
	return &StatusRenderer{out: out}
}

// Render renders a simulator status report
func (r *StatusRenderer) Render(status *domain.SimulatorStatus) error {
	if !status.Running {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("no simulator answering at %s", status.RPCURL)))
		if status.Error != "" {
			fmt.Fprintf(r.out, "   %s\n", faintStyle.Sprint(status.Error))
		}
		return nil
	}

	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Simulator running at %s", status.RPCURL)))
	fmt.Fprintf(r.out, "   Chain ID: %s\n", chainStyle.Sprint(status.ChainID))
	if status.Error != "" {
		fmt.Fprintf(r.out, "   %s\n", FormatWarning(status.Error))
	} else {
		fmt.Fprintf(r.out, "   Block:    %d\n", status.Block)
	}

	if len(status.Profiles) == 0 {
		fmt.Fprintf(r.out, "   Forked:   %s\n", faintStyle.Sprint("(no known network with this chain ID)"))
		return nil
	}

	names := lo.Map(status.Profiles, func(p domain.NetworkProfile, _ int) string { return p.Name })
	fmt.Fprintf(r.out, "   Forked:   %s\n", nameStyle.Sprint(strings.Join(names, " or ")))
	return nil
}

var _ Renderer[*domain.SimulatorStatus] = (*StatusRenderer)(nil)
