package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out       io.Writer
	infuraKey string
}

// NewNetworksRenderer creates a new networks renderer. infuraKey is masked in fork URLs.
func NewNetworksRenderer(out io.Writer, infuraKey string) *NetworksRenderer {
	return &NetworksRenderer{
		out:       out,
		infuraKey: infuraKey,
	}
}

// Render renders the catalog, with endpoint results when checked
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks available")
		return nil
	}

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("🌐 Available Networks:"))
	fmt.Fprintln(r.out)

	t := newTable()
	header := table.Row{"NETWORK", "FAMILY", "CHAIN ID", "FORK URL"}
	if result.Checked {
		header = append(header, "STATUS")
	}
	t.AppendHeader(header)

	for _, n := range result.Networks {
		row := table.Row{
			nameStyle.Sprint(n.Profile.Name),
			title(string(n.Profile.Family)),
			chainStyle.Sprint(n.Profile.ChainID),
			urlStyle.Sprint(maskSecret(n.Profile.ForkURL, r.infuraKey)),
		}
		if result.Checked {
			row = append(row, checkStatus(n))
		}
		t.AppendRow(row)
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}

func checkStatus(n usecase.NetworkStatus) string {
	if n.Error != nil {
		return failStyle.Sprintf("❌ %v", n.Error)
	}
	return okStyle.Sprintf("✅ chain %d", n.RemoteChainID)
}

var _ Renderer[*usecase.ListNetworksResult] = (*NetworksRenderer)(nil)
