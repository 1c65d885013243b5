package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/forknet/internal/domain/config"
	"github.com/trebuchet-org/forknet/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Output formats supported by the toolchain renderer
const (
	FormatTable = "table"
	FormatTOML  = "toml"
	FormatYAML  = "yaml"
	FormatJSON  = "json"
)

// Formats lists the accepted --format values
var Formats = []string{FormatTable, FormatTOML, FormatYAML, FormatJSON}

// ToolchainRenderer renders a toolchain configuration. Warnings go to errOut
// so machine formats on out stay parseable.
type ToolchainRenderer struct {
	out    io.Writer
	errOut io.Writer
	format string
}

// NewToolchainRenderer creates a new toolchain renderer
func NewToolchainRenderer(out, errOut io.Writer, format string) *ToolchainRenderer {
	return &ToolchainRenderer{
		out:    out,
		errOut: errOut,
		format: format,
	}
}

// Render writes the toolchain in the configured format
func (r *ToolchainRenderer) Render(result *usecase.ShowToolchainResult) error {
	for _, env := range result.Missing {
		fmt.Fprintln(r.errOut, FormatWarning(fmt.Sprintf("%s is not set", env)))
	}

	switch r.format {
	case "", FormatTable:
		return r.renderTable(result.Toolchain)
	case FormatTOML:
		return toml.NewEncoder(r.out).Encode(result.Toolchain)
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(result.Toolchain); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(result.Toolchain, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	default:
		return fmt.Errorf("unknown format %q (supported: table, toml, yaml, json)", r.format)
	}
}

func (r *ToolchainRenderer) renderTable(tc *config.ToolchainConfig) error {
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("🔧 %s toolchain", title(string(tc.Name))))
	fmt.Fprintf(r.out, "Contracts: %s\n", tc.ContractsDirectory)
	fmt.Fprintf(r.out, "Build:     %s\n", tc.BuildDirectory)

	optimizer := "disabled"
	if tc.Compiler.OptimizerEnabled {
		optimizer = fmt.Sprintf("enabled, %d runs", tc.Compiler.OptimizerRuns)
	}
	fmt.Fprintf(r.out, "Compiler:  solc %s (optimizer %s)\n", tc.Compiler.Version, optimizer)
	if len(tc.Plugins) > 0 {
		fmt.Fprintf(r.out, "Plugins:   %v\n", tc.Plugins)
	}
	fmt.Fprintln(r.out)

	names := make([]string, 0, len(tc.Networks))
	for name := range tc.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	t := newTable()
	t.AppendHeader(table.Row{"NETWORK", "NETWORK ID", "ENDPOINT", "MNEMONIC"})
	for _, name := range names {
		n := tc.Networks[name]
		endpoint := n.ProviderURL
		if n.IsLocal() {
			endpoint = fmt.Sprintf("%s:%d", n.Host, n.Port)
		}
		mnemonic := faintStyle.Sprint("-")
		if n.Mnemonic != "" {
			mnemonic = n.Mnemonic
		}
		t.AppendRow(table.Row{
			nameStyle.Sprint(name),
			chainStyle.Sprint(networkID(n)),
			urlStyle.Sprint(endpoint),
			mnemonic,
		})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

func networkID(n config.DeploymentNetwork) string {
	if n.NetworkID == "*" && n.ChainID == 0 {
		return "any"
	}
	if n.ChainID != 0 && strconv.FormatUint(n.ChainID, 10) != n.NetworkID {
		return fmt.Sprintf("%s (chain %d)", n.NetworkID, n.ChainID)
	}
	return n.NetworkID
}

var _ Renderer[*usecase.ShowToolchainResult] = (*ToolchainRenderer)(nil)
