package domain

import "fmt"

// SimulatorFlavor selects which local chain simulator is launched
type SimulatorFlavor string

const (
	FlavorGanache SimulatorFlavor = "ganache"
	FlavorAnvil   SimulatorFlavor = "anvil"
)

// DefaultSimulatorPort is the RPC port both simulators bind when none is given
const DefaultSimulatorPort = 8545

// FlagDialect is the set of command-line flags a simulator understands
type FlagDialect struct {
	Binary    string
	Fork      string
	ChainID   string
	BlockTime string
	Port      string
}

var dialects = map[SimulatorFlavor]FlagDialect{
	FlavorGanache: {
		Binary:    "ganache-cli",
		Fork:      "-f",
		ChainID:   "--chainId",
		BlockTime: "--blockTime",
		Port:      "--port",
	},
	FlavorAnvil: {
		Binary:    "anvil",
		Fork:      "--fork-url",
		ChainID:   "--chain-id",
		BlockTime: "--block-time",
		Port:      "--port",
	},
}

// Dialect returns the flag dialect of the flavor
func (f SimulatorFlavor) Dialect() (FlagDialect, error) {
	d, ok := dialects[f]
	if !ok {
		return FlagDialect{}, fmt.Errorf("%w: %q", ErrUnknownFlavor, string(f))
	}
	return d, nil
}

// SimulatorStatus represents what a local RPC endpoint reports about itself
type SimulatorStatus struct {
	RPCURL   string           `json:"rpcUrl"`
	Running  bool             `json:"running"`
	ChainID  uint64           `json:"chainId,omitempty"`
	Block    uint64           `json:"block,omitempty"`
	Profiles []NetworkProfile `json:"profiles,omitempty"`
	Error    string           `json:"error,omitempty"`
}
