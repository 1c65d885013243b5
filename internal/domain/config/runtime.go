package config

import (
	"github.com/trebuchet-org/forknet/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	WorkDir    string
	ConfigFile string // empty when no config file was found

	// Execution settings
	Debug          bool
	NonInteractive bool

	Simulator   SimulatorConfig
	Credentials Credentials
}

// SimulatorConfig selects and tunes the local chain simulator
type SimulatorConfig struct {
	Flavor domain.SimulatorFlavor
	Binary string // overrides the flavor's default executable
	Probe  bool   // poll the local RPC for readiness after launch
}

// Credentials holds the secrets read from the environment at startup
type Credentials struct {
	InfuraKey               string
	BinanceMnemonic         string
	EthereumRopstenMnemonic string
	EthereumMainnetMnemonic string
	OptimismLocalMnemonic   string
	OptimismKovanMnemonic   string
	OptimismMainnetMnemonic string
}
