package config

// ToolchainName identifies one of the compiler/deployment toolchains
type ToolchainName string

const (
	ToolchainDefault    ToolchainName = "default"
	ToolchainOptimistic ToolchainName = "optimistic"
)

// ToolchainConfig is the deployment configuration handed to the compiler toolchain
type ToolchainConfig struct {
	Name               ToolchainName                `json:"name" toml:"name" yaml:"name"`
	ContractsDirectory string                       `json:"contractsDirectory" toml:"contracts_directory" yaml:"contracts_directory"`
	BuildDirectory     string                       `json:"buildDirectory" toml:"build_directory" yaml:"build_directory"`
	Compiler           CompilerConfig               `json:"compiler" toml:"compiler" yaml:"compiler"`
	Networks           map[string]DeploymentNetwork `json:"networks" toml:"networks" yaml:"networks"`
	MochaTimeoutMs     int                          `json:"mochaTimeoutMs,omitempty" toml:"mocha_timeout_ms,omitempty" yaml:"mocha_timeout_ms,omitempty"`
	Plugins            []string                     `json:"plugins,omitempty" toml:"plugins,omitempty" yaml:"plugins,omitempty"`
	DBEnabled          bool                         `json:"dbEnabled" toml:"db_enabled" yaml:"db_enabled"`
}

// CompilerConfig pins the solc build used by a toolchain
type CompilerConfig struct {
	Version          string `json:"version" toml:"version" yaml:"version"`
	OptimizerEnabled bool   `json:"optimizerEnabled" toml:"optimizer_enabled" yaml:"optimizer_enabled"`
	OptimizerRuns    int    `json:"optimizerRuns,omitempty" toml:"optimizer_runs,omitempty" yaml:"optimizer_runs,omitempty"`
}

// DeploymentNetwork describes how a toolchain reaches one network.
// Local networks set Host/Port; remote ones sign through a wallet provider
// built from ProviderURL and Mnemonic.
type DeploymentNetwork struct {
	Host          string `json:"host,omitempty" toml:"host,omitempty" yaml:"host,omitempty"`
	Port          int    `json:"port,omitempty" toml:"port,omitempty" yaml:"port,omitempty"`
	NetworkID     string `json:"networkId" toml:"network_id" yaml:"network_id"`
	ChainID       uint64 `json:"chainId,omitempty" toml:"chain_id,omitempty" yaml:"chain_id,omitempty"`
	ProviderURL   string `json:"providerUrl,omitempty" toml:"provider_url,omitempty" yaml:"provider_url,omitempty"`
	Mnemonic      string `json:"mnemonic,omitempty" toml:"mnemonic,omitempty" yaml:"mnemonic,omitempty"` //nolint:gosec // filled from env at runtime
	AddressIndex  int    `json:"addressIndex,omitempty" toml:"address_index,omitempty" yaml:"address_index,omitempty"`
	NumAddresses  int    `json:"numberOfAddresses,omitempty" toml:"number_of_addresses,omitempty" yaml:"number_of_addresses,omitempty"`
	Gas           uint64 `json:"gas,omitempty" toml:"gas,omitempty" yaml:"gas,omitempty"`
	GasPrice      uint64 `json:"gasPrice,omitempty" toml:"gas_price,omitempty" yaml:"gas_price,omitempty"`
	Confirmations int    `json:"confirmations,omitempty" toml:"confirmations,omitempty" yaml:"confirmations,omitempty"`
	TimeoutBlocks int    `json:"timeoutBlocks,omitempty" toml:"timeout_blocks,omitempty" yaml:"timeout_blocks,omitempty"`
	SkipDryRun    bool   `json:"skipDryRun,omitempty" toml:"skip_dry_run,omitempty" yaml:"skip_dry_run,omitempty"`
}

// IsLocal reports whether the network points at a simulator on this machine
func (n DeploymentNetwork) IsLocal() bool {
	return n.Host != "" && n.ProviderURL == ""
}
