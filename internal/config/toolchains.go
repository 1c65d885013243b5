package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/domain/config"
)

const (
	localHost = "127.0.0.1"
	localPort = domain.DefaultSimulatorPort

	infuraURL = "https://%s.infura.io/v3/%s"
)

// Toolchains builds the deployment configurations for both toolchains
type Toolchains struct {
	creds config.Credentials
}

// NewToolchains creates a toolchain config source
func NewToolchains(cfg *config.RuntimeConfig) *Toolchains {
	return &Toolchains{creds: cfg.Credentials}
}

// Names returns the configured toolchain names
func (t *Toolchains) Names() []config.ToolchainName {
	return []config.ToolchainName{config.ToolchainDefault, config.ToolchainOptimistic}
}

// Get returns the resolved toolchain configuration by name
func (t *Toolchains) Get(name config.ToolchainName) (*config.ToolchainConfig, error) {
	switch name {
	case config.ToolchainDefault:
		return t.defaultToolchain(), nil
	case config.ToolchainOptimistic:
		return t.optimisticToolchain(), nil
	default:
		names := lo.Map(t.Names(), func(n config.ToolchainName, _ int) string { return string(n) })
		return nil, fmt.Errorf("%w: %q (available: %v)", domain.ErrUnknownToolchain, string(name), names)
	}
}

func localNetwork(networkID string) config.DeploymentNetwork {
	return config.DeploymentNetwork{
		Host:       localHost,
		Port:       localPort,
		NetworkID:  networkID,
		SkipDryRun: true,
	}
}

func (t *Toolchains) infura(subdomain string) string {
	return fmt.Sprintf(infuraURL, subdomain, t.creds.InfuraKey)
}

func (t *Toolchains) defaultToolchain() *config.ToolchainConfig {
	dev := localNetwork("*")
	dev.SkipDryRun = false

	bscLive := func(url, id string) config.DeploymentNetwork {
		return config.DeploymentNetwork{
			ProviderURL:   url,
			Mnemonic:      t.creds.BinanceMnemonic,
			NetworkID:     id,
			Confirmations: 10,
			TimeoutBlocks: 200,
			SkipDryRun:    true,
		}
	}
	ethLive := func(url, mnemonic, id string) config.DeploymentNetwork {
		return config.DeploymentNetwork{
			ProviderURL:   url,
			Mnemonic:      mnemonic,
			NetworkID:     id,
			Gas:           5_500_000,
			GasPrice:      15_000_000_000,
			Confirmations: 2,
			TimeoutBlocks: 200,
		}
	}

	ropsten := ethLive(t.infura("ropsten"), t.creds.EthereumRopstenMnemonic, "3")
	ropsten.SkipDryRun = true

	bscLocalTestnet := localNetwork("97")
	bscLocalTestnet.SkipDryRun = false
	bscLocalMainnet := localNetwork("56")
	bscLocalMainnet.SkipDryRun = false

	return &config.ToolchainConfig{
		Name:               config.ToolchainDefault,
		ContractsDirectory: "./contracts/ethereum",
		BuildDirectory:     "./build/",
		Compiler: config.CompilerConfig{
			Version: "0.8.6",
		},
		Networks: map[string]config.DeploymentNetwork{
			"dev":               dev,
			"bsc-local-testnet": bscLocalTestnet,
			"bsc-local-mainnet": bscLocalMainnet,
			"bsc-testnet":       bscLive("https://data-seed-prebsc-1-s1.binance.org:8545", "97"),
			"bsc-mainnet":       bscLive("https://bsc-dataseed.binance.org/", "56"),
			"eth-local-ropsten": localNetwork("3"),
			"eth-ropsten":       ropsten,
			"eth-local-mainnet": localNetwork("1"),
			"eth-mainnet":       ethLive(t.infura("mainnet"), t.creds.EthereumMainnetMnemonic, "1"),
		},
		Plugins: []string{"truffle-contract-size"},
	}
}

func (t *Toolchains) optimisticToolchain() *config.ToolchainConfig {
	return &config.ToolchainConfig{
		Name:               config.ToolchainOptimistic,
		ContractsDirectory: "./contracts/optimistic",
		BuildDirectory:     "./build_optimistic",
		Compiler: config.CompilerConfig{
			Version:          "node_modules/@eth-optimism/solc",
			OptimizerEnabled: true,
			OptimizerRuns:    800,
		},
		Networks: map[string]config.DeploymentNetwork{
			"optimistic-local-node": {
				ProviderURL:  fmt.Sprintf("http://%s:%d/", localHost, localPort),
				Mnemonic:     t.creds.OptimismLocalMnemonic,
				NetworkID:    "420",
				ChainID:      420,
				AddressIndex: 0,
				NumAddresses: 1,
				Gas:          200_000_000,
				GasPrice:     15_000_000,
			},
			"optimistic-local-kovan": localNetwork("69"),
			"optimistic-kovan": {
				ProviderURL:  t.infura("optimism-kovan"),
				Mnemonic:     t.creds.OptimismKovanMnemonic,
				NetworkID:    "69",
				ChainID:      69,
				NumAddresses: 1,
				Gas:          11_000_000,
				GasPrice:     15_000_000,
			},
			"optimistic-local-mainnet": localNetwork("10"),
			"optimistic-mainnet": {
				ProviderURL:  t.infura("optimism-mainnet"),
				Mnemonic:     t.creds.OptimismMainnetMnemonic,
				NetworkID:    "10",
				ChainID:      10,
				NumAddresses: 1,
			},
		},
		MochaTimeoutMs: 100_000,
	}
}

// Redacted returns a copy of the toolchain with mnemonics and keys masked
func Redacted(tc *config.ToolchainConfig, infuraKey string) *config.ToolchainConfig {
	out := *tc
	out.Networks = lo.MapValues(tc.Networks, func(n config.DeploymentNetwork, _ string) config.DeploymentNetwork {
		if n.Mnemonic != "" {
			n.Mnemonic = "********"
		}
		if infuraKey != "" {
			n.ProviderURL = strings.ReplaceAll(n.ProviderURL, infuraKey, "********")
		}
		return n
	})
	return &out
}
