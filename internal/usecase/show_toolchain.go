package usecase

import (
	"context"

	"github.com/samber/lo"
	"github.com/trebuchet-org/forknet/internal/domain/config"
)

// ShowToolchainParams contains parameters for showing a toolchain
type ShowToolchainParams struct {
	Name        config.ToolchainName
	ShowSecrets bool
}

// ShowToolchainResult contains the resolved toolchain configuration
type ShowToolchainResult struct {
	Toolchain *config.ToolchainConfig
	// Missing lists credential variables that are unset but referenced
	Missing []string
}

// SecretRedactor masks credentials in a toolchain configuration
type SecretRedactor func(tc *config.ToolchainConfig, infuraKey string) *config.ToolchainConfig

// ShowToolchain is a use case for showing deployment toolchain configuration
type ShowToolchain struct {
	source ToolchainSource
	creds  config.Credentials
	redact SecretRedactor
}

// NewShowToolchain creates a new ShowToolchain use case
func NewShowToolchain(cfg *config.RuntimeConfig, source ToolchainSource, redact SecretRedactor) *ShowToolchain {
	return &ShowToolchain{
		source: source,
		creds:  cfg.Credentials,
		redact: redact,
	}
}

// Run executes the show toolchain use case
func (uc *ShowToolchain) Run(ctx context.Context, params ShowToolchainParams) (*ShowToolchainResult, error) {
	name := params.Name
	if name == "" {
		name = config.ToolchainDefault
	}

	tc, err := uc.source.Get(name)
	if err != nil {
		return nil, err
	}

	result := &ShowToolchainResult{
		Toolchain: tc,
		Missing:   uc.missingCredentials(name),
	}
	if !params.ShowSecrets && uc.redact != nil {
		result.Toolchain = uc.redact(tc, uc.creds.InfuraKey)
	}

	return result, nil
}

// missingCredentials lists the credential variables the toolchain reads that are empty
func (uc *ShowToolchain) missingCredentials(name config.ToolchainName) []string {
	type credential struct {
		env   string
		value string
	}

	required := map[config.ToolchainName][]credential{
		config.ToolchainDefault: {
			{"INFURA_KEY", uc.creds.InfuraKey},
			{"BINANCE_MNEMONIC", uc.creds.BinanceMnemonic},
			{"ETHEREUM_ROPSTEN_MNEMONIC", uc.creds.EthereumRopstenMnemonic},
		},
		config.ToolchainOptimistic: {
			{"INFURA_KEY", uc.creds.InfuraKey},
			{"OPTIMISM_LOCAL_MNEMONIC", uc.creds.OptimismLocalMnemonic},
			{"OPTIMISM_KOVAN_MNEMONIC", uc.creds.OptimismKovanMnemonic},
			{"OPTIMISM_MAINNET_MNEMONIC", uc.creds.OptimismMainnetMnemonic},
		},
	}

	return lo.FilterMap(required[name], func(c credential, _ int) (string, bool) {
		return c.env, c.value == ""
	})
}
