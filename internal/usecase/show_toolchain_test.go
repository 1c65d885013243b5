package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	internalconfig "github.com/trebuchet-org/forknet/internal/config"
	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/domain/config"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

func TestShowToolchain(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{
		Credentials: config.Credentials{
			InfuraKey:       "infura-secret",
			BinanceMnemonic: "test test test",
		},
	}
	uc := usecase.NewShowToolchain(cfg, internalconfig.NewToolchains(cfg), internalconfig.Redacted)

	t.Run("defaults to the default toolchain and redacts", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.ShowToolchainParams{})
		require.NoError(t, err)

		assert.Equal(t, config.ToolchainDefault, result.Toolchain.Name)
		assert.Equal(t, "********", result.Toolchain.Networks["bsc-mainnet"].Mnemonic)
		assert.NotContains(t, result.Toolchain.Networks["eth-mainnet"].ProviderURL, "infura-secret")
		assert.Equal(t, []string{"ETHEREUM_ROPSTEN_MNEMONIC"}, result.Missing)
	})

	t.Run("show secrets", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.ShowToolchainParams{Name: config.ToolchainDefault, ShowSecrets: true})
		require.NoError(t, err)

		assert.Equal(t, "test test test", result.Toolchain.Networks["bsc-mainnet"].Mnemonic)
		assert.Equal(t, "https://mainnet.infura.io/v3/infura-secret", result.Toolchain.Networks["eth-mainnet"].ProviderURL)
	})

	t.Run("optimistic lists its own missing mnemonics", func(t *testing.T) {
		result, err := uc.Run(ctx, usecase.ShowToolchainParams{Name: config.ToolchainOptimistic})
		require.NoError(t, err)

		assert.Equal(t, "./build_optimistic", result.Toolchain.BuildDirectory)
		assert.Equal(t, []string{"OPTIMISM_LOCAL_MNEMONIC", "OPTIMISM_KOVAN_MNEMONIC", "OPTIMISM_MAINNET_MNEMONIC"}, result.Missing)
	})

	t.Run("unknown toolchain", func(t *testing.T) {
		_, err := uc.Run(ctx, usecase.ShowToolchainParams{Name: "hardhat"})
		assert.ErrorIs(t, err, domain.ErrUnknownToolchain)
	})
}
