package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/forknet/internal/domain"
)

func TestProvider_Defaults(t *testing.T) {
	dir := t.TempDir()

	v, err := SetupViper(dir, "", nil)
	require.NoError(t, err)

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.WorkDir)
	assert.Empty(t, cfg.ConfigFile)
	assert.Equal(t, domain.FlavorGanache, cfg.Simulator.Flavor)
	assert.True(t, cfg.Simulator.Probe)
	assert.False(t, cfg.Debug)
}

func TestProvider_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "debug = true\n\n[simulator]\nflavor = \"anvil\"\nbinary = \"/opt/foundry/anvil\"\nprobe = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "forknet.toml"), []byte(content), 0644))

	v, err := SetupViper(dir, "", nil)
	require.NoError(t, err)

	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "forknet.toml"), cfg.ConfigFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, domain.FlavorAnvil, cfg.Simulator.Flavor)
	assert.Equal(t, "/opt/foundry/anvil", cfg.Simulator.Binary)
	assert.False(t, cfg.Simulator.Probe)
}

func TestProvider_EnvOverride(t *testing.T) {
	t.Setenv("FORKNET_SIMULATOR_FLAVOR", "anvil")

	v, err := SetupViper(t.TempDir(), "", nil)
	require.NoError(t, err)

	cfg, err := Provider(v)
	require.NoError(t, err)
	assert.Equal(t, domain.FlavorAnvil, cfg.Simulator.Flavor)
}

func TestProvider_UnknownFlavor(t *testing.T) {
	v := viper.New()
	v.Set("work_dir", t.TempDir())
	v.Set("simulator.flavor", "hardhat")

	_, err := Provider(v)
	assert.ErrorIs(t, err, domain.ErrUnknownFlavor)
}

func TestSetupViper_MissingExplicitConfig(t *testing.T) {
	_, err := SetupViper(t.TempDir(), "/nonexistent/forknet.yaml", nil)
	assert.Error(t, err)
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv(EnvInfuraKey, "key")
	t.Setenv(EnvEthereumRopstenMnemonic, "ropsten")
	t.Setenv(EnvEthereumMainnetMnemonic, "")
	t.Setenv(EnvOptimismKovanMnemonic, "kovan")

	creds := LoadCredentials()

	assert.Equal(t, "key", creds.InfuraKey)
	assert.Equal(t, "ropsten", creds.EthereumRopstenMnemonic)
	// mainnet falls back to the ropsten mnemonic
	assert.Equal(t, "ropsten", creds.EthereumMainnetMnemonic)
	assert.Equal(t, "kovan", creds.OptimismKovanMnemonic)
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FORKNET_TEST_FROM_ENV=file\nFORKNET_TEST_PRESET=file\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("FORKNET_TEST_LOCAL=local\n"), 0644))

	t.Setenv("FORKNET_TEST_PRESET", "process")
	t.Setenv("FORKNET_TEST_FROM_ENV", "")
	os.Unsetenv("FORKNET_TEST_FROM_ENV")
	t.Setenv("FORKNET_TEST_LOCAL", "")
	os.Unsetenv("FORKNET_TEST_LOCAL")

	require.NoError(t, LoadEnvFiles(dir))

	assert.Equal(t, "file", os.Getenv("FORKNET_TEST_FROM_ENV"))
	assert.Equal(t, "local", os.Getenv("FORKNET_TEST_LOCAL"))
	// existing variables are not overridden
	assert.Equal(t, "process", os.Getenv("FORKNET_TEST_PRESET"))
}

func TestLoadEnvFiles_NoFiles(t *testing.T) {
	assert.NoError(t, LoadEnvFiles(t.TempDir()))
}
