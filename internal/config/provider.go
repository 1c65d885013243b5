package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/domain/config"
)

// Environment variables holding credentials. They are read unprefixed
// because the deployment toolchains share them.
const (
	EnvInfuraKey               = "INFURA_KEY"
	EnvBinanceMnemonic         = "BINANCE_MNEMONIC"
	EnvEthereumRopstenMnemonic = "ETHEREUM_ROPSTEN_MNEMONIC"
	EnvEthereumMainnetMnemonic = "ETHEREUM_MAINNET_MNEMONIC"
	EnvOptimismLocalMnemonic   = "OPTIMISM_LOCAL_MNEMONIC"
	EnvOptimismKovanMnemonic   = "OPTIMISM_KOVAN_MNEMONIC"
	EnvOptimismMainnetMnemonic = "OPTIMISM_MAINNET_MNEMONIC"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	workDir := v.GetString("work_dir")
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}

	flavor := domain.SimulatorFlavor(strings.ToLower(v.GetString("simulator.flavor")))
	if _, err := flavor.Dialect(); err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		WorkDir:        workDir,
		ConfigFile:     v.ConfigFileUsed(),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Simulator: config.SimulatorConfig{
			Flavor: flavor,
			Binary: v.GetString("simulator.binary"),
			Probe:  v.GetBool("simulator.probe"),
		},
		Credentials: LoadCredentials(),
	}

	return cfg, nil
}

// LoadCredentials reads the credential variables once from the process environment
func LoadCredentials() config.Credentials {
	ropsten := os.Getenv(EnvEthereumRopstenMnemonic)
	mainnet := os.Getenv(EnvEthereumMainnetMnemonic)
	if mainnet == "" {
		mainnet = ropsten
	}

	return config.Credentials{
		InfuraKey:               os.Getenv(EnvInfuraKey),
		BinanceMnemonic:         os.Getenv(EnvBinanceMnemonic),
		EthereumRopstenMnemonic: ropsten,
		EthereumMainnetMnemonic: mainnet,
		OptimismLocalMnemonic:   os.Getenv(EnvOptimismLocalMnemonic),
		OptimismKovanMnemonic:   os.Getenv(EnvOptimismKovanMnemonic),
		OptimismMainnetMnemonic: os.Getenv(EnvOptimismMainnetMnemonic),
	}
}

// LoadEnvFiles loads .env and .env.local from dir. Variables already set in
// the environment win over file values.
func LoadEnvFiles(dir string) error {
	envFiles := []string{
		filepath.Join(dir, ".env"),
		filepath.Join(dir, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return nil
}

// SetupViper creates and configures a viper instance
func SetupViper(workDir, configFile string, cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()

	// Set up config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("forknet")
		v.AddConfigPath(workDir)
	}

	// Set up environment variables
	v.SetEnvPrefix("FORKNET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	// Set defaults
	v.SetDefault("work_dir", workDir)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("simulator.flavor", string(domain.FlavorGanache))
	v.SetDefault("simulator.binary", "")
	v.SetDefault("simulator.probe", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config must exist; the implicit one is optional
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if cmd != nil {
		bindFlags(v, cmd)
	}

	return v, nil
}

// bindFlags binds the global flags that have been set on the command line
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed {
			return
		}
		switch f.Name {
		case "debug":
			v.Set("debug", f.Value.String())
		case "non-interactive":
			v.Set("non_interactive", f.Value.String())
		case "flavor":
			v.Set("simulator.flavor", f.Value.String())
		case "no-probe":
			v.Set("simulator.probe", f.Value.String() != "true")
		}
	})
}
