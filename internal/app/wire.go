//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/forknet/internal/adapters"
	internalconfig "github.com/trebuchet-org/forknet/internal/config"
	"github.com/trebuchet-org/forknet/internal/logging"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		internalconfig.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewLaunchSimulator,
		usecase.NewListNetworks,
		usecase.NewSimulatorStatus,
		usecase.NewShowToolchain,

		// App
		NewApp,
	)
	return nil, nil
}
