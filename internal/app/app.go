package app

import (
	"log/slog"

	"github.com/trebuchet-org/forknet/internal/domain/config"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Shared dependencies
	Catalog  usecase.NetworkCatalog
	Selector usecase.NetworkSelector

	// Use cases
	LaunchSimulator *usecase.LaunchSimulator
	ListNetworks    *usecase.ListNetworks
	SimulatorStatus *usecase.SimulatorStatus
	ShowToolchain   *usecase.ShowToolchain
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	catalog usecase.NetworkCatalog,
	selector usecase.NetworkSelector,
	launchSimulator *usecase.LaunchSimulator,
	listNetworks *usecase.ListNetworks,
	simulatorStatus *usecase.SimulatorStatus,
	showToolchain *usecase.ShowToolchain,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		Catalog:         catalog,
		Selector:        selector,
		LaunchSimulator: launchSimulator,
		ListNetworks:    listNetworks,
		SimulatorStatus: simulatorStatus,
		ShowToolchain:   showToolchain,
	}, nil
}
