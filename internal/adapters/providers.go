package adapters

import (
	"os"

	"github.com/google/wire"
	"github.com/trebuchet-org/forknet/internal/adapters/blockchain"
	"github.com/trebuchet-org/forknet/internal/adapters/interactive"
	"github.com/trebuchet-org/forknet/internal/adapters/process"
	"github.com/trebuchet-org/forknet/internal/adapters/progress"
	internalconfig "github.com/trebuchet-org/forknet/internal/config"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// ProvideStdio provides the process's own standard streams
func ProvideStdio() usecase.Stdio {
	return usecase.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// ProvideConsoleSink writes progress to stderr so stdout carries only simulator output
func ProvideConsoleSink(stdio usecase.Stdio) *progress.ConsoleSink {
	return progress.NewConsoleSink(stdio.Err)
}

// ProvideSecretRedactor provides the redactor used when printing toolchains
func ProvideSecretRedactor() usecase.SecretRedactor {
	return internalconfig.Redacted
}

// ConfigSet provides the static network and toolchain catalogs
var ConfigSet = wire.NewSet(
	internalconfig.ProvideCatalog,
	wire.Bind(new(usecase.NetworkCatalog), new(*internalconfig.Catalog)),

	internalconfig.NewToolchains,
	wire.Bind(new(usecase.ToolchainSource), new(*internalconfig.Toolchains)),

	ProvideSecretRedactor,
)

// ProcessSet provides process execution
var ProcessSet = wire.NewSet(
	ProvideStdio,
	process.NewRunner,
	wire.Bind(new(usecase.ProcessRunner), new(*process.Runner)),
)

// BlockchainSet provides RPC-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewClientAdapter,
	wire.Bind(new(usecase.ChainClient), new(*blockchain.ClientAdapter)),

	blockchain.NewReadinessProbe,
	wire.Bind(new(usecase.ReadinessProbe), new(*blockchain.ReadinessProbe)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides console progress reporting
var ProgressSet = wire.NewSet(
	ProvideConsoleSink,
	wire.Bind(new(usecase.ProgressSink), new(*progress.ConsoleSink)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	ConfigSet,
	ProcessSet,
	BlockchainSet,
	InteractiveSet,
	ProgressSet,
)
