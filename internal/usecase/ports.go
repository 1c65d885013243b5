package usecase

import (
	"context"
	"io"
	"os"

	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/domain/config"
)

// NetworkCatalog resolves network identifiers to static profiles
type NetworkCatalog interface {
	Lookup(name string) (domain.NetworkProfile, bool)
	Names() []string
	Profiles() []domain.NetworkProfile
	ByChainID(chainID uint64) []domain.NetworkProfile
}

// ToolchainSource provides the deployment toolchain configurations
type ToolchainSource interface {
	Names() []config.ToolchainName
	Get(name config.ToolchainName) (*config.ToolchainConfig, error)
}

// Process execution interfaces

// ProcessSpec describes a child process to start
type ProcessSpec struct {
	// Argv holds the executable name followed by its arguments
	Argv   []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ProcessExit is how a child process terminated.
// Signal is empty unless the process was killed by a signal.
type ProcessExit struct {
	Code         int
	Signal       string
	SignalNumber int
}

// ProcessHandle is a started child process. Wait may be called once.
type ProcessHandle interface {
	PID() int
	Signal(sig os.Signal) error
	Wait() (ProcessExit, error)
}

// ProcessRunner starts child processes
type ProcessRunner interface {
	Start(spec ProcessSpec) (ProcessHandle, error)
}

// Stdio are the caller's standard streams handed to the simulator
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RPC interfaces

// ChainClient queries an EVM JSON-RPC endpoint
type ChainClient interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
	BlockNumber(ctx context.Context, rpcURL string) (uint64, error)
}

// ReadinessProbe waits until an endpoint answers with the expected chain ID
type ReadinessProbe interface {
	WaitReady(ctx context.Context, rpcURL string, chainID uint64) error
}

// NetworkSelector lets the user pick a network interactively
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, profiles []domain.NetworkProfile) (string, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
