package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrUnsupportedNetwork is returned when a network identifier is not in the catalog
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrInvalidBlockTime is returned when a negative block time is requested
	ErrInvalidBlockTime = errors.New("invalid block time")

	// ErrInvalidPort is returned when the requested RPC port is out of range
	ErrInvalidPort = errors.New("invalid port")

	// ErrUnknownFlavor is returned for simulator flavors without a flag dialect
	ErrUnknownFlavor = errors.New("unknown simulator flavor")

	// ErrUnknownToolchain is returned when a toolchain name is not configured
	ErrUnknownToolchain = errors.New("unknown toolchain")

	// ErrProcessSpawn matches every ProcessSpawnError
	ErrProcessSpawn = errors.New("simulator failed to start")

	// ErrProcessExit matches every ProcessExitError and ProcessSignalError
	ErrProcessExit = errors.New("simulator exited with failure")

	// ErrChainIDMismatch is returned when an endpoint reports an unexpected chain ID
	ErrChainIDMismatch = errors.New("chain ID mismatch")
)

// UnsupportedNetworkError names the rejected identifier and what would have been accepted
type UnsupportedNetworkError struct {
	Network   string
	Supported []string
}

func (e *UnsupportedNetworkError) Error() string {
	if e.Network == "" {
		return fmt.Sprintf("no network given (supported: %s)", strings.Join(e.Supported, ", "))
	}
	return fmt.Sprintf("unsupported network: %s (supported: %s)", e.Network, strings.Join(e.Supported, ", "))
}

func (e *UnsupportedNetworkError) Is(target error) bool {
	return target == ErrUnsupportedNetwork
}

// ProcessSpawnError means the OS could not create the simulator process
type ProcessSpawnError struct {
	Command string
	Cause   error
}

func (e *ProcessSpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Command, e.Cause)
}

func (e *ProcessSpawnError) Unwrap() error {
	return e.Cause
}

func (e *ProcessSpawnError) Is(target error) bool {
	return target == ErrProcessSpawn
}

// ProcessExitError means the simulator ran and exited with a non-zero status
type ProcessExitError struct {
	Command string
	Code    int
}

func (e *ProcessExitError) Error() string {
	return fmt.Sprintf("%s exited with error code: %d", e.Command, e.Code)
}

func (e *ProcessExitError) Is(target error) bool {
	return target == ErrProcessExit
}

// ProcessSignalError means the simulator was terminated by a signal
type ProcessSignalError struct {
	Command string
	Signal  string
	Number  int
}

func (e *ProcessSignalError) Error() string {
	return fmt.Sprintf("%s terminated by signal: %s", e.Command, e.Signal)
}

func (e *ProcessSignalError) Is(target error) bool {
	return target == ErrProcessExit
}

// ExitCode maps a launch error to the exit code forknet itself should use
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ProcessExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	var sigErr *ProcessSignalError
	if errors.As(err, &sigErr) && sigErr.Number > 0 {
		return 128 + sigErr.Number
	}
	return 1
}
