package process

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"github.com/trebuchet-org/forknet/internal/usecase"
)

// Runner starts simulator processes with os/exec. The child shares the
// caller's stdio so its console output is streamed unmodified.
type Runner struct {
	log *slog.Logger
}

// NewRunner creates a new process runner
func NewRunner(log *slog.Logger) *Runner {
	return &Runner{log: log.With("component", "ProcessRunner")}
}

// Start launches argv[0] with the remaining argv as arguments
func (r *Runner) Start(spec usecase.ProcessSpec) (usecase.ProcessHandle, error) {
	if len(spec.Argv) == 0 {
		return nil, fmt.Errorf("empty command line")
	}

	cmd := exec.Command(spec.Argv[0], spec.Argv[1:]...)
	cmd.Stdin = spec.Stdin
	cmd.Stdout = spec.Stdout
	cmd.Stderr = spec.Stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	r.log.Debug("process started", "pid", cmd.Process.Pid, "path", cmd.Path)

	return &handle{cmd: cmd}, nil
}

type handle struct {
	cmd *exec.Cmd
}

func (h *handle) PID() int {
	return h.cmd.Process.Pid
}

// Signal delivers sig to the process. It fails once the process has been waited on.
func (h *handle) Signal(sig os.Signal) error {
	return h.cmd.Process.Signal(sig)
}

// Wait blocks until the process exits. A non-zero status or a terminating
// signal is reported through ProcessExit, not as an error.
func (h *handle) Wait() (usecase.ProcessExit, error) {
	err := h.cmd.Wait()
	if err == nil {
		return usecase.ProcessExit{}, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return usecase.ProcessExit{}, err
	}
	return classify(exitErr.ProcessState.Sys(), exitErr.ExitCode()), nil
}

func classify(sys any, code int) usecase.ProcessExit {
	if status, ok := sys.(syscall.WaitStatus); ok && status.Signaled() {
		sig := status.Signal()
		return usecase.ProcessExit{
			Code:         -1,
			Signal:       signalName(sig),
			SignalNumber: int(sig),
		}
	}
	return usecase.ProcessExit{Code: code}
}

var _ usecase.ProcessRunner = (*Runner)(nil)
