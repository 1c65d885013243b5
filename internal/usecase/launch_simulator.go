package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/domain/config"
)

// LaunchSimulator starts a local chain simulator forked from a known network
// and waits for it to exit.
type LaunchSimulator struct {
	catalog  NetworkCatalog
	runner   ProcessRunner
	probe    ReadinessProbe
	stdio    Stdio
	cfg      config.SimulatorConfig
	secret   string
	progress ProgressSink
	log      *slog.Logger
}

// NewLaunchSimulator creates a new launch use case. probe may be nil.
func NewLaunchSimulator(
	cfg *config.RuntimeConfig,
	catalog NetworkCatalog,
	runner ProcessRunner,
	probe ReadinessProbe,
	stdio Stdio,
	progress ProgressSink,
	log *slog.Logger,
) *LaunchSimulator {
	return &LaunchSimulator{
		catalog:  catalog,
		runner:   runner,
		probe:    probe,
		stdio:    stdio,
		cfg:      cfg.Simulator,
		secret:   cfg.Credentials.InfuraKey,
		progress: progress,
		log:      log.With("component", "LaunchSimulator"),
	}
}

// secretMask replaces credentials in displayed command lines
const secretMask = "********"

// LaunchPlan is the resolved command line for a launch request.
// Display is Argv with the fork URL's credentials masked.
type LaunchPlan struct {
	Profile domain.NetworkProfile
	Argv    []string
	Display []string
	RPCURL  string
}

// LaunchResult describes a simulator run that exited cleanly
type LaunchResult struct {
	Plan *LaunchPlan
	PID  int
}

// Plan validates the request and builds the simulator command line.
// Nothing is started.
func (uc *LaunchSimulator) Plan(req domain.LaunchRequest) (*LaunchPlan, error) {
	profile, ok := uc.catalog.Lookup(req.Network)
	if !ok {
		return nil, &domain.UnsupportedNetworkError{Network: req.Network, Supported: uc.catalog.Names()}
	}

	if req.BlockTime != nil {
		bt := *req.BlockTime
		if math.IsNaN(bt) || math.IsInf(bt, 0) || bt < 0 {
			return nil, fmt.Errorf("%w: %v (must be a non-negative number of seconds)", domain.ErrInvalidBlockTime, bt)
		}
	}

	if req.Port < 0 || req.Port > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPort, req.Port)
	}

	dialect, err := uc.cfg.Flavor.Dialect()
	if err != nil {
		return nil, err
	}

	binary := dialect.Binary
	if uc.cfg.Binary != "" {
		binary = uc.cfg.Binary
	}

	argv := []string{
		binary,
		dialect.Fork, profile.ForkURL,
		dialect.ChainID, strconv.FormatUint(profile.ChainID, 10),
	}
	if req.BlockTime != nil {
		argv = append(argv, dialect.BlockTime, strconv.FormatFloat(*req.BlockTime, 'f', -1, 64))
	}

	port := domain.DefaultSimulatorPort
	if req.Port != 0 {
		port = req.Port
		argv = append(argv, dialect.Port, strconv.Itoa(port))
	}

	display := append([]string(nil), argv...)
	if uc.secret != "" {
		display[2] = strings.ReplaceAll(display[2], uc.secret, secretMask)
	}

	return &LaunchPlan{
		Profile: profile,
		Argv:    argv,
		Display: display,
		RPCURL:  fmt.Sprintf("http://127.0.0.1:%d", port),
	}, nil
}

// Run launches the simulator and blocks until it exits. The returned error
// is one of UnsupportedNetworkError, ProcessSpawnError, ProcessExitError or
// ProcessSignalError, or a validation error; every error is terminal.
func (uc *LaunchSimulator) Run(ctx context.Context, req domain.LaunchRequest) (*LaunchResult, error) {
	return uc.RunForwarding(ctx, req, nil)
}

// RunForwarding is Run, additionally relaying every signal received on
// signals to the simulator while it runs. The exit it causes is classified
// like any other.
func (uc *LaunchSimulator) RunForwarding(ctx context.Context, req domain.LaunchRequest, signals <-chan os.Signal) (*LaunchResult, error) {
	plan, err := uc.Plan(req)
	if err != nil {
		return nil, err
	}

	command := plan.Argv[0]
	uc.log.Debug("starting simulator", "network", plan.Profile.Name, "argv", strings.Join(plan.Display, " "))
	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "spawning",
		Message: fmt.Sprintf("Forking %s (chain ID %d): %s", plan.Profile.Name, plan.Profile.ChainID, strings.Join(plan.Display, " ")),
	})

	handle, err := uc.runner.Start(ProcessSpec{
		Argv:   plan.Argv,
		Stdin:  uc.stdio.In,
		Stdout: uc.stdio.Out,
		Stderr: uc.stdio.Err,
	})
	if err != nil {
		return nil, &domain.ProcessSpawnError{Command: command, Cause: err}
	}
	uc.log.Debug("simulator started", "pid", handle.PID())

	stopProbe := uc.startProbe(ctx, plan)
	stopForwarding := uc.forwardSignals(handle, signals)
	exit, waitErr := handle.Wait()
	stopForwarding()
	stopProbe()

	if waitErr != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", command, waitErr)
	}

	uc.log.Debug("simulator exited", "code", exit.Code, "signal", exit.Signal)
	switch {
	case exit.Signal != "":
		return nil, &domain.ProcessSignalError{Command: command, Signal: exit.Signal, Number: exit.SignalNumber}
	case exit.Code != 0:
		return nil, &domain.ProcessExitError{Command: command, Code: exit.Code}
	}

	return &LaunchResult{Plan: plan, PID: handle.PID()}, nil
}

// startProbe polls the simulator RPC in the background. The returned func
// cancels the probe and waits for it, so nothing is reported after exit.
func (uc *LaunchSimulator) startProbe(ctx context.Context, plan *LaunchPlan) func() {
	if uc.probe == nil || !uc.cfg.Probe {
		return func() {}
	}

	probeCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		err := uc.probe.WaitReady(probeCtx, plan.RPCURL, plan.Profile.ChainID)
		if probeCtx.Err() != nil {
			return
		}
		if err != nil {
			uc.log.Debug("readiness probe failed", "error", err)
			uc.progress.Error(fmt.Sprintf("Simulator at %s did not become ready: %v", plan.RPCURL, err))
			return
		}
		uc.progress.OnProgress(probeCtx, ProgressEvent{
			Stage:   "ready",
			Message: fmt.Sprintf("Simulator ready at %s (chain ID %d)", plan.RPCURL, plan.Profile.ChainID),
		})
	}()

	return func() {
		cancel()
		<-done
	}
}

// forwardSignals relays signals to the child until the returned func is called
func (uc *LaunchSimulator) forwardSignals(handle ProcessHandle, signals <-chan os.Signal) func() {
	if signals == nil {
		return func() {}
	}

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)
		for {
			select {
			case <-done:
				return
			case sig, ok := <-signals:
				if !ok {
					return
				}
				uc.log.Debug("forwarding signal to simulator", "signal", sig, "pid", handle.PID())
				if err := handle.Signal(sig); err != nil {
					uc.log.Debug("failed to forward signal", "signal", sig, "error", err)
				}
			}
		}
	}()

	return func() {
		close(done)
		<-stopped
	}
}
