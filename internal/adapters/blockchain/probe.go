package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

const (
	defaultProbeInterval = 500 * time.Millisecond
	// forking a remote chain can take a while before the RPC binds
	defaultProbeAttempts = 120
)

// ReadinessProbe polls an RPC endpoint until it reports the expected chain ID
type ReadinessProbe struct {
	client   usecase.ChainClient
	interval time.Duration
	attempts uint
	log      *slog.Logger
}

// NewReadinessProbe creates a probe backed by client
func NewReadinessProbe(client usecase.ChainClient, log *slog.Logger) *ReadinessProbe {
	return &ReadinessProbe{
		client:   client,
		interval: defaultProbeInterval,
		attempts: defaultProbeAttempts,
		log:      log.With("component", "ReadinessProbe"),
	}
}

// WaitReady blocks until the endpoint answers, the attempts run out, or ctx is done.
// A wrong chain ID fails immediately with ErrChainIDMismatch.
func (p *ReadinessProbe) WaitReady(ctx context.Context, rpcURL string, chainID uint64) error {
	return retry.Do(
		func() error {
			callCtx, cancel := context.WithTimeout(ctx, p.interval*4)
			defer cancel()

			got, err := p.client.ChainID(callCtx, rpcURL)
			if err != nil {
				return err
			}
			if got != chainID {
				return retry.Unrecoverable(fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, chainID, got))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.Delay(p.interval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			p.log.Debug("simulator not ready", "rpc", rpcURL, "attempt", n+1, "error", err)
		}),
	)
}

// Ensure the probe implements the interface
var _ usecase.ReadinessProbe = (*ReadinessProbe)(nil)
