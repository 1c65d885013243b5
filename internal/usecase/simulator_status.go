package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/trebuchet-org/forknet/internal/domain"
)

// SimulatorStatusParams contains parameters for probing a local simulator
type SimulatorStatusParams struct {
	Port    int
	Timeout time.Duration
}

// SimulatorStatus reports whether a local simulator answers and which
// network profiles its chain ID belongs to.
type SimulatorStatus struct {
	catalog NetworkCatalog
	client  ChainClient
}

// NewSimulatorStatus creates a new status use case
func NewSimulatorStatus(catalog NetworkCatalog, client ChainClient) *SimulatorStatus {
	return &SimulatorStatus{
		catalog: catalog,
		client:  client,
	}
}

// Run executes the use case. An unreachable simulator is a status, not an error.
func (uc *SimulatorStatus) Run(ctx context.Context, params SimulatorStatusParams) (*domain.SimulatorStatus, error) {
	port := params.Port
	if port == 0 {
		port = domain.DefaultSimulatorPort
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidPort, port)
	}

	if params.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, params.Timeout)
		defer cancel()
	}

	status := &domain.SimulatorStatus{
		RPCURL: fmt.Sprintf("http://127.0.0.1:%d", port),
	}

	chainID, err := uc.client.ChainID(ctx, status.RPCURL)
	if err != nil {
		status.Error = err.Error()
		return status, nil
	}
	status.Running = true
	status.ChainID = chainID
	status.Profiles = uc.catalog.ByChainID(chainID)

	block, err := uc.client.BlockNumber(ctx, status.RPCURL)
	if err != nil {
		status.Error = fmt.Sprintf("failed to get block number: %v", err)
		return status, nil
	}
	status.Block = block

	return status, nil
}
