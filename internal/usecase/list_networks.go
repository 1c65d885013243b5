package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/trebuchet-org/forknet/internal/domain"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentChecks bounds the number of remote RPCs queried at once
const maxConcurrentChecks = 4

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Check queries every fork endpoint for its chain ID
	Check   bool
	Timeout time.Duration
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Checked  bool
}

// NetworkStatus represents a network profile and, when checked, what its endpoint reported
type NetworkStatus struct {
	Profile       domain.NetworkProfile
	RemoteChainID uint64
	Error         error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	catalog  NetworkCatalog
	client   ChainClient
	progress ProgressSink
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(catalog NetworkCatalog, client ChainClient, progress ProgressSink) *ListNetworks {
	return &ListNetworks{
		catalog:  catalog,
		client:   client,
		progress: progress,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	profiles := uc.catalog.Profiles()

	networks := make([]NetworkStatus, len(profiles))
	for i, p := range profiles {
		networks[i] = NetworkStatus{Profile: p}
	}

	if !params.Check {
		return &ListNetworksResult{Networks: networks}, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "checking",
		Message: fmt.Sprintf("Checking %d fork endpoints...", len(networks)),
		Spinner: true,
	})

	// Each goroutine owns one slot of networks; per-network failures are
	// recorded, not returned, so one bad endpoint does not hide the rest.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)
	for i := range networks {
		status := &networks[i]
		g.Go(func() error {
			checkCtx := gctx
			if params.Timeout > 0 {
				var cancel context.CancelFunc
				checkCtx, cancel = context.WithTimeout(gctx, params.Timeout)
				defer cancel()
			}

			chainID, err := uc.client.ChainID(checkCtx, status.Profile.ForkURL)
			if err != nil {
				status.Error = err
				return nil
			}
			status.RemoteChainID = chainID
			if chainID != status.Profile.ChainID {
				status.Error = fmt.Errorf("%w: expected %d, got %d", domain.ErrChainIDMismatch, status.Profile.ChainID, chainID)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "checked"})

	return &ListNetworksResult{
		Networks: networks,
		Checked:  true,
	}, nil
}
