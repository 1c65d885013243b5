package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/forknet/internal/usecase"
)

// defaultCallTimeout bounds a single RPC call when the caller sets no deadline
const defaultCallTimeout = 10 * time.Second

// ClientAdapter implements the ChainClient interface using ethclient.
// A fresh connection is dialed per call since endpoints differ per call.
type ClientAdapter struct {
	callTimeout time.Duration
}

// NewClientAdapter creates a new chain client adapter
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{callTimeout: defaultCallTimeout}
}

// ChainID returns the chain ID reported by the endpoint
func (c *ClientAdapter) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	var chainID uint64
	err := c.withClient(ctx, rpcURL, func(ctx context.Context, client *ethclient.Client) error {
		id, err := client.ChainID(ctx)
		if err != nil {
			return fmt.Errorf("failed to get chain ID: %w", err)
		}
		chainID = id.Uint64()
		return nil
	})
	return chainID, err
}

// BlockNumber returns the latest block number of the endpoint
func (c *ClientAdapter) BlockNumber(ctx context.Context, rpcURL string) (uint64, error) {
	var block uint64
	err := c.withClient(ctx, rpcURL, func(ctx context.Context, client *ethclient.Client) error {
		n, err := client.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get block number: %w", err)
		}
		block = n
		return nil
	})
	return block, err
}

func (c *ClientAdapter) withClient(ctx context.Context, rpcURL string, fn func(context.Context, *ethclient.Client) error) error {
	if _, ok := ctx.Deadline(); !ok && c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	return fn(ctx, client)
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*ClientAdapter)(nil)
