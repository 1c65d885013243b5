package blockchain

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/forknet/internal/domain"
)

type rpcRequest struct {
	Jsonrpc string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  []interface{}   `json:"params"`
	ID      json.RawMessage `json:"id"`
}

type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      json.RawMessage `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// newMockRPCServer creates a test HTTP server that responds to JSON-RPC requests
func newMockRPCServer(t *testing.T, handler func(req rpcRequest) rpcResponse) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp := handler(req)
		resp.Jsonrpc = "2.0"
		resp.ID = req.ID
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func chainServer(t *testing.T, chainIDHex string) *httptest.Server {
	return newMockRPCServer(t, func(req rpcRequest) rpcResponse {
		switch req.Method {
		case "eth_chainId":
			return rpcResponse{Result: chainIDHex}
		case "eth_blockNumber":
			return rpcResponse{Result: "0x4d2"}
		default:
			return rpcResponse{Error: &rpcError{Code: -32601, Message: "method not found"}}
		}
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientAdapter_ChainID(t *testing.T) {
	server := chainServer(t, "0x61")
	defer server.Close()

	chainID, err := NewClientAdapter().ChainID(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, uint64(97), chainID)
}

func TestClientAdapter_BlockNumber(t *testing.T) {
	server := chainServer(t, "0x1")
	defer server.Close()

	block, err := NewClientAdapter().BlockNumber(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), block)
}

func TestClientAdapter_RPCError(t *testing.T) {
	server := newMockRPCServer(t, func(req rpcRequest) rpcResponse {
		return rpcResponse{Error: &rpcError{Code: -32000, Message: "upstream unavailable"}}
	})
	defer server.Close()

	_, err := NewClientAdapter().ChainID(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestClientAdapter_Unreachable(t *testing.T) {
	server := chainServer(t, "0x1")
	url := server.URL
	server.Close()

	_, err := NewClientAdapter().ChainID(context.Background(), url)
	assert.Error(t, err)
}

func TestReadinessProbe_EventuallyReady(t *testing.T) {
	var calls atomic.Int32
	server := newMockRPCServer(t, func(req rpcRequest) rpcResponse {
		if calls.Add(1) < 3 {
			return rpcResponse{Error: &rpcError{Code: -32000, Message: "still forking"}}
		}
		return rpcResponse{Result: "0xa"}
	})
	defer server.Close()

	probe := NewReadinessProbe(NewClientAdapter(), discardLogger())
	probe.interval = 10 * time.Millisecond

	err := probe.WaitReady(context.Background(), server.URL, 10)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestReadinessProbe_ChainIDMismatchIsFinal(t *testing.T) {
	var calls atomic.Int32
	server := newMockRPCServer(t, func(req rpcRequest) rpcResponse {
		calls.Add(1)
		return rpcResponse{Result: "0x7a69"}
	})
	defer server.Close()

	probe := NewReadinessProbe(NewClientAdapter(), discardLogger())
	probe.interval = 10 * time.Millisecond

	err := probe.WaitReady(context.Background(), server.URL, 97)
	assert.ErrorIs(t, err, domain.ErrChainIDMismatch)
	assert.Equal(t, int32(1), calls.Load())
}

func TestReadinessProbe_GivesUp(t *testing.T) {
	server := newMockRPCServer(t, func(req rpcRequest) rpcResponse {
		return rpcResponse{Error: &rpcError{Code: -32000, Message: "still forking"}}
	})
	defer server.Close()

	probe := NewReadinessProbe(NewClientAdapter(), discardLogger())
	probe.interval = time.Millisecond
	probe.attempts = 3

	err := probe.WaitReady(context.Background(), server.URL, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "still forking")
}

func TestReadinessProbe_Cancelled(t *testing.T) {
	server := newMockRPCServer(t, func(req rpcRequest) rpcResponse {
		return rpcResponse{Error: &rpcError{Code: -32000, Message: "still forking"}}
	})
	defer server.Close()

	probe := NewReadinessProbe(NewClientAdapter(), discardLogger())
	probe.interval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := probe.WaitReady(ctx, server.URL, 1)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}
