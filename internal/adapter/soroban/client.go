package soroban

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// maxResponseBytes bounds an RPC response body.
const maxResponseBytes = 8 << 20

// RPCError is a JSON-RPC error object returned by the Soroban RPC server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("soroban rpc error %d: %s", e.Code, e.Message)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

// rpcClient is a minimal JSON-RPC 2.0 client over HTTP POST.
type rpcClient struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
	nextID     atomic.Uint64
}

func (c *rpcClient) call(ctx context.Context, method string, params, result any) error {
	id := c.nextID.Add(1)

	body, err := json.Marshal(rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params})
	if err != nil {
		return fmt.Errorf("soroban: encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("soroban: create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "soroban rpc request", slog.String("method", method), slog.Uint64("id", id))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("soroban: %s: %w", method, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("soroban: %s: read body: %w", method, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("soroban: %s: unexpected status %d", method, resp.StatusCode)
	}

	var envelope rpcResponse
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("soroban: %s: decode response: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("soroban: %s: %w", method, envelope.Error)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("soroban: %s: decode result: %w", method, err)
	}
	return nil
}
