package chain_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/providers/chain"
)

type rpcRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// newTestNode starts a JSON-RPC node answering with the given results per method
func newTestNode(t *testing.T, results map[string]string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		w.Header().Set("Content-Type", "application/json")
		result, ok := results[req.Method]
		if !ok {
			_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"error":{"code":-32601,"message":"method not found"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":` + string(req.ID) + `,"result":` + result + `}`))
	}))
	t.Cleanup(server.Close)

	return server
}

func dialTestNode(t *testing.T, results map[string]string) chain.Client {
	t.Helper()

	node := newTestNode(t, results)
	client, err := chain.Dial(context.Background(), adapter.NewRPCDialer(), node.URL)
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestClient_GetBestBlockNumber(t *testing.T) {
	tests := []struct {
		name     string
		result   string
		expected uint64
	}{
		{name: "json number", result: `12345`, expected: 12345},
		{name: "hex string", result: `"0x3039"`, expected: 12345},
		{name: "decimal string", result: `"12345"`, expected: 12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := dialTestNode(t, map[string]string{"chain_getBestBlockNumber": tt.result})

			n, err := client.GetBestBlockNumber(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestClient_GetAccount(t *testing.T) {
	client := dialTestNode(t, map[string]string{
		"chain_getBalance": `"0x1bc16d674ec80000"`,
		"chain_getNonce":   `"0x2a"`,
	})

	account, err := client.GetAccount(context.Background(), "cccq9h7vnl68frvqapzv3tujrxtxtwqdnxw6yamrrgd")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("2000000000000000000").Equal(account.Balance))
	assert.Equal(t, uint64(42), account.Nonce)
}

func TestClient_GetAccountWithoutBalance(t *testing.T) {
	client := dialTestNode(t, map[string]string{
		"chain_getBalance": `null`,
		"chain_getNonce":   `0`,
	})

	account, err := client.GetAccount(context.Background(), "cccq9h7vnl68frvqapzv3tujrxtxtwqdnxw6yamrrgd")
	require.NoError(t, err)
	assert.True(t, account.Balance.IsZero())
	assert.Zero(t, account.Nonce)
}

func TestClient_RPCError(t *testing.T) {
	client := dialTestNode(t, map[string]string{})

	_, err := client.GetBestBlockNumber(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chain_getBestBlockNumber")
}

func TestClient_InvalidQuantity(t *testing.T) {
	client := dialTestNode(t, map[string]string{"chain_getBestBlockNumber": `"-5"`})

	_, err := client.GetBestBlockNumber(context.Background())
	assert.Error(t, err)
}

func TestBlockFetcher(t *testing.T) {
	client := dialTestNode(t, map[string]string{"chain_getBestBlockNumber": `77`})

	n, err := chain.NewBlockFetcher(client).FetchBestBlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(77), n)
}
