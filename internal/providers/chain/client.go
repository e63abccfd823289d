package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
)

const defaultCallTimeout = 10 * time.Second

// RPC methods of the chain node
const (
	methodBestBlockNumber = "chain_getBestBlockNumber"
	methodGetBalance      = "chain_getBalance"
	methodGetNonce        = "chain_getNonce"
)

// Account is the platform account state of an address
type Account struct {
	Balance decimal.Decimal `json:"balance"`
	Nonce   uint64          `json:"nonce"`
}

// Client queries chain state directly from a node
//
//go:generate mockgen -source=client.go -destination=../../mocks/chain_client.go -package=mocks -mock_names=Client=MockChainClient
type Client interface {
	// GetBestBlockNumber returns the best block number known to the node
	GetBestBlockNumber(ctx context.Context) (uint64, error)

	// GetAccount returns the balance and nonce of a platform address at the best block
	GetAccount(ctx context.Context, address string) (*Account, error)

	// Close closes the connection
	Close()
}

type chainClient struct {
	client adapter.RPCClient
}

// NewClient creates a chain client over a JSON-RPC connection
func NewClient(client adapter.RPCClient) Client {
	return &chainClient{client: client}
}

// Dial connects to the node's JSON-RPC endpoint
func Dial(ctx context.Context, dialer adapter.RPCDialer, url string) (Client, error) {
	c, err := dialer.Dial(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain rpc: %w", err)
	}
	return NewClient(c), nil
}

func (c *chainClient) GetBestBlockNumber(ctx context.Context) (uint64, error) {
	var raw json.RawMessage
	if err := c.call(ctx, &raw, methodBestBlockNumber); err != nil {
		return 0, err
	}
	n, err := parseQuantity(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid best block number: %w", err)
	}
	return n.BigInt().Uint64(), nil
}

func (c *chainClient) GetAccount(ctx context.Context, address string) (*Account, error) {
	var rawBalance json.RawMessage
	if err := c.call(ctx, &rawBalance, methodGetBalance, address, nil); err != nil {
		return nil, err
	}
	balance, err := parseQuantity(rawBalance)
	if err != nil {
		return nil, fmt.Errorf("invalid balance of %s: %w", address, err)
	}

	var rawNonce json.RawMessage
	if err := c.call(ctx, &rawNonce, methodGetNonce, address, nil); err != nil {
		return nil, err
	}
	nonce, err := parseQuantity(rawNonce)
	if err != nil {
		return nil, fmt.Errorf("invalid nonce of %s: %w", address, err)
	}

	return &Account{
		Balance: balance,
		Nonce:   nonce.BigInt().Uint64(),
	}, nil
}

func (c *chainClient) Close() {
	c.client.Close()
}

func (c *chainClient) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultCallTimeout)
		defer cancel()
	}

	if err := c.client.CallContext(ctx, result, method, args...); err != nil {
		return fmt.Errorf("rpc %s failed: %w", method, err)
	}
	return nil
}

// parseQuantity accepts a JSON number, a decimal string or a 0x-prefixed hex string.
// A null result is zero.
func parseQuantity(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.TrimSpace(string(raw))
	if s == "" || s == "null" {
		return decimal.Zero, nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		b, err := hexutil.DecodeBig(strings.ToLower(s))
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromBigInt(b, 0), nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() || !d.Equal(d.Truncate(0)) {
		return decimal.Zero, fmt.Errorf("%s is not an unsigned integer", s)
	}
	return d, nil
}
