package chain

import (
	"context"

	"github.com/feral-file/ff-ledger-indexer/internal/block"
)

// chainBlockFetcher implements block.BestBlockFetcher over the chain client
type chainBlockFetcher struct {
	client Client
}

func NewBlockFetcher(client Client) block.BestBlockFetcher {
	return &chainBlockFetcher{client: client}
}

// FetchBestBlockNumber fetches the best block number from the node
func (f *chainBlockFetcher) FetchBestBlockNumber(ctx context.Context) (uint64, error) {
	return f.client.GetBestBlockNumber(ctx)
}
