package block

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
)

// BlockInfo represents cached block information
type BlockInfo struct {
	Number    uint64
	Timestamp time.Time
}

// BestBlockProvider provides cached access to the best block number of the chain.
// Every confirmation-aware query needs the best block, so the number is cached
// for a short TTL instead of asking the node on every request.
//
//go:generate mockgen -source=head.go -destination=../mocks/block_head_provider.go -package=mocks -mock_names=BestBlockProvider=MockBestBlockProvider,BestBlockFetcher=MockBestBlockFetcher
type BestBlockProvider interface {
	// GetBestBlockNumber returns the best block number, potentially from cache
	GetBestBlockNumber(ctx context.Context) (uint64, error)
}

// BestBlockFetcher fetches the best block number from the chain
type BestBlockFetcher interface {
	// FetchBestBlockNumber fetches the best block number from the chain node
	FetchBestBlockNumber(ctx context.Context) (uint64, error)
}

// Config holds configuration for the BestBlockProvider
type Config struct {
	// TTL is how long to cache the block number
	TTL time.Duration

	// StaleWindow is how long to use stale data if fetching fails
	// If the cached data is older than this and fetch fails, return error
	StaleWindow time.Duration
}

// bestBlockProvider implements BestBlockProvider with TTL-based caching
type bestBlockProvider struct {
	fetcher BestBlockFetcher
	config  Config
	clock   adapter.Clock

	group     singleflight.Group
	mu        sync.RWMutex
	blockInfo *BlockInfo
}

// NewBestBlockProvider creates a new BestBlockProvider with caching
func NewBestBlockProvider(fetcher BestBlockFetcher, config Config, clock adapter.Clock) BestBlockProvider {
	return &bestBlockProvider{
		fetcher: fetcher,
		config:  config,
		clock:   clock,
	}
}

// GetBestBlockNumber returns the best block number, using cache if valid.
// Concurrent callers that miss the cache share one fetch.
func (p *bestBlockProvider) GetBestBlockNumber(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.blockInfo
	p.mu.RUnlock()

	now := p.clock.Now()

	if cached != nil && now.Sub(cached.Timestamp) < p.config.TTL {
		logger.DebugCtx(ctx, "Using cached best block number", zap.Uint64("block_number", cached.Number))
		return cached.Number, nil
	}

	v, err, _ := p.group.Do("best", func() (interface{}, error) {
		logger.DebugCtx(ctx, "Fetching best block number from chain node")
		return p.fetcher.FetchBestBlockNumber(ctx)
	})
	if err != nil {
		if cached != nil && now.Sub(cached.Timestamp) < p.config.StaleWindow {
			logger.WarnCtx(ctx, "Using stale best block number",
				zap.Uint64("block_number", cached.Number),
				zap.String("age", now.Sub(cached.Timestamp).String()),
				zap.Error(err))
			return cached.Number, nil
		}
		return 0, fmt.Errorf("failed to fetch best block and no valid cache available: %w", err)
	}

	blockNumber := v.(uint64)

	p.mu.Lock()
	if p.blockInfo == nil || !p.blockInfo.Timestamp.After(now) {
		p.blockInfo = &BlockInfo{
			Number:    blockNumber,
			Timestamp: now,
		}
	}
	p.mu.Unlock()

	logger.DebugCtx(ctx, "Refreshed best block number", zap.String("block_number", strconv.FormatUint(blockNumber, 10)))

	return blockNumber, nil
}
