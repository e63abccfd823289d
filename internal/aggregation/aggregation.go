// Package aggregation computes per asset type balances over indexed asset records.
package aggregation

import (
	"context"

	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore/schema"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/pagination"
	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

// Engine groups asset records by asset type
type Engine struct {
	store docstore.Store
}

// NewEngine creates a new balance aggregation engine
func NewEngine(store docstore.Store) *Engine {
	return &Engine{store: store}
}

// Balances returns one bucket per asset type of the records matching the filter.
// Buckets are ordered by total quantity descending, ties by asset type ascending,
// and paginated after ordering with a 0-based page.
func (e *Engine) Balances(ctx context.Context, filter predicate.Predicate, page, size int64) ([]domain.AssetBalance, error) {
	size = pagination.SizeOrDefault(size, domain.DEFAULT_BUCKET_PAGE_SIZE)
	skip, err := pagination.SkipZeroBased(page, size)
	if err != nil {
		return nil, err
	}

	buckets, err := e.store.Aggregate(ctx, docstore.CollectionAsset, docstore.AggregateRequest{
		Filter:   filter,
		GroupBy:  schema.AssetFieldAssetType,
		SumField: schema.AssetFieldAmount,
		Sort:     docstore.BucketSortSumDesc,
		Skip:     skip,
		Limit:    size,
	})
	if err != nil {
		return nil, err
	}

	balances := make([]domain.AssetBalance, 0, len(buckets))
	for _, b := range buckets {
		balances = append(balances, toBalance(b))
	}
	return balances, nil
}

// Balance returns the single bucket of the records matching the filter, or nil when none match.
// The filter is expected to pin one asset type.
func (e *Engine) Balance(ctx context.Context, filter predicate.Predicate) (*domain.AssetBalance, error) {
	buckets, err := e.store.Aggregate(ctx, docstore.CollectionAsset, docstore.AggregateRequest{
		Filter:   filter,
		GroupBy:  schema.AssetFieldAssetType,
		SumField: schema.AssetFieldAmount,
		Sort:     docstore.BucketSortSumDesc,
		Limit:    1,
	})
	if err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, nil
	}

	balance := toBalance(buckets[0])
	return &balance, nil
}

func toBalance(b docstore.Bucket) domain.AssetBalance {
	return domain.AssetBalance{
		AssetType:          b.Key,
		TotalAssetQuantity: b.Sum,
		UTXOQuantity:       b.Count,
	}
}
