// Package assets serves confirmation-aware queries over indexed asset records.
package assets

import (
	"context"
	"fmt"

	"github.com/feral-file/ff-ledger-indexer/internal/aggregation"
	"github.com/feral-file/ff-ledger-indexer/internal/confirmation"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore/schema"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/pagination"
	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

// UTXOSortKeys is the descending sort key tuple of UTXO listings
var UTXOSortKeys = []string{
	schema.AssetFieldBlockNumber,
	schema.AssetFieldParcelIndex,
	schema.AssetFieldTransactionIndex,
}

// Window selects the confirmed or unconfirmed partition relative to a best block
type Window struct {
	BestBlock uint64
	Threshold uint64
	Confirmed bool
}

// UTXOPage is one page of a UTXO listing
type UTXOPage struct {
	Items []domain.UTXO
	// Next is the position of the last item, nil when there are no more items
	Next pagination.Cursor
}

// Service answers asset queries
//
//go:generate mockgen -source=service.go -destination=../mocks/assets_service.go -package=mocks -mock_names=Service=MockAssetService
type Service interface {
	// ListUTXOByAssetType returns the live UTXOs of an address for one asset type, newest first
	ListUTXOByAssetType(ctx context.Context, address, assetType string, window Window, after pagination.Cursor, size int64) (*UTXOPage, error)

	// AggregateUTXOBalances returns the balance per asset type of an address ordered by total descending
	AggregateUTXOBalances(ctx context.Context, address string, window Window, page, size int64) ([]domain.AssetBalance, error)

	// AggregateUTXOBalanceForType returns the balance of one asset type of an address, nil when it holds none
	AggregateUTXOBalanceForType(ctx context.Context, address, assetType string, window Window) (*domain.AssetBalance, error)
}

type service struct {
	pages *pagination.Engine
	aggs  *aggregation.Engine
}

// NewService creates an asset query service over the document store
func NewService(store docstore.Store) Service {
	return &service{
		pages: pagination.NewEngine(store),
		aggs:  aggregation.NewEngine(store),
	}
}

// liveFilter selects live records of an address inside the confirmation window,
// optionally pinned to one asset type
func liveFilter(address, assetType string, window Window) predicate.Predicate {
	filters := []predicate.Predicate{
		predicate.Term(schema.AssetFieldAddress, address),
		predicate.Term(schema.AssetFieldIsRemoved, false),
		confirmation.Resolve(window.BestBlock, window.Threshold, window.Confirmed),
	}
	if assetType != "" {
		filters = append(filters, predicate.Term(schema.AssetFieldAssetType, assetType))
	}
	return predicate.And(filters...)
}

func (s *service) ListUTXOByAssetType(ctx context.Context, address, assetType string, window Window, after pagination.Cursor, size int64) (*UTXOPage, error) {
	if address == "" || assetType == "" {
		return nil, fmt.Errorf("%w: address and asset type are required", domain.ErrInvalidQuery)
	}

	page, err := s.pages.Page(ctx, pagination.Request{
		Collection: docstore.CollectionAsset,
		Filter:     liveFilter(address, assetType, window),
		SortKeys:   UTXOSortKeys,
		After:      after,
		Size:       pagination.SizeOrDefault(size, domain.DEFAULT_LIST_PAGE_SIZE),
	})
	if err != nil {
		return nil, err
	}

	items := make([]domain.UTXO, 0, len(page.Docs))
	for _, raw := range page.Docs {
		record, err := schema.DecodeAsset(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.UTXO{
			Asset:            record.Asset,
			BlockNumber:      record.BlockNumber,
			ParcelIndex:      record.ParcelIndex,
			TransactionIndex: record.TransactionIndex,
		})
	}

	return &UTXOPage{Items: items, Next: page.Next}, nil
}

func (s *service) AggregateUTXOBalances(ctx context.Context, address string, window Window, page, size int64) ([]domain.AssetBalance, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrInvalidQuery)
	}
	return s.aggs.Balances(ctx, liveFilter(address, "", window), page, size)
}

func (s *service) AggregateUTXOBalanceForType(ctx context.Context, address, assetType string, window Window) (*domain.AssetBalance, error) {
	if address == "" || assetType == "" {
		return nil, fmt.Errorf("%w: address and asset type are required", domain.ErrInvalidQuery)
	}
	return s.aggs.Balance(ctx, liveFilter(address, assetType, window))
}
