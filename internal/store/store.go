package store

import (
	"context"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// Store defines the interface for the relational store holding auxiliary transaction detail
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// SaveAssetMintOutput inserts or updates the mint output of a transaction
	SaveAssetMintOutput(ctx context.Context, output domain.MintOutput) error
	// GetAssetMintOutputsByAssetType retrieves the mint outputs of an asset type, oldest first
	GetAssetMintOutputsByAssetType(ctx context.Context, assetType string) ([]domain.MintOutput, error)
	// GetBlockCursor retrieves the last applied block number for a network
	GetBlockCursor(ctx context.Context, network string) (uint64, error)
	// SetBlockCursor stores the last applied block number for a network
	SetBlockCursor(ctx context.Context, network string, blockNumber uint64) error
	// Ping checks the database connection
	Ping(ctx context.Context) error
}
