package executor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/constants"
	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/dto"
	"github.com/feral-file/ff-ledger-indexer/internal/assets"
	"github.com/feral-file/ff-ledger-indexer/internal/block"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/lifecycle"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/pagination"
	"github.com/feral-file/ff-ledger-indexer/internal/parcels"
	"github.com/feral-file/ff-ledger-indexer/internal/providers/chain"
	"github.com/feral-file/ff-ledger-indexer/internal/store"
)

// Window selects the confirmation partition of an asset query.
// A nil Threshold falls back to the configured default.
type Window struct {
	Threshold     *uint64
	OnlyConfirmed bool
}

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// GetParcel retrieves a live parcel by its hash, nil when absent
	GetParcel(ctx context.Context, hash string) (*dto.ParcelResponse, error)

	// ListParcels retrieves live parcels newest first after the cursor
	ListParcels(ctx context.Context, after pagination.Cursor, limit int) (*dto.ParcelListResponse, error)

	// CountParcels counts live parcels
	CountParcels(ctx context.Context) (int64, error)

	// GetPlatformAccount retrieves the chain balance and nonce of an address, nil for an invalid address
	GetPlatformAccount(ctx context.Context, address string) (*dto.AccountResponse, error)

	// ListParcelsByAddress retrieves live parcels of an address using a 1-based page
	ListParcelsByAddress(ctx context.Context, address string, page, limit int) ([]dto.ParcelResponse, error)

	// CountParcelsByAddress counts live parcels of an address
	CountParcelsByAddress(ctx context.Context, address string) (int64, error)

	// ListUTXOByAssetType retrieves the UTXOs of an address for one asset type
	ListUTXOByAssetType(ctx context.Context, address, assetType string, window Window, after pagination.Cursor, limit int) (*dto.UTXOListResponse, error)

	// AggregateUTXOBalances retrieves the balances of an address per asset type using a 0-based page
	AggregateUTXOBalances(ctx context.Context, address string, window Window, page, limit int) ([]dto.AssetBalanceResponse, error)

	// AggregateUTXOBalanceForType retrieves the balance of one asset type of an address, nil when it holds none
	AggregateUTXOBalanceForType(ctx context.Context, address, assetType string, window Window) (*dto.AssetBalanceResponse, error)

	// GetAssetMintOutputs retrieves the mint outputs of an asset type
	GetAssetMintOutputs(ctx context.Context, assetType string) ([]dto.MintOutputResponse, error)

	// RemoveAsset soft-deletes an asset record
	RemoveAsset(ctx context.Context, identity domain.AssetIdentity) (*dto.ActionResultResponse, error)

	// ReviveAsset clears the soft-delete flag of an asset record
	ReviveAsset(ctx context.Context, identity domain.AssetIdentity) (*dto.ActionResultResponse, error)

	// RetractParcel retracts a parcel
	RetractParcel(ctx context.Context, hash string) (*dto.ActionResultResponse, error)

	// CheckHealth pings the document store and the relational store
	CheckHealth(ctx context.Context) (*dto.HealthResponse, error)
}

// Config holds the executor configuration
type Config struct {
	// Networks are the network ids accepted as platform address prefixes
	Networks []string
	// ConfirmThreshold is the default number of blocks after which a record is final
	ConfirmThreshold uint64
}

type executor struct {
	config    Config
	assets    assets.Service
	parcels   parcels.Service
	bestBlock block.BestBlockProvider
	chain     chain.Client
	store     store.Store
	docstore  docstore.Store
	lifecycle lifecycle.Manager
}

// Dependencies groups the collaborators of the executor
type Dependencies struct {
	Assets    assets.Service
	Parcels   parcels.Service
	BestBlock block.BestBlockProvider
	Chain     chain.Client
	Store     store.Store
	DocStore  docstore.Store
	Lifecycle lifecycle.Manager
}

func NewExecutor(cfg Config, deps Dependencies) Executor {
	return &executor{
		config:    cfg,
		assets:    deps.Assets,
		parcels:   deps.Parcels,
		bestBlock: deps.BestBlock,
		chain:     deps.Chain,
		store:     deps.Store,
		docstore:  deps.DocStore,
		lifecycle: deps.Lifecycle,
	}
}

func (e *executor) GetParcel(ctx context.Context, hash string) (*dto.ParcelResponse, error) {
	parcel, err := e.parcels.GetParcel(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel: %w", err)
	}
	if parcel == nil {
		return nil, nil
	}

	resp := dto.MapParcelToDTO(*parcel)
	return &resp, nil
}

func (e *executor) ListParcels(ctx context.Context, after pagination.Cursor, limit int) (*dto.ParcelListResponse, error) {
	page, err := e.parcels.ListParcels(ctx, after, clampLimit(limit, constants.DEFAULT_PAGE_SIZE))
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}

	return &dto.ParcelListResponse{
		Items:      dto.MapParcelsToDTO(page.Items),
		NextCursor: encodeCursor(page.Next),
	}, nil
}

func (e *executor) CountParcels(ctx context.Context) (int64, error) {
	count, err := e.parcels.CountParcels(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count parcels: %w", err)
	}
	return count, nil
}

func (e *executor) GetPlatformAccount(ctx context.Context, address string) (*dto.AccountResponse, error) {
	if !domain.IsValidPlatformAddress(address, e.config.Networks) {
		return nil, nil
	}

	account, err := e.chain.GetAccount(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get platform account: %w", err)
	}

	return &dto.AccountResponse{
		Balance: account.Balance.String(),
		Nonce:   account.Nonce,
	}, nil
}

func (e *executor) ListParcelsByAddress(ctx context.Context, address string, page, limit int) ([]dto.ParcelResponse, error) {
	if !domain.IsValidPlatformAddress(address, e.config.Networks) {
		return []dto.ParcelResponse{}, nil
	}

	records, err := e.parcels.ListParcelsByAddress(ctx, address, int64(page), clampLimit(limit, constants.DEFAULT_ADDRESS_PARCELS_PAGE_SIZE))
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels by address: %w", err)
	}

	return dto.MapParcelsToDTO(records), nil
}

func (e *executor) CountParcelsByAddress(ctx context.Context, address string) (int64, error) {
	if !domain.IsValidPlatformAddress(address, e.config.Networks) {
		return 0, nil
	}

	count, err := e.parcels.CountParcelsByAddress(ctx, address)
	if err != nil {
		return 0, fmt.Errorf("failed to count parcels by address: %w", err)
	}
	return count, nil
}

func (e *executor) ListUTXOByAssetType(ctx context.Context, address, assetType string, window Window, after pagination.Cursor, limit int) (*dto.UTXOListResponse, error) {
	if !domain.IsValidPlatformAddress(address, e.config.Networks) {
		return &dto.UTXOListResponse{Items: []dto.UTXOResponse{}}, nil
	}

	w, err := e.resolveWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	page, err := e.assets.ListUTXOByAssetType(ctx, address, assetType, w, after, clampLimit(limit, constants.DEFAULT_PAGE_SIZE))
	if err != nil {
		return nil, fmt.Errorf("failed to list UTXOs: %w", err)
	}

	items := make([]dto.UTXOResponse, 0, len(page.Items))
	for _, u := range page.Items {
		items = append(items, dto.MapUTXOToDTO(u, w.BestBlock, w.Threshold))
	}

	return &dto.UTXOListResponse{
		Items:      items,
		NextCursor: encodeCursor(page.Next),
	}, nil
}

func (e *executor) AggregateUTXOBalances(ctx context.Context, address string, window Window, page, limit int) ([]dto.AssetBalanceResponse, error) {
	if !domain.IsValidPlatformAddress(address, e.config.Networks) {
		return []dto.AssetBalanceResponse{}, nil
	}

	w, err := e.resolveWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	balances, err := e.assets.AggregateUTXOBalances(ctx, address, w, int64(page), clampLimit(limit, constants.DEFAULT_PAGE_SIZE))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balances: %w", err)
	}

	items := make([]dto.AssetBalanceResponse, 0, len(balances))
	for _, b := range balances {
		items = append(items, dto.MapAssetBalanceToDTO(b))
	}
	return items, nil
}

func (e *executor) AggregateUTXOBalanceForType(ctx context.Context, address, assetType string, window Window) (*dto.AssetBalanceResponse, error) {
	if !domain.IsValidPlatformAddress(address, e.config.Networks) {
		return nil, nil
	}

	w, err := e.resolveWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	balance, err := e.assets.AggregateUTXOBalanceForType(ctx, address, assetType, w)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate balance: %w", err)
	}
	if balance == nil {
		return nil, nil
	}

	resp := dto.MapAssetBalanceToDTO(*balance)
	return &resp, nil
}

func (e *executor) GetAssetMintOutputs(ctx context.Context, assetType string) ([]dto.MintOutputResponse, error) {
	outputs, err := e.store.GetAssetMintOutputsByAssetType(ctx, assetType)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset mint outputs: %w", err)
	}

	items := make([]dto.MintOutputResponse, 0, len(outputs))
	for _, o := range outputs {
		items = append(items, dto.MapMintOutputToDTO(o))
	}
	return items, nil
}

func (e *executor) RemoveAsset(ctx context.Context, identity domain.AssetIdentity) (*dto.ActionResultResponse, error) {
	if err := e.lifecycle.RemoveAsset(ctx, identity); err != nil {
		return nil, fmt.Errorf("failed to remove asset: %w", err)
	}

	logger.InfoCtx(ctx, "Asset removed by admin", zap.String("key", identity.Key()))
	return &dto.ActionResultResponse{Status: "removed", Key: identity.Key()}, nil
}

func (e *executor) ReviveAsset(ctx context.Context, identity domain.AssetIdentity) (*dto.ActionResultResponse, error) {
	if err := e.lifecycle.RevivalAsset(ctx, identity); err != nil {
		return nil, fmt.Errorf("failed to revive asset: %w", err)
	}

	logger.InfoCtx(ctx, "Asset revived by admin", zap.String("key", identity.Key()))
	return &dto.ActionResultResponse{Status: "revived", Key: identity.Key()}, nil
}

func (e *executor) RetractParcel(ctx context.Context, hash string) (*dto.ActionResultResponse, error) {
	if err := e.lifecycle.RetractParcel(ctx, hash); err != nil {
		return nil, fmt.Errorf("failed to retract parcel: %w", err)
	}

	key := domain.NormalizeHash(hash)
	logger.InfoCtx(ctx, "Parcel retracted by admin", zap.String("hash", key))
	return &dto.ActionResultResponse{Status: "retracted", Key: key}, nil
}

func (e *executor) CheckHealth(ctx context.Context) (*dto.HealthResponse, error) {
	resp := &dto.HealthResponse{
		Status:  "ok",
		Service: "ff-ledger-indexer-api",
		Checks:  map[string]string{"docstore": "ok", "database": "ok"},
	}

	var firstErr error
	if err := e.docstore.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Checks["docstore"] = err.Error()
		firstErr = fmt.Errorf("document store ping failed: %w", err)
	}
	if err := e.store.Ping(ctx); err != nil {
		resp.Status = "degraded"
		resp.Checks["database"] = err.Error()
		if firstErr == nil {
			firstErr = fmt.Errorf("database ping failed: %w", err)
		}
	}

	return resp, firstErr
}

// resolveWindow pins the confirmation window to the current best block
func (e *executor) resolveWindow(ctx context.Context, window Window) (assets.Window, error) {
	best, err := e.bestBlock.GetBestBlockNumber(ctx)
	if err != nil {
		return assets.Window{}, fmt.Errorf("failed to get best block number: %w", err)
	}

	threshold := e.config.ConfirmThreshold
	if window.Threshold != nil {
		threshold = *window.Threshold
	}

	return assets.Window{
		BestBlock: best,
		Threshold: threshold,
		Confirmed: window.OnlyConfirmed,
	}, nil
}

func clampLimit(limit, def int) int64 {
	if limit <= 0 {
		return int64(def)
	}
	if limit > constants.MAX_PAGE_SIZE {
		return constants.MAX_PAGE_SIZE
	}
	return int64(limit)
}

func encodeCursor(c pagination.Cursor) *string {
	if len(c) == 0 {
		return nil
	}
	s := c.Encode()
	return &s
}
