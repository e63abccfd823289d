// Package lifecycle applies ledger mutations to the document store.
//
// Every operation is a single atomic mutation of one document keyed by the entity identity.
// Records are never deleted: spends and reorgs flip the isRemoved and isRetracted flags.
package lifecycle

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore/schema"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/notify"
)

// Manager applies ledger events to indexed asset and parcel records
//
//go:generate mockgen -source=manager.go -destination=../mocks/lifecycle.go -package=mocks -mock_names=Manager=MockLifecycleManager
type Manager interface {
	// IndexAsset inserts or overwrites the asset record as live
	IndexAsset(ctx context.Context, record domain.AssetRecord) error

	// RemoveAsset marks a spent asset record as removed
	RemoveAsset(ctx context.Context, identity domain.AssetIdentity) error

	// RevivalAsset marks a removed asset record as live again after a reorg undid the spend
	RevivalAsset(ctx context.Context, identity domain.AssetIdentity) error

	// IndexParcel inserts or replaces the parcel record as live
	IndexParcel(ctx context.Context, record domain.ParcelRecord) error

	// RetractParcel marks a parcel whose block left the canonical chain as retracted
	RetractParcel(ctx context.Context, hash string) error
}

type manager struct {
	store     docstore.Store
	publisher notify.Publisher
}

// NewManager creates a lifecycle manager. The publisher is optional.
func NewManager(store docstore.Store, publisher notify.Publisher) Manager {
	return &manager{
		store:     store,
		publisher: publisher,
	}
}

func (m *manager) IndexAsset(ctx context.Context, record domain.AssetRecord) error {
	identity := record.Identity()
	if err := identity.Validate(); err != nil {
		return err
	}

	record.IsRemoved = false
	doc, err := schema.NewAsset(record)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidQuery, err)
	}

	if err := m.store.Upsert(ctx, docstore.CollectionAsset, identity.Key(), doc); err != nil {
		return fmt.Errorf("failed to index asset %s: %w", identity.Key(), err)
	}

	logger.DebugCtx(ctx, "Indexed asset",
		zap.String("id", identity.Key()),
		zap.Uint64("blockNumber", record.BlockNumber))

	m.notify(ctx, notify.KindAssetIndexed, identity.Key(), record.BlockNumber)
	return nil
}

func (m *manager) RemoveAsset(ctx context.Context, identity domain.AssetIdentity) error {
	return m.setRemoved(ctx, identity, true, notify.KindAssetRemoved)
}

func (m *manager) RevivalAsset(ctx context.Context, identity domain.AssetIdentity) error {
	return m.setRemoved(ctx, identity, false, notify.KindAssetRevived)
}

func (m *manager) setRemoved(ctx context.Context, identity domain.AssetIdentity, removed bool, kind notify.Kind) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	err := m.store.PartialUpdate(ctx, docstore.CollectionAsset, identity.Key(), map[string]any{
		schema.AssetFieldIsRemoved: removed,
	})
	if err != nil {
		return fmt.Errorf("failed to set %s=%t on asset %s: %w", schema.AssetFieldIsRemoved, removed, identity.Key(), err)
	}

	logger.DebugCtx(ctx, "Updated asset removal flag",
		zap.String("id", identity.Key()),
		zap.Bool("isRemoved", removed))

	m.notify(ctx, kind, identity.Key(), 0)
	return nil
}

func (m *manager) IndexParcel(ctx context.Context, record domain.ParcelRecord) error {
	record.Hash = domain.NormalizeHash(record.Hash)
	if record.Hash == "" {
		return fmt.Errorf("%w: parcel hash is required", domain.ErrInvalidQuery)
	}

	record.IsRetracted = false
	doc, err := schema.NewParcel(record)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidQuery, err)
	}

	if err := m.store.Replace(ctx, docstore.CollectionParcel, record.Hash, doc); err != nil {
		return fmt.Errorf("failed to index parcel %s: %w", record.Hash, err)
	}

	logger.DebugCtx(ctx, "Indexed parcel",
		zap.String("hash", record.Hash),
		zap.Uint64("blockNumber", record.BlockNumber))

	m.notify(ctx, notify.KindParcelIndexed, record.Hash, record.BlockNumber)
	return nil
}

func (m *manager) RetractParcel(ctx context.Context, hash string) error {
	hash = domain.NormalizeHash(hash)
	if hash == "" {
		return fmt.Errorf("%w: parcel hash is required", domain.ErrInvalidQuery)
	}

	err := m.store.PartialUpdate(ctx, docstore.CollectionParcel, hash, map[string]any{
		schema.ParcelFieldIsRetracted: true,
	})
	if err != nil {
		return fmt.Errorf("failed to retract parcel %s: %w", hash, err)
	}

	logger.DebugCtx(ctx, "Retracted parcel", zap.String("hash", hash))

	m.notify(ctx, notify.KindParcelRetracted, hash, 0)
	return nil
}

// notify publishes a change notification; failures never fail the write
func (m *manager) notify(ctx context.Context, kind notify.Kind, key string, blockNumber uint64) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, kind, key, blockNumber); err != nil {
		logger.WarnCtx(ctx, "Failed to publish change notification",
			zap.String("kind", string(kind)),
			zap.String("key", key),
			zap.Error(err))
	}
}
