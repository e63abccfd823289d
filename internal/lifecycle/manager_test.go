package lifecycle_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore/schema"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/lifecycle"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/mocks"
	"github.com/feral-file/ff-ledger-indexer/internal/notify"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	code := m.Run()
	terminateMongo()
	os.Exit(code)
}

type testManagerMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockDocumentStore
	publisher *mocks.MockPublisher
	manager   lifecycle.Manager
}

func setupTest(t *testing.T) *testManagerMocks {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockDocumentStore(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	return &testManagerMocks{
		ctrl:      ctrl,
		store:     store,
		publisher: publisher,
		manager:   lifecycle.NewManager(store, publisher),
	}
}

func tearDownTest(m *testManagerMocks) {
	m.ctrl.Finish()
}

func testAssetRecord() domain.AssetRecord {
	return domain.AssetRecord{
		Address: "tccq9h7vnl68frvqapzv3tujrxtxtwqdnxw6yamrrgd",
		Asset: domain.Asset{
			AssetType:              "5300000000a2a1fa1b0b6f7a4b3e3b4f3c2e1d0c",
			LockScriptHash:         "5f5960a7bca6ceeeb0c97bc717562914e7a1de04",
			Parameters:             []string{"aa01"},
			Amount:                 100,
			TransactionHash:        "7cbd2ea2d4b1d3e2f8c5c8e1a9f4b7d6c5e4f3a2b1c0d9e8f7a6b5c4d3e2f1a0",
			TransactionOutputIndex: 1,
		},
		BlockNumber:      42,
		ParcelIndex:      3,
		TransactionIndex: 0,
	}
}

func TestManager_IndexAsset(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	record := testAssetRecord()
	record.IsRemoved = true // a re-indexed record is live again

	m.store.EXPECT().
		Upsert(gomock.Any(), docstore.CollectionAsset, record.Identity().Key(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ docstore.Collection, _ string, fields any) error {
			doc, ok := fields.(*schema.Asset)
			require.True(t, ok)
			assert.False(t, doc.IsRemoved)
			assert.Equal(t, int64(42), doc.BlockNumber)
			assert.Equal(t, record.Asset.AssetType, doc.Asset.AssetType)
			return nil
		})
	m.publisher.EXPECT().
		Publish(gomock.Any(), notify.KindAssetIndexed, record.Identity().Key(), uint64(42)).
		Return(nil)

	require.NoError(t, m.manager.IndexAsset(context.Background(), record))
}

func TestManager_IndexAsset_InvalidIdentity(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	record := testAssetRecord()
	record.Address = ""

	err := m.manager.IndexAsset(context.Background(), record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidQuery))
}

func TestManager_IndexAsset_StoreUnavailable(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	record := testAssetRecord()
	m.store.EXPECT().
		Upsert(gomock.Any(), docstore.CollectionAsset, gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: timeout", domain.ErrStoreUnavailable))

	err := m.manager.IndexAsset(context.Background(), record)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

func TestManager_RemoveAndRevive(t *testing.T) {
	identity := testAssetRecord().Identity()

	tests := []struct {
		name    string
		removed bool
		kind    notify.Kind
		call    func(lifecycle.Manager) error
	}{
		{
			name:    "remove sets the flag",
			removed: true,
			kind:    notify.KindAssetRemoved,
			call: func(mgr lifecycle.Manager) error {
				return mgr.RemoveAsset(context.Background(), identity)
			},
		},
		{
			name:    "revive clears the flag",
			removed: false,
			kind:    notify.KindAssetRevived,
			call: func(mgr lifecycle.Manager) error {
				return mgr.RevivalAsset(context.Background(), identity)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTest(t)
			defer tearDownTest(m)

			m.store.EXPECT().
				PartialUpdate(gomock.Any(), docstore.CollectionAsset, identity.Key(), map[string]any{
					schema.AssetFieldIsRemoved: tt.removed,
				}).
				Return(nil)
			m.publisher.EXPECT().
				Publish(gomock.Any(), tt.kind, identity.Key(), uint64(0)).
				Return(nil)

			require.NoError(t, tt.call(m.manager))
		})
	}
}

func TestManager_RemoveAsset_NotFound(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	identity := testAssetRecord().Identity()
	m.store.EXPECT().
		PartialUpdate(gomock.Any(), docstore.CollectionAsset, identity.Key(), gomock.Any()).
		Return(fmt.Errorf("%w: asset %s", domain.ErrNotFound, identity.Key()))

	err := m.manager.RemoveAsset(context.Background(), identity)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestManager_IndexParcel(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	amount := uint64(500)
	record := domain.ParcelRecord{
		Hash:        "0xABCD01",
		Signer:      "tccq9h7vnl68frvqapzv3tujrxtxtwqdnxw6yamrrgd",
		Action:      domain.Action{Action: "pay", Receiver: "tccqyqn5n8m2u6jdqk6mzu0xg2k0e8gmjs0u3xlqnx", Amount: &amount},
		BlockNumber: 7,
		ParcelIndex: 1,
		IsRetracted: true,
	}

	m.store.EXPECT().
		Replace(gomock.Any(), docstore.CollectionParcel, "abcd01", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ docstore.Collection, _ string, doc any) error {
			parcel, ok := doc.(*schema.Parcel)
			require.True(t, ok)
			assert.Equal(t, "abcd01", parcel.Hash)
			assert.False(t, parcel.IsRetracted)
			return nil
		})
	m.publisher.EXPECT().
		Publish(gomock.Any(), notify.KindParcelIndexed, "abcd01", uint64(7)).
		Return(nil)

	require.NoError(t, m.manager.IndexParcel(context.Background(), record))
}

func TestManager_IndexParcel_MissingHash(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	err := m.manager.IndexParcel(context.Background(), domain.ParcelRecord{Hash: "0x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidQuery))
}

func TestManager_RetractParcel(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.store.EXPECT().
		PartialUpdate(gomock.Any(), docstore.CollectionParcel, "abcd01", map[string]any{
			schema.ParcelFieldIsRetracted: true,
		}).
		Return(nil)
	m.publisher.EXPECT().
		Publish(gomock.Any(), notify.KindParcelRetracted, "abcd01", uint64(0)).
		Return(nil)

	require.NoError(t, m.manager.RetractParcel(context.Background(), "0xAbCd01"))
}

func TestManager_RetractParcel_NotFound(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.store.EXPECT().
		PartialUpdate(gomock.Any(), docstore.CollectionParcel, "ffff", gomock.Any()).
		Return(fmt.Errorf("%w: parcel ffff", domain.ErrNotFound))

	err := m.manager.RetractParcel(context.Background(), "ffff")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestManager_PublishFailureDoesNotFailWrite(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.store.EXPECT().
		PartialUpdate(gomock.Any(), docstore.CollectionParcel, "abcd01", gomock.Any()).
		Return(nil)
	m.publisher.EXPECT().
		Publish(gomock.Any(), notify.KindParcelRetracted, "abcd01", uint64(0)).
		Return(errors.New("redis down"))

	assert.NoError(t, m.manager.RetractParcel(context.Background(), "abcd01"))
}

func TestManager_WithoutPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDocumentStore(ctrl)
	manager := lifecycle.NewManager(store, nil)

	store.EXPECT().
		Upsert(gomock.Any(), docstore.CollectionAsset, gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, manager.IndexAsset(context.Background(), testAssetRecord()))
}
