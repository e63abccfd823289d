package executor_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/executor"
	"github.com/feral-file/ff-ledger-indexer/internal/assets"
	"github.com/feral-file/ff-ledger-indexer/internal/confirmation"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/mocks"
	"github.com/feral-file/ff-ledger-indexer/internal/pagination"
	"github.com/feral-file/ff-ledger-indexer/internal/parcels"
	"github.com/feral-file/ff-ledger-indexer/internal/providers/chain"
)

var (
	validAddress   = "tcc" + strings.Repeat("q", 41)
	invalidAddress = "not-an-address"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	os.Exit(m.Run())
}

type testExecutorMocks struct {
	ctrl      *gomock.Controller
	assets    *mocks.MockAssetService
	parcels   *mocks.MockParcelService
	bestBlock *mocks.MockBestBlockProvider
	chain     *mocks.MockChainClient
	store     *mocks.MockStore
	docstore  *mocks.MockDocumentStore
	lifecycle *mocks.MockLifecycleManager
	executor  executor.Executor
}

func setupTest(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	m := &testExecutorMocks{
		ctrl:      ctrl,
		assets:    mocks.NewMockAssetService(ctrl),
		parcels:   mocks.NewMockParcelService(ctrl),
		bestBlock: mocks.NewMockBestBlockProvider(ctrl),
		chain:     mocks.NewMockChainClient(ctrl),
		store:     mocks.NewMockStore(ctrl),
		docstore:  mocks.NewMockDocumentStore(ctrl),
		lifecycle: mocks.NewMockLifecycleManager(ctrl),
	}
	m.executor = executor.NewExecutor(
		executor.Config{Networks: []string{"tc"}, ConfirmThreshold: 5},
		executor.Dependencies{
			Assets:    m.assets,
			Parcels:   m.parcels,
			BestBlock: m.bestBlock,
			Chain:     m.chain,
			Store:     m.store,
			DocStore:  m.docstore,
			Lifecycle: m.lifecycle,
		},
	)
	return m
}

func tearDownTest(m *testExecutorMocks) {
	m.ctrl.Finish()
}

func TestExecutor_GetParcel(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	amount := uint64(10)
	m.parcels.EXPECT().
		GetParcel(gomock.Any(), "abcd").
		Return(&domain.ParcelRecord{Hash: "abcd", Action: domain.Action{Action: "pay", Amount: &amount}, BlockNumber: 9}, nil)

	resp, err := m.executor.GetParcel(context.Background(), "abcd")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "abcd", resp.Hash)
	assert.Equal(t, uint64(9), resp.BlockNumber)
	assert.Equal(t, &amount, resp.Action.Amount)
}

func TestExecutor_GetParcel_Absent(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.parcels.EXPECT().GetParcel(gomock.Any(), "abcd").Return(nil, nil)

	resp, err := m.executor.GetParcel(context.Background(), "abcd")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestExecutor_ListParcels(t *testing.T) {
	tests := []struct {
		name         string
		limit        int
		expectedSize int64
	}{
		{name: "default size", limit: 0, expectedSize: 25},
		{name: "explicit size", limit: 10, expectedSize: 10},
		{name: "capped size", limit: 1000, expectedSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTest(t)
			defer tearDownTest(m)

			m.parcels.EXPECT().
				ListParcels(gomock.Any(), pagination.Cursor{50, 1}, tt.expectedSize).
				Return(&parcels.Page{
					Items: []domain.ParcelRecord{{Hash: "p1", BlockNumber: 49}},
					Next:  pagination.Cursor{49, 0},
				}, nil)

			resp, err := m.executor.ListParcels(context.Background(), pagination.Cursor{50, 1}, tt.limit)
			require.NoError(t, err)
			require.Len(t, resp.Items, 1)
			require.NotNil(t, resp.NextCursor)

			next, err := pagination.DecodeCursor(*resp.NextCursor, 2)
			require.NoError(t, err)
			assert.Equal(t, pagination.Cursor{49, 0}, next)
		})
	}
}

func TestExecutor_ListParcels_LastPageHasNoCursor(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.parcels.EXPECT().
		ListParcels(gomock.Any(), gomock.Nil(), int64(25)).
		Return(&parcels.Page{}, nil)

	resp, err := m.executor.ListParcels(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	assert.Nil(t, resp.NextCursor)
}

func TestExecutor_InvalidAddressYieldsEmptyResponses(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	ctx := context.Background()
	window := executor.Window{OnlyConfirmed: true}

	account, err := m.executor.GetPlatformAccount(ctx, invalidAddress)
	require.NoError(t, err)
	assert.Nil(t, account)

	list, err := m.executor.ListParcelsByAddress(ctx, invalidAddress, 1, 6)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	count, err := m.executor.CountParcelsByAddress(ctx, invalidAddress)
	require.NoError(t, err)
	assert.Zero(t, count)

	utxos, err := m.executor.ListUTXOByAssetType(ctx, invalidAddress, "type", window, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, utxos.Items)

	balances, err := m.executor.AggregateUTXOBalances(ctx, invalidAddress, window, 0, 10)
	require.NoError(t, err)
	assert.NotNil(t, balances)
	assert.Empty(t, balances)

	balance, err := m.executor.AggregateUTXOBalanceForType(ctx, invalidAddress, "type", window)
	require.NoError(t, err)
	assert.Nil(t, balance)
}

func TestExecutor_GetPlatformAccount(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	balance, err := decimal.NewFromString("2000000000000000000")
	require.NoError(t, err)
	m.chain.EXPECT().
		GetAccount(gomock.Any(), validAddress).
		Return(&chain.Account{Balance: balance, Nonce: 42}, nil)

	resp, err := m.executor.GetPlatformAccount(context.Background(), validAddress)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "2000000000000000000", resp.Balance)
	assert.Equal(t, uint64(42), resp.Nonce)
}

func TestExecutor_ListUTXOByAssetType_ResolvesWindow(t *testing.T) {
	threshold := uint64(10)

	tests := []struct {
		name           string
		window         executor.Window
		expected       assets.Window
		blockNumber    uint64
		expectedStatus confirmation.Status
	}{
		{
			name:           "default threshold",
			window:         executor.Window{OnlyConfirmed: true},
			expected:       assets.Window{BestBlock: 200, Threshold: 5, Confirmed: true},
			blockNumber:    195,
			expectedStatus: confirmation.StatusConfirmed,
		},
		{
			name:           "explicit threshold for the pending partition",
			window:         executor.Window{Threshold: &threshold, OnlyConfirmed: false},
			expected:       assets.Window{BestBlock: 200, Threshold: 10, Confirmed: false},
			blockNumber:    191,
			expectedStatus: confirmation.StatusUnconfirmed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupTest(t)
			defer tearDownTest(m)

			m.bestBlock.EXPECT().GetBestBlockNumber(gomock.Any()).Return(uint64(200), nil)
			m.assets.EXPECT().
				ListUTXOByAssetType(gomock.Any(), validAddress, "type", tt.expected, gomock.Nil(), int64(25)).
				Return(&assets.UTXOPage{
					Items: []domain.UTXO{{Asset: domain.Asset{AssetType: "type", Amount: 3}, BlockNumber: tt.blockNumber}},
				}, nil)

			resp, err := m.executor.ListUTXOByAssetType(context.Background(), validAddress, "type", tt.window, nil, 0)
			require.NoError(t, err)
			require.Len(t, resp.Items, 1)
			assert.Equal(t, tt.expectedStatus, resp.Items[0].Confirmation)
			assert.Equal(t, uint64(3), resp.Items[0].Asset.Amount)
			assert.Equal(t, []string{}, resp.Items[0].Asset.Parameters)
			assert.Nil(t, resp.NextCursor)
		})
	}
}

func TestExecutor_ListUTXOByAssetType_BestBlockError(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.bestBlock.EXPECT().GetBestBlockNumber(gomock.Any()).Return(uint64(0), errors.New("node down"))

	_, err := m.executor.ListUTXOByAssetType(context.Background(), validAddress, "type", executor.Window{}, nil, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get best block number")
}

func TestExecutor_AggregateUTXOBalances(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.bestBlock.EXPECT().GetBestBlockNumber(gomock.Any()).Return(uint64(100), nil)
	m.assets.EXPECT().
		AggregateUTXOBalances(gomock.Any(), validAddress, assets.Window{BestBlock: 100, Threshold: 5, Confirmed: true}, int64(0), int64(25)).
		Return([]domain.AssetBalance{
			{AssetType: "b", TotalAssetQuantity: decimal.NewFromInt(30), UTXOQuantity: 1},
			{AssetType: "a", TotalAssetQuantity: decimal.RequireFromString("18446744073709551615"), UTXOQuantity: 2},
		}, nil)

	resp, err := m.executor.AggregateUTXOBalances(context.Background(), validAddress, executor.Window{OnlyConfirmed: true}, 0, 0)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "30", resp[0].TotalAssetQuantity)
	assert.Equal(t, "18446744073709551615", resp[1].TotalAssetQuantity)
}

func TestExecutor_AggregateUTXOBalanceForType_Absent(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.bestBlock.EXPECT().GetBestBlockNumber(gomock.Any()).Return(uint64(100), nil)
	m.assets.EXPECT().
		AggregateUTXOBalanceForType(gomock.Any(), validAddress, "type", gomock.Any()).
		Return(nil, nil)

	resp, err := m.executor.AggregateUTXOBalanceForType(context.Background(), validAddress, "type", executor.Window{})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestExecutor_GetAssetMintOutputs(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.store.EXPECT().
		GetAssetMintOutputsByAssetType(gomock.Any(), "type").
		Return([]domain.MintOutput{{TransactionHash: "aa", AssetType: "type", Amount: 7}}, nil)

	resp, err := m.executor.GetAssetMintOutputs(context.Background(), "type")
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "aa", resp[0].TransactionHash)
	assert.Equal(t, []string{}, resp[0].Parameters)
}

func TestExecutor_RemoveAsset_NotFound(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	identity := domain.AssetIdentity{Address: validAddress, AssetType: "type", TransactionHash: "hash"}
	m.lifecycle.EXPECT().
		RemoveAsset(gomock.Any(), identity).
		Return(fmt.Errorf("%w: asset", domain.ErrNotFound))

	_, err := m.executor.RemoveAsset(context.Background(), identity)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestExecutor_ReviveAsset(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	identity := domain.AssetIdentity{Address: validAddress, AssetType: "type", TransactionHash: "hash", TransactionOutputIndex: 1}
	m.lifecycle.EXPECT().RevivalAsset(gomock.Any(), identity).Return(nil)

	resp, err := m.executor.ReviveAsset(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, "revived", resp.Status)
	assert.Equal(t, identity.Key(), resp.Key)
}

func TestExecutor_RetractParcel(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.lifecycle.EXPECT().RetractParcel(gomock.Any(), "0xABCD").Return(nil)

	resp, err := m.executor.RetractParcel(context.Background(), "0xABCD")
	require.NoError(t, err)
	assert.Equal(t, "retracted", resp.Status)
	assert.Equal(t, "abcd", resp.Key)
}

func TestExecutor_CheckHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		m := setupTest(t)
		defer tearDownTest(m)

		m.docstore.EXPECT().Ping(gomock.Any()).Return(nil)
		m.store.EXPECT().Ping(gomock.Any()).Return(nil)

		resp, err := m.executor.CheckHealth(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("document store down", func(t *testing.T) {
		m := setupTest(t)
		defer tearDownTest(m)

		m.docstore.EXPECT().Ping(gomock.Any()).Return(domain.ErrStoreUnavailable)
		m.store.EXPECT().Ping(gomock.Any()).Return(nil)

		resp, err := m.executor.CheckHealth(context.Background())
		require.Error(t, err)
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "ok", resp.Checks["database"])
	})
}
