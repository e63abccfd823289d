package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/types"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestMintOutput creates a test mint output
func buildTestMintOutput(txHash, assetType string, amount uint64) domain.MintOutput {
	return domain.MintOutput{
		TransactionHash: txHash,
		LockScriptHash:  "5f5960a7bca6ceeeb0c97bc717562914e7a1de04",
		Parameters:      []string{"e5a0a1d9a1f2b0c0b6e3a0d1a6f5e1c8b2d3e4f5"},
		Amount:          amount,
		Approver:        types.StringPtr("cccq8fvxtl3dpsqdwdhe9vn0lv5a2ejnylchsk8y2z8"),
		AssetType:       assetType,
		Recipient:       "cccqxphelyu2n73ekpewrsyj0256wjhn2aqds9xrrrg",
	}
}

// =============================================================================
// Tests
// =============================================================================

func testSaveAssetMintOutput(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("save and get by asset type", func(t *testing.T) {
		assetType := "5300000000a2a1fa1b0b6f7a4b3e3b4f3c2e1d01"
		first := buildTestMintOutput("0xAA01", assetType, 1000)
		second := buildTestMintOutput("aa02", assetType, 18446744073709551615)
		second.Approver = nil

		require.NoError(t, store.SaveAssetMintOutput(ctx, first))
		require.NoError(t, store.SaveAssetMintOutput(ctx, second))

		outputs, err := store.GetAssetMintOutputsByAssetType(ctx, assetType)
		require.NoError(t, err)
		require.Len(t, outputs, 2)

		assert.Equal(t, "aa01", outputs[0].TransactionHash)
		assert.Equal(t, uint64(1000), outputs[0].Amount)
		assert.Equal(t, first.Parameters, outputs[0].Parameters)
		assert.Equal(t, first.Approver, outputs[0].Approver)
		assert.Nil(t, outputs[0].Administrator)

		assert.Equal(t, uint64(18446744073709551615), outputs[1].Amount)
		assert.Nil(t, outputs[1].Approver)
	})

	t.Run("save is idempotent per transaction", func(t *testing.T) {
		assetType := "5300000000a2a1fa1b0b6f7a4b3e3b4f3c2e1d02"
		output := buildTestMintOutput("bb01", assetType, 5)

		require.NoError(t, store.SaveAssetMintOutput(ctx, output))
		output.Amount = 7
		require.NoError(t, store.SaveAssetMintOutput(ctx, output))

		outputs, err := store.GetAssetMintOutputsByAssetType(ctx, assetType)
		require.NoError(t, err)
		require.Len(t, outputs, 1)
		assert.Equal(t, uint64(7), outputs[0].Amount)
	})

	t.Run("nil parameters are stored as empty", func(t *testing.T) {
		assetType := "5300000000a2a1fa1b0b6f7a4b3e3b4f3c2e1d03"
		output := buildTestMintOutput("cc01", assetType, 1)
		output.Parameters = nil

		require.NoError(t, store.SaveAssetMintOutput(ctx, output))

		outputs, err := store.GetAssetMintOutputsByAssetType(ctx, assetType)
		require.NoError(t, err)
		require.Len(t, outputs, 1)
		assert.Empty(t, outputs[0].Parameters)
	})

	t.Run("unknown asset type returns empty list", func(t *testing.T) {
		outputs, err := store.GetAssetMintOutputsByAssetType(ctx, "unknown")
		require.NoError(t, err)
		assert.Empty(t, outputs)
	})

	t.Run("missing transaction hash is rejected", func(t *testing.T) {
		err := store.SaveAssetMintOutput(ctx, buildTestMintOutput("", "type", 1))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidQuery))
	})
}

func testBlockCursor(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("get non-existent cursor returns 0", func(t *testing.T) {
		cursor, err := store.GetBlockCursor(ctx, "test_network_nonexistent")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set and get cursor", func(t *testing.T) {
		network := "test_network_cursor"
		blockNum := uint64(12345)

		err := store.SetBlockCursor(ctx, network, blockNum)
		require.NoError(t, err)

		cursor, err := store.GetBlockCursor(ctx, network)
		require.NoError(t, err)
		assert.Equal(t, blockNum, cursor)
	})

	t.Run("update existing cursor", func(t *testing.T) {
		network := "test_network_update"

		err := store.SetBlockCursor(ctx, network, 100)
		require.NoError(t, err)

		err = store.SetBlockCursor(ctx, network, 200)
		require.NoError(t, err)

		cursor, err := store.GetBlockCursor(ctx, network)
		require.NoError(t, err)
		assert.Equal(t, uint64(200), cursor)
	})
}

// RunStoreTests runs all store tests against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"SaveAssetMintOutput", testSaveAssetMintOutput},
		{"BlockCursor", testBlockCursor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
