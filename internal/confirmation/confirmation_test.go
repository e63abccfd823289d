package confirmation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name      string
		bestBlock uint64
		threshold uint64
		confirmed bool
		expected  bson.D
	}{
		{
			name:      "confirmed",
			bestBlock: 100,
			threshold: 5,
			confirmed: true,
			expected:  bson.D{{Key: "blockNumber", Value: bson.D{{Key: "$lte", Value: int64(95)}}}},
		},
		{
			name:      "unconfirmed",
			bestBlock: 100,
			threshold: 5,
			confirmed: false,
			expected:  bson.D{{Key: "blockNumber", Value: bson.D{{Key: "$gt", Value: int64(95)}}}},
		},
		{
			name:      "threshold above best block selects a negative range",
			bestBlock: 3,
			threshold: 5,
			confirmed: true,
			expected:  bson.D{{Key: "blockNumber", Value: bson.D{{Key: "$lte", Value: int64(-2)}}}},
		},
		{
			name:      "zero threshold",
			bestBlock: 10,
			threshold: 0,
			confirmed: false,
			expected:  bson.D{{Key: "blockNumber", Value: bson.D{{Key: "$gt", Value: int64(10)}}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := predicate.ToBSON(Resolve(tt.bestBlock, tt.threshold, tt.confirmed))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFrontier_Extremes(t *testing.T) {
	assert.Equal(t, int64(math.MaxInt64), Frontier(math.MaxUint64, 0))
	assert.Equal(t, int64(-math.MaxInt64), Frontier(0, math.MaxUint64))
	assert.Equal(t, int64(0), Frontier(5, 5))
}

// Every block number falls into exactly one partition and matches the predicate of that partition
func TestPartition_Completeness(t *testing.T) {
	const bestBlock, threshold = 20, 5

	for blockNumber := uint64(0); blockNumber <= 30; blockNumber++ {
		status := Partition(bestBlock, threshold, blockNumber)
		if blockNumber <= 15 {
			assert.Equal(t, StatusConfirmed, status, "block %d", blockNumber)
		} else {
			assert.Equal(t, StatusUnconfirmed, status, "block %d", blockNumber)
		}
	}

	for blockNumber := uint64(0); blockNumber <= 5; blockNumber++ {
		assert.Equal(t, StatusUnconfirmed, Partition(3, 5, blockNumber))
	}
}
