package pagination_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/mocks"
	"github.com/feral-file/ff-ledger-indexer/internal/pagination"
	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

var sortKeys = []string{"blockNumber", "parcelIndex", "transactionIndex"}

func rawDoc(t *testing.T, blockNumber, parcelIndex, transactionIndex int64) bson.Raw {
	t.Helper()
	raw, err := bson.Marshal(bson.D{
		{Key: "blockNumber", Value: blockNumber},
		{Key: "parcelIndex", Value: parcelIndex},
		{Key: "transactionIndex", Value: transactionIndex},
	})
	require.NoError(t, err)
	return raw
}

func TestSearchAfter(t *testing.T) {
	got, err := predicate.ToBSON(pagination.SearchAfter([]string{"blockNumber", "parcelIndex"}, pagination.Cursor{10, 2}))
	require.NoError(t, err)

	expected := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "blockNumber", Value: bson.D{{Key: "$lt", Value: int64(10)}}}},
		bson.D{{Key: "$and", Value: bson.A{
			bson.D{{Key: "blockNumber", Value: int64(10)}},
			bson.D{{Key: "parcelIndex", Value: bson.D{{Key: "$lt", Value: int64(2)}}}},
		}}},
	}}}
	assert.Equal(t, expected, got)
}

func TestEngine_FirstPageStartsAtMaximum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDocumentStore(ctrl)
	engine := pagination.NewEngine(store)

	base := predicate.Term("address", "addr1")
	store.EXPECT().
		Search(gomock.Any(), docstore.CollectionAsset, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ docstore.Collection, req docstore.SearchRequest) ([]bson.Raw, error) {
			assert.Equal(t, int64(2), req.Limit)
			assert.Equal(t, []docstore.SortField{
				{Field: "blockNumber", Desc: true},
				{Field: "parcelIndex", Desc: true},
				{Field: "transactionIndex", Desc: true},
			}, req.Sort)

			expected, err := predicate.ToBSON(predicate.And(base, pagination.SearchAfter(sortKeys, pagination.MaxCursor(3))))
			require.NoError(t, err)
			got, err := predicate.ToBSON(req.Filter)
			require.NoError(t, err)
			assert.Equal(t, expected, got)

			return []bson.Raw{rawDoc(t, 9, 1, 0), rawDoc(t, 8, 4, 2)}, nil
		})

	page, err := engine.Page(context.Background(), pagination.Request{
		Collection: docstore.CollectionAsset,
		Filter:     base,
		SortKeys:   sortKeys,
		Size:       2,
	})
	require.NoError(t, err)
	assert.Len(t, page.Docs, 2)
	assert.Equal(t, pagination.Cursor{8, 4, 2}, page.Next)
}

func TestEngine_LastPageHasNoCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDocumentStore(ctrl)
	store.EXPECT().
		Search(gomock.Any(), docstore.CollectionAsset, gomock.Any()).
		Return([]bson.Raw{rawDoc(t, 1, 0, 0)}, nil)

	page, err := pagination.NewEngine(store).Page(context.Background(), pagination.Request{
		Collection: docstore.CollectionAsset,
		SortKeys:   sortKeys,
		After:      pagination.Cursor{2, 0, 0},
		Size:       2,
	})
	require.NoError(t, err)
	assert.Len(t, page.Docs, 1)
	assert.Nil(t, page.Next)
}

func TestEngine_InvalidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := pagination.NewEngine(mocks.NewMockDocumentStore(ctrl))

	tests := []struct {
		name string
		req  pagination.Request
	}{
		{name: "no sort keys", req: pagination.Request{Size: 1}},
		{name: "zero size", req: pagination.Request{SortKeys: sortKeys}},
		{name: "cursor arity mismatch", req: pagination.Request{SortKeys: sortKeys, After: pagination.Cursor{1}, Size: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Page(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidQuery)
		})
	}
}

func TestEngine_PropagatesStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockDocumentStore(ctrl)
	store.EXPECT().
		Search(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrStoreUnavailable)

	_, err := pagination.NewEngine(store).Page(context.Background(), pagination.Request{
		Collection: docstore.CollectionParcel,
		SortKeys:   sortKeys[:2],
		Size:       25,
	})
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

func TestCursor_EncodeDecode(t *testing.T) {
	c := pagination.Cursor{120, 3, 1}
	token := c.Encode()
	assert.NotContains(t, token, ":")

	decoded, err := pagination.DecodeCursor(token, 3)
	require.NoError(t, err)
	assert.Equal(t, c, decoded)

	empty, err := pagination.DecodeCursor("", 3)
	require.NoError(t, err)
	assert.Nil(t, empty)
	assert.Equal(t, "", pagination.Cursor(nil).Encode())
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "%%%"},
		{name: "wrong arity", token: pagination.Cursor{1, 2}.Encode()},
		{name: "not a number", token: "YTpiOmM="}, // a:b:c
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pagination.DecodeCursor(tt.token, 3)
			assert.ErrorIs(t, err, domain.ErrInvalidQuery)
		})
	}
}

func TestNewCursor(t *testing.T) {
	block := uint64(100)
	index := uint64(0)

	assert.Nil(t, pagination.NewCursor(nil, nil))
	assert.Equal(t, pagination.Cursor{100, 0}, pagination.NewCursor(&block, &index))
	assert.Equal(t, pagination.Cursor{100, math.MaxInt64}, pagination.NewCursor(&block, nil))
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		name        string
		skip        func(page, size int64) (int64, error)
		page        int64
		size        int64
		expected    int64
		expectError bool
	}{
		{name: "one based first page", skip: pagination.SkipOneBased, page: 1, size: 6, expected: 0},
		{name: "one based third page", skip: pagination.SkipOneBased, page: 3, size: 6, expected: 12},
		{name: "one based page zero", skip: pagination.SkipOneBased, page: 0, size: 6, expected: 0},
		{name: "one based last representable page", skip: pagination.SkipOneBased, page: math.MaxInt64/100 + 1, size: 100, expected: math.MaxInt64 / 100 * 100},
		{name: "one based overflow", skip: pagination.SkipOneBased, page: 184467440737095518, size: 100, expectError: true},
		{name: "zero based first page", skip: pagination.SkipZeroBased, page: 0, size: 25, expected: 0},
		{name: "zero based third page", skip: pagination.SkipZeroBased, page: 2, size: 25, expected: 50},
		{name: "zero based negative page", skip: pagination.SkipZeroBased, page: -1, size: 25, expected: 0},
		{name: "zero based overflow", skip: pagination.SkipZeroBased, page: 184467440737095517, size: 100, expectError: true},
		{name: "zero based max page", skip: pagination.SkipZeroBased, page: math.MaxInt64, size: 1, expected: math.MaxInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, err := tt.skip(tt.page, tt.size)
			if tt.expectError {
				assert.ErrorIs(t, err, domain.ErrInvalidQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, skip)
		})
	}
}

func TestSizeOrDefault(t *testing.T) {
	assert.Equal(t, int64(25), pagination.SizeOrDefault(0, 25))
	assert.Equal(t, int64(10), pagination.SizeOrDefault(10, 25))
}
