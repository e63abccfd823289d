package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/mocks"
	"github.com/feral-file/ff-ledger-indexer/internal/notify"
)

type testNotifyMocks struct {
	ctrl      *gomock.Controller
	redis     *mocks.MockRedisClient
	clock     *mocks.MockClock
	publisher notify.Publisher
}

func setupTest(t *testing.T) *testNotifyMocks {
	ctrl := gomock.NewController(t)
	redis := mocks.NewMockRedisClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	return &testNotifyMocks{
		ctrl:      ctrl,
		redis:     redis,
		clock:     clock,
		publisher: notify.NewRedisPublisher(redis, "ledger-indexer", adapter.NewJSON(), clock),
	}
}

func tearDownTest(m *testNotifyMocks) {
	m.ctrl.Finish()
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "ledger-indexer:parcel.retracted", notify.Channel("ledger-indexer", notify.KindParcelRetracted))
}

func TestRedisPublisher_Publish(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.clock.EXPECT().Now().Return(now)

	var published []byte
	m.redis.EXPECT().
		Publish(gomock.Any(), "ledger-indexer:asset.indexed", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, message []byte) (int64, error) {
			published = message
			return 1, nil
		})

	err := m.publisher.Publish(context.Background(), notify.KindAssetIndexed, "addr-type-hash-0", 120)
	require.NoError(t, err)

	var n notify.Notification
	require.NoError(t, json.Unmarshal(published, &n))
	assert.Equal(t, notify.KindAssetIndexed, n.Kind)
	assert.Equal(t, "addr-type-hash-0", n.Key)
	assert.Equal(t, uint64(120), n.BlockNumber)
	assert.True(t, now.Equal(n.At))

	id, err := ulid.Parse(n.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), id.Time())
}

func TestRedisPublisher_Publish_RedisError(t *testing.T) {
	m := setupTest(t)
	defer tearDownTest(m)

	m.clock.EXPECT().Now().Return(time.Now())
	m.redis.EXPECT().
		Publish(gomock.Any(), "ledger-indexer:parcel.indexed", gomock.Any()).
		Return(int64(0), errors.New("connection refused"))

	err := m.publisher.Publish(context.Background(), notify.KindParcelIndexed, "abcd", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish notification")
}

func TestRedisPublisher_Publish_MarshalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	redis := mocks.NewMockRedisClient(ctrl)
	clock := mocks.NewMockClock(ctrl)
	json := mocks.NewMockJSON(ctrl)
	publisher := notify.NewRedisPublisher(redis, "ledger-indexer", json, clock)

	clock.EXPECT().Now().Return(time.Now())
	json.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("boom"))

	err := publisher.Publish(context.Background(), notify.KindAssetRemoved, "k", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal notification")
}
