package bridge_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/bridge"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/metrics"
	mockspkg "github.com/feral-file/ff-ledger-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testNetwork = "mainnet"

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mockspkg.MockNatsJetStream
	natsConn  *mockspkg.MockNatsConn
	jetStream *mockspkg.MockJetStream
	consumer  *mockspkg.MockNatsConsumer
	consume   *mockspkg.MockConsumeContext
	manager   *mockspkg.MockLifecycleManager
	store     *mockspkg.MockStore
	metrics   *metrics.Metrics
}

// setupTestBridge creates all the mocks for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	return &testBridgeMocks{
		ctrl:      ctrl,
		natsJS:    mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:  mockspkg.NewMockNatsConn(ctrl),
		jetStream: mockspkg.NewMockJetStream(ctrl),
		consumer:  mockspkg.NewMockNatsConsumer(ctrl),
		consume:   mockspkg.NewMockConsumeContext(ctrl),
		manager:   mockspkg.NewMockLifecycleManager(ctrl),
		store:     mockspkg.NewMockStore(ctrl),
		metrics:   metrics.New(metrics.Config{Enabled: true}),
	}
}

// tearDownTestBridge cleans up the test mocks
func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

func testConfig() bridge.Config {
	return bridge.Config{
		URL:                  "nats://localhost:4222",
		StreamName:           "LEDGER",
		ConsumerName:         "ledger-indexer",
		ConnectionName:       "test-bridge",
		Network:              testNetwork,
		MaxReconnects:        10,
		ReconnectWait:        time.Second,
		AckWaitTimeout:       30 * time.Second,
		MaxDeliver:           5,
		Lanes:                4,
		RetryInitialInterval: time.Millisecond,
		RetryMaxElapsed:      50 * time.Millisecond,
	}
}

func newBridge(t *testing.T, mocks *testBridgeMocks) bridge.Bridge {
	cfg := testConfig()

	mocks.natsJS.
		EXPECT().
		Connect(cfg.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(cfg, mocks.natsJS, mocks.manager, mocks.store, mocks.metrics, adapter.NewJSON(), adapter.NewClock())
	require.NoError(t, err)
	return b
}

// runBridge starts the bridge and returns the handler it registered with the consumer
// and a stop function waiting for Run to return
func runBridge(t *testing.T, mocks *testBridgeMocks, cursor uint64) (adapter.MessageHandler, func() error) {
	b := newBridge(t, mocks)

	handlerCh := make(chan adapter.MessageHandler, 1)

	mocks.store.EXPECT().GetBlockCursor(gomock.Any(), testNetwork).Return(cursor, nil)
	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "LEDGER", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, cfg jetstream.ConsumerConfig) (adapter.Consumer, error) {
			assert.Equal(t, "ledger-indexer", cfg.Durable)
			assert.Equal(t, "ledger.mainnet.>", cfg.FilterSubject)
			assert.Equal(t, jetstream.AckExplicitPolicy, cfg.AckPolicy)
			return mocks.consumer, nil
		})
	mocks.consumer.EXPECT().Info(gomock.Any()).Return(&jetstream.ConsumerInfo{Name: "ledger-indexer"}, nil)
	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerCh <- handler
			return mocks.consume, nil
		})
	mocks.consume.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- b.Run(ctx)
	}()

	var handler adapter.MessageHandler
	select {
	case handler = <-handlerCh:
	case <-time.After(5 * time.Second):
		t.Fatal("bridge did not start consuming")
	}

	return handler, func() error {
		cancel()
		select {
		case err := <-errCh:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("bridge did not stop")
			return nil
		}
	}
}

// newMessage creates a message mock carrying the event
func newMessage(t *testing.T, ctrl *gomock.Controller, event domain.LedgerEvent) *mockspkg.MockJetStreamMessage {
	data, err := json.Marshal(event)
	require.NoError(t, err)

	msg := mockspkg.NewMockJetStreamMessage(ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()
	msg.EXPECT().Subject().Return("ledger.mainnet." + string(event.Type)).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	return msg
}

// expectOutcome makes the message signal done on its single terminal call
func expectOutcome(msg *mockspkg.MockJetStreamMessage, outcome string) <-chan struct{} {
	done := make(chan struct{})
	signal := func() error {
		close(done)
		return nil
	}

	switch outcome {
	case "ack":
		msg.EXPECT().Ack().DoAndReturn(signal)
	case "nak":
		msg.EXPECT().Nak().DoAndReturn(signal)
	case "term":
		msg.EXPECT().Term().DoAndReturn(signal)
	}
	return done
}

func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("message was not settled")
	}
}

func testAssetRecord() domain.AssetRecord {
	return domain.AssetRecord{
		Address: "cccqxphelyu2n73ekpewrsyj0256wjhn2aqds9xrrrg",
		Asset: domain.Asset{
			AssetType:              "5300000000a2a1fa1b0b6f7a4b3e3b4f3c2e1d0c",
			LockScriptHash:         "5f5960a7bca6ceeeb0c97bc717562914e7a1de04",
			Parameters:             []string{},
			Amount:                 100,
			TransactionHash:        "a1b2",
			TransactionOutputIndex: 0,
		},
		BlockNumber: 120,
	}
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	cfg := testConfig()
	mocks.natsJS.
		EXPECT().
		Connect(cfg.URL, gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	b, err := bridge.NewBridge(cfg, mocks.natsJS, mocks.manager, mocks.store, mocks.metrics, adapter.NewJSON(), adapter.NewClock())
	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestBridge_Run_CursorError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)
	mocks.store.EXPECT().GetBlockCursor(gomock.Any(), testNetwork).Return(uint64(0), errors.New("db down"))

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load block cursor")
}

func TestBridge_Run_ConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)
	mocks.store.EXPECT().GetBlockCursor(gomock.Any(), testNetwork).Return(uint64(0), nil)
	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "LEDGER", gomock.Any()).
		Return(nil, errors.New("stream not found"))

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestBridge_AssetIndexedWithMintOutput(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	handler, stop := runBridge(t, mocks, 100)

	record := testAssetRecord()
	mint := &domain.MintOutput{
		TransactionHash: "a1b2",
		LockScriptHash:  record.Asset.LockScriptHash,
		Amount:          100,
		AssetType:       record.Asset.AssetType,
		Recipient:       record.Address,
	}
	event := domain.LedgerEvent{
		Type:        domain.EventTypeAssetIndexed,
		Network:     testNetwork,
		BlockNumber: 120,
		Asset:       &record,
		MintOutput:  mint,
	}

	msg := newMessage(t, mocks.ctrl, event)
	mocks.manager.EXPECT().IndexAsset(gomock.Any(), record).Return(nil)
	mocks.store.EXPECT().SaveAssetMintOutput(gomock.Any(), *mint).Return(nil)
	mocks.store.EXPECT().SetBlockCursor(gomock.Any(), testNetwork, uint64(120)).Return(nil)
	done := expectOutcome(msg, "ack")

	handler(msg)
	waitFor(t, done)

	assert.ErrorIs(t, stop(), context.Canceled)
}

func TestBridge_LifecycleRouting(t *testing.T) {
	identity := testAssetRecord().Identity()
	parcel := domain.ParcelRecord{Hash: "ff01", Signer: "cccq", BlockNumber: 90}

	tests := []struct {
		name   string
		event  domain.LedgerEvent
		expect func(m *mockspkg.MockLifecycleManager)
	}{
		{
			name:  "asset removed",
			event: domain.LedgerEvent{Type: domain.EventTypeAssetRemoved, BlockNumber: 90, Identity: &identity},
			expect: func(m *mockspkg.MockLifecycleManager) {
				m.EXPECT().RemoveAsset(gomock.Any(), identity).Return(nil)
			},
		},
		{
			name:  "asset revived",
			event: domain.LedgerEvent{Type: domain.EventTypeAssetRevived, BlockNumber: 90, Identity: &identity},
			expect: func(m *mockspkg.MockLifecycleManager) {
				m.EXPECT().RevivalAsset(gomock.Any(), identity).Return(nil)
			},
		},
		{
			name:  "parcel indexed",
			event: domain.LedgerEvent{Type: domain.EventTypeParcelIndexed, BlockNumber: 90, Parcel: &parcel},
			expect: func(m *mockspkg.MockLifecycleManager) {
				m.EXPECT().IndexParcel(gomock.Any(), parcel).Return(nil)
			},
		},
		{
			name:  "parcel retracted",
			event: domain.LedgerEvent{Type: domain.EventTypeParcelRetracted, BlockNumber: 90, ParcelHash: "ff01"},
			expect: func(m *mockspkg.MockLifecycleManager) {
				m.EXPECT().RetractParcel(gomock.Any(), "ff01").Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestBridge(t)
			defer tearDownTestBridge(mocks)

			// The cursor is already ahead of the event, so it must not move back
			handler, stop := runBridge(t, mocks, 100)

			msg := newMessage(t, mocks.ctrl, tt.event)
			tt.expect(mocks.manager)
			done := expectOutcome(msg, "ack")

			handler(msg)
			waitFor(t, done)

			assert.ErrorIs(t, stop(), context.Canceled)
		})
	}
}

func TestBridge_RetriesWhileStoreUnavailable(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	handler, stop := runBridge(t, mocks, 0)

	parcel := domain.ParcelRecord{Hash: "ff02", BlockNumber: 7}
	msg := newMessage(t, mocks.ctrl, domain.LedgerEvent{Type: domain.EventTypeParcelIndexed, BlockNumber: 7, Parcel: &parcel})

	gomock.InOrder(
		mocks.manager.EXPECT().IndexParcel(gomock.Any(), parcel).Return(domain.ErrStoreUnavailable),
		mocks.manager.EXPECT().IndexParcel(gomock.Any(), parcel).Return(nil),
	)
	mocks.store.EXPECT().SetBlockCursor(gomock.Any(), testNetwork, uint64(7)).Return(nil)
	done := expectOutcome(msg, "ack")

	handler(msg)
	waitFor(t, done)

	assert.ErrorIs(t, stop(), context.Canceled)
}

func TestBridge_NaksWhenStoreStaysUnavailable(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	handler, stop := runBridge(t, mocks, 0)

	parcel := domain.ParcelRecord{Hash: "ff03", BlockNumber: 8}
	msg := newMessage(t, mocks.ctrl, domain.LedgerEvent{Type: domain.EventTypeParcelIndexed, BlockNumber: 8, Parcel: &parcel})

	mocks.manager.EXPECT().IndexParcel(gomock.Any(), parcel).Return(domain.ErrStoreUnavailable).MinTimes(1)
	done := expectOutcome(msg, "nak")

	handler(msg)
	waitFor(t, done)

	assert.ErrorIs(t, stop(), context.Canceled)
}

func TestBridge_TerminatesPermanentFailures(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "not found", err: domain.ErrNotFound},
		{name: "invalid query", err: domain.ErrInvalidQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := setupTestBridge(t)
			defer tearDownTestBridge(mocks)

			handler, stop := runBridge(t, mocks, 0)

			msg := newMessage(t, mocks.ctrl, domain.LedgerEvent{Type: domain.EventTypeParcelRetracted, BlockNumber: 9, ParcelHash: "ff04"})
			mocks.manager.EXPECT().RetractParcel(gomock.Any(), "ff04").Return(tt.err).Times(1)
			done := expectOutcome(msg, "term")

			handler(msg)
			waitFor(t, done)

			assert.ErrorIs(t, stop(), context.Canceled)
		})
	}
}

func TestBridge_TerminatesMalformedMessages(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	handler, stop := runBridge(t, mocks, 0)

	garbage := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	garbage.EXPECT().Data().Return([]byte("{not json")).AnyTimes()
	garbage.EXPECT().Subject().Return("ledger.mainnet.asset_indexed").AnyTimes()
	garbageDone := expectOutcome(garbage, "term")

	// Type without the payload it requires
	invalid := newMessage(t, mocks.ctrl, domain.LedgerEvent{Type: domain.EventTypeAssetRemoved, BlockNumber: 1})
	invalidDone := expectOutcome(invalid, "term")

	handler(garbage)
	handler(invalid)
	waitFor(t, garbageDone)
	waitFor(t, invalidDone)

	assert.ErrorIs(t, stop(), context.Canceled)
}

func TestBridge_SameIdentityAppliedInOrder(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	handler, stop := runBridge(t, mocks, 1000)

	identity := testAssetRecord().Identity()
	removed := newMessage(t, mocks.ctrl, domain.LedgerEvent{Type: domain.EventTypeAssetRemoved, BlockNumber: 130, Identity: &identity})
	revived := newMessage(t, mocks.ctrl, domain.LedgerEvent{Type: domain.EventTypeAssetRevived, BlockNumber: 129, Identity: &identity})

	var mu sync.Mutex
	var applied []string
	record := func(name string) func(context.Context, domain.AssetIdentity) error {
		return func(context.Context, domain.AssetIdentity) error {
			mu.Lock()
			defer mu.Unlock()
			applied = append(applied, name)
			return nil
		}
	}
	mocks.manager.EXPECT().RemoveAsset(gomock.Any(), identity).DoAndReturn(record("remove"))
	mocks.manager.EXPECT().RevivalAsset(gomock.Any(), identity).DoAndReturn(record("revive"))
	removedDone := expectOutcome(removed, "ack")
	revivedDone := expectOutcome(revived, "ack")

	handler(removed)
	handler(revived)
	waitFor(t, removedDone)
	waitFor(t, revivedDone)

	mu.Lock()
	assert.Equal(t, []string{"remove", "revive"}, applied)
	mu.Unlock()

	assert.ErrorIs(t, stop(), context.Canceled)
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "ledger.testnet.>", bridge.Subject("testnet"))
}
