package bridge

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/lifecycle"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/metrics"
	"github.com/feral-file/ff-ledger-indexer/internal/store"
)

const (
	DEFAULT_LANES                  = 16
	DEFAULT_LANE_QUEUE_SIZE        = 64
	DEFAULT_RETRY_INITIAL_INTERVAL = 200 * time.Millisecond
	DEFAULT_RETRY_MAX_ELAPSED      = 30 * time.Second
)

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	ConnectionName string
	Network        string
	MaxReconnects  int
	ReconnectWait  time.Duration
	AckWaitTimeout time.Duration
	MaxDeliver     int

	// Lanes is the number of single-worker lanes events are spread over by identity
	Lanes int
	// LaneQueueSize is the number of events a lane buffers before the consumer blocks
	LaneQueueSize int
	// RetryInitialInterval is the first backoff of a retried event
	RetryInitialInterval time.Duration
	// RetryMaxElapsed bounds the retries of an event before it is NAKed for redelivery
	RetryMaxElapsed time.Duration
}

// Subject returns the subject filter of the ledger events of a network
func Subject(network string) string {
	return fmt.Sprintf("ledger.%s.>", network)
}

// Bridge defines the interface for the event bridge
type Bridge interface {
	// Run consumes ledger events until the context is cancelled
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc      adapter.NatsConn
	js      adapter.JetStream
	manager lifecycle.Manager
	store   store.Store
	metrics *metrics.Metrics
	json    adapter.JSON
	clock   adapter.Clock
	config  Config

	lanes []pond.Pool

	cursorMu     sync.Mutex
	appliedBlock uint64
}

// NewBridge connects to NATS and creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	manager lifecycle.Manager,
	st store.Store,
	m *metrics.Metrics,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) (Bridge, error) {
	if cfg.Lanes <= 0 {
		cfg.Lanes = DEFAULT_LANES
	}
	if cfg.LaneQueueSize <= 0 {
		cfg.LaneQueueSize = DEFAULT_LANE_QUEUE_SIZE
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = DEFAULT_RETRY_INITIAL_INTERVAL
	}
	if cfg.RetryMaxElapsed <= 0 {
		cfg.RetryMaxElapsed = DEFAULT_RETRY_MAX_ELAPSED
	}

	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &bridge{
		nc:      nc,
		js:      js,
		manager: manager,
		store:   st,
		metrics: m,
		json:    jsonAdapter,
		clock:   clock,
		config:  cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting event bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName),
		zap.String("network", b.config.Network))

	applied, err := b.store.GetBlockCursor(ctx, b.config.Network)
	if err != nil {
		return fmt.Errorf("failed to load block cursor: %w", err)
	}
	b.appliedBlock = applied
	b.metrics.SetAppliedBlock(applied)
	logger.InfoCtx(ctx, "Loaded block cursor", zap.Uint64("blockNumber", applied))

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: Subject(b.config.Network),
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	// Events of one identity always land on the same single-worker lane so a spend
	// and its revival are applied in delivery order
	b.lanes = make([]pond.Pool, b.config.Lanes)
	for i := range b.lanes {
		b.lanes[i] = pond.NewPool(1, pond.WithQueueSize(b.config.LaneQueueSize), pond.WithContext(ctx))
	}
	defer func() {
		for _, lane := range b.lanes {
			lane.StopAndWait()
		}
		logger.InfoCtx(ctx, "Event lanes drained")
	}()

	sub, err := consumer.Consume(func(msg adapter.Message) {
		b.dispatch(ctx, msg)
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming messages", zap.Int("lanes", len(b.lanes)))

	<-ctx.Done()
	logger.InfoCtx(ctx, "Shutting down event bridge")
	return ctx.Err()
}

// dispatch decodes a message and hands it to the lane of its identity
func (b *bridge) dispatch(ctx context.Context, msg adapter.Message) {
	var event domain.LedgerEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal event"), zap.String("subject", msg.Subject()))
		b.terminate(ctx, msg, event.Type, fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err))
		return
	}

	if !event.Valid() {
		logger.WarnCtx(ctx, "Dropping invalid ledger event",
			zap.String("subject", msg.Subject()),
			zap.String("type", string(event.Type)))
		b.terminate(ctx, msg, event.Type, domain.ErrInvalidEvent)
		return
	}

	lane := b.lanes[laneOf(event.Key(), len(b.lanes))]
	lane.Submit(func() {
		b.process(ctx, msg, &event)
	})
}

// process applies one event, retrying while the document store is unavailable
func (b *bridge) process(ctx context.Context, msg adapter.Message, event *domain.LedgerEvent) {
	startedAt := b.clock.Now()

	var deliveries uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		deliveries = metadata.NumDelivered
	}

	retrier := backoff.NewExponentialBackOff()
	retrier.InitialInterval = b.config.RetryInitialInterval
	retrier.MaxElapsedTime = b.config.RetryMaxElapsed

	operation := func() error {
		err := b.apply(ctx, event)
		if err == nil || errors.Is(err, domain.ErrStoreUnavailable) {
			return err
		}
		return backoff.Permanent(err)
	}

	var attempts int
	notifyOnError := func(err error, next time.Duration) {
		attempts++
		b.metrics.RecordRetry(event.Type)
		logger.WarnCtx(ctx, "Applying ledger event failed, retrying",
			zap.String("key", event.Key()),
			zap.Int("attempt", attempts),
			zap.Duration("next_retry_in", next),
			zap.Error(err))
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(retrier, ctx), notifyOnError)
	b.metrics.RecordEvent(event.Type, err)

	switch {
	case err == nil:
		b.advanceCursor(ctx, event.BlockNumber)
		logger.InfoCtx(ctx, "Applied ledger event",
			zap.String("type", string(event.Type)),
			zap.String("key", event.Key()),
			zap.Uint64("blockNumber", event.BlockNumber),
			zap.Uint64("deliveryCount", deliveries),
			zap.Duration("took", b.clock.Since(startedAt)))
		if err := msg.Ack(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to ACK message"))
		}
	case errors.Is(err, domain.ErrStoreUnavailable) || ctx.Err() != nil:
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Ledger event left for redelivery"),
			zap.String("key", event.Key()),
			zap.Uint64("deliveryCount", deliveries))
		if err := msg.Nak(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to NAK message"))
		}
	default:
		// NotFound means an out-of-order or duplicate replay, InvalidQuery a malformed event.
		// Neither heals on redelivery.
		logger.ErrorCtx(ctx, err,
			zap.String("message", "Ledger event rejected"),
			zap.String("type", string(event.Type)),
			zap.String("key", event.Key()))
		if err := msg.Term(); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
		}
	}
}

// apply routes the event to the lifecycle manager
func (b *bridge) apply(ctx context.Context, event *domain.LedgerEvent) error {
	switch event.Type {
	case domain.EventTypeAssetIndexed:
		if err := b.manager.IndexAsset(ctx, *event.Asset); err != nil {
			return err
		}
		if event.MintOutput != nil {
			if err := b.store.SaveAssetMintOutput(ctx, *event.MintOutput); err != nil {
				if errors.Is(err, domain.ErrInvalidQuery) {
					return err
				}
				return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
			}
		}
		return nil
	case domain.EventTypeAssetRemoved:
		return b.manager.RemoveAsset(ctx, *event.Identity)
	case domain.EventTypeAssetRevived:
		return b.manager.RevivalAsset(ctx, *event.Identity)
	case domain.EventTypeParcelIndexed:
		return b.manager.IndexParcel(ctx, *event.Parcel)
	case domain.EventTypeParcelRetracted:
		return b.manager.RetractParcel(ctx, event.ParcelHash)
	default:
		return fmt.Errorf("%w: unknown event type %s", domain.ErrInvalidEvent, event.Type)
	}
}

// advanceCursor persists the highest block number applied so far
func (b *bridge) advanceCursor(ctx context.Context, blockNumber uint64) {
	b.cursorMu.Lock()
	defer b.cursorMu.Unlock()

	if blockNumber <= b.appliedBlock {
		return
	}
	if err := b.store.SetBlockCursor(ctx, b.config.Network, blockNumber); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to persist block cursor"), zap.Uint64("blockNumber", blockNumber))
		return
	}
	b.appliedBlock = blockNumber
	b.metrics.SetAppliedBlock(blockNumber)
}

func (b *bridge) terminate(ctx context.Context, msg adapter.Message, eventType domain.EventType, err error) {
	b.metrics.RecordEvent(eventType, err)
	if err := msg.Term(); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to terminate message"))
	}
}

// laneOf maps an identity key onto one of n lanes
func laneOf(key string, n int) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(n)) //nolint:gosec,G115
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
