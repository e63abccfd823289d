package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/bridge"
	"github.com/feral-file/ff-ledger-indexer/internal/config"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/lifecycle"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/metrics"
	"github.com/feral-file/ff-ledger-indexer/internal/notify"
	"github.com/feral-file/ff-ledger-indexer/internal/store"
	"github.com/feral-file/ff-ledger-indexer/internal/types"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventBridgeConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "ledger-event-bridge",
			"network": cfg.Chain.NetworkID,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Event Bridge")

	m := metrics.New(metrics.Config{Enabled: cfg.Metrics.Enabled})

	// Connect to the document store
	docStore, err := docstore.Open(ctx, docstore.MongoConfig{
		URI:                    cfg.DocStore.URI,
		Database:               cfg.DocStore.Database,
		ConnectTimeout:         cfg.DocStore.ConnectTimeout,
		ServerSelectionTimeout: cfg.DocStore.ServerSelectionTimeout,
		MaxPoolSize:            cfg.DocStore.MaxPoolSize,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to document store", zap.Error(err))
	}
	docStore = docstore.WithMetrics(docStore, m)
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := docStore.Close(closeCtx); err != nil {
			logger.Error(err, zap.String("component", "docstore"))
		}
	}()
	logger.InfoCtx(ctx, "Connected to document store", zap.String("database", cfg.DocStore.Database))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	var publisher notify.Publisher
	if cfg.Redis.URL != "" || cfg.Redis.Addr != "" {
		var redisClient adapter.RedisClient
		if cfg.Redis.URL != "" {
			redisClient, err = adapter.NewRedisClientFromURL(cfg.Redis.URL)
			if err != nil {
				logger.FatalCtx(ctx, "Failed to create Redis client", zap.Error(err))
			}
		} else {
			redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		}
		defer func() { _ = redisClient.Close() }()
		publisher = notify.NewRedisPublisher(redisClient, cfg.Redis.ChannelPrefix, jsonAdapter, clock)
		logger.InfoCtx(ctx, "Change notifications enabled", zap.String("channel_prefix", cfg.Redis.ChannelPrefix))
	}

	// Create bridge
	eventBridge, err := bridge.NewBridge(
		bridge.Config{
			URL:             cfg.NATS.URL,
			StreamName:      cfg.NATS.StreamName,
			ConsumerName:    cfg.NATS.ConsumerName,
			ConnectionName:  cfg.NATS.ConnectionName,
			Network:         cfg.Chain.NetworkID,
			MaxReconnects:   cfg.NATS.MaxReconnects,
			ReconnectWait:   cfg.NATS.ReconnectWait,
			AckWaitTimeout:  cfg.NATS.AckWait,
			MaxDeliver:      cfg.NATS.MaxDeliver,
			Lanes:           cfg.Worker.Lanes,
			LaneQueueSize:   cfg.Worker.QueueSize,
			RetryMaxElapsed: cfg.Worker.RetryMaxElapsed,
		},
		adapter.NewNatsJetStream(),
		lifecycle.NewManager(docStore, publisher),
		dataStore,
		m,
		jsonAdapter,
		clock,
	)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create event bridge", zap.Error(err))
	}
	defer eventBridge.Close()
	logger.InfoCtx(ctx, "Event bridge created",
		zap.String("url", types.SanitizeConnectionString(cfg.NATS.URL)),
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName))

	// Metrics endpoint
	var metricsServer *http.Server
	if m.IsEnabled() {
		metricsServer = m.NewServer(cfg.Metrics.Address)
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error(err, zap.String("component", "metrics"))
			}
		}()
		logger.InfoCtx(ctx, "Metrics server started", zap.String("address", cfg.Metrics.Address))
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Channel for bridge errors
	errCh := make(chan error, 1)
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := eventBridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "bridge"))
		cancel()
	}

	// Lanes drain before Run returns
	select {
	case <-done:
	case <-time.After(30 * time.Second):
		logger.Warn("Timed out waiting for event lanes to drain")
	}

	if metricsServer != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		_ = metricsServer.Shutdown(shutdownCtx)
	}

	logger.Info("Event Bridge stopped")
}
