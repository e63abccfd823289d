package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-ledger-indexer/internal/adapter"
	"github.com/feral-file/ff-ledger-indexer/internal/api/middleware"
	"github.com/feral-file/ff-ledger-indexer/internal/api/server"
	"github.com/feral-file/ff-ledger-indexer/internal/api/shared/executor"
	"github.com/feral-file/ff-ledger-indexer/internal/assets"
	"github.com/feral-file/ff-ledger-indexer/internal/block"
	"github.com/feral-file/ff-ledger-indexer/internal/config"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/lifecycle"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/metrics"
	"github.com/feral-file/ff-ledger-indexer/internal/notify"
	"github.com/feral-file/ff-ledger-indexer/internal/parcels"
	"github.com/feral-file/ff-ledger-indexer/internal/providers/chain"
	"github.com/feral-file/ff-ledger-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "ledger-indexer-api",
			"network": cfg.Chain.NetworkID,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Ledger Indexer API")

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
	if cfg.Database.ReadHost != "" {
		if err := store.UseReadReplicas(db, postgres.Open(cfg.Database.ReadDSN())); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err))
		}
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
		zap.Bool("read_replica", cfg.Database.ReadHost != ""),
	)
	dataStore := store.NewPGStore(db)

	// Connect to the chain node
	clock := adapter.NewClock()
	chainClient, err := chain.Dial(ctx, adapter.NewRPCDialer(), cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to chain node", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}
	defer chainClient.Close()

	bestBlock := block.NewBestBlockProvider(
		chain.NewBlockFetcher(chainClient),
		block.Config{
			TTL:         cfg.Chain.BlockHeadTTL,
			StaleWindow: cfg.Chain.BlockHeadStaleWindow,
		},
		clock,
	)

	// Redis backs change notifications and rate limiting; both are optional
	var (
		publisher notify.Publisher
		limiter   adapter.RedisRateLimiter
	)
	redisClient, err := connectRedis(cfg.Redis)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create Redis client", zap.Error(err))
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		if err := redisClient.Ping(ctx); err != nil {
			logger.WarnCtx(ctx, "Redis is not reachable, notifications and rate limiting will degrade", zap.Error(err))
		}
		publisher = notify.NewRedisPublisher(redisClient, cfg.Redis.ChannelPrefix, adapter.NewJSON(), clock)
		if cfg.RateLimit.Enabled {
			limiter = redisClient.NewRateLimiter()
		}
	} else {
		logger.WarnCtx(ctx, "Redis not configured, change notifications and rate limiting are disabled")
	}

	exec := executor.NewExecutor(
		executor.Config{
			Networks:         cfg.Chain.AddressNetworks,
			ConfirmThreshold: cfg.Chain.ConfirmThreshold,
		},
		executor.Dependencies{
			Assets:    assets.NewService(docStore),
			Parcels:   parcels.NewService(docStore),
			BestBlock: bestBlock,
			Chain:     chainClient,
			Store:     dataStore,
			DocStore:  docStore,
			Lifecycle: lifecycle.NewManager(docStore, publisher),
		},
	)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
		RateLimit: middleware.RateLimitConfig{
			KeyPrefix:         cfg.RateLimit.KeyPrefix,
			RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		},
	}

	srv := server.New(serverConfig, exec, m, limiter)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}

// connectRedis returns nil when Redis is not configured
func connectRedis(cfg config.RedisConfig) (adapter.RedisClient, error) {
	switch {
	case cfg.URL != "":
		return adapter.NewRedisClientFromURL(cfg.URL)
	case cfg.Addr != "":
		return adapter.NewRedisClient(cfg.Addr, cfg.Password, cfg.DB), nil
	default:
		return nil, nil
	}
}
