package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables of the store
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&schema.AssetMintOutput{}, &schema.KeyValueStore{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// UseReadReplicas routes reads to the given replicas through dbresolver.
// Writes and explicit dbresolver.Write clauses keep using the primary.
func UseReadReplicas(db *gorm.DB, replicas ...gorm.Dialector) error {
	if len(replicas) == 0 {
		return nil
	}
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	}))
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// SaveAssetMintOutput inserts or updates the mint output keyed by transaction hash
func (s *pgStore) SaveAssetMintOutput(ctx context.Context, output domain.MintOutput) error {
	if output.TransactionHash == "" {
		return fmt.Errorf("%w: transaction hash is required", domain.ErrInvalidQuery)
	}

	parameters := output.Parameters
	if parameters == nil {
		parameters = []string{}
	}
	rawParameters, err := json.Marshal(parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameters: %w", err)
	}

	row := schema.AssetMintOutput{
		TransactionHash: domain.NormalizeHash(output.TransactionHash),
		LockScriptHash:  output.LockScriptHash,
		Parameters:      datatypes.JSON(rawParameters),
		Amount:          decimal.NewFromUint64(output.Amount),
		Approver:        output.Approver,
		Administrator:   output.Administrator,
		AssetType:       output.AssetType,
		Recipient:       output.Recipient,
	}

	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "transaction_hash"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"lock_script_hash": row.LockScriptHash,
			"parameters":       row.Parameters,
			"amount":           row.Amount,
			"approver":         row.Approver,
			"administrator":    row.Administrator,
			"asset_type":       row.AssetType,
			"recipient":        row.Recipient,
			"updated_at":       gorm.Expr("now()"),
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save asset mint output: %w", err)
	}

	return nil
}

// GetAssetMintOutputsByAssetType retrieves the mint outputs of an asset type, oldest first
func (s *pgStore) GetAssetMintOutputsByAssetType(ctx context.Context, assetType string) ([]domain.MintOutput, error) {
	var rows []schema.AssetMintOutput
	err := s.db.WithContext(ctx).
		Where("asset_type = ?", assetType).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset mint outputs: %w", err)
	}

	outputs := make([]domain.MintOutput, 0, len(rows))
	for _, row := range rows {
		output, err := toMintOutput(row)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	return outputs, nil
}

func toMintOutput(row schema.AssetMintOutput) (domain.MintOutput, error) {
	var parameters []string
	if len(row.Parameters) > 0 {
		if err := json.Unmarshal(row.Parameters, &parameters); err != nil {
			return domain.MintOutput{}, fmt.Errorf("invalid parameters of mint output %s: %w", row.TransactionHash, err)
		}
	}

	amount, err := strconv.ParseUint(row.Amount.String(), 10, 64)
	if err != nil {
		return domain.MintOutput{}, fmt.Errorf("invalid amount of mint output %s: %w", row.TransactionHash, err)
	}

	return domain.MintOutput{
		TransactionHash: row.TransactionHash,
		LockScriptHash:  row.LockScriptHash,
		Parameters:      parameters,
		Amount:          amount,
		Approver:        row.Approver,
		Administrator:   row.Administrator,
		AssetType:       row.AssetType,
		Recipient:       row.Recipient,
	}, nil
}

func blockCursorKey(network string) string {
	return fmt.Sprintf("block_cursor:%s", network)
}

// GetBlockCursor retrieves the last applied block number for a network.
// It returns 0 when no cursor exists.
func (s *pgStore) GetBlockCursor(ctx context.Context, network string) (uint64, error) {
	key := blockCursorKey(network)

	query := func(db *gorm.DB) (*schema.KeyValueStore, error) {
		var kv schema.KeyValueStore
		err := db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
		if err != nil {
			return nil, err
		}
		return &kv, nil
	}

	kv, err := query(s.db)
	if errors.Is(err, gorm.ErrRecordNotFound) && hasDBResolver(s.db) {
		// Replica can lag behind primary; retry on primary before returning 0.
		kv, err = query(s.db.Clauses(dbresolver.Write))
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last applied block number for a network
func (s *pgStore) SetBlockCursor(ctx context.Context, network string, blockNumber uint64) error {
	kv := schema.KeyValueStore{
		Key:   blockCursorKey(network),
		Value: strconv.FormatUint(blockNumber, 10),
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}
