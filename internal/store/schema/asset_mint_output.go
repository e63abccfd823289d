package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// AssetMintOutput represents the asset_mint_outputs table - the output of an asset mint transaction
type AssetMintOutput struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TransactionHash is the hash of the mint transaction
	TransactionHash string `gorm:"column:transaction_hash;not null;uniqueIndex;type:text"`
	// LockScriptHash is the hash of the lock script guarding the minted output
	LockScriptHash string `gorm:"column:lock_script_hash;not null;type:text"`
	// Parameters holds the lock script parameters as a JSON array of hex strings
	Parameters datatypes.JSON `gorm:"column:parameters;type:jsonb;not null;default:'[]'"`
	// Amount is the minted quantity
	Amount decimal.Decimal `gorm:"column:amount;type:numeric(20,0);not null"`
	// Approver is the optional approver of the asset
	Approver *string `gorm:"column:approver;type:text"`
	// Administrator is the optional administrator of the asset
	Administrator *string `gorm:"column:administrator;type:text"`
	// AssetType is the asset type created by the mint
	AssetType string `gorm:"column:asset_type;not null;index;type:text"`
	// Recipient is the address receiving the minted output
	Recipient string `gorm:"column:recipient;not null;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AssetMintOutput model
func (AssetMintOutput) TableName() string {
	return "asset_mint_outputs"
}
