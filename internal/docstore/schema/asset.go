package schema

import (
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// Field paths of the asset collection
const (
	AssetFieldAddress          = "address"
	AssetFieldAssetType        = "asset.assetType"
	AssetFieldAmount           = "asset.amount"
	AssetFieldBlockNumber      = "blockNumber"
	AssetFieldParcelIndex      = "parcelIndex"
	AssetFieldTransactionIndex = "transactionIndex"
	AssetFieldIsRemoved        = "isRemoved"
)

// AssetDescriptor is the embedded asset of an asset document
type AssetDescriptor struct {
	AssetType              string          `bson:"assetType"`
	LockScriptHash         string          `bson:"lockScriptHash"`
	Parameters             []string        `bson:"parameters"`
	Amount                 bson.Decimal128 `bson:"amount"`
	TransactionHash        string          `bson:"transactionHash"`
	TransactionOutputIndex int64           `bson:"transactionOutputIndex"`
	Approver               *string         `bson:"approver,omitempty"`
	Administrator          *string         `bson:"administrator,omitempty"`
}

// Asset represents a document of the asset collection
type Asset struct {
	Address          string          `bson:"address"`
	Asset            AssetDescriptor `bson:"asset"`
	BlockNumber      int64           `bson:"blockNumber"`
	ParcelIndex      int64           `bson:"parcelIndex"`
	TransactionIndex int64           `bson:"transactionIndex"`
	IsRemoved        bool            `bson:"isRemoved"`
}

// NewAsset converts an asset record into its document form
func NewAsset(record domain.AssetRecord) (*Asset, error) {
	amount, err := AmountToDecimal128(record.Asset.Amount)
	if err != nil {
		return nil, err
	}

	parameters := record.Asset.Parameters
	if parameters == nil {
		parameters = []string{}
	}

	return &Asset{
		Address: record.Address,
		Asset: AssetDescriptor{
			AssetType:              record.Asset.AssetType,
			LockScriptHash:         record.Asset.LockScriptHash,
			Parameters:             parameters,
			Amount:                 amount,
			TransactionHash:        record.Asset.TransactionHash,
			TransactionOutputIndex: int64(record.Asset.TransactionOutputIndex),
			Approver:               record.Asset.Approver,
			Administrator:          record.Asset.Administrator,
		},
		BlockNumber:      int64(record.BlockNumber), //nolint:gosec,G115 // block numbers fit in int64
		ParcelIndex:      int64(record.ParcelIndex),
		TransactionIndex: int64(record.TransactionIndex),
		IsRemoved:        record.IsRemoved,
	}, nil
}

// ToDomain converts the document into an asset record
func (a *Asset) ToDomain() (domain.AssetRecord, error) {
	amount, err := Decimal128ToAmount(a.Asset.Amount)
	if err != nil {
		return domain.AssetRecord{}, err
	}

	return domain.AssetRecord{
		Address: a.Address,
		Asset: domain.Asset{
			AssetType:              a.Asset.AssetType,
			LockScriptHash:         a.Asset.LockScriptHash,
			Parameters:             a.Asset.Parameters,
			Amount:                 amount,
			TransactionHash:        a.Asset.TransactionHash,
			TransactionOutputIndex: uint32(a.Asset.TransactionOutputIndex), //nolint:gosec,G115
			Approver:               a.Asset.Approver,
			Administrator:          a.Asset.Administrator,
		},
		BlockNumber:      uint64(a.BlockNumber),      //nolint:gosec,G115
		ParcelIndex:      uint32(a.ParcelIndex),      //nolint:gosec,G115
		TransactionIndex: uint32(a.TransactionIndex), //nolint:gosec,G115
		IsRemoved:        a.IsRemoved,
	}, nil
}

// DecodeAsset decodes a raw asset document into an asset record
func DecodeAsset(raw bson.Raw) (domain.AssetRecord, error) {
	var doc Asset
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return domain.AssetRecord{}, fmt.Errorf("failed to decode asset document: %w", err)
	}
	return doc.ToDomain()
}

// AmountToDecimal128 converts an asset quantity into a Decimal128
func AmountToDecimal128(amount uint64) (bson.Decimal128, error) {
	d, err := bson.ParseDecimal128(strconv.FormatUint(amount, 10))
	if err != nil {
		return bson.Decimal128{}, fmt.Errorf("failed to convert amount %d: %w", amount, err)
	}
	return d, nil
}

// Decimal128ToAmount converts a stored Decimal128 back into an asset quantity
func Decimal128ToAmount(d bson.Decimal128) (uint64, error) {
	amount, err := strconv.ParseUint(d.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid stored amount %s: %w", d.String(), err)
	}
	return amount, nil
}
