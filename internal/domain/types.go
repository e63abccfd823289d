package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EventType represents the type of ledger event
type EventType string

const (
	EventTypeAssetIndexed    EventType = "asset_indexed"
	EventTypeAssetRemoved    EventType = "asset_removed"
	EventTypeAssetRevived    EventType = "asset_revived"
	EventTypeParcelIndexed   EventType = "parcel_indexed"
	EventTypeParcelRetracted EventType = "parcel_retracted"
)

// Asset is the asset descriptor embedded in every indexed asset record
type Asset struct {
	AssetType              string   `json:"assetType"`
	LockScriptHash         string   `json:"lockScriptHash"`
	Parameters             []string `json:"parameters"`
	Amount                 uint64   `json:"amount"`
	TransactionHash        string   `json:"transactionHash"`
	TransactionOutputIndex uint32   `json:"transactionOutputIndex"`
	Approver               *string  `json:"approver,omitempty"`
	Administrator          *string  `json:"administrator,omitempty"`
}

// AssetIdentity identifies a single UTXO-like output of an owner
type AssetIdentity struct {
	Address                string `json:"address"`
	AssetType              string `json:"assetType"`
	TransactionHash        string `json:"transactionHash"`
	TransactionOutputIndex uint32 `json:"transactionOutputIndex"`
}

// Key returns the document identifier of the asset record
// Format: {address}-{assetType}-{transactionHash}-{transactionOutputIndex}, with the hash normalized
func (i AssetIdentity) Key() string {
	return fmt.Sprintf("%s-%s-%s-%d", i.Address, i.AssetType, NormalizeHash(i.TransactionHash), i.TransactionOutputIndex)
}

// Validate checks that every component of the identity is present
func (i AssetIdentity) Validate() error {
	if i.Address == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidQuery)
	}
	if i.AssetType == "" {
		return fmt.Errorf("%w: asset type is required", ErrInvalidQuery)
	}
	if NormalizeHash(i.TransactionHash) == "" {
		return fmt.Errorf("%w: transaction hash is required", ErrInvalidQuery)
	}
	return nil
}

// AssetRecord is an indexed asset (one per UTXO)
type AssetRecord struct {
	Address          string `json:"address"`
	Asset            Asset  `json:"asset"`
	BlockNumber      uint64 `json:"blockNumber"`
	ParcelIndex      uint32 `json:"parcelIndex"`
	TransactionIndex uint32 `json:"transactionIndex"`
	IsRemoved        bool   `json:"isRemoved"`
}

// Identity returns the identity of the record
func (r AssetRecord) Identity() AssetIdentity {
	return AssetIdentity{
		Address:                r.Address,
		AssetType:              r.Asset.AssetType,
		TransactionHash:        r.Asset.TransactionHash,
		TransactionOutputIndex: r.Asset.TransactionOutputIndex,
	}
}

// UTXO is the projection of an asset record returned by UTXO listings
type UTXO struct {
	Asset            Asset  `json:"asset"`
	BlockNumber      uint64 `json:"blockNumber"`
	ParcelIndex      uint32 `json:"parcelIndex"`
	TransactionIndex uint32 `json:"transactionIndex"`
}

// AssetBalance is an aggregated balance bucket for one asset type
type AssetBalance struct {
	AssetType          string          `json:"assetType"`
	TotalAssetQuantity decimal.Decimal `json:"totalAssetQuantity"`
	UTXOQuantity       int64           `json:"utxoQuantity"`
}

// Action is the payload of a parcel
type Action struct {
	Action   string  `json:"action"`
	Receiver string  `json:"receiver,omitempty"`
	Amount   *uint64 `json:"amount,omitempty"`
}

// ParcelRecord is an indexed parcel
type ParcelRecord struct {
	Hash        string `json:"hash"`
	Signer      string `json:"signer"`
	Action      Action `json:"action"`
	BlockNumber uint64 `json:"blockNumber"`
	BlockHash   string `json:"blockHash"`
	ParcelIndex uint32 `json:"parcelIndex"`
	Nonce       uint64 `json:"nonce"`
	Fee         uint64 `json:"fee"`
	NetworkID   string `json:"networkId"`
	Timestamp   int64  `json:"timestamp"`
	IsRetracted bool   `json:"isRetracted"`
}

// MintOutput is the relational detail of an asset mint transaction
type MintOutput struct {
	TransactionHash string   `json:"transactionHash"`
	LockScriptHash  string   `json:"lockScriptHash"`
	Parameters      []string `json:"parameters"`
	Amount          uint64   `json:"amount"`
	Approver        *string  `json:"approver,omitempty"`
	Administrator   *string  `json:"administrator,omitempty"`
	AssetType       string   `json:"assetType"`
	Recipient       string   `json:"recipient"`
}

// LedgerEvent is a normalized chain event published to NATS by the chain follower
type LedgerEvent struct {
	Type        EventType      `json:"type"`
	Network     string         `json:"network"`
	BlockNumber uint64         `json:"blockNumber"`
	Asset       *AssetRecord   `json:"asset,omitempty"`      // asset_indexed
	MintOutput  *MintOutput    `json:"mintOutput,omitempty"` // asset_indexed, only for mint transactions
	Identity    *AssetIdentity `json:"identity,omitempty"`   // asset_removed, asset_revived
	Parcel      *ParcelRecord  `json:"parcel,omitempty"`     // parcel_indexed
	ParcelHash  string         `json:"parcelHash,omitempty"` // parcel_retracted
}

// Valid reports whether the event carries the payload its type requires
func (e *LedgerEvent) Valid() bool {
	switch e.Type {
	case EventTypeAssetIndexed:
		return e.Asset != nil && e.Asset.Identity().Validate() == nil
	case EventTypeAssetRemoved, EventTypeAssetRevived:
		return e.Identity != nil && e.Identity.Validate() == nil
	case EventTypeParcelIndexed:
		return e.Parcel != nil && NormalizeHash(e.Parcel.Hash) != ""
	case EventTypeParcelRetracted:
		return NormalizeHash(e.ParcelHash) != ""
	default:
		return false
	}
}

// Key returns the identity key the event mutates, built from normalized hashes
// so every spelling of a hash maps to the document the lifecycle manager writes.
// Events with the same key must be applied in order.
func (e *LedgerEvent) Key() string {
	switch e.Type {
	case EventTypeAssetIndexed:
		if e.Asset != nil {
			return "asset:" + e.Asset.Identity().Key()
		}
	case EventTypeAssetRemoved, EventTypeAssetRevived:
		if e.Identity != nil {
			return "asset:" + e.Identity.Key()
		}
	case EventTypeParcelIndexed:
		if e.Parcel != nil {
			return "parcel:" + NormalizeHash(e.Parcel.Hash)
		}
	case EventTypeParcelRetracted:
		return "parcel:" + NormalizeHash(e.ParcelHash)
	}
	return ""
}

// NormalizeHash lower-cases a hex hash and strips an optional 0x prefix
func NormalizeHash(hash string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hash)), "0x")
}
