package dto

import (
	"github.com/feral-file/ff-ledger-indexer/internal/confirmation"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// AssetResponse represents the asset descriptor of a UTXO
type AssetResponse struct {
	AssetType              string   `json:"assetType"`
	LockScriptHash         string   `json:"lockScriptHash"`
	Parameters             []string `json:"parameters"`
	Amount                 uint64   `json:"amount,string"`
	TransactionHash        string   `json:"transactionHash"`
	TransactionOutputIndex uint32   `json:"transactionOutputIndex"`
	Approver               *string  `json:"approver,omitempty"`
	Administrator          *string  `json:"administrator,omitempty"`
}

// UTXOResponse represents a single unspent output of an address
type UTXOResponse struct {
	Asset            AssetResponse `json:"asset"`
	BlockNumber      uint64        `json:"blockNumber"`
	ParcelIndex      uint32        `json:"parcelIndex"`
	TransactionIndex uint32        `json:"transactionIndex"`
	// Confirmation is "confirmed" or "unconfirmed" relative to the best block the query used
	Confirmation confirmation.Status `json:"confirmation"`
}

// UTXOListResponse represents a page of UTXOs.
// NextCursor is absent on the last page.
type UTXOListResponse struct {
	Items      []UTXOResponse `json:"items"`
	NextCursor *string        `json:"nextCursor,omitempty"`
}

// AssetBalanceResponse represents the aggregated balance of one asset type.
// Quantities are decimal strings since sums may exceed 2^53.
type AssetBalanceResponse struct {
	AssetType          string `json:"assetType"`
	TotalAssetQuantity string `json:"totalAssetQuantity"`
	UTXOQuantity       int64  `json:"utxoQuantity"`
}

// MintOutputResponse represents the mint transaction output of an asset type
type MintOutputResponse struct {
	TransactionHash string   `json:"transactionHash"`
	LockScriptHash  string   `json:"lockScriptHash"`
	Parameters      []string `json:"parameters"`
	Amount          uint64   `json:"amount,string"`
	Approver        *string  `json:"approver,omitempty"`
	Administrator   *string  `json:"administrator,omitempty"`
	AssetType       string   `json:"assetType"`
	Recipient       string   `json:"recipient"`
}

// MapUTXOToDTO maps a domain UTXO to its response, tagged against the window it was read with
func MapUTXOToDTO(u domain.UTXO, bestBlock, threshold uint64) UTXOResponse {
	return UTXOResponse{
		Asset:            mapAsset(u.Asset),
		BlockNumber:      u.BlockNumber,
		ParcelIndex:      u.ParcelIndex,
		TransactionIndex: u.TransactionIndex,
		Confirmation:     confirmation.Partition(bestBlock, threshold, u.BlockNumber),
	}
}

func mapAsset(a domain.Asset) AssetResponse {
	params := a.Parameters
	if params == nil {
		params = []string{}
	}
	return AssetResponse{
		AssetType:              a.AssetType,
		LockScriptHash:         a.LockScriptHash,
		Parameters:             params,
		Amount:                 a.Amount,
		TransactionHash:        a.TransactionHash,
		TransactionOutputIndex: a.TransactionOutputIndex,
		Approver:               a.Approver,
		Administrator:          a.Administrator,
	}
}

// MapAssetBalanceToDTO maps an aggregated balance to its response
func MapAssetBalanceToDTO(b domain.AssetBalance) AssetBalanceResponse {
	return AssetBalanceResponse{
		AssetType:          b.AssetType,
		TotalAssetQuantity: b.TotalAssetQuantity.String(),
		UTXOQuantity:       b.UTXOQuantity,
	}
}

// MapMintOutputToDTO maps a mint output to its response
func MapMintOutputToDTO(m domain.MintOutput) MintOutputResponse {
	params := m.Parameters
	if params == nil {
		params = []string{}
	}
	return MintOutputResponse{
		TransactionHash: m.TransactionHash,
		LockScriptHash:  m.LockScriptHash,
		Parameters:      params,
		Amount:          m.Amount,
		Approver:        m.Approver,
		Administrator:   m.Administrator,
		AssetType:       m.AssetType,
		Recipient:       m.Recipient,
	}
}
