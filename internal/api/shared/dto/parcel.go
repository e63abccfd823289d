package dto

import (
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// ActionResponse represents the action carried by a parcel
type ActionResponse struct {
	Action   string  `json:"action"`
	Receiver string  `json:"receiver,omitempty"`
	Amount   *uint64 `json:"amount,omitempty,string"`
}

// ParcelResponse represents a parcel
type ParcelResponse struct {
	Hash        string         `json:"hash"`
	Signer      string         `json:"signer"`
	Action      ActionResponse `json:"action"`
	BlockNumber uint64         `json:"blockNumber"`
	BlockHash   string         `json:"blockHash"`
	ParcelIndex uint32         `json:"parcelIndex"`
	Nonce       uint64         `json:"nonce"`
	Fee         uint64         `json:"fee,string"`
	NetworkID   string         `json:"networkId"`
	Timestamp   int64          `json:"timestamp"`
}

// ParcelListResponse represents a page of parcels.
// NextCursor is absent on the last page.
type ParcelListResponse struct {
	Items      []ParcelResponse `json:"items"`
	NextCursor *string          `json:"nextCursor,omitempty"`
}

// MapParcelToDTO maps a parcel record to its response
func MapParcelToDTO(p domain.ParcelRecord) ParcelResponse {
	return ParcelResponse{
		Hash:   p.Hash,
		Signer: p.Signer,
		Action: ActionResponse{
			Action:   p.Action.Action,
			Receiver: p.Action.Receiver,
			Amount:   p.Action.Amount,
		},
		BlockNumber: p.BlockNumber,
		BlockHash:   p.BlockHash,
		ParcelIndex: p.ParcelIndex,
		Nonce:       p.Nonce,
		Fee:         p.Fee,
		NetworkID:   p.NetworkID,
		Timestamp:   p.Timestamp,
	}
}

// MapParcelsToDTO maps parcel records to responses, never returning nil
func MapParcelsToDTO(records []domain.ParcelRecord) []ParcelResponse {
	items := make([]ParcelResponse, 0, len(records))
	for _, r := range records {
		items = append(items, MapParcelToDTO(r))
	}
	return items
}
