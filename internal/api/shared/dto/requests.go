package dto

import (
	"errors"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// AssetIdentityRequest identifies the asset record targeted by an admin action
type AssetIdentityRequest struct {
	Address                string  `json:"address"`
	AssetType              string  `json:"assetType"`
	TransactionHash        string  `json:"transactionHash"`
	TransactionOutputIndex *uint32 `json:"transactionOutputIndex"`
}

// Validate validates the request
func (r *AssetIdentityRequest) Validate() error {
	if r.Address == "" {
		return errors.New("address is required")
	}
	if r.AssetType == "" {
		return errors.New("assetType is required")
	}
	if r.TransactionHash == "" {
		return errors.New("transactionHash is required")
	}
	if r.TransactionOutputIndex == nil {
		return errors.New("transactionOutputIndex is required")
	}
	return nil
}

// Identity converts the request into an asset identity
func (r *AssetIdentityRequest) Identity() domain.AssetIdentity {
	var index uint32
	if r.TransactionOutputIndex != nil {
		index = *r.TransactionOutputIndex
	}
	return domain.AssetIdentity{
		Address:                r.Address,
		AssetType:              r.AssetType,
		TransactionHash:        r.TransactionHash,
		TransactionOutputIndex: index,
	}
}
