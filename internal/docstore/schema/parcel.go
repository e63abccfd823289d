package schema

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// Field paths of the parcel collection
const (
	ParcelFieldHash        = "hash"
	ParcelFieldSigner      = "signer"
	ParcelFieldReceiver    = "action.receiver"
	ParcelFieldBlockNumber = "blockNumber"
	ParcelFieldParcelIndex = "parcelIndex"
	ParcelFieldIsRetracted = "isRetracted"
)

// Action is the embedded action of a parcel document
type Action struct {
	Action   string           `bson:"action"`
	Receiver string           `bson:"receiver,omitempty"`
	Amount   *bson.Decimal128 `bson:"amount,omitempty"`
}

// Parcel represents a document of the parcel collection.
// Nonce, fee and amount span the full uint64 range and are stored as Decimal128 like asset amounts.
type Parcel struct {
	Hash        string          `bson:"hash"`
	Signer      string          `bson:"signer"`
	Action      Action          `bson:"action"`
	BlockNumber int64           `bson:"blockNumber"`
	BlockHash   string          `bson:"blockHash"`
	ParcelIndex int64           `bson:"parcelIndex"`
	Nonce       bson.Decimal128 `bson:"nonce"`
	Fee         bson.Decimal128 `bson:"fee"`
	NetworkID   string          `bson:"networkId"`
	Timestamp   int64           `bson:"timestamp"`
	IsRetracted bool            `bson:"isRetracted"`
}

// NewParcel converts a parcel record into its document form
func NewParcel(record domain.ParcelRecord) (*Parcel, error) {
	if record.BlockNumber > math.MaxInt64 {
		return nil, fmt.Errorf("block number %d out of range", record.BlockNumber)
	}

	var amount *bson.Decimal128
	if record.Action.Amount != nil {
		v, err := AmountToDecimal128(*record.Action.Amount)
		if err != nil {
			return nil, err
		}
		amount = &v
	}

	nonce, err := AmountToDecimal128(record.Nonce)
	if err != nil {
		return nil, err
	}
	fee, err := AmountToDecimal128(record.Fee)
	if err != nil {
		return nil, err
	}

	return &Parcel{
		Hash:   record.Hash,
		Signer: record.Signer,
		Action: Action{
			Action:   record.Action.Action,
			Receiver: record.Action.Receiver,
			Amount:   amount,
		},
		BlockNumber: int64(record.BlockNumber),
		BlockHash:   record.BlockHash,
		ParcelIndex: int64(record.ParcelIndex),
		Nonce:       nonce,
		Fee:         fee,
		NetworkID:   record.NetworkID,
		Timestamp:   record.Timestamp,
		IsRetracted: record.IsRetracted,
	}, nil
}

// ToDomain converts the document into a parcel record
func (p *Parcel) ToDomain() (domain.ParcelRecord, error) {
	var amount *uint64
	if p.Action.Amount != nil {
		v, err := Decimal128ToAmount(*p.Action.Amount)
		if err != nil {
			return domain.ParcelRecord{}, err
		}
		amount = &v
	}

	nonce, err := Decimal128ToAmount(p.Nonce)
	if err != nil {
		return domain.ParcelRecord{}, err
	}
	fee, err := Decimal128ToAmount(p.Fee)
	if err != nil {
		return domain.ParcelRecord{}, err
	}

	return domain.ParcelRecord{
		Hash:   p.Hash,
		Signer: p.Signer,
		Action: domain.Action{
			Action:   p.Action.Action,
			Receiver: p.Action.Receiver,
			Amount:   amount,
		},
		BlockNumber: uint64(p.BlockNumber), //nolint:gosec,G115
		BlockHash:   p.BlockHash,
		ParcelIndex: uint32(p.ParcelIndex), //nolint:gosec,G115
		Nonce:       nonce,
		Fee:         fee,
		NetworkID:   p.NetworkID,
		Timestamp:   p.Timestamp,
		IsRetracted: p.IsRetracted,
	}, nil
}

// DecodeParcel decodes a raw parcel document into a parcel record
func DecodeParcel(raw bson.Raw) (domain.ParcelRecord, error) {
	var doc Parcel
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return domain.ParcelRecord{}, fmt.Errorf("failed to decode parcel document: %w", err)
	}
	return doc.ToDomain()
}
