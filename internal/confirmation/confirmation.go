// Package confirmation splits indexed records into a confirmed and an unconfirmed partition
// relative to the current best block.
package confirmation

import (
	"math"

	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

// FieldBlockNumber is the field the window applies to
const FieldBlockNumber = "blockNumber"

// Status is the confirmation status of a single record
type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusUnconfirmed Status = "unconfirmed"
)

// Frontier returns the highest confirmed block number, bestBlock - threshold.
// The result is negative when the threshold exceeds the best block.
func Frontier(bestBlock, threshold uint64) int64 {
	return clamp(bestBlock) - clamp(threshold)
}

// Resolve returns the range predicate selecting the confirmed or unconfirmed partition.
// A threshold larger than the best block is legal; the confirmed range then matches nothing.
func Resolve(bestBlock, threshold uint64, confirmed bool) predicate.Predicate {
	frontier := Frontier(bestBlock, threshold)
	if confirmed {
		return predicate.Range(FieldBlockNumber, predicate.Lte(frontier))
	}
	return predicate.Range(FieldBlockNumber, predicate.Gt(frontier))
}

// Partition classifies a block number the same way Resolve filters it
func Partition(bestBlock, threshold, blockNumber uint64) Status {
	if clamp(blockNumber) <= Frontier(bestBlock, threshold) {
		return StatusConfirmed
	}
	return StatusUnconfirmed
}

func clamp(n uint64) int64 {
	if n > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}
