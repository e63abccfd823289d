package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/topology"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// Server error codes that indicate a malformed query rather than a store failure
var invalidQueryCodes = map[int32]bool{
	2:  true, // BadValue
	9:  true, // FailedToParse
	14: true, // TypeMismatch
}

// classifyError maps a driver error into the domain error taxonomy
func classifyError(op string, collection Collection, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidQuery),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrStoreUnavailable):
		return err
	case isUnavailable(err):
		return fmt.Errorf("%w: %s %s: %v", domain.ErrStoreUnavailable, op, collection, err)
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && invalidQueryCodes[cmdErr.Code] {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrInvalidQuery, op, collection, err)
	}

	return fmt.Errorf("failed to %s %s: %w", op, collection, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		mongo.IsTimeout(err) ||
		mongo.IsNetworkError(err) {
		return true
	}

	var selErr topology.ServerSelectionError
	if errors.As(err, &selErr) {
		return true
	}

	var labeled mongo.LabeledError
	if errors.As(err, &labeled) {
		return labeled.HasErrorLabel("RetryableWriteError") || labeled.HasErrorLabel("TransientTransactionError")
	}

	return false
}
