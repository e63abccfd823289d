package domain

import "errors"

var (
	// ErrNotFound is returned when a partial update targets an identity absent from the store
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable is returned on transient connectivity or timeout failures of the document store.
	// Callers may retry.
	ErrStoreUnavailable = errors.New("document store unavailable")

	// ErrInvalidQuery is returned when a filter, sort or identity cannot be built
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidEvent is returned when a ledger event is malformed
	ErrInvalidEvent = errors.New("invalid ledger event")
)
