package pagination

import (
	"fmt"
	"math"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// SkipOneBased converts a 1-based page number into a document offset.
// Pages below 1 are treated as the first page.
func SkipOneBased(page, size int64) (int64, error) {
	if page < 1 || size < 1 {
		return 0, nil
	}
	return skip(page-1, size)
}

// SkipZeroBased converts a 0-based page number into a document offset.
// Negative pages are treated as the first page.
func SkipZeroBased(page, size int64) (int64, error) {
	if page < 0 || size < 1 {
		return 0, nil
	}
	return skip(page, size)
}

// skip multiplies without wrapping; an offset beyond int64 is an invalid query
func skip(pages, size int64) (int64, error) {
	if pages > math.MaxInt64/size {
		return 0, fmt.Errorf("%w: page offset overflows: %d pages of %d", domain.ErrInvalidQuery, pages, size)
	}
	return pages * size, nil
}

// SizeOrDefault returns size, or def when size is not positive
func SizeOrDefault(size, def int64) int64 {
	if size < 1 {
		return def
	}
	return size
}
