package pagination

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// Cursor is the sort key tuple of the last record of a page
type Cursor []int64

// MaxCursor returns the first-page position for n descending sort keys
func MaxCursor(n int) Cursor {
	c := make(Cursor, n)
	for i := range c {
		c[i] = math.MaxInt64
	}
	return c
}

// NewCursor builds a cursor from optional sort key values.
// Missing values default to the maximum, so a partial position starts at the newest record within it.
// It returns nil when every value is missing.
func NewCursor(values ...*uint64) Cursor {
	present := false
	c := make(Cursor, len(values))
	for i, v := range values {
		switch {
		case v == nil:
			c[i] = math.MaxInt64
		case *v > math.MaxInt64:
			c[i] = math.MaxInt64
			present = true
		default:
			c[i] = int64(*v)
			present = true
		}
	}
	if !present {
		return nil
	}
	return c
}

// Encode encodes the cursor to an opaque base64 string
func (c Cursor) Encode() string {
	if len(c) == 0 {
		return ""
	}
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
}

// DecodeCursor decodes a base64 cursor string with the given number of sort keys.
// Returns nil if the cursor string is empty.
func DecodeCursor(cursor string, keys int) (Cursor, error) {
	if cursor == "" {
		return nil, nil
	}

	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cursor encoding: %v", domain.ErrInvalidQuery, err)
	}

	parts := strings.Split(string(decoded), ":")
	if len(parts) != keys {
		return nil, fmt.Errorf("%w: invalid cursor format: expected %d sort keys, got %d", domain.ErrInvalidQuery, keys, len(parts))
	}

	c := make(Cursor, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid sort key in cursor: %v", domain.ErrInvalidQuery, err)
		}
		c[i] = v
	}

	return c, nil
}
