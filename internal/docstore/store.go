package docstore

import (
	"context"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

//go:generate mockgen -source=store.go -destination=../mocks/docstore.go -package=mocks -mock_names=Store=MockDocumentStore

// Collection is the name of a document collection
type Collection string

const (
	CollectionAsset  Collection = "asset"
	CollectionParcel Collection = "parcel"
)

// SortField orders search results by a numeric field
type SortField struct {
	Field string
	Desc  bool
}

// SearchRequest describes a filtered, sorted and bounded search
type SearchRequest struct {
	Filter predicate.Predicate
	Sort   []SortField
	Skip   int64
	Limit  int64
}

// BucketSort selects the ordering of aggregation buckets
type BucketSort string

const (
	// BucketSortSumDesc orders buckets by their sum descending, ties by key ascending
	BucketSortSumDesc BucketSort = "sum_desc"
	// BucketSortKeyAsc orders buckets by their key ascending
	BucketSortKeyAsc BucketSort = "key_asc"
)

// AggregateRequest groups matching documents by a field and sums another
type AggregateRequest struct {
	Filter   predicate.Predicate
	GroupBy  string
	SumField string
	Sort     BucketSort
	Skip     int64
	Limit    int64
}

// Bucket is one group of an aggregation
type Bucket struct {
	Key   string
	Sum   decimal.Decimal
	Count int64
}

// Store defines the interface for document store operations.
// Every error returned wraps domain.ErrNotFound, domain.ErrStoreUnavailable or domain.ErrInvalidQuery
// when it belongs to one of those classes.
type Store interface {
	// Upsert creates the document or sets the given fields on the existing one
	Upsert(ctx context.Context, collection Collection, id string, fields any) error
	// Replace creates the document or replaces it entirely
	Replace(ctx context.Context, collection Collection, id string, doc any) error
	// PartialUpdate sets fields on an existing document, failing with domain.ErrNotFound when it is missing
	PartialUpdate(ctx context.Context, collection Collection, id string, fields map[string]any) error
	// Get retrieves a document by its id
	Get(ctx context.Context, collection Collection, id string) (bson.Raw, error)
	// Search returns the raw documents matching the request in sort order
	Search(ctx context.Context, collection Collection, req SearchRequest) ([]bson.Raw, error)
	// Aggregate returns the buckets matching the request in bucket order
	Aggregate(ctx context.Context, collection Collection, req AggregateRequest) ([]Bucket, error)
	// Count returns the number of documents matching the filter
	Count(ctx context.Context, collection Collection, filter predicate.Predicate) (int64, error)
	// EnsureIndexes creates the query indexes of every collection; existing indexes are kept
	EnsureIndexes(ctx context.Context) error
	// Ping checks the connection to the store
	Ping(ctx context.Context) error
	// Close releases the connection to the store
	Close(ctx context.Context) error
}
