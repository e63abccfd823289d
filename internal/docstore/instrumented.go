package docstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/metrics"
	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

type instrumentedStore struct {
	next    Store
	metrics *metrics.Metrics
}

// WithMetrics wraps a store so every call records its outcome and latency.
// The store is returned unchanged when metrics are disabled.
func WithMetrics(store Store, m *metrics.Metrics) Store {
	if !m.IsEnabled() {
		return store
	}
	return &instrumentedStore{next: store, metrics: m}
}

func (s *instrumentedStore) Upsert(ctx context.Context, collection Collection, id string, fields any) (err error) {
	defer s.observe("upsert", collection, time.Now(), &err)
	return s.next.Upsert(ctx, collection, id, fields)
}

func (s *instrumentedStore) Replace(ctx context.Context, collection Collection, id string, doc any) (err error) {
	defer s.observe("replace", collection, time.Now(), &err)
	return s.next.Replace(ctx, collection, id, doc)
}

func (s *instrumentedStore) PartialUpdate(ctx context.Context, collection Collection, id string, fields map[string]any) (err error) {
	defer s.observe("partial_update", collection, time.Now(), &err)
	return s.next.PartialUpdate(ctx, collection, id, fields)
}

func (s *instrumentedStore) Get(ctx context.Context, collection Collection, id string) (raw bson.Raw, err error) {
	defer s.observe("get", collection, time.Now(), &err)
	return s.next.Get(ctx, collection, id)
}

func (s *instrumentedStore) Search(ctx context.Context, collection Collection, req SearchRequest) (docs []bson.Raw, err error) {
	defer s.observe("search", collection, time.Now(), &err)
	return s.next.Search(ctx, collection, req)
}

func (s *instrumentedStore) Aggregate(ctx context.Context, collection Collection, req AggregateRequest) (buckets []Bucket, err error) {
	defer s.observe("aggregate", collection, time.Now(), &err)
	return s.next.Aggregate(ctx, collection, req)
}

func (s *instrumentedStore) Count(ctx context.Context, collection Collection, filter predicate.Predicate) (n int64, err error) {
	defer s.observe("count", collection, time.Now(), &err)
	return s.next.Count(ctx, collection, filter)
}

func (s *instrumentedStore) EnsureIndexes(ctx context.Context) (err error) {
	defer s.observe("ensure_indexes", "", time.Now(), &err)
	return s.next.EnsureIndexes(ctx)
}

func (s *instrumentedStore) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumentedStore) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}

func (s *instrumentedStore) observe(op string, collection Collection, startedAt time.Time, err *error) {
	s.metrics.ObserveStoreOperation(op, string(collection), startedAt, *err)
}
