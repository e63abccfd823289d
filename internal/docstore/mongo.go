package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
	"go.uber.org/zap"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/logger"
	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
	"github.com/feral-file/ff-ledger-indexer/internal/types"
)

const defaultDatabase = "ledger"

// bucket document field names produced by the aggregation pipeline
const (
	bucketKeyField   = "_id"
	bucketTotalField = "total"
	bucketCountField = "count"
)

// MongoConfig holds the MongoDB connection settings
type MongoConfig struct {
	URI                    string
	Database               string
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	MaxPoolSize            uint64
}

type mongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore connects to MongoDB and ensures the indexes the query shapes rely on.
// Writes use majority write concern and reads go to the primary so a caller always reads its own writes.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (Store, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetWriteConcern(writeconcern.Majority()).
		SetReadPreference(readpref.Primary())
	if cfg.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ServerSelectionTimeout > 0 {
		clientOpts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to mongodb: %v", domain.ErrStoreUnavailable, err)
	}

	dbName := cfg.Database
	if dbName == "" {
		dbName = defaultDatabase
		if cs, err := connstring.ParseAndValidate(cfg.URI); err == nil && cs.Database != "" {
			dbName = cs.Database
		}
	}

	s := &mongoStore{
		client: client,
		db:     client.Database(dbName),
	}

	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.InfoCtx(ctx, "Connected to document store",
		zap.String("uri", types.SanitizeConnectionString(cfg.URI)),
		zap.String("database", dbName))

	return s, nil
}

// EnsureIndexes creates the indexes of the asset and parcel collections
func (s *mongoStore) EnsureIndexes(ctx context.Context) error {
	indexes := map[Collection][]mongo.IndexModel{
		CollectionAsset: {
			{
				Keys: bson.D{
					{Key: "address", Value: 1},
					{Key: "asset.assetType", Value: 1},
					{Key: "isRemoved", Value: 1},
					{Key: "blockNumber", Value: -1},
				},
			},
			{
				Keys: bson.D{
					{Key: "blockNumber", Value: -1},
					{Key: "parcelIndex", Value: -1},
					{Key: "transactionIndex", Value: -1},
				},
			},
		},
		CollectionParcel: {
			{
				Keys: bson.D{
					{Key: "blockNumber", Value: -1},
					{Key: "parcelIndex", Value: -1},
				},
			},
			{Keys: bson.D{{Key: "signer", Value: 1}}},
			{Keys: bson.D{{Key: "action.receiver", Value: 1}}},
			{Keys: bson.D{{Key: "isRetracted", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := s.db.Collection(string(collection)).Indexes().CreateMany(ctx, models); err != nil {
			return classifyError("create indexes on", collection, err)
		}
	}

	return nil
}

func (s *mongoStore) Upsert(ctx context.Context, collection Collection, id string, fields any) error {
	if id == "" {
		return fmt.Errorf("%w: upsert requires a document id", domain.ErrInvalidQuery)
	}

	_, err := s.db.Collection(string(collection)).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: fields}},
		options.UpdateOne().SetUpsert(true))
	return classifyError("upsert", collection, err)
}

func (s *mongoStore) Replace(ctx context.Context, collection Collection, id string, doc any) error {
	if id == "" {
		return fmt.Errorf("%w: replace requires a document id", domain.ErrInvalidQuery)
	}

	_, err := s.db.Collection(string(collection)).ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		doc,
		options.Replace().SetUpsert(true))
	return classifyError("replace", collection, err)
}

func (s *mongoStore) PartialUpdate(ctx context.Context, collection Collection, id string, fields map[string]any) error {
	if id == "" {
		return fmt.Errorf("%w: partial update requires a document id", domain.ErrInvalidQuery)
	}
	if len(fields) == 0 {
		return fmt.Errorf("%w: partial update requires at least one field", domain.ErrInvalidQuery)
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	result, err := s.db.Collection(string(collection)).UpdateOne(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return classifyError("update", collection, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: %s %s", domain.ErrNotFound, collection, id)
	}

	return nil
}

func (s *mongoStore) Get(ctx context.Context, collection Collection, id string) (bson.Raw, error) {
	raw, err := s.db.Collection(string(collection)).FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Raw()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s %s", domain.ErrNotFound, collection, id)
		}
		return nil, classifyError("get", collection, err)
	}
	return raw, nil
}

func (s *mongoStore) Search(ctx context.Context, collection Collection, req SearchRequest) ([]bson.Raw, error) {
	filter, err := predicate.ToBSON(req.Filter)
	if err != nil {
		return nil, err
	}
	if req.Skip < 0 || req.Limit < 0 {
		return nil, fmt.Errorf("%w: negative skip or limit", domain.ErrInvalidQuery)
	}

	opts := options.Find()
	if len(req.Sort) > 0 {
		opts.SetSort(sortDocument(req.Sort))
	}
	if req.Skip > 0 {
		opts.SetSkip(req.Skip)
	}
	if req.Limit > 0 {
		opts.SetLimit(req.Limit)
	}

	cur, err := s.db.Collection(string(collection)).Find(ctx, filter, opts)
	if err != nil {
		return nil, classifyError("search", collection, err)
	}
	defer func() { _ = cur.Close(context.Background()) }()

	var docs []bson.Raw
	for cur.Next(ctx) {
		doc := make(bson.Raw, len(cur.Current))
		copy(doc, cur.Current)
		docs = append(docs, doc)
	}
	if err := cur.Err(); err != nil {
		return nil, classifyError("search", collection, err)
	}

	return docs, nil
}

func (s *mongoStore) Aggregate(ctx context.Context, collection Collection, req AggregateRequest) ([]Bucket, error) {
	pipeline, err := buildAggregatePipeline(req)
	if err != nil {
		return nil, err
	}

	cur, err := s.db.Collection(string(collection)).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, classifyError("aggregate", collection, err)
	}
	defer func() { _ = cur.Close(context.Background()) }()

	var buckets []Bucket
	for cur.Next(ctx) {
		bucket, err := decodeBucket(cur.Current)
		if err != nil {
			return nil, err
		}
		buckets = append(buckets, bucket)
	}
	if err := cur.Err(); err != nil {
		return nil, classifyError("aggregate", collection, err)
	}

	return buckets, nil
}

func (s *mongoStore) Count(ctx context.Context, collection Collection, filter predicate.Predicate) (int64, error) {
	f, err := predicate.ToBSON(filter)
	if err != nil {
		return 0, err
	}

	n, err := s.db.Collection(string(collection)).CountDocuments(ctx, f)
	if err != nil {
		return 0, classifyError("count", collection, err)
	}
	return n, nil
}

func (s *mongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: ping: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func sortDocument(fields []SortField) bson.D {
	sort := make(bson.D, 0, len(fields))
	for _, f := range fields {
		dir := 1
		if f.Desc {
			dir = -1
		}
		sort = append(sort, bson.E{Key: f.Field, Value: dir})
	}
	return sort
}

// buildAggregatePipeline builds $match, $group, $sort, $skip and $limit stages.
// Sorting happens before skip and limit so buckets are paginated in their final order.
func buildAggregatePipeline(req AggregateRequest) (bson.A, error) {
	if req.GroupBy == "" || req.SumField == "" {
		return nil, fmt.Errorf("%w: aggregation requires group and sum fields", domain.ErrInvalidQuery)
	}
	if req.Skip < 0 || req.Limit < 0 {
		return nil, fmt.Errorf("%w: negative skip or limit", domain.ErrInvalidQuery)
	}

	match, err := predicate.ToBSON(req.Filter)
	if err != nil {
		return nil, err
	}

	var sort bson.D
	switch req.Sort {
	case BucketSortSumDesc, "":
		sort = bson.D{{Key: bucketTotalField, Value: -1}, {Key: bucketKeyField, Value: 1}}
	case BucketSortKeyAsc:
		sort = bson.D{{Key: bucketKeyField, Value: 1}}
	default:
		return nil, fmt.Errorf("%w: unknown bucket sort %q", domain.ErrInvalidQuery, req.Sort)
	}

	pipeline := bson.A{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: bucketKeyField, Value: "$" + req.GroupBy},
			{Key: bucketTotalField, Value: bson.D{{Key: "$sum", Value: "$" + req.SumField}}},
			{Key: bucketCountField, Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: sort}},
	}
	if req.Skip > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$skip", Value: req.Skip}})
	}
	if req.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: req.Limit}})
	}

	return pipeline, nil
}

func decodeBucket(raw bson.Raw) (Bucket, error) {
	var bucket Bucket

	key, err := raw.LookupErr(bucketKeyField)
	if err != nil {
		return bucket, fmt.Errorf("bucket without key: %w", err)
	}
	if k, ok := key.StringValueOK(); ok {
		bucket.Key = k
	} else {
		bucket.Key = key.String()
	}

	total, err := raw.LookupErr(bucketTotalField)
	if err != nil {
		return bucket, fmt.Errorf("bucket %s without total: %w", bucket.Key, err)
	}
	if bucket.Sum, err = numericToDecimal(total); err != nil {
		return bucket, fmt.Errorf("bucket %s: %w", bucket.Key, err)
	}

	count, err := raw.LookupErr(bucketCountField)
	if err != nil {
		return bucket, fmt.Errorf("bucket %s without count: %w", bucket.Key, err)
	}
	if n, ok := count.AsInt64OK(); ok {
		bucket.Count = n
	} else {
		return bucket, fmt.Errorf("bucket %s: non-integer count %s", bucket.Key, count.Type)
	}

	return bucket, nil
}

func numericToDecimal(v bson.RawValue) (decimal.Decimal, error) {
	switch v.Type {
	case bson.TypeDecimal128:
		return decimal.NewFromString(v.Decimal128().String())
	case bson.TypeInt32:
		return decimal.NewFromInt32(v.Int32()), nil
	case bson.TypeInt64:
		return decimal.NewFromInt(v.Int64()), nil
	case bson.TypeDouble:
		return decimal.NewFromFloat(v.Double()), nil
	default:
		return decimal.Zero, fmt.Errorf("non-numeric total of type %s", v.Type)
	}
}
