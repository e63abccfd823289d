// Package parcels serves queries over indexed parcel records.
package parcels

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/docstore/schema"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/pagination"
	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

// SortKeys is the descending sort key tuple of parcel listings
var SortKeys = []string{
	schema.ParcelFieldBlockNumber,
	schema.ParcelFieldParcelIndex,
}

// Page is one page of a cursor-paginated parcel listing
type Page struct {
	Items []domain.ParcelRecord
	Next  pagination.Cursor
}

// Service answers parcel queries. Retracted parcels are excluded from every live view.
//
//go:generate mockgen -source=service.go -destination=../mocks/parcels_service.go -package=mocks -mock_names=Service=MockParcelService
type Service interface {
	// GetParcel returns the live parcel with the hash, nil when absent or retracted
	GetParcel(ctx context.Context, hash string) (*domain.ParcelRecord, error)

	// GetParcelIncludingRetracted returns the parcel with the hash regardless of retraction
	GetParcelIncludingRetracted(ctx context.Context, hash string) (*domain.ParcelRecord, error)

	// ListParcels returns live parcels newest first
	ListParcels(ctx context.Context, after pagination.Cursor, size int64) (*Page, error)

	// ListParcelsByAddress returns live parcels signed by or sent to the address, using a 1-based page
	ListParcelsByAddress(ctx context.Context, address string, page, size int64) ([]domain.ParcelRecord, error)

	// CountParcels counts live parcels
	CountParcels(ctx context.Context) (int64, error)

	// CountParcelsByAddress counts live parcels signed by or sent to the address
	CountParcelsByAddress(ctx context.Context, address string) (int64, error)
}

type service struct {
	store docstore.Store
	pages *pagination.Engine
}

// NewService creates a parcel query service over the document store
func NewService(store docstore.Store) Service {
	return &service{
		store: store,
		pages: pagination.NewEngine(store),
	}
}

func live() predicate.Predicate {
	return predicate.Term(schema.ParcelFieldIsRetracted, false)
}

func involving(address string) predicate.Predicate {
	return predicate.Or(
		predicate.Term(schema.ParcelFieldSigner, address),
		predicate.Term(schema.ParcelFieldReceiver, address),
	)
}

func (s *service) GetParcel(ctx context.Context, hash string) (*domain.ParcelRecord, error) {
	hash = domain.NormalizeHash(hash)
	if hash == "" {
		return nil, fmt.Errorf("%w: parcel hash is required", domain.ErrInvalidQuery)
	}

	docs, err := s.store.Search(ctx, docstore.CollectionParcel, docstore.SearchRequest{
		Filter: predicate.And(predicate.Term(schema.ParcelFieldHash, hash), live()),
		Limit:  1,
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	record, err := schema.DecodeParcel(docs[0])
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *service) GetParcelIncludingRetracted(ctx context.Context, hash string) (*domain.ParcelRecord, error) {
	hash = domain.NormalizeHash(hash)
	if hash == "" {
		return nil, fmt.Errorf("%w: parcel hash is required", domain.ErrInvalidQuery)
	}

	raw, err := s.store.Get(ctx, docstore.CollectionParcel, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	record, err := schema.DecodeParcel(raw)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *service) ListParcels(ctx context.Context, after pagination.Cursor, size int64) (*Page, error) {
	page, err := s.pages.Page(ctx, pagination.Request{
		Collection: docstore.CollectionParcel,
		Filter:     live(),
		SortKeys:   SortKeys,
		After:      after,
		Size:       pagination.SizeOrDefault(size, domain.DEFAULT_LIST_PAGE_SIZE),
	})
	if err != nil {
		return nil, err
	}

	items, err := decodeAll(page.Docs)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Next: page.Next}, nil
}

func (s *service) ListParcelsByAddress(ctx context.Context, address string, page, size int64) ([]domain.ParcelRecord, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrInvalidQuery)
	}

	size = pagination.SizeOrDefault(size, domain.DEFAULT_ADDRESS_PARCEL_PAGE_SIZE)
	skip, err := pagination.SkipOneBased(page, size)
	if err != nil {
		return nil, err
	}

	docs, err := s.store.Search(ctx, docstore.CollectionParcel, docstore.SearchRequest{
		Filter: predicate.And(involving(address), live()),
		Sort: []docstore.SortField{
			{Field: schema.ParcelFieldBlockNumber, Desc: true},
			{Field: schema.ParcelFieldParcelIndex, Desc: true},
		},
		Skip:  skip,
		Limit: size,
	})
	if err != nil {
		return nil, err
	}

	return decodeAll(docs)
}

func (s *service) CountParcels(ctx context.Context) (int64, error) {
	return s.store.Count(ctx, docstore.CollectionParcel, live())
}

func (s *service) CountParcelsByAddress(ctx context.Context, address string) (int64, error) {
	if address == "" {
		return 0, fmt.Errorf("%w: address is required", domain.ErrInvalidQuery)
	}
	return s.store.Count(ctx, docstore.CollectionParcel, predicate.And(involving(address), live()))
}

func decodeAll(docs []bson.Raw) ([]domain.ParcelRecord, error) {
	records := make([]domain.ParcelRecord, 0, len(docs))
	for _, raw := range docs {
		record, err := schema.DecodeParcel(raw)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
