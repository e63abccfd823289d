// Package pagination implements search-after pagination over a descending sort key tuple
// and the offset helpers used where random page access is needed.
package pagination

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/docstore"
	"github.com/feral-file/ff-ledger-indexer/internal/domain"
	"github.com/feral-file/ff-ledger-indexer/internal/predicate"
)

// Request describes one page of a cursor-paginated search
type Request struct {
	Collection docstore.Collection
	Filter     predicate.Predicate
	// SortKeys are sorted descending in order; the tuple must identify a record uniquely
	SortKeys []string
	// After is the position of the last record of the previous page, nil for the first page
	After Cursor
	Size  int64
}

// Page is one page of raw documents
type Page struct {
	Docs []bson.Raw
	// Next is the position to continue from, nil when the result set is exhausted
	Next Cursor
}

// Engine pages through a document store collection
type Engine struct {
	store docstore.Store
}

// NewEngine creates a new pagination engine
func NewEngine(store docstore.Store) *Engine {
	return &Engine{store: store}
}

// Page returns the records strictly after the cursor position in descending sort key order
func (e *Engine) Page(ctx context.Context, req Request) (*Page, error) {
	if len(req.SortKeys) == 0 {
		return nil, fmt.Errorf("%w: pagination requires sort keys", domain.ErrInvalidQuery)
	}
	if req.Size < 1 {
		return nil, fmt.Errorf("%w: page size must be positive", domain.ErrInvalidQuery)
	}

	after := req.After
	if after == nil {
		after = MaxCursor(len(req.SortKeys))
	}
	if len(after) != len(req.SortKeys) {
		return nil, fmt.Errorf("%w: cursor has %d values for %d sort keys", domain.ErrInvalidQuery, len(after), len(req.SortKeys))
	}

	sort := make([]docstore.SortField, len(req.SortKeys))
	for i, k := range req.SortKeys {
		sort[i] = docstore.SortField{Field: k, Desc: true}
	}

	docs, err := e.store.Search(ctx, req.Collection, docstore.SearchRequest{
		Filter: predicate.And(req.Filter, SearchAfter(req.SortKeys, after)),
		Sort:   sort,
		Limit:  req.Size,
	})
	if err != nil {
		return nil, err
	}

	page := &Page{Docs: docs}
	if int64(len(docs)) == req.Size {
		next, err := cursorOf(docs[len(docs)-1], req.SortKeys)
		if err != nil {
			return nil, err
		}
		page.Next = next
	}

	return page, nil
}

// SearchAfter returns the predicate selecting records strictly after the position in
// descending lexicographic order: (k1 < c1) OR (k1 = c1 AND k2 < c2) OR ...
func SearchAfter(keys []string, after Cursor) predicate.Predicate {
	clauses := make([]predicate.Predicate, 0, len(keys))
	for i := range keys {
		conj := make([]predicate.Predicate, 0, i+1)
		for j := 0; j < i; j++ {
			conj = append(conj, predicate.Term(keys[j], after[j]))
		}
		conj = append(conj, predicate.Range(keys[i], predicate.Lt(after[i])))
		clauses = append(clauses, predicate.And(conj...))
	}
	return predicate.Or(clauses...)
}

func cursorOf(doc bson.Raw, keys []string) (Cursor, error) {
	c := make(Cursor, len(keys))
	for i, k := range keys {
		v, err := doc.LookupErr(strings.Split(k, ".")...)
		if err != nil {
			return nil, fmt.Errorf("sort key %s missing from document: %w", k, err)
		}
		n, ok := v.AsInt64OK()
		if !ok {
			return nil, fmt.Errorf("sort key %s is not an integer: %s", k, v.Type)
		}
		c[i] = n
	}
	return c, nil
}
