// Package predicate provides a small typed query builder.
//
// Predicates are composed with And, Or, Term and Range and translated once
// to the MongoDB query language with ToBSON.
package predicate

import (
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/feral-file/ff-ledger-indexer/internal/domain"
)

// Predicate is a composable filter expression
type Predicate interface {
	toBSON() (bson.D, error)
}

// Op is a range comparison operator
type Op string

const (
	OpGt  Op = "$gt"
	OpGte Op = "$gte"
	OpLt  Op = "$lt"
	OpLte Op = "$lte"
)

// Bound is one side of a range
type Bound struct {
	Op    Op
	Value any
}

// Gt returns a strict lower bound
func Gt(v any) Bound { return Bound{Op: OpGt, Value: v} }

// Gte returns an inclusive lower bound
func Gte(v any) Bound { return Bound{Op: OpGte, Value: v} }

// Lt returns a strict upper bound
func Lt(v any) Bound { return Bound{Op: OpLt, Value: v} }

// Lte returns an inclusive upper bound
func Lte(v any) Bound { return Bound{Op: OpLte, Value: v} }

type and struct {
	operands []Predicate
}

type or struct {
	operands []Predicate
}

type term struct {
	field string
	value any
}

type rangePredicate struct {
	field  string
	bounds []Bound
}

// And matches documents satisfying every operand.
// Nested conjunctions are flattened and a single operand collapses to itself.
func And(preds ...Predicate) Predicate {
	var operands []Predicate
	for _, p := range preds {
		if p == nil {
			continue
		}
		if inner, ok := p.(and); ok {
			operands = append(operands, inner.operands...)
			continue
		}
		operands = append(operands, p)
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return and{operands: operands}
}

// Or matches documents satisfying at least one operand
func Or(preds ...Predicate) Predicate {
	var operands []Predicate
	for _, p := range preds {
		if p != nil {
			operands = append(operands, p)
		}
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return or{operands: operands}
}

// Term matches documents whose field equals value
func Term(field string, value any) Predicate {
	return term{field: field, value: value}
}

// Range matches documents whose numeric field lies within the bounds
func Range(field string, bounds ...Bound) Predicate {
	return rangePredicate{field: field, bounds: bounds}
}

// ToBSON translates a predicate into a MongoDB filter document.
// A nil predicate matches every document.
func ToBSON(p Predicate) (bson.D, error) {
	if p == nil {
		return bson.D{}, nil
	}
	return p.toBSON()
}

func (a and) toBSON() (bson.D, error) {
	if len(a.operands) == 0 {
		return nil, fmt.Errorf("%w: and requires at least one operand", domain.ErrInvalidQuery)
	}
	clauses, err := translateAll(a.operands)
	if err != nil {
		return nil, err
	}
	return bson.D{{Key: "$and", Value: clauses}}, nil
}

func (o or) toBSON() (bson.D, error) {
	if len(o.operands) == 0 {
		return nil, fmt.Errorf("%w: or requires at least one operand", domain.ErrInvalidQuery)
	}
	clauses, err := translateAll(o.operands)
	if err != nil {
		return nil, err
	}
	return bson.D{{Key: "$or", Value: clauses}}, nil
}

func (t term) toBSON() (bson.D, error) {
	if t.field == "" {
		return nil, fmt.Errorf("%w: term requires a field", domain.ErrInvalidQuery)
	}
	return bson.D{{Key: t.field, Value: t.value}}, nil
}

func (r rangePredicate) toBSON() (bson.D, error) {
	if r.field == "" {
		return nil, fmt.Errorf("%w: range requires a field", domain.ErrInvalidQuery)
	}
	if len(r.bounds) == 0 {
		return nil, fmt.Errorf("%w: range on %s has no bounds", domain.ErrInvalidQuery, r.field)
	}

	ops := bson.D{}
	for _, b := range r.bounds {
		switch b.Op {
		case OpGt, OpGte, OpLt, OpLte:
		default:
			return nil, fmt.Errorf("%w: unknown range operator %q", domain.ErrInvalidQuery, b.Op)
		}
		v, err := numeric(b.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: range on %s: %v", domain.ErrInvalidQuery, r.field, err)
		}
		ops = append(ops, bson.E{Key: string(b.Op), Value: v})
	}

	return bson.D{{Key: r.field, Value: ops}}, nil
}

func translateAll(preds []Predicate) (bson.A, error) {
	clauses := make(bson.A, 0, len(preds))
	for _, p := range preds {
		d, err := p.toBSON()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, d)
	}
	return clauses, nil
}

// numeric normalizes a range bound to int64 or float64
func numeric(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint:
		return fromUint(uint64(n))
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		return fromUint(n)
	case float32:
		return float64(n), nil
	case float64:
		if math.IsNaN(n) {
			return nil, fmt.Errorf("bound is NaN")
		}
		return n, nil
	default:
		return nil, fmt.Errorf("bound %v (%T) is not numeric", v, v)
	}
}

func fromUint(n uint64) (any, error) {
	if n > math.MaxInt64 {
		return nil, fmt.Errorf("bound %d overflows int64", n)
	}
	return int64(n), nil
}
