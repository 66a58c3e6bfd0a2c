// Package store lists raw inventory records page by page from a document
// store: DynamoDB, a local bbolt snapshot, or memory.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/yairfalse/onevision/pkg/wire"
)

var (
	// ErrInvalidCursor is returned when a continuation cursor cannot be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrTableRequired is returned when a store is built without a table name.
	ErrTableRequired = errors.New("table name required")
	// ErrMissingID is returned when saving a record without an id.
	ErrMissingID = errors.New("record has no id")
)

// RawRecord is a record as the store returns it.
type RawRecord = wire.Record

// Op is a condition operator the store can evaluate server-side.
type Op int

const (
	OpEquals Op = iota
	OpBeginsWith
	OpExists
)

func (o Op) String() string {
	switch o {
	case OpEquals:
		return "equals"
	case OpBeginsWith:
		return "begins_with"
	case OpExists:
		return "exists"
	}
	return "unknown"
}

// Condition is a single filter on a top-level string field.
type Condition struct {
	Field string
	Op    Op
	Value string
	Not   bool
}

// Equals matches records whose field equals value.
func Equals(field, value string) Condition {
	return Condition{Field: field, Op: OpEquals, Value: value}
}

// BeginsWith matches records whose field starts with prefix.
func BeginsWith(field, prefix string) Condition {
	return Condition{Field: field, Op: OpBeginsWith, Value: prefix}
}

// Exists matches records that carry field.
func Exists(field string) Condition {
	return Condition{Field: field, Op: OpExists}
}

// Negate returns c with its result inverted.
func (c Condition) Negate() Condition {
	c.Not = !c.Not
	return c
}

// Match evaluates c against raw on the client. Wire-tagged values are
// decoded first.
func (c Condition) Match(raw RawRecord) bool {
	v, present := raw[c.Field]
	var ok bool
	switch c.Op {
	case OpExists:
		ok = present && wire.Decode(v) != nil
	case OpEquals:
		s, isStr := wire.String(v)
		ok = present && isStr && s == c.Value
	case OpBeginsWith:
		s, isStr := wire.String(v)
		ok = present && isStr && strings.HasPrefix(s, c.Value)
	}
	return ok != c.Not
}

// MatchAll reports whether raw satisfies every condition.
func MatchAll(raw RawRecord, conds []Condition) bool {
	for _, c := range conds {
		if !c.Match(raw) {
			return false
		}
	}
	return true
}

// Cursor is an opaque continuation token. Empty means start, or, on a
// returned Page, that the listing is exhausted.
type Cursor string

// Query describes one bounded list request.
type Query struct {
	Filters []Condition
	Limit   int32
	Cursor  Cursor
}

// Page is one list response.
type Page struct {
	Items []RawRecord
	Next  Cursor
}

// Done reports whether no further page exists.
func (p Page) Done() bool {
	return p.Next == ""
}

// Store lists raw records.
type Store interface {
	List(ctx context.Context, q Query) (Page, error)
}
