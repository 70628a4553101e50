package store

import (
	"context"
	"errors"
)

// Collection names, one per domain record kind.
const (
	Restaurants = "restaurant"
	MenuItems   = "menuitem"
	Carts       = "cart"
	Orders      = "order"
)

var (
	// ErrInvalidID means an id string is not well-formed for this store.
	ErrInvalidID = errors.New("invalid id format")
	// ErrNoDocument means no document matched the filter.
	ErrNoDocument = errors.New("no matching document")
)

// Doc is a document as exchanged with the store. Documents returned by
// reads carry their identifier as a string field named "id"; the store's
// internal id field is never exposed.
type Doc = map[string]any

// Filter selects documents by field equality.
type Filter = map[string]any

// ListOptions bounds and orders a List call. A zero Limit means no limit.
type ListOptions struct {
	Limit     int64
	SortField string
	SortDesc  bool
}

// Store is the document-store adapter. It is opened once at startup and
// injected into services; implementations must be safe for concurrent use.
type Store interface {
	// Create inserts doc into the collection and returns the generated id.
	Create(ctx context.Context, collection string, doc any) (string, error)

	// FindByID resolves an id string to a document. Returns ErrInvalidID
	// for malformed ids and ErrNoDocument when nothing matches.
	FindByID(ctx context.Context, collection, id string) (Doc, error)

	// FindOne returns the first document matching filter, or ErrNoDocument.
	FindOne(ctx context.Context, collection string, filter Filter) (Doc, error)

	// List returns matching documents per opts.
	List(ctx context.Context, collection string, filter Filter, opts ListOptions) ([]Doc, error)

	// EnsureOne atomically inserts a document built from setOnInsert if no
	// document matches filter. Concurrent calls with the same filter leave
	// at most one document behind.
	EnsureOne(ctx context.Context, collection string, filter Filter, setOnInsert Doc) error

	// UpsertPush appends value to the named array field of the matching
	// document, creating the document from setOnInsert if absent. The
	// append is unconditional: no merging with existing entries.
	UpsertPush(ctx context.Context, collection string, filter Filter, setOnInsert Doc, field string, value any) error

	// SetField sets a field on the matching document. Not an upsert: a
	// missing document is left missing.
	SetField(ctx context.Context, collection string, filter Filter, field string, value any) error

	// Count returns the number of documents matching filter.
	Count(ctx context.Context, collection string, filter Filter) (int64, error)

	// ValidID reports whether id is a well-formed identifier for this store.
	ValidID(id string) bool

	// Ping checks connectivity.
	Ping(ctx context.Context) error

	// Collections lists collection names, for diagnostics.
	Collections(ctx context.Context) ([]string, error)

	// Name returns the database name, for diagnostics.
	Name() string
}
