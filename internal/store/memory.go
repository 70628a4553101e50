package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore implements Store with mutex-guarded in-process state. It
// backs tests and store-less local runs. Documents keep insertion order
// within a collection; ids are uuid strings.
//
// Values are normalized through bson marshaling so documents come back
// shaped the same way MongoStore returns them.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string][]Doc
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Doc),
	}
}

func (s *MemoryStore) Create(ctx context.Context, collection string, doc any) (string, error) {
	d, err := normalizeDoc(doc)
	if err != nil {
		return "", fmt.Errorf("inserting into %s: %w", collection, err)
	}

	id := uuid.NewString()
	d["_id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], d)
	return id, nil
}

func (s *MemoryStore) FindByID(ctx context.Context, collection, id string) (Doc, error) {
	if !s.ValidID(id) {
		return nil, ErrInvalidID
	}
	return s.FindOne(ctx, collection, Filter{"_id": id})
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter Filter) (Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			return externalizeMem(d), nil
		}
	}
	return nil, ErrNoDocument
}

func (s *MemoryStore) List(ctx context.Context, collection string, filter Filter, opts ListOptions) ([]Doc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := make([]Doc, 0)
	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			docs = append(docs, externalizeMem(d))
		}
	}

	if opts.SortField != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			if opts.SortDesc {
				return less(docs[j][opts.SortField], docs[i][opts.SortField])
			}
			return less(docs[i][opts.SortField], docs[j][opts.SortField])
		})
	}

	if opts.Limit > 0 && int64(len(docs)) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}

func (s *MemoryStore) EnsureOne(ctx context.Context, collection string, filter Filter, setOnInsert Doc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			return nil
		}
	}

	d, err := normalizeDoc(setOnInsert)
	if err != nil {
		return fmt.Errorf("upserting into %s: %w", collection, err)
	}
	d["_id"] = uuid.NewString()
	s.collections[collection] = append(s.collections[collection], d)
	return nil
}

func (s *MemoryStore) UpsertPush(ctx context.Context, collection string, filter Filter, setOnInsert Doc, field string, value any) error {
	v, err := normalizeValue(value)
	if err != nil {
		return fmt.Errorf("pushing to %s.%s: %w", collection, field, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	target := s.findLocked(collection, filter)
	if target == nil {
		d, err := normalizeDoc(setOnInsert)
		if err != nil {
			return fmt.Errorf("pushing to %s.%s: %w", collection, field, err)
		}
		d["_id"] = uuid.NewString()
		s.collections[collection] = append(s.collections[collection], d)
		target = d
	}

	arr, _ := target[field].(primitive.A)
	target[field] = append(arr, v)
	return nil
}

func (s *MemoryStore) SetField(ctx context.Context, collection string, filter Filter, field string, value any) error {
	v, err := normalizeValue(value)
	if err != nil {
		return fmt.Errorf("setting %s.%s: %w", collection, field, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if target := s.findLocked(collection, filter); target != nil {
		target[field] = v
	}
	return nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string, filter Filter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Name() string {
	return "memory"
}

// findLocked returns the internal (mutable) document matching filter.
// Caller must hold s.mu.
func (s *MemoryStore) findLocked(collection string, filter Filter) Doc {
	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			return d
		}
	}
	return nil
}

func matches(doc Doc, filter Filter) bool {
	for k, want := range filter {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	return true
}

func externalizeMem(doc Doc) Doc {
	out := make(Doc, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if id, ok := out["_id"].(string); ok {
		delete(out, "_id")
		out["id"] = id
	}
	return out
}

// normalizeDoc round-trips a struct or map through bson so field names and
// value types match what the mongo driver would produce.
func normalizeDoc(doc any) (Doc, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return Doc(m), nil
}

func normalizeValue(value any) (any, error) {
	m, err := normalizeDoc(bson.M{"v": value})
	if err != nil {
		return nil, err
	}
	return m["v"], nil
}

func less(a, b any) bool {
	switch av := a.(type) {
	case primitive.DateTime:
		bv, ok := b.(primitive.DateTime)
		return ok && av < bv
	case time.Time:
		bv, ok := b.(time.Time)
		return ok && av.Before(bv)
	case string:
		bv, ok := b.(string)
		return ok && av < bv
	case float64:
		bv, ok := b.(float64)
		return ok && av < bv
	case int32:
		bv, ok := b.(int32)
		return ok && av < bv
	case int64:
		bv, ok := b.(int64)
		return ok && av < bv
	}
	return false
}
