// Package recordstore keeps keyed collections of records, each collection
// persisted as one serialized JSON array through an ICollectionStorage.
//
// Missing or malformed collections read as empty, and a nil storage turns every
// read into an empty read and every write into a no-op.
package recordstore

import (
	"context"
	"encoding/json"
	"fmt"

	"mecanica_ledger/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Identifiable is implemented by every record kept in a collection.
type Identifiable interface {
	GetID() string
}

// RecordStore reads and writes collections of T.
type RecordStore[T Identifiable] struct {
	storage interfaces.ICollectionStorage
	log     *zap.Logger
}

func New[T Identifiable](storage interfaces.ICollectionStorage, log *zap.Logger) *RecordStore[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecordStore[T]{storage: storage, log: log.Named("recordstore")}
}

// ReadAll returns the collection in insertion order. Only transport failures of
// the underlying storage are reported as errors.
func (s *RecordStore[T]) ReadAll(ctx context.Context, key string) ([]T, error) {
	if s.storage == nil {
		return []T{}, nil
	}

	data, found, err := s.storage.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", key, err)
	}
	if !found || len(data) == 0 {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("malformed collection treated as empty", zap.String("collection", key), zap.Error(err))
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// WriteAll replaces the stored collection wholesale.
func (s *RecordStore[T]) WriteAll(ctx context.Context, key string, items []T) error {
	b := NewBatch(s.storage)
	if err := s.Stage(b, key, items); err != nil {
		return err
	}
	return b.Commit(ctx)
}

// Append adds item at the end of the collection and returns the resulting sequence.
func (s *RecordStore[T]) Append(ctx context.Context, key string, item T) ([]T, error) {
	b := NewBatch(s.storage)
	items, err := s.StageAppend(ctx, b, key, item)
	if err != nil {
		return nil, err
	}
	if err := b.Commit(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateByID replaces every item whose id matches with transform(item). Other
// items pass through untouched. When nothing matches the collection is written
// back unchanged.
func (s *RecordStore[T]) UpdateByID(ctx context.Context, key, id string, transform func(T) T) ([]T, error) {
	b := NewBatch(s.storage)
	items, err := s.StageUpdateByID(ctx, b, key, id, transform)
	if err != nil {
		return nil, err
	}
	if err := b.Commit(ctx); err != nil {
		return nil, err
	}
	return items, nil
}

// Stage encodes items into b under key. Nothing is written until b is committed.
func (s *RecordStore[T]) Stage(b *Batch, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", key, err)
	}
	b.put(key, data)
	return nil
}

// StageAppend is Append deferred to the commit of b.
func (s *RecordStore[T]) StageAppend(ctx context.Context, b *Batch, key string, item T) ([]T, error) {
	items, err := s.ReadAll(ctx, key)
	if err != nil {
		return nil, err
	}
	items = append(items, item)
	if err := s.Stage(b, key, items); err != nil {
		return nil, err
	}
	return items, nil
}

// StageUpdateByID is UpdateByID deferred to the commit of b.
func (s *RecordStore[T]) StageUpdateByID(ctx context.Context, b *Batch, key, id string, transform func(T) T) ([]T, error) {
	items, err := s.ReadAll(ctx, key)
	if err != nil {
		return nil, err
	}
	items = ReplaceByID(items, id, transform)
	if err := s.Stage(b, key, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceByID maps items, applying transform to the ones whose id matches.
// The input slice is not modified.
func ReplaceByID[T Identifiable](items []T, id string, transform func(T) T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		if it.GetID() == id {
			out[i] = transform(it)
			continue
		}
		out[i] = it
	}
	return out
}

// FindByID returns the first item whose id matches.
func FindByID[T Identifiable](items []T, id string) (T, bool) {
	for _, it := range items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}
