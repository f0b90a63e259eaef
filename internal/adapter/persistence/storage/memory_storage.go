package storage

import (
	"context"
	"sync"

	"mecanica_ledger/internal/usecase/interfaces"
)

// MemoryStorage keeps collections in process memory. It is the default driver
// and the fake used by tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ interfaces.ICollectionStorage = (*MemoryStorage)(nil)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

func (s *MemoryStorage) SaveBatch(_ context.Context, blobs []interfaces.CollectionBlob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range blobs {
		s.blobs[b.Key] = append([]byte(nil), b.Data...)
	}
	return nil
}
