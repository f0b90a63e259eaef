package recordstore

import (
	"context"

	"mecanica_ledger/internal/usecase/interfaces"
)

// Batch collects serialized collections and writes them in a single storage
// transaction. Staging the same key twice keeps the last version.
type Batch struct {
	storage interfaces.ICollectionStorage
	blobs   []interfaces.CollectionBlob
}

func NewBatch(storage interfaces.ICollectionStorage) *Batch {
	return &Batch{storage: storage}
}

func (b *Batch) put(key string, data []byte) {
	for i := range b.blobs {
		if b.blobs[i].Key == key {
			b.blobs[i].Data = data
			return
		}
	}
	b.blobs = append(b.blobs, interfaces.CollectionBlob{Key: key, Data: data})
}

// Len reports how many collections are staged.
func (b *Batch) Len() int { return len(b.blobs) }

// Commit writes every staged collection. A batch without storage is a no-op.
func (b *Batch) Commit(ctx context.Context) error {
	if b.storage == nil || len(b.blobs) == 0 {
		return nil
	}
	if len(b.blobs) == 1 {
		return b.storage.Save(ctx, b.blobs[0].Key, b.blobs[0].Data)
	}
	return b.storage.SaveBatch(ctx, b.blobs)
}
