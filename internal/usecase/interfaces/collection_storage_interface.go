package interfaces

import "context"

// CollectionBlob is one serialized collection staged for a batch write.
type CollectionBlob struct {
	Key  string
	Data []byte
}

// ICollectionStorage is the key-value persistence primitive behind the record
// store: one serialized blob per named collection.
//
// Implementations:
//   - Load reports found=false for a collection that was never written.
//   - SaveBatch writes every blob or none of them.
type ICollectionStorage interface {
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
	Save(ctx context.Context, key string, data []byte) error
	SaveBatch(ctx context.Context, blobs []CollectionBlob) error
}
