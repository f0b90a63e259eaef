package storage

import (
	"context"
	"errors"
	"time"

	"mecanica_ledger/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type collectionRow struct {
	CollectionKey string    `gorm:"primaryKey;type:text"`
	Items         string    `gorm:"type:text;not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName sets the database table name.
func (collectionRow) TableName() string { return "collections" }

// SQLStorage persists collections as rows of a gorm-managed table (SQLite by
// default). SaveBatch runs inside a single database transaction.
type SQLStorage struct {
	db *gorm.DB
}

var _ interfaces.ICollectionStorage = (*SQLStorage)(nil)

// NewSQLStorage migrates the collections table and returns the storage.
func NewSQLStorage(db *gorm.DB) (*SQLStorage, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}
	return &SQLStorage{db: db}, nil
}

func (s *SQLStorage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).Where("collection_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(row.Items), true, nil
}

func (s *SQLStorage) Save(ctx context.Context, key string, data []byte) error {
	return upsertCollection(s.db.WithContext(ctx), key, data)
}

func (s *SQLStorage) SaveBatch(ctx context.Context, blobs []interfaces.CollectionBlob) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range blobs {
			if err := upsertCollection(tx, b.Key, b.Data); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertCollection(tx *gorm.DB, key string, data []byte) error {
	row := collectionRow{
		CollectionKey: key,
		Items:         string(data),
		UpdatedAt:     time.Now().UTC(),
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
	}).Create(&row).Error
}
