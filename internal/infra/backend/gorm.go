package backend

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/optic-manager/internal/models"
	"github.com/BruksfildServices01/optic-manager/internal/store"
)

type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.StorageEntry
	err := b.db.WithContext(ctx).
		Where(&models.StorageEntry{Key: key}).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (b *GormBackend) Set(ctx context.Context, key, value string) error {
	entry := models.StorageEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}

	return b.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// Compile-time check
var _ store.Backend = (*GormBackend)(nil)
