package cache

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fadilmartias/talent-sourcer/internal/model"
)

// DBCache stores entries in the cache_entries table with an expires_at
// column. Expired rows are ignored on read; writes upsert on key.
type DBCache struct {
	db *gorm.DB
}

func NewDBCache(db *gorm.DB) *DBCache {
	return &DBCache{db: db}
}

func (c *DBCache) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.CacheEntry
	err := c.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, time.Now()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (c *DBCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	entry := model.CacheEntry{
		Key:       key,
		Value:     value,
		ExpiresAt: time.Now().Add(ttl),
	}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
}
