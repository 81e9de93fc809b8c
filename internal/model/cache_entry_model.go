package model

import (
	"time"
)

// CacheEntry backs the database cache when no Redis instance is
// configured. Expired rows are filtered on read; last write wins.
type CacheEntry struct {
	Key       string    `gorm:"primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
}

func (e *CacheEntry) TableName() string {
	return "cache_entries"
}
