// Package cache provides the expiring key/value cache used by the search
// stage. Two backends exist: Redis when REDIS_URL is configured, and a
// database table otherwise.
package cache

import (
	"context"
	"time"
)

// Cache is a TTL key/value store. Get reports a miss (not an error) for
// absent or expired keys.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}
