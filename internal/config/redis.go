package config

import (
	"os"
	"sync"
)

type RedisConfig struct {
	URL string
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

// LoadRedisConfig reads the Redis connection URL. An empty URL means the
// cache falls back to the database table.
func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		redisConfig = &RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		}
	})
	return redisConfig
}
