// Package cache provides the shared Redis-backed cache. All values are
// JSON-encoded. A nil client (Redis not configured/reachable) degrades
// to cache misses, never errors.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fabiogif/moday-backoffice/config"
)

var (
	RDB *redis.Client
	Ctx = context.Background()
)

// Connect initialises the Redis client from config.
func Connect() {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
	})
}

// Get loads key into dest. Returns false on miss, decode failure or when
// Redis is unavailable.
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value under key for ttl.
func Set(key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return RDB.Set(Ctx, key, data, ttl).Err()
}

// Forget removes key. Used after mutations to invalidate listings.
func Forget(keys ...string) {
	if RDB == nil || len(keys) == 0 {
		return
	}
	RDB.Del(Ctx, keys...)
}
