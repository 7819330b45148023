package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lshigami/ielts-mock/config"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const keyPrefix = "ielts:"

// NewRedisClient returns nil when no address is configured; a nil client
// turns every Cache into a pass-through.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		log.Info().Msg("REDIS_ADDR not set, content cache disabled")
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// Cache is a JSON read-through cache on top of redis. Redis failures are
// logged and the loader result is returned instead.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// CacheOrExecute fills dest from key, or runs fn, stores its result under key
// and copies it into dest.
func (c *Cache) CacheOrExecute(ctx context.Context, key string, dest interface{}, fn func() (interface{}, error)) error {
	if !c.Enabled() {
		return load(dest, fn)
	}

	fullKey := keyPrefix + key
	raw, err := c.client.Get(ctx, fullKey).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		log.Warn().Str("key", fullKey).Msg("Discarding undecodable cache entry")
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", fullKey).Msg("Cache read failed")
	}

	value, err := fn()
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	if err := c.client.Set(ctx, fullKey, encoded, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", fullKey).Msg("Cache write failed")
	}
	return json.Unmarshal(encoded, dest)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = keyPrefix + k
	}
	if err := c.client.Del(ctx, full...).Err(); err != nil {
		log.Warn().Err(err).Strs("keys", full).Msg("Cache delete failed")
	}
}

func load(dest interface{}, fn func() (interface{}, error)) error {
	value, err := fn()
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode value: %w", err)
	}
	return json.Unmarshal(encoded, dest)
}
