package cache

import (
	"context"
	"fmt"

	"github.com/lshigami/ielts-mock/config"
	"github.com/redis/go-redis/v9"
)

// ContentCache holds derived values of test content that every listening
// start needs.
type ContentCache struct {
	cache *Cache
}

func NewContentCache(client *redis.Client, cfg *config.Config) *ContentCache {
	return &ContentCache{cache: New(client, cfg.Redis.ContentCacheTTL)}
}

func audioDurationKey(testID uint) string {
	return fmt.Sprintf("test:%d:audio_duration", testID)
}

func (c *ContentCache) AudioDuration(ctx context.Context, testID uint, loader func(ctx context.Context) (int, error)) (int, error) {
	var seconds int
	err := c.cache.CacheOrExecute(ctx, audioDurationKey(testID), &seconds, func() (interface{}, error) {
		return loader(ctx)
	})
	return seconds, err
}

// InvalidateTest drops every cached value derived from the test's content.
func (c *ContentCache) InvalidateTest(ctx context.Context, testID uint) {
	c.cache.Delete(ctx, audioDurationKey(testID))
}
