package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// QuotaCache counts requests per caller in fixed time windows
type QuotaCache interface {
	// Hit records one request for subject and returns the count so far in the current window
	Hit(ctx context.Context, subject string) (int64, error)
	Window() time.Duration
}

type quotaCache struct {
	client *redis.Client
	window time.Duration
	now    func() time.Time
}

// NewQuotaCache creates a quota cache with one-minute windows
func NewQuotaCache(client *redis.Client) QuotaCache {
	return &quotaCache{
		client: client,
		window: time.Minute,
		now:    time.Now,
	}
}

func (c *quotaCache) key(subject string, windowStart int64) string {
	return fmt.Sprintf("quota:%s:%d", subject, windowStart)
}

func (c *quotaCache) Window() time.Duration {
	return c.window
}

func (c *quotaCache) Hit(ctx context.Context, subject string) (int64, error) {
	windowStart := c.now().Truncate(c.window).Unix()
	key := c.key(subject, windowStart)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, c.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
