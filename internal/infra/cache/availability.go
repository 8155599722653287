package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hificopy/axolopcrm-sub008/internal/pkg/errs"
	"github.com/hificopy/axolopcrm-sub008/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps computed slot lists in Redis under
// availability:<slug>:<date>:<tz>. Writes after a booking invalidate every
// date and timezone for the slug at once.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func (c *AvailabilityCache) Get(ctx context.Context, key string) ([]queries.SlotView, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read availability cache")
	}

	var slots []queries.SlotView
	if err := json.Unmarshal(raw, &slots); err != nil {
		// Treat a corrupt entry as a miss; the next Set overwrites it.
		return nil, nil
	}
	return slots, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, key string, slots []queries.SlotView) error {
	raw, err := json.Marshal(slots)
	if err != nil {
		return errs.Wrap(err, "failed to encode availability")
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write availability cache")
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, slug string) error {
	pattern := "availability:" + slug + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	keys := make([]string, 0, 8)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Wrap(err, "failed to scan availability keys")
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to delete availability keys")
	}
	return nil
}
