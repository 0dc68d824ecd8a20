package slots

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const availabilityCachePrefix = "availability:"

// AvailabilityCache memoises HasAvailability answers per veterinarian and vet-local
// day, so an answer never outlives the day it was computed for.
type AvailabilityCache interface {
	Get(ctx context.Context, vetID, day string) (value bool, found bool, err error)
	Set(ctx context.Context, vetID, day string, value bool) error
	Invalidate(ctx context.Context, vetIDs ...string) error
}

type redisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAvailabilityCache stores answers in Redis for ttl.
func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) AvailabilityCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &redisAvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(vetID, day string) string {
	return availabilityCachePrefix + vetID + ":" + day
}

func (c *redisAvailabilityCache) Get(ctx context.Context, vetID, day string) (bool, bool, error) {
	val, err := c.client.Get(ctx, availabilityKey(vetID, day)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return val == "1", true, nil
}

func (c *redisAvailabilityCache) Set(ctx context.Context, vetID, day string, value bool) error {
	v := "0"
	if value {
		v = "1"
	}
	return c.client.Set(ctx, availabilityKey(vetID, day), v, c.ttl).Err()
}

// Invalidate drops every cached day of the given veterinarians.
func (c *redisAvailabilityCache) Invalidate(ctx context.Context, vetIDs ...string) error {
	var keys []string
	for _, id := range vetIDs {
		iter := c.client.Scan(ctx, 0, availabilityCachePrefix+id+":*", 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
