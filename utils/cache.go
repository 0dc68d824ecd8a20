// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"vetcare/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient connects the generic Redis cache client (DB from AppConfig for general caching).
func NewCacheClient(ctx context.Context) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	return client, nil
}
