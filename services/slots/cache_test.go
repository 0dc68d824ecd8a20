package slots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisAvailabilityCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewRedisAvailabilityCache(client, 30*time.Second)
	ctx := context.Background()

	_, found, err := cache.Get(ctx, "vet-1", "2024-06-03")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "vet-1", "2024-06-03", false))
	require.NoError(t, cache.Set(ctx, "vet-2", "2024-06-03", true))
	require.NoError(t, cache.Set(ctx, "vet-2", "2024-06-04", false))

	v, found, err := cache.Get(ctx, "vet-1", "2024-06-03")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, v)

	v, found, err = cache.Get(ctx, "vet-2", "2024-06-03")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, v)
	assert.Equal(t, "1", mustGet(t, mr, "availability:vet-2:2024-06-03"))

	_, found, err = cache.Get(ctx, "vet-1", "2024-06-04")
	require.NoError(t, err)
	assert.False(t, found, "answers are scoped to their day")

	require.NoError(t, cache.Invalidate(ctx, "vet-2"))
	assert.False(t, mr.Exists("availability:vet-2:2024-06-03"))
	assert.False(t, mr.Exists("availability:vet-2:2024-06-04"))
	assert.True(t, mr.Exists("availability:vet-1:2024-06-03"))

	require.NoError(t, cache.Invalidate(ctx, "vet-1", "vet-unknown"))
	_, found, err = cache.Get(ctx, "vet-1", "2024-06-03")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "vet-3", "2024-06-03", true))
	mr.FastForward(31 * time.Second)
	_, found, err = cache.Get(ctx, "vet-3", "2024-06-03")
	require.NoError(t, err)
	assert.False(t, found)
}
