package storage_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*storage.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client), mr
}

func TestSignedURLCache(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	_, ok, err := cache.GetURL(ctx, "menu-items/a/1.png")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.SetURL(ctx, "menu-items/a/1.png", "https://signed/1", time.Minute))

	url, ok, err := cache.GetURL(ctx, "menu-items/a/1.png")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "https://signed/1", url)

	mr.FastForward(2 * time.Minute)
	_, ok, err = cache.GetURL(ctx, "menu-items/a/1.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestActivityReads(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

	key := storage.DailyActivityKey(restaurantA, day)
	assert.Equal(t, "activity:daily:2026-03-14:"+restaurantA, key)
	_, err := mr.ZAdd(key, 3, "MENU_ITEM:UPDATE")
	require.NoError(t, err)
	_, err = mr.ZAdd(key, 1, "MEMBER:LOGIN")
	require.NoError(t, err)

	counts, err := cache.DailyCounts(ctx, restaurantA, day)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"MENU_ITEM:UPDATE": 3, "MEMBER:LOGIN": 1}, counts)

	for _, event := range []string{"first", "second", "third"} {
		payload, err := json.Marshal(domain.LogEntry{RestaurantID: restaurantA, Event: event})
		require.NoError(t, err)
		_, err = mr.Lpush(storage.RecentActivityKey(restaurantA), string(payload))
		require.NoError(t, err)
	}
	_, err = mr.Lpush(storage.RecentActivityKey(restaurantA), "not json")
	require.NoError(t, err)

	recent, err := cache.RecentEvents(ctx, restaurantA, 3)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Event)
	assert.Equal(t, "second", recent[1].Event)

	empty, err := cache.DailyCounts(ctx, restaurantB, day)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
