package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCache holds minted signed URLs and reads the activity counters
// maintained by activity-svc.
type RedisCache struct {
	Client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{Client: client}
}

func SignedURLKey(storageKey string) string {
	return "signed-url:" + storageKey
}

func DailyActivityKey(restaurantID string, day time.Time) string {
	return "activity:daily:" + day.UTC().Format("2006-01-02") + ":" + restaurantID
}

func RecentActivityKey(restaurantID string) string {
	return "activity:recent:" + restaurantID
}

func (c *RedisCache) GetURL(ctx context.Context, key string) (string, bool, error) {
	url, err := c.Client.Get(ctx, SignedURLKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return url, true, nil
}

func (c *RedisCache) SetURL(ctx context.Context, key, url string, ttl time.Duration) error {
	return c.Client.Set(ctx, SignedURLKey(key), url, ttl).Err()
}

func (c *RedisCache) DailyCounts(ctx context.Context, restaurantID string, day time.Time) (map[string]int64, error) {
	entries, err := c.Client.ZRevRangeWithScores(ctx, DailyActivityKey(restaurantID, day), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(entries))
	for _, z := range entries {
		if member, ok := z.Member.(string); ok {
			counts[member] = int64(z.Score)
		}
	}
	return counts, nil
}

func (c *RedisCache) RecentEvents(ctx context.Context, restaurantID string, limit int64) ([]domain.LogEntry, error) {
	raw, err := c.Client.LRange(ctx, RecentActivityKey(restaurantID), 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	events := make([]domain.LogEntry, 0, len(raw))
	for _, s := range raw {
		var e domain.LogEntry
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	return events, nil
}
