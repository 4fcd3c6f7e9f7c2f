package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"kuchi/activity-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type Store struct {
	rdb         *redis.Client
	retention   time.Duration
	recentLimit int64
}

func NewStore(rdb *redis.Client, retention time.Duration, recentLimit int64) *Store {
	return &Store{rdb: rdb, retention: retention, recentLimit: recentLimit}
}

func DailyKey(restaurantID string, day time.Time) string {
	return "activity:daily:" + day.UTC().Format("2006-01-02") + ":" + restaurantID
}

func RecentKey(restaurantID string) string {
	return "activity:recent:" + restaurantID
}

// Record bumps the event's daily counter and pushes it onto the capped recent feed.
func (s *Store) Record(ctx context.Context, e domain.AuditEvent) error {
	day := e.CreatedAt
	if day.IsZero() {
		day = time.Now()
	}
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	dailyKey := DailyKey(e.RestaurantID, day)
	recentKey := RecentKey(e.RestaurantID)

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, dailyKey, 1, e.CounterMember())
		pipe.Expire(ctx, dailyKey, s.retention)
		pipe.LPush(ctx, recentKey, payload)
		pipe.LTrim(ctx, recentKey, 0, s.recentLimit-1)
		pipe.Expire(ctx, recentKey, s.retention)
		return nil
	})
	return err
}
