package storage_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"kuchi/activity-svc/internal/domain"
	"kuchi/activity-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const restaurantID = "a0000000-0000-0000-0000-000000000001"

func TestStoreRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	store := storage.NewStore(client, 48*time.Hour, 2)
	ctx := context.Background()
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	events := []domain.AuditEvent{
		{ID: "1", RestaurantID: restaurantID, LogType: "UPDATE", AffectedEntity: "MENU_ITEM", CreatedAt: at},
		{ID: "2", RestaurantID: restaurantID, LogType: "UPDATE", AffectedEntity: "MENU_ITEM", CreatedAt: at},
		{ID: "3", RestaurantID: restaurantID, LogType: "LOGIN", AffectedEntity: "MEMBER", CreatedAt: at},
	}
	for _, e := range events {
		require.NoError(t, store.Record(ctx, e))
	}

	dailyKey := storage.DailyKey(restaurantID, at)
	score, err := mr.ZScore(dailyKey, "MENU_ITEM:UPDATE")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)
	score, err = mr.ZScore(dailyKey, "MEMBER:LOGIN")
	require.NoError(t, err)
	assert.Equal(t, float64(1), score)
	assert.Equal(t, 48*time.Hour, mr.TTL(dailyKey))

	recent, err := mr.List(storage.RecentKey(restaurantID))
	require.NoError(t, err)
	require.Len(t, recent, 2)
	var newest domain.AuditEvent
	require.NoError(t, json.Unmarshal([]byte(recent[0]), &newest))
	assert.Equal(t, "3", newest.ID)
	assert.Equal(t, 48*time.Hour, mr.TTL(storage.RecentKey(restaurantID)))
}

func TestDailyKeyUsesUTC(t *testing.T) {
	local := time.Date(2026, 3, 14, 22, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	assert.Equal(t, "activity:daily:2026-03-15:"+restaurantID, storage.DailyKey(restaurantID, local))
}
