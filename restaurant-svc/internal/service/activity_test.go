package service_test

import (
	"context"
	"testing"
	"time"

	"kuchi/restaurant-svc/internal/domain"
	"kuchi/restaurant-svc/internal/mocks"
	"kuchi/restaurant-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivitySummary(t *testing.T) {
	day := time.Date(2026, 5, 2, 23, 30, 0, 0, time.FixedZone("BRT", -3*3600))

	t.Run("without a store", func(t *testing.T) {
		summary, err := service.NewActivityService(nil).Summary(context.Background(), principal(domain.RoleAdmin), day)
		require.NoError(t, err)
		assert.Equal(t, "2026-05-03", summary.Date)
		assert.Empty(t, summary.Counts)
		assert.NotNil(t, summary.Recent)
	})

	t.Run("reads counters for the tenant", func(t *testing.T) {
		store := mocks.NewActivityStore(t)
		store.On("DailyCounts", mock.Anything, restaurantA, day).Return(map[string]int64{"CATEGORY:CREATE": 2}, nil).Once()
		store.On("RecentEvents", mock.Anything, restaurantA, int64(20)).
			Return([]domain.LogEntry{{Event: "Category created"}}, nil).Once()

		summary, err := service.NewActivityService(store).Summary(context.Background(), principal(domain.RoleAdmin), day)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.Counts["CATEGORY:CREATE"])
		assert.Len(t, summary.Recent, 1)
	})
}

func TestMenuQRGenerator(t *testing.T) {
	gen := service.MenuQRGenerator{BaseURL: "https://menu.kuchi.app/"}
	assert.Equal(t, "https://menu.kuchi.app/"+restaurantA, gen.MenuURL(restaurantA))

	png, err := gen.Generate(restaurantA, 0)
	require.NoError(t, err)
	assert.Equal(t, pngHeader[:8], png[:8])
}
