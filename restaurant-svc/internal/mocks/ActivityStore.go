package mocks

import (
	"context"
	"time"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ActivityStore is a testify mock for the ActivityStore interface.
type ActivityStore struct {
	mock.Mock
}

func (_m *ActivityStore) DailyCounts(ctx context.Context, restaurantID string, day time.Time) (map[string]int64, error) {
	ret := _m.Called(ctx, restaurantID, day)

	var r0 map[string]int64
	if rf, ok := ret.Get(0).(func(context.Context, string, time.Time) map[string]int64); ok {
		r0 = rf(ctx, restaurantID, day)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int64)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ActivityStore) RecentEvents(ctx context.Context, restaurantID string, limit int64) ([]domain.LogEntry, error) {
	ret := _m.Called(ctx, restaurantID, limit)

	var r0 []domain.LogEntry
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) []domain.LogEntry); ok {
		r0 = rf(ctx, restaurantID, limit)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.LogEntry)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewActivityStore creates a mock and asserts its expectations on test cleanup.
func NewActivityStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ActivityStore {
	m := &ActivityStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
