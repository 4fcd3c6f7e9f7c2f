package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MenuItemRepository is a testify mock for the MenuItemRepository interface.
type MenuItemRepository struct {
	mock.Mock
}

func (_m *MenuItemRepository) CountMenuItems(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	ret := _m.Called(ctx, restaurantID, q)

	r0 := ret.Get(0).(int)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *MenuItemRepository) ListMenuItems(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID, q)

	var r0 []domain.MenuItem
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ListQuery) []domain.MenuItem); ok {
		r0 = rf(ctx, restaurantID, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *MenuItemRepository) GetMenuItem(ctx context.Context, restaurantID string, itemID string) (*domain.MenuItem, error) {
	ret := _m.Called(ctx, restaurantID, itemID)

	var r0 *domain.MenuItem
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.MenuItem); ok {
		r0 = rf(ctx, restaurantID, itemID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItem)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *MenuItemRepository) CreateMenuItem(ctx context.Context, item *domain.MenuItem, optionIDs []string) error {
	ret := _m.Called(ctx, item, optionIDs)

	r0 := ret.Error(0)

	return r0
}

func (_m *MenuItemRepository) UpdateMenuItem(ctx context.Context, item *domain.MenuItem, optionIDs []string, replaceOptions bool) error {
	ret := _m.Called(ctx, item, optionIDs, replaceOptions)

	r0 := ret.Error(0)

	return r0
}

func (_m *MenuItemRepository) SetMenuItemActive(ctx context.Context, restaurantID string, itemID string, active bool) error {
	ret := _m.Called(ctx, restaurantID, itemID, active)

	r0 := ret.Error(0)

	return r0
}

func (_m *MenuItemRepository) DeleteMenuItem(ctx context.Context, restaurantID string, itemID string) error {
	ret := _m.Called(ctx, restaurantID, itemID)

	r0 := ret.Error(0)

	return r0
}

// NewMenuItemRepository creates a mock and asserts its expectations on test cleanup.
func NewMenuItemRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MenuItemRepository {
	m := &MenuItemRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
