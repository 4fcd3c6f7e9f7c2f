package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OptionRepository is a testify mock for the OptionRepository interface.
type OptionRepository struct {
	mock.Mock
}

func (_m *OptionRepository) CountOptions(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	ret := _m.Called(ctx, restaurantID, q)

	r0 := ret.Get(0).(int)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OptionRepository) ListOptions(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.MenuItemOption, error) {
	ret := _m.Called(ctx, restaurantID, q)

	var r0 []domain.MenuItemOption
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ListQuery) []domain.MenuItemOption); ok {
		r0 = rf(ctx, restaurantID, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItemOption)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OptionRepository) ListActiveOptions(ctx context.Context, restaurantID string) ([]domain.MenuItemOption, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.MenuItemOption
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.MenuItemOption); ok {
		r0 = rf(ctx, restaurantID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.MenuItemOption)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OptionRepository) GetOption(ctx context.Context, restaurantID string, optionID string) (*domain.MenuItemOption, error) {
	ret := _m.Called(ctx, restaurantID, optionID)

	var r0 *domain.MenuItemOption
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.MenuItemOption); ok {
		r0 = rf(ctx, restaurantID, optionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.MenuItemOption)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OptionRepository) CountOwnedOptions(ctx context.Context, restaurantID string, optionIDs []string) (int, error) {
	ret := _m.Called(ctx, restaurantID, optionIDs)

	r0 := ret.Get(0).(int)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *OptionRepository) CreateOption(ctx context.Context, o *domain.MenuItemOption) error {
	ret := _m.Called(ctx, o)

	r0 := ret.Error(0)

	return r0
}

func (_m *OptionRepository) UpdateOption(ctx context.Context, o *domain.MenuItemOption) error {
	ret := _m.Called(ctx, o)

	r0 := ret.Error(0)

	return r0
}

func (_m *OptionRepository) SetOptionActive(ctx context.Context, restaurantID string, optionID string, active bool) error {
	ret := _m.Called(ctx, restaurantID, optionID, active)

	r0 := ret.Error(0)

	return r0
}

func (_m *OptionRepository) DeleteOption(ctx context.Context, restaurantID string, optionID string) error {
	ret := _m.Called(ctx, restaurantID, optionID)

	r0 := ret.Error(0)

	return r0
}

// NewOptionRepository creates a mock and asserts its expectations on test cleanup.
func NewOptionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OptionRepository {
	m := &OptionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
