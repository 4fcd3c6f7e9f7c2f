package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RestaurantRepository is a testify mock for the RestaurantRepository interface.
type RestaurantRepository struct {
	mock.Mock
}

func (_m *RestaurantRepository) GetRestaurantByEmail(ctx context.Context, email string) (*domain.Restaurant, error) {
	ret := _m.Called(ctx, email)

	var r0 *domain.Restaurant
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Restaurant); ok {
		r0 = rf(ctx, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Restaurant)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *RestaurantRepository) CreateRestaurantWithOwner(ctx context.Context, rest *domain.Restaurant, owner *domain.Member) error {
	ret := _m.Called(ctx, rest, owner)

	r0 := ret.Error(0)

	return r0
}

// NewRestaurantRepository creates a mock and asserts its expectations on test cleanup.
func NewRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RestaurantRepository {
	m := &RestaurantRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
