package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CategoryRepository is a testify mock for the CategoryRepository interface.
type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) CountCategories(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	ret := _m.Called(ctx, restaurantID, q)

	r0 := ret.Get(0).(int)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryRepository) ListCategories(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.Category, error) {
	ret := _m.Called(ctx, restaurantID, q)

	var r0 []domain.Category
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ListQuery) []domain.Category); ok {
		r0 = rf(ctx, restaurantID, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryRepository) ListActiveCategories(ctx context.Context, restaurantID string) ([]domain.CategoryRef, error) {
	ret := _m.Called(ctx, restaurantID)

	var r0 []domain.CategoryRef
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.CategoryRef); ok {
		r0 = rf(ctx, restaurantID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.CategoryRef)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryRepository) GetCategory(ctx context.Context, restaurantID string, categoryID string) (*domain.Category, error) {
	ret := _m.Called(ctx, restaurantID, categoryID)

	var r0 *domain.Category
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.Category); ok {
		r0 = rf(ctx, restaurantID, categoryID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CategoryRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	ret := _m.Called(ctx, c)

	r0 := ret.Error(0)

	return r0
}

func (_m *CategoryRepository) RenameCategory(ctx context.Context, restaurantID string, categoryID string, name string) error {
	ret := _m.Called(ctx, restaurantID, categoryID, name)

	r0 := ret.Error(0)

	return r0
}

func (_m *CategoryRepository) UpdateCategory(ctx context.Context, restaurantID string, categoryID string, name string, active bool) error {
	ret := _m.Called(ctx, restaurantID, categoryID, name, active)

	r0 := ret.Error(0)

	return r0
}

func (_m *CategoryRepository) SetCategoryActive(ctx context.Context, restaurantID string, categoryID string, active bool) error {
	ret := _m.Called(ctx, restaurantID, categoryID, active)

	r0 := ret.Error(0)

	return r0
}

func (_m *CategoryRepository) DeleteCategory(ctx context.Context, restaurantID string, categoryID string) ([]string, error) {
	ret := _m.Called(ctx, restaurantID, categoryID)

	var r0 []string
	if rf, ok := ret.Get(0).(func(context.Context, string, string) []string); ok {
		r0 = rf(ctx, restaurantID, categoryID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]string)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewCategoryRepository creates a mock and asserts its expectations on test cleanup.
func NewCategoryRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
