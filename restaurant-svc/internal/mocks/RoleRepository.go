package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RoleRepository is a testify mock for the RoleRepository interface.
type RoleRepository struct {
	mock.Mock
}

func (_m *RoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Role
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Role); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Role)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *RoleRepository) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Role
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Role); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Role)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *RoleRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	ret := _m.Called(ctx, name)

	var r0 *domain.Role
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Role); ok {
		r0 = rf(ctx, name)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Role)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *RoleRepository) CreateRole(ctx context.Context, role *domain.Role) error {
	ret := _m.Called(ctx, role)

	r0 := ret.Error(0)

	return r0
}

// NewRoleRepository creates a mock and asserts its expectations on test cleanup.
func NewRoleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RoleRepository {
	m := &RoleRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
