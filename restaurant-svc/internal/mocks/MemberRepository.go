package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MemberRepository is a testify mock for the MemberRepository interface.
type MemberRepository struct {
	mock.Mock
}

func (_m *MemberRepository) GetMember(ctx context.Context, restaurantID string, memberID string) (*domain.Member, error) {
	ret := _m.Called(ctx, restaurantID, memberID)

	var r0 *domain.Member
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.Member); ok {
		r0 = rf(ctx, restaurantID, memberID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Member)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *MemberRepository) GetMemberByEmail(ctx context.Context, restaurantID string, email string) (*domain.Member, error) {
	ret := _m.Called(ctx, restaurantID, email)

	var r0 *domain.Member
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.Member); ok {
		r0 = rf(ctx, restaurantID, email)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Member)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *MemberRepository) CountMembers(ctx context.Context, restaurantID string, q domain.ListQuery) (int, error) {
	ret := _m.Called(ctx, restaurantID, q)

	r0 := ret.Get(0).(int)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *MemberRepository) ListMembers(ctx context.Context, restaurantID string, q domain.ListQuery) ([]domain.Member, error) {
	ret := _m.Called(ctx, restaurantID, q)

	var r0 []domain.Member
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ListQuery) []domain.Member); ok {
		r0 = rf(ctx, restaurantID, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Member)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *MemberRepository) CreateMember(ctx context.Context, m *domain.Member) error {
	ret := _m.Called(ctx, m)

	r0 := ret.Error(0)

	return r0
}

func (_m *MemberRepository) UpdateMember(ctx context.Context, m *domain.Member) error {
	ret := _m.Called(ctx, m)

	r0 := ret.Error(0)

	return r0
}

func (_m *MemberRepository) SetMemberActive(ctx context.Context, restaurantID string, memberID string, active bool) error {
	ret := _m.Called(ctx, restaurantID, memberID, active)

	r0 := ret.Error(0)

	return r0
}

func (_m *MemberRepository) DeleteMember(ctx context.Context, restaurantID string, memberID string) error {
	ret := _m.Called(ctx, restaurantID, memberID)

	r0 := ret.Error(0)

	return r0
}

// NewMemberRepository creates a mock and asserts its expectations on test cleanup.
func NewMemberRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MemberRepository {
	m := &MemberRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
