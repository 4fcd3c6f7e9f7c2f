package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// IdentityVerifier is a testify mock for the IdentityVerifier interface.
type IdentityVerifier struct {
	mock.Mock
}

func (_m *IdentityVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	ret := _m.Called(ctx, idToken)

	r0 := ret.Get(0).(string)
	r1 := ret.Error(1)

	return r0, r1
}

// NewIdentityVerifier creates a mock and asserts its expectations on test cleanup.
func NewIdentityVerifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdentityVerifier {
	m := &IdentityVerifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
