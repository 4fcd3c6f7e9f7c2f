package mocks

import (
	"context"

	"kuchi/activity-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a testify mock for the StoreInterface interface.
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) Record(ctx context.Context, e domain.AuditEvent) error {
	ret := _m.Called(ctx, e)

	r0 := ret.Error(0)

	return r0
}

// NewStoreInterface creates a mock and asserts its expectations on test cleanup.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
