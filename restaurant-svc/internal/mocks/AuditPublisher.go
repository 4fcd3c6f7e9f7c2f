package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AuditPublisher is a testify mock for the AuditPublisher interface.
type AuditPublisher struct {
	mock.Mock
}

func (_m *AuditPublisher) PublishAudit(ctx context.Context, entry domain.LogEntry) error {
	ret := _m.Called(ctx, entry)

	r0 := ret.Error(0)

	return r0
}

// NewAuditPublisher creates a mock and asserts its expectations on test cleanup.
func NewAuditPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuditPublisher {
	m := &AuditPublisher{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
