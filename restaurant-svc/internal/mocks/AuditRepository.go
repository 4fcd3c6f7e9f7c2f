package mocks

import (
	"context"

	"kuchi/restaurant-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AuditRepository is a testify mock for the AuditRepository interface.
type AuditRepository struct {
	mock.Mock
}

func (_m *AuditRepository) InsertLog(ctx context.Context, entry *domain.LogEntry) error {
	ret := _m.Called(ctx, entry)

	r0 := ret.Error(0)

	return r0
}

// NewAuditRepository creates a mock and asserts its expectations on test cleanup.
func NewAuditRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AuditRepository {
	m := &AuditRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
