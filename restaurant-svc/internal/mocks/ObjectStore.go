package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// ObjectStore is a testify mock for the ObjectStore interface.
type ObjectStore struct {
	mock.Mock
}

func (_m *ObjectStore) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	ret := _m.Called(ctx, key, body, contentType)

	r0 := ret.Error(0)

	return r0
}

func (_m *ObjectStore) DeleteObject(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	r0 := ret.Error(0)

	return r0
}

func (_m *ObjectStore) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	ret := _m.Called(ctx, key, ttl)

	r0 := ret.Get(0).(string)
	r1 := ret.Error(1)

	return r0, r1
}

// NewObjectStore creates a mock and asserts its expectations on test cleanup.
func NewObjectStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *ObjectStore {
	m := &ObjectStore{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
