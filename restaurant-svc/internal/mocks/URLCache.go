package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// URLCache is a testify mock for the URLCache interface.
type URLCache struct {
	mock.Mock
}

func (_m *URLCache) GetURL(ctx context.Context, key string) (string, bool, error) {
	ret := _m.Called(ctx, key)

	r0 := ret.Get(0).(string)
	r1 := ret.Get(1).(bool)
	r2 := ret.Error(2)

	return r0, r1, r2
}

func (_m *URLCache) SetURL(ctx context.Context, key string, url string, ttl time.Duration) error {
	ret := _m.Called(ctx, key, url, ttl)

	r0 := ret.Error(0)

	return r0
}

// NewURLCache creates a mock and asserts its expectations on test cleanup.
func NewURLCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *URLCache {
	m := &URLCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
